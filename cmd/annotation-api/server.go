package main

import (
	"errors"
	"io/ioutil"

	"github.com/gin-gonic/gin"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/entity"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/lang"
)

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type server struct {
	controller controller
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/entities", s.Annotate)
	r.POST("/languages", s.DetectLanguages)
	r.POST("/text", s.HTMLToText)
	r.POST("/tokens", s.Tokenize)
	r.GET("/models", s.ListModels)
}

type annotateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Model    string `json:"model"`
}

// entitiesResponse is the wire contract for the entity pipeline: the result
// and a top-level error field, exactly one of which is meaningful.
type entitiesResponse struct {
	Entities []entity.Entity `json:"entities"`
	Error    *string         `json:"error"`
}

func (s server) Annotate(c *gin.Context) {
	var req annotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		entitiesError(c, NewHttpError(400, err))
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	entities, err := s.controller.Annotate(c.Request.Context(), req.Text, req.Language, req.Model)
	if err != nil {
		entitiesError(c, err)
		return
	}

	c.JSON(200, entitiesResponse{Entities: entities, Error: nil})
}

type detectRequest struct {
	Texts               []string `json:"texts"`
	ConfidenceThreshold float64  `json:"confidenceThreshold"`
}

type detectResponse struct {
	Results []lang.Detection `json:"results"`
	Error   *string          `json:"error"`
}

func (s server) DetectLanguages(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := err.Error()
		c.JSON(400, detectResponse{Results: []lang.Detection{}, Error: &msg})
		return
	}

	results := s.controller.DetectLanguages(req.Texts, req.ConfidenceThreshold)
	c.JSON(200, detectResponse{Results: results, Error: nil})
}

func (s server) HTMLToText(c *gin.Context) {
	if c.ContentType() != "text/html" {
		handleError(c, NewHttpError(400, errors.New("invalid content type - must be text/html")))
		return
	}

	data, err := s.controller.HTMLToText(c.Request.Body)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Data(200, "text/plain", data)
}

func (s server) Tokenize(c *gin.Context) {
	body, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		handleError(c, err)
		return
	}

	tokens, err := s.controller.Tokenize(string(body))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, tokens)
}

func (s server) ListModels(c *gin.Context) {
	c.JSON(200, s.controller.ListModels())
}

// entitiesError writes a contract-shaped error body. Unrecognised errors are
// 500s: an unreachable NER backend must be a hard failure, never an empty
// success.
func entitiesError(c *gin.Context, err error) {
	msg := err.Error()
	body := entitiesResponse{Entities: []entity.Entity{}, Error: &msg}
	switch e := err.(type) {
	case HttpError:
		c.JSON(e.code, body)
	default:
		c.JSON(500, body)
	}
	c.Abort()
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, 500, errors.New("abort called on nil error"))
		return
	}
	switch e := err.(type) {
	case HttpError:
		abort(c, e.code, e.error)
	default:
		abort(c, 500, e)
	}
}

func abort(c *gin.Context, code int, err error) {
	c.JSON(code, map[string]interface{}{
		"status":  code,
		"message": err.Error(),
	})
	c.Abort()
}
