package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/mocks"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/pb"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/lang"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/patterns"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/recogniser"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/testhelpers"
)

func TestServer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Server Suite")
}

var _ = Describe("Routes", func() {

	var router *gin.Engine
	var backend *mocks.Client
	var detector *mocks.Detector

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		backend = &mocks.Client{}
		detector = &mocks.Detector{}
		_, router = gin.CreateTestContext(httptest.NewRecorder())
		server{controller: controller{
			recognisers: map[string]recogniser.Client{
				"scibert": backend,
			},
			defaultModel: "scibert",
			library:      patterns.Default(),
			detector:     detector,
			threshold:    lang.DefaultThreshold,
			localCache:   local.New(),
		}}.RegisterRoutes(router)
	})

	post := func(path, contentType, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("POST /entities", func() {

		It("Should return the annotated entities", func() {
			backend.On("Recognise", mock.Anything, mock.Anything).
				Return([]*pb.NativeSpan{testhelpers.Span("DeepMind", "ORG", 0, 8)}, nil)

			w := post("/entities", "application/json", `{"text": "DeepMind announced results.", "language": "en"}`)

			Ω(w.Code).Should(Equal(http.StatusOK))

			var res entitiesResponse
			Ω(json.Unmarshal(w.Body.Bytes(), &res)).Should(Succeed())
			Ω(res.Error).Should(BeNil())
			Ω(res.Entities).Should(HaveLen(1))
			Ω(res.Entities[0].Text).Should(Equal("DeepMind"))
		})

		It("Should be a bad request for an unconfigured model", func() {
			w := post("/entities", "application/json", `{"text": "some text", "model": "no-such-model"}`)

			Ω(w.Code).Should(Equal(http.StatusBadRequest))

			var res entitiesResponse
			Ω(json.Unmarshal(w.Body.Bytes(), &res)).Should(Succeed())
			Ω(res.Error).ShouldNot(BeNil())
			Ω(res.Entities).Should(BeEmpty())
		})

		It("Should be a bad request for malformed JSON", func() {
			w := post("/entities", "application/json", `{"text": `)

			Ω(w.Code).Should(Equal(http.StatusBadRequest))
		})

		It("Should be an internal error when the backend fails", func() {
			backend.On("Recognise", mock.Anything, mock.Anything).
				Return(nil, errors.New("model unavailable"))

			w := post("/entities", "application/json", `{"text": "some text"}`)

			Ω(w.Code).Should(Equal(http.StatusInternalServerError))

			var res entitiesResponse
			Ω(json.Unmarshal(w.Body.Bytes(), &res)).Should(Succeed())
			Ω(*res.Error).Should(Equal("model unavailable"))
		})

		It("Should return an empty entity list for empty text", func() {
			w := post("/entities", "application/json", `{"text": ""}`)

			Ω(w.Code).Should(Equal(http.StatusOK))
			Ω(w.Body.String()).Should(MatchJSON(`{"entities": [], "error": null}`))
		})
	})

	Describe("POST /languages", func() {

		It("Should return one result per text in order", func() {
			detector.On("Detect", "Hello world").
				Return([]lang.Guess{{Language: "en", Confidence: 0.99}}, nil)
			detector.On("Detect", "こんにちは世界").
				Return([]lang.Guess{{Language: "ja", Confidence: 0.97}}, nil)

			w := post("/languages", "application/json", `{"texts": ["Hello world", "こんにちは世界"]}`)

			Ω(w.Code).Should(Equal(http.StatusOK))

			var res detectResponse
			Ω(json.Unmarshal(w.Body.Bytes(), &res)).Should(Succeed())
			Ω(res.Error).Should(BeNil())
			Ω(res.Results).Should(HaveLen(2))
			Ω(res.Results[0].Language).Should(Equal("en"))
			Ω(res.Results[1].Language).Should(Equal("ja"))
		})

		It("Should degrade a failing detection to undetermined", func() {
			detector.On("Detect", "some text").
				Return(nil, errors.New("detector down"))

			w := post("/languages", "application/json", `{"texts": ["some text"]}`)

			Ω(w.Code).Should(Equal(http.StatusOK))

			var res detectResponse
			Ω(json.Unmarshal(w.Body.Bytes(), &res)).Should(Succeed())
			Ω(res.Results).Should(HaveLen(1))
			Ω(res.Results[0].Language).Should(Equal(lang.UnknownLanguage))
			Ω(res.Results[0].RequiresManualReview).Should(BeTrue())
			Ω(res.Results[0].Alternatives).Should(BeEmpty())
		})
	})

	Describe("POST /text", func() {

		It("Should strip markup from an HTML body", func() {
			w := post("/text", "text/html", "<p>hello <b>world</b></p>")

			Ω(w.Code).Should(Equal(http.StatusOK))
			Ω(w.Body.String()).Should(ContainSubstring("hello world"))
		})

		It("Should reject non-HTML content types", func() {
			w := post("/text", "text/plain", "hello world")

			Ω(w.Code).Should(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /tokens", func() {

		It("Should tokenize the body", func() {
			req := httptest.NewRequest(http.MethodPost, "/tokens", bytes.NewReader([]byte("hello world")))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Ω(w.Code).Should(Equal(http.StatusOK))
			Ω(w.Body.String()).Should(MatchJSON(`[
				{"text": "hello", "offset": 0},
				{"text": "world", "offset": 6}
			]`))
		})
	})

	Describe("GET /models", func() {

		It("Should list the configured models", func() {
			req := httptest.NewRequest(http.MethodGet, "/models", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Ω(w.Code).Should(Equal(http.StatusOK))
			Ω(w.Body.String()).Should(MatchJSON(`["scibert"]`))
		})
	})
})
