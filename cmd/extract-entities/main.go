package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/pb"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/annotate"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/blocklist"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/entity"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/patterns"
	grpc_recogniser "gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/recogniser/grpc-recogniser"
)

// extract-entities runs one text through the entity pipeline and prints the
// result as JSON. The request is read from the first positional argument or,
// failing that, stdin:
//
//	extract-entities '{"text": "...", "language": "en", "model": "en_core_web_sm"}'
//
// A pipeline failure prints {"entities": [], "error": "..."} and exits 1 so
// callers can tell a valid empty result from a broken pipeline.

type extractEntitiesConfig struct {
	lib.BaseConfig
	DefaultModel string `mapstructure:"default_model"`
	Models       map[string]struct {
		Host     string
		GrpcPort int `mapstructure:"grpc_port"`
	}
	PatternFile   string `mapstructure:"pattern_file"`
	BlocklistFile string `mapstructure:"blocklist_file"`
}

var config extractEntitiesConfig

type request struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Model    string `json:"model"`
}

type response struct {
	Entities []entity.Entity `json:"entities"`
	Error    *string         `json:"error"`
}

func initConfig() {
	err := lib.InitializeConfig("./config/extract-entities.yml", map[string]interface{}{
		"log_level":     "warn",
		"default_model": "en_core_web_sm",
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func main() {
	initConfig()

	input, err := readInput()
	if err != nil {
		fail(fmt.Sprintf("could not read input: %v", err))
	}

	var req request
	if err := json.Unmarshal(input, &req); err != nil {
		fail(fmt.Sprintf("JSON decode error: %v", err))
	}
	if req.Language == "" {
		req.Language = "en"
	}
	if req.Model == "" {
		req.Model = config.DefaultModel
	}

	// empty text is a valid empty result, not an error.
	if req.Text == "" {
		respond(response{Entities: []entity.Entity{}, Error: nil})
		return
	}

	entities, err := extract(req)
	if err != nil {
		fail(err.Error())
	}

	respond(response{Entities: entities, Error: nil})
}

func extract(req request) ([]entity.Entity, error) {
	backend, ok := config.Models[req.Model]
	if !ok {
		return nil, fmt.Errorf("no backend configured for model %q", req.Model)
	}

	conn, err := grpc.Dial(fmt.Sprintf("%s:%d", backend.Host, backend.GrpcPort), grpc.WithInsecure())
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	library := patterns.Default()
	if config.PatternFile != "" {
		if library, err = patterns.Load(config.PatternFile); err != nil {
			return nil, err
		}
	}

	var bl *blocklist.Blocklist
	if config.BlocklistFile != "" {
		if bl, err = blocklist.Load(config.BlocklistFile); err != nil {
			return nil, err
		}
	}

	annotator := annotate.New(grpc_recogniser.New(pb.NewRecognizerClient(conn)), library, bl)
	return annotator.Annotate(context.Background(), req.Text, req.Language, req.Model)
}

func readInput() ([]byte, error) {
	if args := pflag.Args(); len(args) > 0 {
		return []byte(args[0]), nil
	}
	return ioutil.ReadAll(os.Stdin)
}

func respond(res response) {
	b, err := json.Marshal(res)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	fmt.Println(string(b))
}

func fail(msg string) {
	respond(response{Entities: []entity.Entity{}, Error: &msg})
	os.Exit(1)
}
