package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/lang"
)

// detect-language identifies the language of a batch of texts and prints one
// result per text, in order. The request is read from the first positional
// argument or stdin:
//
//	detect-language '{"texts": ["Hello world"], "confidenceThreshold": 0.7}'
//
// Detection failures degrade per text to an "unknown" result flagged for
// manual review; only a malformed request exits non-zero.

type detectLanguageConfig struct {
	lib.BaseConfig
	Detector struct {
		Url string
	}
}

var config detectLanguageConfig

type request struct {
	Texts               []string `json:"texts"`
	ConfidenceThreshold *float64 `json:"confidenceThreshold"`
}

type response struct {
	Results []lang.Detection `json:"results"`
	Error   *string          `json:"error"`
}

func initConfig() {
	err := lib.InitializeConfig("./config/detect-language.yml", map[string]interface{}{
		"log_level": "warn",
		"detector": map[string]interface{}{
			"url": "http://localhost:5000/detect",
		},
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

	threshold := lang.DefaultThreshold
	if req.ConfidenceThreshold != nil {
		threshold = *req.ConfidenceThreshold
	}

	detector := lang.NewHTTPDetector(config.Detector.Url)
	results := lang.DetectAll(detector, req.Texts, threshold)

	respond(response{Results: results, Error: nil})
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
	respond(response{Results: []lang.Detection{}, Error: &msg})
	os.Exit(1)
}
