package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog/log"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/annotate"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/blocklist"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/entity"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/lang"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/patterns"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/recogniser"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/text"
)

type controller struct {
	recognisers  map[string]recogniser.Client
	defaultModel string
	library      *patterns.Library
	blocklist    *blocklist.Blocklist
	detector     lang.Detector
	threshold    float64
	localCache   local.Client
	remoteCache  remote.Client
}

// Annotate runs one text through the entity pipeline, consulting the caches
// first. Cache failures are logged and ignored - recomputing is always
// preferable to failing the request over a cache.
func (c controller) Annotate(ctx context.Context, requestText, language, model string) ([]entity.Entity, error) {
	if model == "" {
		model = c.defaultModel
	}
	client, ok := c.recognisers[model]
	if !ok {
		return nil, NewHttpError(400, fmt.Errorf("no backend configured for model %q", model))
	}

	key := cache.Key(requestText, language, model)
	if cached := c.localCache.Get(key); cached != nil {
		return cached.Entities, nil
	}
	if c.remoteCache != nil {
		if cached, err := c.remoteCache.Get(key); err != nil {
			log.Warn().Err(err).Msg("remote cache get failed")
		} else if cached != nil {
			c.localCache.Set(key, cached)
			return cached.Entities, nil
		}
	}

	entities, err := annotate.New(client, c.library, c.blocklist).Annotate(ctx, requestText, language, model)
	if err != nil {
		return nil, err
	}

	result := &cache.Result{Entities: entities}
	c.localCache.Set(key, result)
	if c.remoteCache != nil {
		if err := c.remoteCache.Set(key, result); err != nil {
			log.Warn().Err(err).Msg("remote cache set failed")
		}
	}

	return entities, nil
}

// DetectLanguages fans the batch out to the detector, one result per text in
// order. Per-text detector failures come back as undetermined results, so
// the batch always succeeds.
func (c controller) DetectLanguages(texts []string, threshold float64) []lang.Detection {
	if threshold == 0 {
		threshold = c.threshold
	}
	return lang.DetectAll(c.detector, texts, threshold)
}

func (c controller) HTMLToText(reader io.Reader) ([]byte, error) {
	return text.StripHTML(reader)
}

func (c controller) Tokenize(input string) ([]text.Token, error) {
	return text.Tokenize(input)
}

// ListModels returns the configured model ids, sorted for stable output.
func (c controller) ListModels() []string {
	models := make([]string, 0, len(c.recognisers))
	for model := range c.recognisers {
		models = append(models, model)
	}
	sort.Strings(models)
	return models
}
