package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v7"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache"
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

func NewElasticsearchClient(conf ElasticsearchConfig) (Client, error) {
	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	})
	if err != nil {
		return nil, err
	}

	return &esClient{
		Client: c,
		index:  conf.Index,
	}, nil
}

type esClient struct {
	*elasticsearch.Client
	index string
}

func (e *esClient) Ready() bool {
	res, err := e.Ping()
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return !res.IsError()
}

func (e *esClient) Get(key string) (*cache.Result, error) {
	res, err := e.Client.Get(e.index, key)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	} else if res.IsError() {
		return nil, fmt.Errorf("elasticsearch get failed: %s", res.String())
	}

	var envelope struct {
		Source cache.Result `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	return &envelope.Source, nil
}

func (e *esClient) Set(key string, result *cache.Result) error {
	b, err := json.Marshal(result)
	if err != nil {
		return err
	}

	res, err := e.Index(e.index, bytes.NewReader(b), e.Index.WithDocumentID(key))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch index failed: %s", res.String())
	}
	return nil
}
