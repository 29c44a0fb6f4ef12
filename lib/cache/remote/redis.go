package remote

import (
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache"
)

type RedisConfig struct {
	Host string
	Port int
}

func NewRedisClient(conf RedisConfig) Client {
	return &redisClient{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
	}
}

type redisClient struct {
	*redis.Client
}

func (r *redisClient) Ready() bool {
	return r.Ping().Err() == nil
}

func (r *redisClient) Get(key string) (*cache.Result, error) {
	b, err := r.Client.Get(key).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var result cache.Result
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *redisClient) Set(key string, result *cache.Result) error {
	b, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return r.Client.Set(key, b, 0).Err()
}
