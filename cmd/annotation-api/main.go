package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/pb"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/blocklist"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/lang"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/patterns"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/recogniser"
	grpc_recogniser "gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/recogniser/grpc-recogniser"
)

// config structure
type annotationAPIConfig struct {
	lib.BaseConfig
	Server struct {
		HttpPort int `mapstructure:"http_port"`
	}
	DefaultModel string `mapstructure:"default_model"`
	Models       map[string]struct {
		Host     string
		GrpcPort int `mapstructure:"grpc_port"`
	}
	Detector struct {
		Url string
	}
	ConfidenceThreshold float64    `mapstructure:"confidence_threshold"`
	PatternFile         string     `mapstructure:"pattern_file"`
	BlocklistFile       string     `mapstructure:"blocklist_file"`
	CacheBackend        cache.Type `mapstructure:"cache_backend"`
	Redis               remote.RedisConfig
	Elasticsearch       remote.ElasticsearchConfig
}

var config annotationAPIConfig

func initConfig() {
	err := lib.InitializeConfig("./config/annotation-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port": 8080,
		},
		"default_model":        "en_core_web_sm",
		"confidence_threshold": lang.DefaultThreshold,
		"cache_backend":        cache.None,
		"redis": map[string]interface{}{
			"host": "localhost",
			"port": 6379,
		},
		"elasticsearch": map[string]interface{}{
			"host":  "localhost",
			"port":  9200,
			"index": "annotations",
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

	// for each configured model backend, dial a grpc connection and keep it
	// so we can close it on shutdown.
	recognisers := make(map[string]recogniser.Client, len(config.Models))
	connections := make([]*grpc.ClientConn, 0, len(config.Models))
	for model, backend := range config.Models {
		conn, err := grpc.Dial(fmt.Sprintf("%s:%d", backend.Host, backend.GrpcPort), grpc.WithInsecure())
		if err != nil {
			log.Fatal().Err(err).Str("model", model).Msg("could not dial model backend")
		}
		connections = append(connections, conn)
		recognisers[model] = grpc_recogniser.New(pb.NewRecognizerClient(conn))
	}

	library := patterns.Default()
	if config.PatternFile != "" {
		var err error
		library, err = patterns.Load(config.PatternFile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load pattern library")
		}
	}

	var bl *blocklist.Blocklist
	if config.BlocklistFile != "" {
		var err error
		bl, err = blocklist.Load(config.BlocklistFile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load blocklist")
		}
	}

	var remoteCache remote.Client
	switch config.CacheBackend {
	case cache.Redis:
		remoteCache = remote.NewRedisClient(config.Redis)
	case cache.Elasticsearch:
		var err error
		remoteCache, err = remote.NewElasticsearchClient(config.Elasticsearch)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create elasticsearch client")
		}
	}

	c := controller{
		recognisers:  recognisers,
		defaultModel: config.DefaultModel,
		library:      library,
		blocklist:    bl,
		detector:     lang.NewHTTPDetector(config.Detector.Url),
		threshold:    config.ConfidenceThreshold,
		localCache:   local.New(),
		remoteCache:  remoteCache,
	}
	s := server{controller: c}

	closeConnections := func() error {
		for _, conn := range connections {
			if err := conn.Close(); err != nil {
				return err
			}
		}
		return nil
	}
	go lib.HandleInterrupt(closeConnections)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.Recovery(), cors.Default())
	s.RegisterRoutes(r)

	if err := r.Run(fmt.Sprintf(":%d", config.Server.HttpPort)); err != nil {
		if closeErr := closeConnections(); closeErr != nil {
			log.Error().Err(closeErr).Send()
		}
		log.Fatal().Err(err).Send()
	}
}
