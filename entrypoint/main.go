package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"clinscribe.com/cna/api"
	"clinscribe.com/cna/dict"
	"clinscribe.com/cna/logger"
	"clinscribe.com/cna/pipeline"
	"clinscribe.com/cna/worker"
)

type Config struct {
	VocabularyPath string `envconfig:"CNA_VOCABULARY_PATH"`
	RestAPIActive  bool   `envconfig:"CNA_REST_API_ACTIVE" default:"false"`
	RestAPIPort    string `envconfig:"CNA_REST_API_PORT" default:"10000"`
}

func main() {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()
	logger.SetupLogging()
	cnaLogger := logger.NewLogger("Main")
	fatalErrLogger := cnaLogger.Fatal().Caller()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	tables := dict.Default()
	if config.VocabularyPath != "" {
		loaded, err := dict.Load(config.VocabularyPath)
		if err != nil {
			fatalErrLogger.Err(err).Msg("Failed to load vocabulary overrides")
			os.Exit(1)
		}
		tables = loaded
	}

	cnaLogger.Info().Msg("Starting pipeline loading")
	processor := pipeline.NewProcessor(tables)
	ppln := pipeline.NewPipeline(processor)
	cnaLogger.Info().Msg("Pipeline loaded")

	if config.RestAPIActive {
		go func() {
			cnaLogger.Info().Msg("Starting API service")
			apiRequest := &api.Request{
				Pipeline: ppln,
			}
			http.HandleFunc("/", apiRequest.AnalyzeNote)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			cnaLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, nil)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	cnaLogger.Info().Msg("Start CNA Worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			cnaLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			cnaLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}
