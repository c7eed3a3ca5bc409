package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"github.com/reusedev/scribe-hub/config"
	"github.com/reusedev/scribe-hub/internal/consts"
	"github.com/reusedev/scribe-hub/internal/modules/gateway"
	"github.com/reusedev/scribe-hub/internal/modules/logs"
	"github.com/reusedev/scribe-hub/internal/service/http"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":8000", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	_ = godotenv.Load()
	config.Init(configPath)
	logs.InitLogger()
	if !config.GConfig.APIKeyConfigured() {
		logs.Logger.Fatal().Str("env", consts.EnvGeminiAPIKey).Msg("GEMINI_API_KEY not found")
	}
	gw, err := gateway.New(context.Background(), config.GConfig.APIKey, config.GConfig.Models)
	if err != nil {
		logs.Logger.Fatal().Err(err).Msg("no working model found")
	}
	logs.Logger.Info().Str("model", gw.Model()).Str("port", httpPort).Msg("starting handwriting analysis server")
	http.Serve(httpPort, gw)
}
