package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/sahayak-assistant/server/internal/assistant/classify"
	"github.com/sahayak-assistant/server/internal/assistant/gateway"
	"github.com/sahayak-assistant/server/internal/assistant/handlers"
	"github.com/sahayak-assistant/server/internal/assistant/model"
	"github.com/sahayak-assistant/server/internal/assistant/repo"
	"github.com/sahayak-assistant/server/internal/assistant/safety"
	"github.com/sahayak-assistant/server/internal/assistant/session"
	"github.com/sahayak-assistant/server/internal/assistant/weather"
	"github.com/sahayak-assistant/server/internal/core"
	"github.com/sahayak-assistant/server/internal/server"
	logx "github.com/sahayak-assistant/server/pkg/logger"
	pkgredis "github.com/sahayak-assistant/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the assistant server,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Assistant configs
	Persona model.PersonaConfig
	Gateway model.GatewayConfig
	Safety  model.SafetyConfig
	Weather model.WeatherConfig
	Profile model.ProfileStoreConfig
	Server  model.ServerConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	rdb, err := cfg.Redis.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
	}
	defer rdb.Close()

	profileTTL, err := time.ParseDuration(cfg.Profile.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("ttl", cfg.Profile.TTL).Msg("Invalid PROFILE_TTL")
	}
	upsertTimeout, err := time.ParseDuration(cfg.Profile.UpsertTimeout)
	if err != nil {
		logx.Fatal().Err(err).Str("timeout", cfg.Profile.UpsertTimeout).Msg("Invalid PROFILE_UPSERT_TIMEOUT")
	}

	client, err := gateway.NewGeminiClient(ctx, cfg.APIKey, cfg.BaseURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to create Gemini client")
	}
	chatModel, err := gateway.NewGeminiModel(ctx, client, cfg.Gateway)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to create chat model")
	}

	domain := model.ParseDomain(cfg.Persona.Domain)
	deps := session.Deps{
		Classifier:   classify.New(),
		Handlers:     handlers.New(domain, weather.New(cfg.Weather)),
		Guard:        safety.New(cfg.Safety),
		Gateway:      gateway.New(chatModel, cfg.Gateway),
		Persona:      cfg.Persona,
		Store:        repo.NewRedisProfileRepository(rdb, profileTTL),
		StoreTimeout: upsertTimeout,
	}

	srv := server.New(cfg.Server, deps, gateway.NewVision(client, cfg.Gateway))

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info().Str("addr", cfg.Server.Addr).Str("domain", string(domain)).Msg("assistant server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logx.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("shutdown error")
	}
}
