package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/blockedby/career-os/internal/api"
	"github.com/blockedby/career-os/internal/config"
	"github.com/blockedby/career-os/internal/llm"
	"github.com/blockedby/career-os/internal/logger"
	"github.com/blockedby/career-os/internal/nats"
	"github.com/blockedby/career-os/internal/publisher"
	"github.com/blockedby/career-os/internal/tasks"
)

func main() {
	// 1. Load config
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// 2. Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log := logger.Get()
	log.Info().Msg("starting career analysis service")

	// 3. Setup context with graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		cancel()
	}()

	// 4. Connect to NATS
	nc, err := nats.New(ctx, cfg.NatsURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to nats, lead publishing disabled")
	} else {
		defer nc.Close()
		if err := nc.EnsureStream(ctx, "leads", []string{"leads.>"}); err != nil {
			log.Warn().Err(err).Msg("failed to ensure leads stream")
		}
	}

	var pub api.LeadPublisher
	if nc != nil {
		pub = publisher.NewNATSPublisher(nc.Conn)
	}

	// 5. Initialize task generation
	var completer tasks.Completer
	if cfg.LLMAPIKey != "" {
		completer = llm.NewClient(llm.Config{
			BaseURL:     cfg.LLMBaseURL,
			Model:       cfg.LLMModel,
			APIKey:      cfg.LLMAPIKey,
			MaxTokens:   cfg.LLMMaxTokens,
			Temperature: float32(cfg.LLMTemperature),
			Timeout:     time.Duration(cfg.LLMTimeoutSec) * time.Second,
		})
		log.Info().Str("model", cfg.LLMModel).Msg("task generation using completion service")
	} else {
		log.Info().Msg("no completion API key, task generation using fallback")
	}
	taskService := tasks.NewService(completer)

	// 6. Initialize WebSocket hub
	hub := api.NewHub()
	go hub.Run()

	// 7. Initialize API server
	handler := api.NewHandler(
		taskService,
		pub,
		hub,
		time.Duration(cfg.SimulatedDelayMS)*time.Millisecond,
	)

	server := api.NewServer(&api.Config{
		Port:        cfg.HTTPPort,
		Title:       "Career OS API",
		Description: "Career analysis and lead capture API",
		Version:     "1.0.0",
	}, handler)

	// 8. Start server
	log.Info().Int("port", cfg.HTTPPort).Msg("starting api server")
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// 9. Wait for shutdown
	<-ctx.Done()
	log.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = server.Stop(shutdownCtx)

	log.Info().Msg("shutdown complete")
}
