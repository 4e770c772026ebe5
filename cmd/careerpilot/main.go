package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"careerpilot/internal/api"
	"careerpilot/internal/assistant"
	"careerpilot/internal/config"
	"careerpilot/internal/llm"
	"careerpilot/internal/render"
	"careerpilot/internal/session"
	"careerpilot/pkg/logger"
)

func main() {
	logger.Setup()
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := llm.New(cfg)
	if err != nil {
		slog.Error("failed to create LLM client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	asst := assistant.New(client, session.New(), render.New(cfg.PandocPath))
	server := api.NewServer(cfg.Port, asst)

	slog.Info("careerpilot session ready", "port", cfg.Port, "provider", cfg.Provider)
	if err := server.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
