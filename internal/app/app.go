package app

import (
	"context"
	"fmt"
	"log"

	"akorfa/internal/config"
	"akorfa/internal/diagnostic"
	"akorfa/internal/handler"
	"akorfa/internal/llmclient"
	"akorfa/internal/server"
)

type App struct {
	server *server.Server
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	stores, err := initStores(cfg)
	if err != nil {
		return nil, err
	}

	client, err := newCompletionClient(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize completion client: %w", err)
	}
	log.Printf("completion client: %s", client.Name())

	pipeline := diagnostic.NewPipeline(client, cfg.LLM.MaxTokens)

	aiHandler := handler.NewAIHandler(pipeline, stores.history, stores.archiver)
	assessmentHandler := handler.NewAssessmentHandler(stores.assessment)

	mux := server.NewMux(aiHandler, assessmentHandler)
	srv := server.New(cfg.Port, mux)

	return &App{server: srv}, nil
}

func newCompletionClient(ctx context.Context, cfg config.LLMConfig) (llmclient.Client, error) {
	switch cfg.Provider {
	case "gemini":
		return llmclient.NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel, cfg.MaxTokens)
	case "fake":
		return llmclient.NewFakeClient("This is a canned local response."), nil
	default:
		return llmclient.NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens), nil
	}
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
