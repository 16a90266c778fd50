package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wedding-assistant/config"
	"wedding-assistant/internal/assistant"
	assistantHTTP "wedding-assistant/internal/assistant/delivery/http"
	"wedding-assistant/internal/assistant/orchestrator"
	"wedding-assistant/internal/assistant/tools"
	"wedding-assistant/internal/httpserver"
	"wedding-assistant/internal/middleware"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/gcalendar"
	"wedding-assistant/pkg/llmprovider"
	"wedding-assistant/pkg/log"
)

// @title       Wedding Assistant API
// @description AI wedding-planning assistant: checklist, budget, timeline, guests, venue and vendor search via LLM tool calling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Wedding Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Planning backend: %s", cfg.Planning.BaseURL)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 90*time.Second),
	}, logger)

	// 4. Planning backend client
	planningClient := planning.NewClient(cfg.Planning.BaseURL, cfg.Planning.ServiceToken)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Tool registry
	registry := assistant.NewToolRegistry()
	tools.RegisterAll(registry, planningClient, calendarClient, gcalendar.EventDefaults{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Timezone:   cfg.GoogleCalendar.Timezone,
	}, logger)
	logger.Infof(ctx, "Registered %d assistant tools", len(registry.List()))

	// 7. Orchestrator
	orch := orchestrator.New(registry, manager, orchestrator.Config{
		HistoryLimit:     cfg.Assistant.HistoryLimit,
		MaxConversations: cfg.Assistant.MaxConversations,
		Temperature:      cfg.Assistant.Temperature,
		MaxTokens:        cfg.Assistant.MaxTokens,
	}, logger)

	// 8. HTTP server
	mw := middleware.New(logger, cfg)
	handler := assistantHTTP.New(logger, orch)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
