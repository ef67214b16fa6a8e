package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eva-assistant/config"
	"eva-assistant/internal/admin"
	adminSqlite "eva-assistant/internal/admin/repository/sqlite"
	adminUsecase "eva-assistant/internal/admin/usecase"
	"eva-assistant/internal/agent"
	"eva-assistant/internal/agent/orchestrator"
	"eva-assistant/internal/agent/tools"
	waDelivery "eva-assistant/internal/assistant/delivery/whatsapp"
	convSqlite "eva-assistant/internal/conversation/repository/sqlite"
	"eva-assistant/internal/dispatcher"
	"eva-assistant/internal/httpserver"
	"eva-assistant/internal/notifier"
	"eva-assistant/pkg/gcalendar"
	"eva-assistant/pkg/gemini"
	"eva-assistant/pkg/gmail"
	"eva-assistant/pkg/googleauth"
	"eva-assistant/pkg/gsheets"
	"eva-assistant/pkg/log"
	"eva-assistant/pkg/whatsapp"
)

// @title       Eva Assistant API
// @description WhatsApp front-desk assistant for Blackstone School of Law & Business, backed by Gemini and Google Workspace.
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

	logger.Info(ctx, "Starting Eva Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Conversation store
	store, err := convSqlite.New(cfg.Store.Path, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open conversation store: ", err)
		return
	}
	defer store.Close()
	logger.Infof(ctx, "Conversation store ready at %s", cfg.Store.Path)

	// 4. Google Workspace clients (optional, tools degrade gracefully)
	var (
		calendarClient *gcalendar.Client
		mailClient     *gmail.Client
		sheetsClient   *gsheets.Client
	)
	if authManager, authErr := googleauth.NewManager(cfg.Google.CredentialsPath, cfg.Google.TokenPath); authErr != nil {
		logger.Warnf(ctx, "Google Workspace not available (optional): %v", authErr)
		logger.Warn(ctx, "→ Run `go run scripts/google-auth/main.go` to generate token.json")
	} else {
		ts := authManager.TokenSource(ctx)
		if calendarClient, err = gcalendar.NewClient(ctx, ts); err != nil {
			logger.Warnf(ctx, "Google Calendar not available: %v", err)
		}
		if mailClient, err = gmail.NewClient(ctx, ts); err != nil {
			logger.Warnf(ctx, "Gmail not available: %v", err)
		}
		if sheetsClient, err = gsheets.NewClient(ctx, ts); err != nil {
			logger.Warnf(ctx, "Google Sheets not available: %v", err)
		}
		logger.Info(ctx, "✅ Google Workspace initialized")
	}

	// 5. Agent tools
	registry := agent.NewRegistry()
	if calendarClient != nil {
		registry.Register(tools.NewScheduleEventTool(calendarClient, cfg.Google.CalendarID, cfg.Agent.Timezone, logger))
	} else {
		registry.Register(tools.NewScheduleEventTool(nil, cfg.Google.CalendarID, cfg.Agent.Timezone, logger))
	}
	if mailClient != nil {
		registry.Register(tools.NewSendEmailTool(mailClient, logger))
	} else {
		registry.Register(tools.NewSendEmailTool(nil, logger))
	}
	if sheetsClient != nil {
		registry.Register(tools.NewLogRecordTool(sheetsClient, cfg.Google.SheetID, logger))
	} else {
		registry.Register(tools.NewLogRecordTool(nil, cfg.Google.SheetID, logger))
	}

	// 6. Orchestrator
	llm := gemini.NewClientWithModel(cfg.Gemini.APIKey, cfg.Gemini.Model)
	orch := orchestrator.New(llm, registry, store, logger, orchestrator.Config{
		Timezone: cfg.Agent.Timezone,
		MaxSteps: cfg.Agent.MaxSteps,
	})

	// 7. Outbound delivery
	waClient := whatsapp.NewClient(cfg.Meta.AccessToken, cfg.Meta.PhoneNumberID)
	if cfg.Meta.APIURL != "" {
		waClient.SetAPIURL(cfg.Meta.APIURL)
	}
	replyNotifier := notifier.New(waClient, logger)

	// 8. Webhook handler
	jobs := dispatcher.New(logger, dispatcher.DefaultJobTimeout)
	webhookHandler := waDelivery.NewHandler(orch, replyNotifier, jobs, waDelivery.Config{
		VerifyToken:     cfg.Meta.VerifyToken,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)

	// 9. Admin dashboard (optional)
	var adminUC admin.UseCase
	if cfg.Admin.JWTSecret != "" {
		userRepo, repoErr := adminSqlite.New(store.DB(), logger)
		if repoErr != nil {
			logger.Error(ctx, "Failed to initialize admin repository: ", repoErr)
			return
		}
		uc := adminUsecase.New(logger, userRepo, store, cfg.Admin.JWTSecret, time.Hour)
		if err := uc.EnsureAdmin(ctx, cfg.Admin.BootstrapUser, cfg.Admin.BootstrapPassword); err != nil {
			logger.Error(ctx, "Failed to seed admin account: ", err)
			return
		}
		adminUC = uc
	} else {
		logger.Warn(ctx, "admin.jwt_secret not set, admin API disabled")
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
		AdminUC:        adminUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
