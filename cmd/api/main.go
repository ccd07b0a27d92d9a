package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"social-arch/config"
	_ "social-arch/docs" // Swagger docs
	generationHTTP "social-arch/internal/generation/delivery/http"
	generationUC "social-arch/internal/generation/usecase"
	"social-arch/internal/httpserver"
	"social-arch/internal/middleware"
	organizerHTTP "social-arch/internal/organizer/delivery/http"
	tgDelivery "social-arch/internal/organizer/delivery/telegram"
	organizerUC "social-arch/internal/organizer/usecase"
	"social-arch/internal/repository"
	diskvRepo "social-arch/internal/repository/diskv"
	sqliteRepo "social-arch/internal/repository/sqlite"
	"social-arch/internal/settings"
	settingsHTTP "social-arch/internal/settings/delivery/http"
	settingsUC "social-arch/internal/settings/usecase"
	"social-arch/internal/syncloop"
	syncHTTP "social-arch/internal/syncloop/delivery/http"
	"social-arch/internal/syncstate"
	trendHTTP "social-arch/internal/trend/delivery/http"
	"social-arch/internal/trend/monitor"
	trendUC "social-arch/internal/trend/usecase"
	"social-arch/pkg/llmprovider"
	"social-arch/pkg/log"
	"social-arch/pkg/telegram"
)

// @title       Social Arch API
// @description Personal content assistant: tasks, notes, trends and a Telegram command bot.
// @version     1
// @host        localhost:3001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Social Arch...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	startedAt := time.Now()

	// 3. Storage
	repo, err := openRepository(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", cerr)
		}
	}()
	logger.Infof(ctx, "Storage: %s at %s", cfg.Storage.Driver, cfg.Storage.Path)

	// 4. Domains
	setUC, err := settingsUC.New(ctx, logger, repo, settings.Seed{
		TelegramBotToken: cfg.Telegram.BotToken,
		TelegramChatID:   cfg.Telegram.ChatID,
	})
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	orgUC, err := organizerUC.New(ctx, logger, repo)
	if err != nil {
		return fmt.Errorf("organizer: %w", err)
	}

	state, err := syncstate.Open(ctx, repo)
	if err != nil {
		return fmt.Errorf("sync state: %w", err)
	}

	genUC := generationUC.New(logger, setUC, newCloud(ctx, cfg.LLM, logger))

	trUC, err := trendUC.New(ctx, logger, repo, setUC, genUC)
	if err != nil {
		return fmt.Errorf("trends: %w", err)
	}

	// 5. Telegram
	bots, err := telegram.NewClients(cfg.Telegram.APIURL, 0)
	if err != nil {
		return fmt.Errorf("telegram clients: %w", err)
	}
	commands := tgDelivery.New(logger, orgUC, trUC, genUC, startedAt)

	loc := time.Local
	if cfg.Reminder.Timezone != "" {
		// Validated by config.Load.
		loc, _ = time.LoadLocation(cfg.Reminder.Timezone)
	}
	loop := syncloop.New(logger, setUC, orgUC, commands, bots, state, syncloop.Options{
		Interval:    cfg.Sync.Interval,
		PollTimeout: cfg.Sync.PollTimeout,
		Location:    loc,
	})
	trendMonitor := monitor.New(logger, setUC, trUC, bots, cfg.Trends.MonitorInterval)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		StaticDir:         cfg.Static.Dir,
		Middleware:        middleware.New(logger, cfg.RateLimit),
		OrganizerHandler:  organizerHTTP.New(logger, orgUC),
		SettingsHandler:   settingsHTTP.New(logger, setUC),
		TrendHandler:      trendHTTP.New(logger, trUC),
		GenerationHandler: generationHTTP.New(logger, genUC),
		SyncHandler:       syncHTTP.New(logger, loop),
	})
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	// 7. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loop.Run(gctx)
		return nil
	})
	g.Go(func() error {
		trendMonitor.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	err = g.Wait()
	// Chat-triggered generation runs on gctx and stops with it.
	commands.Wait()
	return err
}

func openRepository(ctx context.Context, cfg config.StorageConfig, logger log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqliteRepo.New(ctx, cfg.Path, logger)
	default:
		return diskvRepo.New(cfg.Path, logger)
	}
}

// newCloud builds the Gemini provider chain. It returns nil when no provider
// could be initialized, which leaves Cloud Gemini unconfigured.
func newCloud(ctx context.Context, cfg config.LLMConfig, logger log.Logger) generationUC.Cloud {
	providers, err := llmprovider.InitializeProviders(&cfg)
	if err != nil {
		logger.Warnf(ctx, "LLM providers not available: %v", err)
		return nil
	}

	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)
}
