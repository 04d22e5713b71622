package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/investiq/internal/clients/gemini"
	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/interfaces"
	"github.com/bobmcallan/investiq/internal/services/catalog"
	"github.com/bobmcallan/investiq/internal/services/chat"
	"github.com/bobmcallan/investiq/internal/services/navigation"
)

// App holds the configuration, logger, session registry and services shared
// by the HTTP server.
type App struct {
	Config         *common.Config
	Logger         *common.Logger
	Sessions       *navigation.Store
	CatalogService interfaces.CatalogService
	ChatBackend    interfaces.ConversationStarter // nil when no Gemini key is configured
	StartupTime    time.Time

	schedulerCancel context.CancelFunc
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and initializes all services.
// configPath may be empty, in which case INVESTIQ_CONFIG, the binary
// directory and config/investiq.toml are tried in that order.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	common.LoadVersionFromFile()

	if configPath == "" {
		configPath = os.Getenv("INVESTIQ_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "investiq.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/investiq.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	var backend interfaces.ConversationStarter
	geminiKey, err := common.ResolveAPIKey("gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - chat will answer with the fallback message")
	} else {
		client, err := gemini.NewClient(context.Background(), geminiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			backend = client
		}
	}

	a := New(config, logger, backend)
	a.StartupTime = startupStart

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")
	return a, nil
}

// New wires an App from an already loaded config. backend may be nil.
func New(config *common.Config, logger *common.Logger, backend interfaces.ConversationStarter) *App {
	opts := chat.Options{
		MaxOutputTokens: config.Chat.MaxOutputTokens,
		RatePerMinute:   config.Chat.RatePerMinute,
		Timeout:         config.Chat.GetTimeout(),
	}
	newChat := func() *chat.Session {
		return chat.NewSession(backend, opts, logger)
	}

	return &App{
		Config:         config,
		Logger:         logger,
		Sessions:       navigation.NewStore(newChat, logger),
		CatalogService: catalog.NewService(logger, config.Currency),
		ChatBackend:    backend,
		StartupTime:    time.Now(),
	}
}

// ChatEnabled reports whether a remote chat backend is configured.
func (a *App) ChatEnabled() bool {
	return a.ChatBackend != nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.schedulerCancel != nil {
		a.schedulerCancel()
		a.schedulerCancel = nil
	}
}

// StartSessionSweeper starts the background sweep of idle sessions.
// It stops when Close is called.
func (a *App) StartSessionSweeper() {
	if a.schedulerCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.schedulerCancel = cancel
	go startSessionSweeper(ctx, a.Sessions, a.Logger,
		a.Config.Session.GetSweepInterval(), a.Config.Session.GetTTL())
}
