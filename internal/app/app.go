package app

import (
	"fmt"
	"os"

	"github.com/TFDAdonis/adonis/internal/http"
	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/repos"
)

// App owns the wired application: one explicitly constructed store passed
// down through services and handlers, no package-level singletons.
type App struct {
	Log      *logger.Logger
	Cfg      Config
	Store    repos.Store
	Services Services
	Server   *http.Server
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	store := repos.NewMemStore(log)

	serviceset := wireServices(store, log)
	handlerset := wireHandlers(log, serviceset)
	server := wireServer(log, handlerset)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Store:    store,
		Services: serviceset,
		Server:   server,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
