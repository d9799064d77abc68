package app

import (
	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/repos"
	"github.com/TFDAdonis/adonis/internal/services"
)

type Services struct {
	User       services.UserService
	Script     services.ScriptService
	Analysis   services.AnalysisService
	Gee        services.GeeService
	OpenRouter services.OpenRouterClient
}

func wireServices(store repos.Store, log *logger.Logger) Services {
	log.Info("Wiring services...")

	openRouter, err := services.NewOpenRouterClient(log)
	if err != nil {
		// The AI endpoint reports the missing credential per request.
		log.Warn("OpenRouter client disabled", "error", err)
		openRouter = nil
	}

	return Services{
		User:       services.NewUserService(store, log),
		Script:     services.NewScriptService(store, log),
		Analysis:   services.NewAnalysisService(store, log),
		Gee:        services.NewGeeService(log),
		OpenRouter: openRouter,
	}
}
