package app

import (
	"github.com/TFDAdonis/adonis/internal/http"
	httpH "github.com/TFDAdonis/adonis/internal/http/handlers"
	"github.com/TFDAdonis/adonis/internal/pkg/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	User     *httpH.UserHandler
	Script   *httpH.ScriptHandler
	Gee      *httpH.GeeHandler
	Analysis *httpH.AnalysisHandler
	Dataset  *httpH.DatasetHandler
	AI       *httpH.AIHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		User:     httpH.NewUserHandler(services.User),
		Script:   httpH.NewScriptHandler(services.Script),
		Gee:      httpH.NewGeeHandler(services.Gee),
		Analysis: httpH.NewAnalysisHandler(services.Analysis),
		Dataset:  httpH.NewDatasetHandler(),
		AI:       httpH.NewAIHandler(services.OpenRouter),
	}
}

func wireServer(log *logger.Logger, handlers Handlers) *http.Server {
	return http.NewServer(log, http.RouterConfig{
		HealthHandler:   handlers.Health,
		UserHandler:     handlers.User,
		ScriptHandler:   handlers.Script,
		GeeHandler:      handlers.Gee,
		AnalysisHandler: handlers.Analysis,
		DatasetHandler:  handlers.Dataset,
		AIHandler:       handlers.AI,
	})
}
