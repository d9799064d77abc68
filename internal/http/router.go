package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/TFDAdonis/adonis/internal/http/handlers"
	httpMW "github.com/TFDAdonis/adonis/internal/http/middleware"
	"github.com/TFDAdonis/adonis/internal/pkg/logger"
)

type RouterConfig struct {
	HealthHandler   *httpH.HealthHandler
	UserHandler     *httpH.UserHandler
	ScriptHandler   *httpH.ScriptHandler
	GeeHandler      *httpH.GeeHandler
	AnalysisHandler *httpH.AnalysisHandler
	DatasetHandler  *httpH.DatasetHandler
	AIHandler       *httpH.AIHandler
}

func NewRouter(log *logger.Logger, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestID())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Users
		if cfg.UserHandler != nil {
			api.POST("/users/register", cfg.UserHandler.Register)
		}

		// GEE scripts
		if cfg.ScriptHandler != nil {
			api.GET("/scripts", cfg.ScriptHandler.List)
			api.GET("/scripts/:id", cfg.ScriptHandler.Get)
			api.POST("/scripts", cfg.ScriptHandler.Create)
		}

		// Script execution (canned)
		if cfg.GeeHandler != nil {
			api.POST("/gee/execute", cfg.GeeHandler.Execute)
		}

		// Analysis runs
		if cfg.AnalysisHandler != nil {
			api.POST("/analysis/run", cfg.AnalysisHandler.Run)
			api.GET("/analysis/results", cfg.AnalysisHandler.ListResults)
			api.GET("/analysis/results/:id", cfg.AnalysisHandler.GetResult)
		}

		// Fixed datasets
		if cfg.DatasetHandler != nil {
			api.GET("/data/salinity-precipitation", cfg.DatasetHandler.SalinityPrecipitation)
			api.GET("/data/salinity-index", cfg.DatasetHandler.SalinityIndex)
		}

		// AI analysis proxy
		if cfg.AIHandler != nil {
			api.POST("/ai/analyze", cfg.AIHandler.Analyze)
		}
	}

	return r
}
