package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TFDAdonis/adonis/internal/http/response"
	"github.com/TFDAdonis/adonis/internal/services"
)

// AIHandler proxies prompt pairs to the OpenRouter completion API. The
// client is nil when OPENROUTER_API_KEY is not set.
type AIHandler struct {
	openRouter services.OpenRouterClient
}

func NewAIHandler(openRouter services.OpenRouterClient) *AIHandler {
	return &AIHandler{openRouter: openRouter}
}

func (ah *AIHandler) Analyze(c *gin.Context) {
	var req struct {
		SystemPrompt string `json:"system_prompt" binding:"required"`
		UserPrompt   string `json:"user_prompt" binding:"required"`
		Model        string `json:"model"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBindError(c, err)
		return
	}

	if ah.openRouter == nil {
		response.RespondError(c, http.StatusInternalServerError, "openrouter_not_configured",
			fmt.Errorf("OpenRouter API key is not configured"))
		return
	}

	body, err := ah.openRouter.Analyze(c.Request.Context(), req.SystemPrompt, req.UserPrompt, req.Model)
	if err != nil {
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			// Forward upstream status and body untranslated.
			c.Data(upstream.StatusCode, "application/json; charset=utf-8", upstream.Body)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "ai_analysis_failed", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
