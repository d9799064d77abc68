package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TFDAdonis/adonis/internal/http/response"
	"github.com/TFDAdonis/adonis/internal/services"
	"github.com/TFDAdonis/adonis/internal/types"
)

type AnalysisHandler struct {
	analysisService services.AnalysisService
}

func NewAnalysisHandler(analysisService services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

func (ah *AnalysisHandler) Run(c *gin.Context) {
	var req struct {
		ScriptID   int           `json:"scriptId" binding:"required"`
		Parameters types.JSONMap `json:"parameters" binding:"required"`
		Region     types.JSONMap `json:"region"`
		UserID     *int          `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBindError(c, err)
		return
	}

	result, err := ah.analysisService.Run(c.Request.Context(), services.RunAnalysisInput{
		ScriptID:   req.ScriptID,
		Parameters: req.Parameters,
		Region:     req.Region,
		UserID:     req.UserID,
	})
	if err != nil {
		if errors.Is(err, services.ErrScriptNotFound) {
			response.RespondError(c, http.StatusNotFound, "script_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "run_analysis_failed", err)
		return
	}

	response.RespondCreated(c, result)
}

func (ah *AnalysisHandler) ListResults(c *gin.Context) {
	userIDStr := c.Query("userId")
	if userIDStr == "" {
		response.RespondError(c, http.StatusBadRequest, "missing_user_id", fmt.Errorf("User ID is required"))
		return
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", fmt.Errorf("invalid user ID %q", userIDStr))
		return
	}

	results, err := ah.analysisService.ResultsByUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_results_failed", err)
		return
	}

	response.RespondOK(c, results)
}

func (ah *AnalysisHandler) GetResult(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_result_id", fmt.Errorf("invalid result ID %q", c.Param("id")))
		return
	}

	result, err := ah.analysisService.Result(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrResultNotFound) {
			response.RespondError(c, http.StatusNotFound, "result_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "get_result_failed", err)
		return
	}

	response.RespondOK(c, result)
}
