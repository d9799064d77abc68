package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TFDAdonis/adonis/internal/services"
	"github.com/TFDAdonis/adonis/internal/types"
)

// GeeHandler serves the canned script-execution endpoint. Responses keep
// the {status, data|error} shape the frontend consumes, rather than the
// error envelope the rest of the API uses.
type GeeHandler struct {
	geeService services.GeeService
}

func NewGeeHandler(geeService services.GeeService) *GeeHandler {
	return &GeeHandler{geeService: geeService}
}

func (gh *GeeHandler) Execute(c *gin.Context) {
	var req struct {
		ScriptType       string        `json:"scriptType"`
		Region           any           `json:"region"`
		StartDate        string        `json:"startDate"`
		EndDate          string        `json:"endDate"`
		AdditionalParams types.JSONMap `json:"additionalParams"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}
	if req.ScriptType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Script type is required"})
		return
	}

	exec, err := gh.geeService.Execute(req.ScriptType)
	if err != nil {
		if errors.Is(err, services.ErrUnknownScriptType) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "Unsupported script type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	// TODO: persist the execution through Store.CreateAnalysisResult once
	// executions are backed by real GEE runs instead of sample payloads.

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   exec.Result,
	})
}
