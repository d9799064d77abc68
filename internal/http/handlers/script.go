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

type ScriptHandler struct {
	scriptService services.ScriptService
}

func NewScriptHandler(scriptService services.ScriptService) *ScriptHandler {
	return &ScriptHandler{scriptService: scriptService}
}

func (sh *ScriptHandler) List(c *gin.Context) {
	scripts, err := sh.scriptService.PublicScripts(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_scripts_failed", err)
		return
	}
	response.RespondOK(c, scripts)
}

func (sh *ScriptHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_script_id", fmt.Errorf("invalid script ID %q", c.Param("id")))
		return
	}

	script, err := sh.scriptService.Script(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrScriptNotFound) {
			response.RespondError(c, http.StatusNotFound, "script_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "get_script_failed", err)
		return
	}

	response.RespondOK(c, script)
}

func (sh *ScriptHandler) Create(c *gin.Context) {
	var req struct {
		Name        string        `json:"name" binding:"required"`
		Description string        `json:"description"`
		ScriptType  string        `json:"scriptType" binding:"required"`
		Code        string        `json:"code" binding:"required"`
		CreatedByID *int          `json:"createdById"`
		IsPublic    bool          `json:"isPublic"`
		Parameters  types.JSONMap `json:"parameters"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBindError(c, err)
		return
	}

	script, err := sh.scriptService.CreateScript(c.Request.Context(), services.CreateScriptInput{
		Name:        req.Name,
		Description: req.Description,
		ScriptType:  req.ScriptType,
		Code:        req.Code,
		CreatedByID: req.CreatedByID,
		IsPublic:    req.IsPublic,
		Parameters:  req.Parameters,
	})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "create_script_failed", err)
		return
	}

	response.RespondCreated(c, script)
}
