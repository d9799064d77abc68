package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TFDAdonis/adonis/internal/http/response"
	"github.com/TFDAdonis/adonis/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBindError(c, err)
		return
	}

	user, err := uh.userService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			response.RespondError(c, http.StatusConflict, "duplicate_username", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "registration_failed", err)
		return
	}

	// The password field is never serialized; the response is the stored
	// user minus the credential.
	response.RespondCreated(c, user)
}
