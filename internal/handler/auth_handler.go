package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streamflix/internal/app"
	"streamflix/internal/model"
	"streamflix/internal/service"
)

type AuthHandler struct {
	app *app.App
}

func NewAuthHandler(app *app.App) *AuthHandler {
	return &AuthHandler{
		app: app,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries token and admin at the envelope top level; this is
// the shape the admin UI stores client-side.
type loginResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	Admin   model.AdminView `json:"admin"`
}

func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.app.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(ctx, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		h.app.Logger.Error("login failed", zap.Error(err))
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   result.Token,
		Admin:   result.Admin,
	})
}
