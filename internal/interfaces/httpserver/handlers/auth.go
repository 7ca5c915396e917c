package handlers

import (
	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/auth"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/interfaces/httpserver/middlewares"
)

// AuthHandler serves registration, login and token rotation.
type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req requests.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	res, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req requests.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	res, err := h.svc.Refresh(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	res, err := h.svc.GetMe(c.Request.Context(), c.GetInt(middlewares.ContextUserID))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}
