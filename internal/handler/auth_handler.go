// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"prompt-vault/internal/services"
	"prompt-vault/internal/transport/httpdto"
	vault_errors "prompt-vault/pkg/errors"
	"prompt-vault/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("username and password required"))
		return
	}

	if err := h.service.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.MessageResponse{Msg: "user created"})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("username and password required"))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.TokenResponse{Token: token})
}

// Me handles GET /me: it echoes the identity carried by the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := services.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthenticated"))
		return
	}
	c.JSON(http.StatusOK, httpdto.MeResponse{ID: identity.ID, Username: identity.Username})
}

func writeError(c *gin.Context, err error) {
	var upstream *vault_errors.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusBadGateway, httpdto.ErrorResponse{
			Error:   "error from upstream completion API",
			Details: upstream.Body,
		})
		return
	}

	status := services.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		if log := logger.GetGlobalLogger(); log != nil {
			log.ErrorfCtx(c.Request.Context(), "request failed: %v", err)
		}
		if errors.Is(err, vault_errors.ErrMisconfigured) {
			c.JSON(status, httpdto.NewErrorResponse("server misconfigured: OPENAI_API_KEY missing"))
			return
		}
		c.JSON(status, httpdto.NewErrorResponse("internal server error"))
		return
	}

	c.JSON(status, httpdto.NewErrorResponse(err.Error()))
}
