package handler

import (
	"net/http"

	"prompt-vault/internal/services"
	"prompt-vault/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the chat proxy endpoints.
type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /chat: it forwards the prompt to the external
// completion API, persists the exchange to the caller's history and
// returns the generated text plus the raw upstream payload.
func (h *ChatHandler) Chat(c *gin.Context) {
	identity, ok := services.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthenticated"))
		return
	}

	var req httpdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("field 'prompt' required"))
		return
	}

	result, err := h.service.Send(c.Request.Context(), identity.Username, req.Prompt)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ChatResponse{Response: result.Response, Raw: result.Raw})
}

// History handles GET /history: the caller's chat exchanges in append
// order.
func (h *ChatHandler) History(c *gin.Context) {
	identity, ok := services.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthenticated"))
		return
	}

	entries, err := h.service.History(c.Request.Context(), identity.Username)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
