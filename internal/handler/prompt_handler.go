package handler

import (
	"net/http"

	"prompt-vault/internal/repository"
	"prompt-vault/internal/services"
	"prompt-vault/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// StoreResolver picks the prompt store a request operates on. The basic
// service always resolves the shared in-memory store; the extended service
// resolves the authenticated user's file-backed store. On failure the
// resolver has already written the response.
type StoreResolver func(c *gin.Context) (repository.PromptStore, bool)

// FixedStore resolves every request to the same store.
func FixedStore(store repository.PromptStore) StoreResolver {
	return func(c *gin.Context) (repository.PromptStore, bool) {
		return store, true
	}
}

// UserStore resolves the per-user store for the authenticated identity.
func UserStore(files *repository.FileStore) StoreResolver {
	return func(c *gin.Context) (repository.PromptStore, bool) {
		identity, ok := services.IdentityFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthenticated"))
			return nil, false
		}
		return files.ForUser(identity.Username), true
	}
}

// PromptHandler handles the prompt CRUD endpoints.
type PromptHandler struct {
	service *services.PromptService
	resolve StoreResolver
}

func NewPromptHandler(service *services.PromptService, resolve StoreResolver) *PromptHandler {
	return &PromptHandler{service: service, resolve: resolve}
}

// Create handles POST /prompts.
func (h *PromptHandler) Create(c *gin.Context) {
	store, ok := h.resolve(c)
	if !ok {
		return
	}

	var req httpdto.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}
	if req.Type == "" || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("fields 'type' and 'prompt' are required"))
		return
	}

	rec, err := h.service.Create(c.Request.Context(), store, services.CreateInput{
		Type:     req.Type,
		Prompt:   req.Prompt,
		Metadata: req.Metadata,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// List handles GET /prompts with optional type filter and pagination.
func (h *PromptHandler) List(c *gin.Context) {
	store, ok := h.resolve(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), store, services.ListQuery{
		Type:   c.Query("type"),
		Limit:  c.Query("limit"),
		Offset: c.Query("offset"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get handles GET /prompts/:id.
func (h *PromptHandler) Get(c *gin.Context) {
	store, ok := h.resolve(c)
	if !ok {
		return
	}

	rec, err := h.service.Get(c.Request.Context(), store, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Replace handles PUT /prompts/:id.
func (h *PromptHandler) Replace(c *gin.Context) {
	store, ok := h.resolve(c)
	if !ok {
		return
	}

	var req httpdto.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}
	if req.Type == "" || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("fields 'type' and 'prompt' are required"))
		return
	}

	rec, err := h.service.Replace(c.Request.Context(), store, c.Param("id"), services.CreateInput{
		Type:     req.Type,
		Prompt:   req.Prompt,
		Metadata: req.Metadata,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Patch handles PATCH /prompts/:id: only fields present in the body are
// merged.
func (h *PromptHandler) Patch(c *gin.Context) {
	store, ok := h.resolve(c)
	if !ok {
		return
	}

	var req httpdto.PatchPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}

	rec, err := h.service.Patch(c.Request.Context(), store, c.Param("id"), services.PatchInput{
		Type:     req.Type,
		Prompt:   req.Prompt,
		Metadata: req.Metadata,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Delete handles DELETE /prompts/:id.
func (h *PromptHandler) Delete(c *gin.Context) {
	store, ok := h.resolve(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), store, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
