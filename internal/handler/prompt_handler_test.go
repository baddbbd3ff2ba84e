package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"prompt-vault/internal/domain/prompt"
	"prompt-vault/internal/transport/httpdto"

	"github.com/stretchr/testify/require"
)

func TestBasicCreate_ReturnsFullRecord(t *testing.T) {
	r := newBasicRouter(t)

	w := doRequest(t, r, http.MethodPost, "/prompts", "", map[string]any{
		"type":     "note",
		"prompt":   "hello",
		"metadata": map[string]any{"lang": "en"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	rec := decodeJSON[prompt.Record](t, w)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "note", rec.Type)
	require.Equal(t, "hello", rec.Prompt)
	require.JSONEq(t, `{"lang":"en"}`, string(rec.Metadata))
	require.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestBasicCreate_RequiresTypeAndPrompt(t *testing.T) {
	r := newBasicRouter(t)

	w := doRequest(t, r, http.MethodPost, "/prompts", "", map[string]any{"type": "note"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/prompts", "", map[string]any{"prompt": "hello"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBasicList_PaginationWindow(t *testing.T) {
	r := newBasicRouter(t)

	var ids []string
	for i := 0; i < 5; i++ {
		w := doRequest(t, r, http.MethodPost, "/prompts", "", map[string]any{
			"type":   "note",
			"prompt": fmt.Sprintf("p%d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
		ids = append(ids, decodeJSON[prompt.Record](t, w).ID)
	}

	w := doRequest(t, r, http.MethodGet, "/prompts?limit=2&offset=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	window := decodeJSON[[]prompt.Record](t, w)
	require.Len(t, window, 2)
	require.Equal(t, ids[1], window[0].ID)
	require.Equal(t, ids[2], window[1].ID)
}

func TestBasicList_TypeFilter(t *testing.T) {
	r := newBasicRouter(t)

	for _, typ := range []string{"note", "task", "note"} {
		w := doRequest(t, r, http.MethodPost, "/prompts", "", map[string]any{"type": typ, "prompt": "p"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/prompts?type=task", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeJSON[[]prompt.Record](t, w)
	require.Len(t, items, 1)
	require.Equal(t, "task", items[0].Type)
}

func TestBasicReplace_PreservesCreatedAt(t *testing.T) {
	r := newBasicRouter(t)

	w := doRequest(t, r, http.MethodPost, "/prompts", "", map[string]any{"type": "note", "prompt": "hello"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[prompt.Record](t, w)

	w = doRequest(t, r, http.MethodPut, "/prompts/"+created.ID, "", map[string]any{"type": "task", "prompt": "bye"})
	require.Equal(t, http.StatusOK, w.Code)
	replaced := decodeJSON[prompt.Record](t, w)

	require.Equal(t, created.CreatedAt, replaced.CreatedAt)
	require.GreaterOrEqual(t, replaced.UpdatedAt, created.UpdatedAt)
	require.Equal(t, "task", replaced.Type)

	w = doRequest(t, r, http.MethodPut, "/prompts/missing", "", map[string]any{"type": "task", "prompt": "bye"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBasicPatch_LeavesAbsentFieldsUntouched(t *testing.T) {
	r := newBasicRouter(t)

	w := doRequest(t, r, http.MethodPost, "/prompts", "", map[string]any{
		"type":     "note",
		"prompt":   "hello",
		"metadata": map[string]any{"lang": "en"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[prompt.Record](t, w)

	w = doRequest(t, r, http.MethodPatch, "/prompts/"+created.ID, "", map[string]any{"prompt": "edited"})
	require.Equal(t, http.StatusOK, w.Code)
	patched := decodeJSON[prompt.Record](t, w)

	require.Equal(t, "edited", patched.Prompt)
	require.Equal(t, "note", patched.Type)
	require.JSONEq(t, `{"lang":"en"}`, string(patched.Metadata))
	require.Equal(t, created.CreatedAt, patched.CreatedAt)
	require.GreaterOrEqual(t, patched.UpdatedAt, created.UpdatedAt)

	// metadata: null is an explicit value, distinct from an absent key.
	w = doRequest(t, r, http.MethodPatch, "/prompts/"+created.ID, "", json.RawMessage(`{"metadata":null}`))
	require.Equal(t, http.StatusOK, w.Code)
	cleared := decodeJSON[prompt.Record](t, w)
	require.Equal(t, "null", string(cleared.Metadata))
}

func TestBasicDelete_ThenGetNotFound(t *testing.T) {
	r := newBasicRouter(t)

	w := doRequest(t, r, http.MethodPost, "/prompts", "", map[string]any{"type": "note", "prompt": "hello"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[prompt.Record](t, w)

	w = doRequest(t, r, http.MethodDelete, "/prompts/"+created.ID, "", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/prompts/"+created.ID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeJSON[httpdto.ErrorResponse](t, w)
	require.NotEmpty(t, resp.Error)

	w = doRequest(t, r, http.MethodDelete, "/prompts/"+created.ID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
