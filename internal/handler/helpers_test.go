package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prompt-vault/config"
	"prompt-vault/internal/handler"
	"prompt-vault/internal/repository"
	"prompt-vault/internal/server"
	"prompt-vault/internal/services"
	"prompt-vault/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *gin.Engine
	files  *repository.FileStore
}

// newTestEnv spins up the extended service against a temp data directory.
// client and configured control the chat proxy wiring.
func newTestEnv(t *testing.T, client services.Completer, configured bool) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	users, err := repository.NewFileUserRepository(dir)
	require.NoError(t, err)
	files, err := repository.NewFileStore(dir)
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryHours: 6, AppMode: "debug"}
	authSvc := services.NewAuthService(users, files, cfg)
	chatSvc := services.NewChatService(client, files, configured, nil)

	r := server.NewAPIRouter(cfg.AppMode, nil,
		authSvc,
		handler.NewAuthHandler(authSvc),
		handler.NewPromptHandler(services.NewPromptService(), handler.UserStore(files)),
		handler.NewChatHandler(chatSvc),
	)
	return testEnv{router: r, files: files}
}

func newBasicRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryPromptStore()
	return server.NewBasicRouter("debug", nil,
		handler.NewPromptHandler(services.NewPromptService(), handler.FixedStore(store)),
	)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, env testEnv, username, password string) string {
	t.Helper()

	w := doRequest(t, env.router, http.MethodPost, "/register", "",
		httpdto.RegisterRequest{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, env.router, http.MethodPost, "/login", "",
		httpdto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return decodeJSON[httpdto.TokenResponse](t, w).Token
}
