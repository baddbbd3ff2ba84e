package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"prompt-vault/config"
	"prompt-vault/internal/domain/user"
	"prompt-vault/internal/repository"
	vault_errors "prompt-vault/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     repository.UserRepository
	files     *repository.FileStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users repository.UserRepository, files *repository.FileStore, cfg *config.Config) *AuthService {
	return &AuthService{
		users:     users,
		files:     files,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.JWTExpiryHours) * time.Hour,
	}
}

// AccessClaims are the session token claims: the account id and username,
// plus standard expiry.
type AccessClaims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller derived from a verified token.
type Identity struct {
	ID       int
	Username string
}

// Register creates an account with a bcrypt password hash and provisions
// the empty per-user data file.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return vault_errors.ErrInvalidInput
	}
	if !validUsername(username) {
		return vault_errors.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := s.users.Create(ctx, username, string(hash)); err != nil {
		return err
	}
	return s.files.Provision(username)
}

// Login verifies the password against the stored hash and issues a signed
// session token. Unknown usernames and wrong passwords are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", vault_errors.ErrInvalidInput
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, vault_errors.ErrNotFound) {
			return "", vault_errors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", vault_errors.ErrInvalidCredentials
	}

	return s.newAccessToken(u)
}

func (s *AuthService) newAccessToken(u user.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID:   u.ID,
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseAccessToken verifies signature and expiry and returns the embedded
// identity.
func (s *AuthService) ParseAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, vault_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, vault_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return Identity{}, vault_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return Identity{}, vault_errors.ErrUnauthorized
	}

	return Identity{ID: claims.UserID, Username: claims.Username}, nil
}

// Usernames name data files on disk, so they must be plain path segments
// and must not collide with the account directory file (users.json).
func validUsername(username string) bool {
	if strings.ContainsAny(username, "/\\") {
		return false
	}
	if username == "." || username == ".." {
		return false
	}
	if username == "users" {
		return false
	}
	return true
}

func HTTPStatus(err error) int {
	var upstream *vault_errors.UpstreamError
	switch {
	case errors.Is(err, vault_errors.ErrInvalidInput):
		return 400
	case errors.Is(err, vault_errors.ErrUnauthorized), errors.Is(err, vault_errors.ErrInvalidCredentials):
		return 401
	case errors.Is(err, vault_errors.ErrNotFound):
		return 404
	case errors.Is(err, vault_errors.ErrAlreadyExists), errors.Is(err, vault_errors.ErrConflict):
		return 409
	case errors.As(err, &upstream):
		return 502
	default:
		return 500
	}
}

type ctxKey string

var identityKey ctxKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	value := ctx.Value(identityKey)
	if value == nil {
		return Identity{}, false
	}
	id, ok := value.(Identity)
	return id, ok
}
