package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jonny137/cocktail-bar-backend/internal/config"
	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/Jonny137/cocktail-bar-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryTokenStore struct {
	records map[string]*model.TokenRecord
}

func (s *memoryTokenStore) InsertTokenRecords(ctx context.Context, records []model.TokenRecord) error {
	for i := range records {
		rec := records[i]
		s.records[rec.JTI] = &rec
	}
	return nil
}

func (s *memoryTokenStore) GetTokenRecord(ctx context.Context, jti string) (*model.TokenRecord, error) {
	if rec, ok := s.records[jti]; ok {
		return rec, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *memoryTokenStore) RevokeToken(ctx context.Context, jti, userIdentity string) error {
	rec, ok := s.records[jti]
	if !ok || rec.UserIdentity != userIdentity {
		return pgx.ErrNoRows
	}
	rec.Revoked = true
	return nil
}

type memoryUserStore struct{}

func (memoryUserStore) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}
func (memoryUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}
func (memoryUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}
func (memoryUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return nil, pgx.ErrNoRows
}
func (memoryUserStore) ConfirmUser(ctx context.Context, id uuid.UUID) error { return nil }
func (memoryUserStore) DeleteUser(ctx context.Context, id uuid.UUID) error  { return nil }

type silentMailer struct{}

func (silentMailer) SendConfirmation(ctx context.Context, email, confirmURL string, maxAge time.Duration) error {
	return nil
}

func newTestAuth(t *testing.T) (*service.AuthService, *service.TokenService) {
	t.Helper()

	cfg := config.AuthConfig{
		SecretKey:     "middleware-test-secret",
		ConfirmSalt:   "middleware-test-salt",
		AccessTTL:     "2h",
		RefreshTTL:    "720h",
		ConfirmMaxAge: "1h",
	}

	tokens, err := service.NewTokenService(&memoryTokenStore{records: map[string]*model.TokenRecord{}}, cfg)
	require.NoError(t, err)

	auth, err := service.NewAuthService(memoryUserStore{}, tokens, silentMailer{}, cfg, "https://bar.example", slog.Default())
	require.NoError(t, err)

	return auth, tokens
}

func newTestRouter(auth *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", AuthRequired(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetAuthUser(c).ID})
	})
	router.GET("/admin", AuthRequired(auth), RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/open", OptionalAuth(auth), func(c *gin.Context) {
		if GetAuthUser(c) != nil {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusNoContent)
	})

	return router
}

func doRequest(router *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	auth, tokens := newTestAuth(t)
	router := newTestRouter(auth)
	ctx := context.Background()

	pair, err := tokens.Issue(ctx, uuid.New(), model.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/protected", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/protected", "not-a-token").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/protected", pair.AccessToken).Code)

	require.NoError(t, auth.Logout(ctx, pair.AccessToken))
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/protected", pair.AccessToken).Code)
}

func TestAuthRequired_UnknownIssuer(t *testing.T) {
	auth, _ := newTestAuth(t)
	_, otherTokens := newTestAuth(t)
	router := newTestRouter(auth)

	// Signed by the same secret but recorded in a different store; the
	// blacklist has no row for it, so the gate treats it as revoked.
	pair, err := otherTokens.Issue(context.Background(), uuid.New(), model.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/protected", pair.AccessToken).Code)
}

func TestRequireRole(t *testing.T) {
	auth, tokens := newTestAuth(t)
	router := newTestRouter(auth)
	ctx := context.Background()

	userPair, err := tokens.Issue(ctx, uuid.New(), model.RoleUser)
	require.NoError(t, err)
	adminPair, err := tokens.Issue(ctx, uuid.New(), model.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin", userPair.AccessToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/admin", adminPair.AccessToken).Code)
}

func TestOptionalAuth(t *testing.T) {
	auth, tokens := newTestAuth(t)
	router := newTestRouter(auth)

	assert.Equal(t, http.StatusNoContent, doRequest(router, "/open", "").Code)
	assert.Equal(t, http.StatusNoContent, doRequest(router, "/open", "garbage").Code)

	pair, err := tokens.Issue(context.Background(), uuid.New(), model.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doRequest(router, "/open", pair.AccessToken).Code)
}
