package service

import (
	"context"
	"testing"
	"time"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminStore struct {
	admins map[uuid.UUID]*model.AdminUser
	panel  model.AdminPanelData
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[uuid.UUID]*model.AdminUser)}
}

func (f *fakeAdminStore) CreateAdmin(ctx context.Context, username, passwordHash string) (*model.AdminUser, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	admin := &model.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.admins[admin.ID] = admin
	return admin, nil
}

func (f *fakeAdminStore) GetAdminByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminStore) AdminPanelData(ctx context.Context) (*model.AdminPanelData, error) {
	return &f.panel, nil
}

func newTestAdminService(t *testing.T) (*AdminService, *fakeTokenStore) {
	t.Helper()
	tokens := newFakeTokenStore()
	return NewAdminService(newFakeAdminStore(), newTestTokenService(t, tokens)), tokens
}

func TestAdminRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	admin, err := svc.Register(ctx, "boss", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "boss", admin.Username)

	_, err = svc.Register(ctx, "boss", "pw123")
	assert.ErrorIs(t, err, ErrConflict)

	// No confirmation gate for admins.
	pair, err := svc.Login(ctx, "boss", "pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	claims, err := svc.tokens.Parse(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)

	_, err = svc.Login(ctx, "boss", "wrong")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Login(ctx, "nobody", "pw123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdminTokenCheck(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "boss", "pw123")
	require.NoError(t, err)
	pair, err := svc.Login(ctx, "boss", "pw123")
	require.NoError(t, err)

	assert.True(t, svc.TokenValid(ctx, pair.AccessToken))
	assert.False(t, svc.TokenValid(ctx, "not.a.jwt"))

	claims, err := svc.tokens.Parse(pair.AccessToken)
	require.NoError(t, err)
	require.NoError(t, svc.tokens.Revoke(ctx, claims.ID, claims.Subject))

	assert.False(t, svc.TokenValid(ctx, pair.AccessToken))
}
