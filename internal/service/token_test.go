package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Jonny137/cocktail-bar-backend/internal/config"
	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenStore struct {
	records    map[string]*model.TokenRecord
	failInsert bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{records: make(map[string]*model.TokenRecord)}
}

func (f *fakeTokenStore) InsertTokenRecords(ctx context.Context, records []model.TokenRecord) error {
	if f.failInsert {
		return errors.New("insert failed")
	}
	for _, rec := range records {
		rec := rec
		f.records[rec.JTI] = &rec
	}
	return nil
}

func (f *fakeTokenStore) GetTokenRecord(ctx context.Context, jti string) (*model.TokenRecord, error) {
	rec, ok := f.records[jti]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return rec, nil
}

func (f *fakeTokenStore) RevokeToken(ctx context.Context, jti, userIdentity string) error {
	rec, ok := f.records[jti]
	if !ok || rec.UserIdentity != userIdentity {
		return pgx.ErrNoRows
	}
	rec.Revoked = true
	return nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SecretKey:     "test-secret",
		ConfirmSalt:   "test-salt",
		AccessTTL:     "2h",
		RefreshTTL:    "720h",
		ConfirmMaxAge: "1h",
	}
}

func newTestTokenService(t *testing.T, store TokenStore) *TokenService {
	t.Helper()
	svc, err := NewTokenService(store, testAuthConfig())
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_Config(t *testing.T) {
	store := newFakeTokenStore()

	cfg := testAuthConfig()
	cfg.SecretKey = ""
	_, err := NewTokenService(store, cfg)
	assert.ErrorIs(t, err, ErrMisconfigured)

	cfg = testAuthConfig()
	cfg.RefreshTTL = "1h"
	_, err = NewTokenService(store, cfg)
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestIssue_FreshTokensNotRevoked(t *testing.T) {
	store := newFakeTokenStore()
	svc := newTestTokenService(t, store)
	subject := uuid.New()

	pair, err := svc.Issue(context.Background(), subject, model.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	access, err := svc.Parse(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, model.TokenTypeAccess, access.TokenType)
	assert.Equal(t, subject.String(), access.Subject)

	refresh, err := svc.Parse(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, model.TokenTypeRefresh, refresh.TokenType)
	assert.NotEqual(t, access.ID, refresh.ID, "access and refresh jtis must differ")

	for _, jti := range []string{access.ID, refresh.ID} {
		revoked, err := svc.IsRevoked(context.Background(), jti)
		require.NoError(t, err)
		assert.False(t, revoked)
	}
}

func TestIssue_DistinctJTIsPerCall(t *testing.T) {
	store := newFakeTokenStore()
	svc := newTestTokenService(t, store)
	subject := uuid.New()

	first, err := svc.Issue(context.Background(), subject, model.RoleUser)
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), subject, model.RoleUser)
	require.NoError(t, err)

	a, _ := svc.Parse(first.AccessToken)
	b, _ := svc.Parse(second.AccessToken)
	assert.NotEqual(t, a.ID, b.ID, "tokens are never reused")
}

func TestIssue_InsertFailureAbortsIssuance(t *testing.T) {
	store := newFakeTokenStore()
	store.failInsert = true
	svc := newTestTokenService(t, store)

	pair, err := svc.Issue(context.Background(), uuid.New(), model.RoleUser)
	assert.Error(t, err)
	assert.Nil(t, pair, "no token may be returned without a durable record")
	assert.Empty(t, store.records)
}

func TestRevoke_Permanent(t *testing.T) {
	store := newFakeTokenStore()
	svc := newTestTokenService(t, store)
	subject := uuid.New()

	pair, err := svc.Issue(context.Background(), subject, model.RoleUser)
	require.NoError(t, err)
	claims, err := svc.Parse(pair.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), claims.ID, subject.String()))

	revoked, err := svc.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	// No un-revoke exists; a second check still reports revoked.
	revoked, err = svc.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevoke_UnknownJTI(t *testing.T) {
	store := newFakeTokenStore()
	svc := newTestTokenService(t, store)

	err := svc.Revoke(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevoke_SubjectMismatch(t *testing.T) {
	store := newFakeTokenStore()
	svc := newTestTokenService(t, store)
	subject := uuid.New()

	pair, err := svc.Issue(context.Background(), subject, model.RoleUser)
	require.NoError(t, err)
	claims, err := svc.Parse(pair.AccessToken)
	require.NoError(t, err)

	err = svc.Revoke(context.Background(), claims.ID, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsRevoked_FailClosed(t *testing.T) {
	store := newFakeTokenStore()
	svc := newTestTokenService(t, store)

	revoked, err := svc.IsRevoked(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.True(t, revoked, "a jti never issued is treated as revoked")
}

func TestParse_Invalid(t *testing.T) {
	store := newFakeTokenStore()
	svc := newTestTokenService(t, store)

	_, err := svc.Parse("not.a.jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)

	otherCfg := testAuthConfig()
	otherCfg.SecretKey = "other-secret"
	other, err := NewTokenService(store, otherCfg)
	require.NoError(t, err)

	pair, err := other.Issue(context.Background(), uuid.New(), model.RoleUser)
	require.NoError(t, err)

	_, err = svc.Parse(pair.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
