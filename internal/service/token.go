package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Jonny137/cocktail-bar-backend/internal/config"
	"github.com/Jonny137/cocktail-bar-backend/internal/db"
	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenStore is the persistence surface the issuer and blacklist need.
type TokenStore interface {
	InsertTokenRecords(ctx context.Context, records []model.TokenRecord) error
	GetTokenRecord(ctx context.Context, jti string) (*model.TokenRecord, error)
	RevokeToken(ctx context.Context, jti, userIdentity string) error
}

// Claims are the JWT payload of both access and refresh tokens. The jti
// lives in RegisteredClaims.ID and is the revocation key.
type Claims struct {
	TokenType string `json:"type"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints access/refresh pairs and answers revocation queries
// against the persisted blacklist.
type TokenService struct {
	store      TokenStore
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(store TokenStore, cfg config.AuthConfig) (*TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: SECRET_KEY is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_REFRESH_TTL", ErrMisconfigured)
	}

	if refreshTTL <= accessTTL {
		return nil, fmt.Errorf("%w: JWT_REFRESH_TTL must exceed JWT_ACCESS_TTL", ErrMisconfigured)
	}

	return &TokenService{
		store:      store,
		secret:     []byte(cfg.SecretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// Issue mints a fresh access/refresh pair for the subject. Every call
// produces two new jtis, and both blacklist records are written in one
// transaction before either token leaves this function.
func (s *TokenService) Issue(ctx context.Context, subject uuid.UUID, role string) (*model.TokenPair, error) {
	now := time.Now()

	access, accessRec, err := s.mint(subject, role, model.TokenTypeAccess, now, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, refreshRec, err := s.mint(subject, role, model.TokenTypeRefresh, now, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	if err := s.store.InsertTokenRecords(ctx, []model.TokenRecord{accessRec, refreshRec}); err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *TokenService) mint(subject uuid.UUID, role, tokenType string, now time.Time, ttl time.Duration) (string, model.TokenRecord, error) {
	jti := uuid.NewString()
	expires := now.Add(ttl)

	claims := Claims{
		TokenType: tokenType,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", model.TokenRecord{}, err
	}

	return signed, model.TokenRecord{
		JTI:          jti,
		TokenType:    tokenType,
		UserIdentity: subject.String(),
		Expires:      expires,
	}, nil
}

// Parse validates the signature and expiry of a bearer token and returns its
// claims. Any parse failure is ErrUnauthorized; callers never see library
// error details.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// IsRevoked consults the blacklist for a jti. A jti with no record is
// treated as revoked: an unknown token is an untrusted token. The error is
// non-nil only for store failures.
func (s *TokenService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	rec, err := s.store.GetTokenRecord(ctx, jti)
	if err != nil {
		if db.IsNoRows(err) {
			return true, nil
		}
		return true, err
	}
	return rec.Revoked, nil
}

// Revoke marks the record matching (jti, subject) as revoked. ErrNotFound
// when no such record exists; callers surface that as "no token", not as a
// server error.
func (s *TokenService) Revoke(ctx context.Context, jti, userIdentity string) error {
	if err := s.store.RevokeToken(ctx, jti, userIdentity); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
