package service

import (
	"context"

	"github.com/Jonny137/cocktail-bar-backend/internal/db"
	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// AdminStore is the persistence surface of the admin service.
type AdminStore interface {
	CreateAdmin(ctx context.Context, username, passwordHash string) (*model.AdminUser, error)
	GetAdminByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	AdminPanelData(ctx context.Context) (*model.AdminPanelData, error)
}

// AdminService handles admin accounts. Admins have no email and no
// confirmation flow; their tokens go through the same issuer and blacklist
// as user tokens.
type AdminService struct {
	repo   AdminStore
	tokens *TokenService
}

func NewAdminService(repo AdminStore, tokens *TokenService) *AdminService {
	return &AdminService{repo: repo, tokens: tokens}
}

func (s *AdminService) Register(ctx context.Context, username, password string) (*model.AdminUser, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin, err := s.repo.CreateAdmin(ctx, username, string(hash))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Login(ctx context.Context, username, password string) (*model.TokenPair, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrForbidden
	}

	return s.tokens.Issue(ctx, admin.ID, model.RoleAdmin)
}

// TokenValid reports whether a presented token is still usable: well-formed,
// unexpired and not revoked.
func (s *AdminService) TokenValid(ctx context.Context, bearer string) bool {
	claims, err := s.tokens.Parse(bearer)
	if err != nil {
		return false
	}
	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return false
	}
	return !revoked
}

func (s *AdminService) PanelData(ctx context.Context) (*model.AdminPanelData, error) {
	return s.repo.AdminPanelData(ctx)
}
