package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Jonny137/cocktail-bar-backend/internal/client"
	"github.com/Jonny137/cocktail-bar-backend/internal/config"
	"github.com/Jonny137/cocktail-bar-backend/internal/db"
	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the identity persistence surface of the auth service.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	ConfirmUser(ctx context.Context, id uuid.UUID) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// AuthService drives the identity lifecycle: register, confirm, login,
// logout and the per-request authorization gate.
type AuthService struct {
	repo          UserStore
	tokens        *TokenService
	codec         *ConfirmCodec
	mailer        client.Mailer
	logger        *slog.Logger
	frontendURL   string
	confirmMaxAge time.Duration
}

func NewAuthService(repo UserStore, tokens *TokenService, mailer client.Mailer, cfg config.AuthConfig, frontendURL string, logger *slog.Logger) (*AuthService, error) {
	if cfg.ConfirmSalt == "" {
		return nil, ErrMisconfigured
	}

	maxAge, err := time.ParseDuration(cfg.ConfirmMaxAge)
	if err != nil {
		return nil, ErrMisconfigured
	}

	return &AuthService{
		repo:          repo,
		tokens:        tokens,
		codec:         NewConfirmCodec(cfg.SecretKey, cfg.ConfirmSalt),
		mailer:        mailer,
		logger:        logger,
		frontendURL:   strings.TrimRight(frontendURL, "/"),
		confirmMaxAge: maxAge,
	}, nil
}

// Register creates an unconfirmed identity and dispatches the confirmation
// link. The email pre-check gives the friendlier message; a racing duplicate
// still trips the unique constraint and comes back as ErrConflict.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailInUse
	} else if !db.IsNoRows(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, req.Username, req.Email, string(hash))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.dispatchConfirmation(ctx, user.Email)
	return user, nil
}

// Confirm applies a confirmation token to the account. Re-confirming an
// already confirmed account succeeds without touching the row.
func (s *AuthService) Confirm(ctx context.Context, token string) (*model.User, error) {
	email, err := s.codec.Confirm(token, s.confirmMaxAge)
	if err != nil {
		return nil, ErrInvalidInput
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user.Confirmed {
		return user, nil
	}

	if err := s.repo.ConfirmUser(ctx, user.ID); err != nil {
		return nil, err
	}
	user.Confirmed = true
	return user, nil
}

// Resend re-issues the confirmation link for an unconfirmed account.
func (s *AuthService) Resend(ctx context.Context, email string) error {
	if email == "" {
		return ErrInvalidInput
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}

	if user.Confirmed {
		return ErrAlreadyConfirmed
	}

	s.dispatchConfirmation(ctx, user.Email)
	return nil
}

// Login verifies the credentials and issues a token pair. Unknown user is
// 401, wrong password is 403, and an unconfirmed account is blocked with 403
// until the email is confirmed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.TokenPair, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrForbidden
	}

	if !user.Confirmed {
		return nil, ErrUnconfirmed
	}

	return s.tokens.Issue(ctx, user.ID, model.RoleUser)
}

// Logout revokes the presented token. ErrNotFound means the blacklist has no
// matching record; the handler reports that as "no token", not as a server
// error.
func (s *AuthService) Logout(ctx context.Context, bearer string) error {
	claims, err := s.tokens.Parse(bearer)
	if err != nil {
		return ErrUnauthorized
	}
	return s.tokens.Revoke(ctx, claims.ID, claims.Subject)
}

// Authorize is the gate in front of every protected route: signature and
// expiry first, then the fail-closed blacklist check. Only access tokens
// authorize requests; a refresh token is not a bearer credential, however
// long it stays valid. Logout stays type-agnostic so clients can kill
// either half of the pair.
func (s *AuthService) Authorize(ctx context.Context, bearer string) (*model.AuthUser, error) {
	claims, err := s.tokens.Parse(bearer)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if claims.TokenType != model.TokenTypeAccess {
		return nil, ErrUnauthorized
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrUnauthorized
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return &model.AuthUser{
		ID:   subject,
		Role: claims.Role,
		JTI:  claims.ID,
	}, nil
}

// RemoveAccount deletes the identity; favorites and ratings cascade in the
// store.
func (s *AuthService) RemoveAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetUser loads the identity behind an authorized request.
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// ConfirmURL builds the frontend link embedded in the confirmation mail.
func (s *AuthService) ConfirmURL(token string) string {
	return s.frontendURL + "/confirm/" + token
}

// dispatchConfirmation hands the link to the mailer out-of-band. A delivery
// failure never fails the calling operation; the user can always resend.
func (s *AuthService) dispatchConfirmation(ctx context.Context, email string) {
	token := s.codec.Generate(email)
	if err := s.mailer.SendConfirmation(ctx, email, s.ConfirmURL(token), s.confirmMaxAge); err != nil {
		s.logger.ErrorContext(ctx, "failed to send confirmation mail", "email", email, "error", err)
	}
}
