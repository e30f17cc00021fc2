package db

import (
	"context"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (db *Postgres) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, confirmed, confirmed_at, created_at
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username, email, passwordHash).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Confirmed,
		&user.ConfirmedAt,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return db.getUser(ctx, `WHERE username = $1`, username)
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return db.getUser(ctx, `WHERE email = $1`, email)
}

func (db *Postgres) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return db.getUser(ctx, `WHERE id = $1`, id)
}

func (db *Postgres) getUser(ctx context.Context, where string, arg any) (*model.User, error) {
	query := `
		SELECT id, username, email, password_hash, confirmed, confirmed_at, created_at
		FROM users ` + where
	var user model.User
	err := db.Pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Confirmed,
		&user.ConfirmedAt,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ConfirmUser stamps the confirmation exactly once; a second call on an
// already confirmed row touches nothing.
func (db *Postgres) ConfirmUser(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET confirmed = TRUE, confirmed_at = NOW()
		WHERE id = $1 AND confirmed = FALSE
	`
	_, err := db.Pool.Exec(ctx, query, id)
	return err
}

// DeleteUser removes the identity; favorites and ratings cascade.
func (db *Postgres) DeleteUser(ctx context.Context, id uuid.UUID) error {
	commandTag, err := db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) CreateAdmin(ctx context.Context, username, passwordHash string) (*model.AdminUser, error) {
	query := `
		INSERT INTO admin_users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at
	`
	var admin model.AdminUser
	err := db.Pool.QueryRow(ctx, query, username, passwordHash).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (db *Postgres) GetAdminByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`
	var admin model.AdminUser
	err := db.Pool.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
