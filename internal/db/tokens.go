package db

import (
	"context"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

// InsertTokenRecords writes the blacklist rows for a freshly minted token
// pair in a single transaction. Issuance is atomic: if any row cannot be
// written the whole insert rolls back and no token reaches the caller.
func (db *Postgres) InsertTokenRecords(ctx context.Context, records []model.TokenRecord) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		INSERT INTO token_blacklist (jti, token_type, user_identity, revoked, expires)
		VALUES ($1, $2, $3, FALSE, $4)
	`
	for _, rec := range records {
		if _, err := tx.Exec(ctx, query, rec.JTI, rec.TokenType, rec.UserIdentity, rec.Expires); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetTokenRecord looks up a blacklist row by jti. Single indexed lookup;
// this runs on every authenticated request.
func (db *Postgres) GetTokenRecord(ctx context.Context, jti string) (*model.TokenRecord, error) {
	query := `
		SELECT id, jti, token_type, user_identity, revoked, expires
		FROM token_blacklist
		WHERE jti = $1
	`
	var rec model.TokenRecord
	err := db.Pool.QueryRow(ctx, query, jti).Scan(
		&rec.ID,
		&rec.JTI,
		&rec.TokenType,
		&rec.UserIdentity,
		&rec.Revoked,
		&rec.Expires,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// RevokeToken flips the matching record to revoked. The subject identity is
// part of the match so one user cannot revoke another's token even with a
// colliding jti. Returns pgx.ErrNoRows when no record matches; there is no
// un-revoke.
func (db *Postgres) RevokeToken(ctx context.Context, jti, userIdentity string) error {
	query := `
		UPDATE token_blacklist
		SET revoked = TRUE
		WHERE jti = $1 AND user_identity = $2
	`
	commandTag, err := db.Pool.Exec(ctx, query, jti, userIdentity)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
