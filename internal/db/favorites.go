package db

import (
	"context"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/google/uuid"
)

func (db *Postgres) AddFavorite(ctx context.Context, userID, cocktailID uuid.UUID) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO user_favorites (user_id, cocktail_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, cocktailID)
	return err
}

func (db *Postgres) RemoveFavorite(ctx context.Context, userID, cocktailID uuid.UUID) error {
	_, err := db.Pool.Exec(ctx, `
		DELETE FROM user_favorites
		WHERE user_id = $1 AND cocktail_id = $2
	`, userID, cocktailID)
	return err
}

func (db *Postgres) ListFavorites(ctx context.Context, userID uuid.UUID) ([]model.CocktailDetail, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT f.cocktail_id
		FROM user_favorites f
		JOIN cocktails c ON c.id = f.cocktail_id
		WHERE f.user_id = $1
		ORDER BY c.name
	`, userID)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	list := []model.CocktailDetail{}
	for _, id := range ids {
		detail, err := db.GetCocktail(ctx, id)
		if err != nil {
			return nil, err
		}
		list = append(list, *detail)
	}
	return list, nil
}

// UpsertRating records a user's 1-5 rating, replacing any previous one.
func (db *Postgres) UpsertRating(ctx context.Context, userID, cocktailID uuid.UUID, rating int) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO user_ratings (user_id, cocktail_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, cocktail_id) DO UPDATE SET rating = EXCLUDED.rating
	`, userID, cocktailID, rating)
	return err
}

// GetUserRating returns nil when the user has not rated the cocktail.
func (db *Postgres) GetUserRating(ctx context.Context, userID, cocktailID uuid.UUID) (*int, error) {
	var rating int
	err := db.Pool.QueryRow(ctx, `
		SELECT rating FROM user_ratings
		WHERE user_id = $1 AND cocktail_id = $2
	`, userID, cocktailID).Scan(&rating)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}
