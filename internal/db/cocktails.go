package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PageSize is the fixed /retrieve page size.
const PageSize = 20

// upsertTaxonomy resolves a glassware/method name to its id, creating the
// row on first use. ON CONFLICT keeps racing inserts from failing.
func upsertTaxonomy(ctx context.Context, tx pgx.Tx, table, name string) (uuid.UUID, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, table)
	var id uuid.UUID
	err := tx.QueryRow(ctx, query, name).Scan(&id)
	return id, err
}

func upsertIngredient(ctx context.Context, tx pgx.Tx, name, ingType string) (uuid.UUID, error) {
	query := `
		INSERT INTO ingredients (name, type) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	var id uuid.UUID
	err := tx.QueryRow(ctx, query, name, ingType).Scan(&id)
	return id, err
}

// IngredientInput pairs a recipe line with the ingredient's type so new
// ingredients can be created inline.
type IngredientInput struct {
	Name   string
	Type   string
	Amount string
	Main   bool
}

func (db *Postgres) CreateCocktail(ctx context.Context, req model.CocktailRequest, ingredients []IngredientInput, imgURL string) (uuid.UUID, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	glasswareID, err := upsertTaxonomy(ctx, tx, "glassware", req.Glassware)
	if err != nil {
		return uuid.Nil, err
	}
	methodID, err := upsertTaxonomy(ctx, tx, "methods", req.Method)
	if err != nil {
		return uuid.Nil, err
	}

	var cocktailID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO cocktails (name, preparation, garnish, img_url, glassware_id, method_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, req.Name, req.Preparation, req.Garnish, imgURL, glasswareID, methodID).Scan(&cocktailID)
	if err != nil {
		return uuid.Nil, err
	}

	if err := linkIngredients(ctx, tx, cocktailID, ingredients); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}
	return cocktailID, nil
}

// UpdateCocktail replaces the cocktail's fields and taxonomies. A nil
// ingredient list leaves the stored recipe untouched; a non-nil empty list
// clears it.
func (db *Postgres) UpdateCocktail(ctx context.Context, id uuid.UUID, req model.CocktailRequest, ingredients []IngredientInput) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	glasswareID, err := upsertTaxonomy(ctx, tx, "glassware", req.Glassware)
	if err != nil {
		return err
	}
	methodID, err := upsertTaxonomy(ctx, tx, "methods", req.Method)
	if err != nil {
		return err
	}

	commandTag, err := tx.Exec(ctx, `
		UPDATE cocktails
		SET name = $1, preparation = $2, garnish = $3, glassware_id = $4, method_id = $5
		WHERE id = $6
	`, req.Name, req.Preparation, req.Garnish, glasswareID, methodID, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if ingredients != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM cocktail_ingredients WHERE cocktail_id = $1`, id); err != nil {
			return err
		}
		if err := linkIngredients(ctx, tx, id, ingredients); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func linkIngredients(ctx context.Context, tx pgx.Tx, cocktailID uuid.UUID, ingredients []IngredientInput) error {
	for _, ing := range ingredients {
		ingredientID, err := upsertIngredient(ctx, tx, ing.Name, ing.Type)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO cocktail_ingredients (cocktail_id, ingredient_id, amount, main)
			VALUES ($1, $2, $3, $4)
		`, cocktailID, ingredientID, ing.Amount, ing.Main)
		if err != nil {
			return err
		}
	}
	return nil
}

func (db *Postgres) DeleteCocktail(ctx context.Context, id uuid.UUID) error {
	commandTag, err := db.Pool.Exec(ctx, `DELETE FROM cocktails WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) GetCocktail(ctx context.Context, id uuid.UUID) (*model.CocktailDetail, error) {
	query := `
		SELECT c.id, c.name, COALESCE(c.preparation, ''), COALESCE(c.garnish, ''), c.img_url,
		       COALESCE(m.name, ''), COALESCE(g.name, '')
		FROM cocktails c
		LEFT JOIN methods m ON m.id = c.method_id
		LEFT JOIN glassware g ON g.id = c.glassware_id
		WHERE c.id = $1
	`
	var detail model.CocktailDetail
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Preparation,
		&detail.Garnish,
		&detail.ImgURL,
		&detail.Method,
		&detail.Glassware,
	)
	if err != nil {
		return nil, err
	}

	if detail.Ingredients, err = db.cocktailIngredients(ctx, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (db *Postgres) GetCocktailIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.Pool.QueryRow(ctx, `SELECT id FROM cocktails WHERE name = $1`, name).Scan(&id)
	return id, err
}

func (db *Postgres) cocktailIngredients(ctx context.Context, cocktailID uuid.UUID) ([]model.CocktailIngredient, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT i.name, COALESCE(ci.amount, ''), ci.main
		FROM cocktail_ingredients ci
		JOIN ingredients i ON i.id = ci.ingredient_id
		WHERE ci.cocktail_id = $1
		ORDER BY ci.main DESC, i.name
	`, cocktailID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.CocktailIngredient{}
	for rows.Next() {
		var ing model.CocktailIngredient
		if err := rows.Scan(&ing.Name, &ing.Amount, &ing.Main); err != nil {
			return nil, err
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

// likeEscaper neutralizes LIKE wildcards in user input so a search term
// matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// SearchCocktails pages through the catalog. The search term matches name,
// preparation, garnish and ingredient names; every requested ingredient must
// be present in the recipe. Total comes from a window count so one query
// serves both the page and the pagination header.
func (db *Postgres) SearchCocktails(ctx context.Context, params model.SearchParams) ([]model.CocktailDetail, int, error) {
	var (
		conds []string
		args  []any
	)

	if params.Search != "" {
		args = append(args, "%"+escapeLike(params.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(
			c.name ILIKE $%d OR c.preparation ILIKE $%d OR c.garnish ILIKE $%d OR
			EXISTS (
				SELECT 1 FROM cocktail_ingredients ci
				JOIN ingredients i ON i.id = ci.ingredient_id
				WHERE ci.cocktail_id = c.id AND i.name ILIKE $%d
			)
		)`, n, n, n, n))
	}

	for _, name := range params.Ingredients {
		args = append(args, name)
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM cocktail_ingredients ci
			JOIN ingredients i ON i.id = ci.ingredient_id
			WHERE ci.cocktail_id = c.id AND i.name = $%d
		)`, len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	args = append(args, PageSize, (page-1)*PageSize)

	query := fmt.Sprintf(`
		SELECT c.id, COUNT(*) OVER () AS total
		FROM cocktails c
		%s
		ORDER BY c.name
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	var (
		ids   []uuid.UUID
		total int
	)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id, &total); err != nil {
			rows.Close()
			return nil, 0, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	list := []model.CocktailDetail{}
	for _, id := range ids {
		detail, err := db.GetCocktail(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *detail)
	}
	return list, total, nil
}

// ListIngredients returns all ingredients ordered by name, for the filter
// facets.
func (db *Postgres) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, name, type FROM ingredients ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Type); err != nil {
			return nil, err
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

// AdminPanelData collects the distinct value lists backing the admin forms.
func (db *Postgres) AdminPanelData(ctx context.Context) (*model.AdminPanelData, error) {
	data := &model.AdminPanelData{
		Name:        []string{},
		Glassware:   []string{},
		Method:      []string{},
		Garnish:     []string{},
		Ingredients: []string{},
	}

	queries := []struct {
		query string
		dest  *[]string
	}{
		{`SELECT name FROM cocktails ORDER BY name`, &data.Name},
		{`SELECT name FROM glassware ORDER BY name`, &data.Glassware},
		{`SELECT name FROM methods ORDER BY name`, &data.Method},
		{`SELECT DISTINCT garnish FROM cocktails WHERE garnish IS NOT NULL AND garnish <> ''`, &data.Garnish},
		{`SELECT name FROM ingredients ORDER BY name`, &data.Ingredients},
	}

	for _, q := range queries {
		rows, err := db.Pool.Query(ctx, q.query)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var value string
			if err := rows.Scan(&value); err != nil {
				rows.Close()
				return nil, err
			}
			*q.dest = append(*q.dest, value)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	return data, nil
}
