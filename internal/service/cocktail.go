package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/Jonny137/cocktail-bar-backend/internal/client"
	"github.com/Jonny137/cocktail-bar-backend/internal/db"
	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/google/uuid"
)

// ingredientFilterKeys are the query-string facets of /retrieve; each value
// is a comma-separated ingredient list.
var ingredientFilterKeys = []string{"mixer", "spirit", "wine", "liqueur"}

// CatalogStore is the persistence surface of the catalog service.
type CatalogStore interface {
	CreateCocktail(ctx context.Context, req model.CocktailRequest, ingredients []db.IngredientInput, imgURL string) (uuid.UUID, error)
	UpdateCocktail(ctx context.Context, id uuid.UUID, req model.CocktailRequest, ingredients []db.IngredientInput) error
	DeleteCocktail(ctx context.Context, id uuid.UUID) error
	GetCocktail(ctx context.Context, id uuid.UUID) (*model.CocktailDetail, error)
	GetCocktailIDByName(ctx context.Context, name string) (uuid.UUID, error)
	SearchCocktails(ctx context.Context, params model.SearchParams) ([]model.CocktailDetail, int, error)
	ListIngredients(ctx context.Context) ([]model.Ingredient, error)
	AddFavorite(ctx context.Context, userID, cocktailID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, cocktailID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]model.CocktailDetail, error)
	UpsertRating(ctx context.Context, userID, cocktailID uuid.UUID, rating int) error
	GetUserRating(ctx context.Context, userID, cocktailID uuid.UUID) (*int, error)
}

// CocktailService covers catalog CRUD, search, favorites and ratings.
type CocktailService struct {
	repo     CatalogStore
	uploader client.ImageUploader
}

func NewCocktailService(repo CatalogStore, uploader client.ImageUploader) *CocktailService {
	return &CocktailService{repo: repo, uploader: uploader}
}

func (s *CocktailService) Add(ctx context.Context, req model.CocktailRequest) (*model.CocktailDetail, error) {
	if req.Name == "" || req.Glassware == "" || req.Method == "" {
		return nil, ErrInvalidInput
	}

	imgURL := ""
	if req.Image != nil {
		hosted, err := s.uploader.Upload(ctx, req.Image.Name, req.Image.URL)
		if err != nil {
			return nil, err
		}
		imgURL = hosted
	}

	id, err := s.repo.CreateCocktail(ctx, req, toIngredientInputs(req.Ingredients), imgURL)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.repo.GetCocktail(ctx, id)
}

func (s *CocktailService) Get(ctx context.Context, id string, user *model.AuthUser) (*model.CocktailDetail, error) {
	cocktailID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	detail, err := s.repo.GetCocktail(ctx, cocktailID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user != nil {
		if detail.UserRating, err = s.repo.GetUserRating(ctx, user.ID, cocktailID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *CocktailService) Edit(ctx context.Context, id string, req model.CocktailRequest) (*model.CocktailDetail, error) {
	cocktailID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if req.Name == "" || req.Glassware == "" || req.Method == "" {
		return nil, ErrInvalidInput
	}

	// A request without an ingredients key keeps the existing recipe; an
	// explicit empty list clears it.
	var ingredients []db.IngredientInput
	if req.Ingredients != nil {
		ingredients = toIngredientInputs(req.Ingredients)
	}

	if err := s.repo.UpdateCocktail(ctx, cocktailID, req, ingredients); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.repo.GetCocktail(ctx, cocktailID)
}

func (s *CocktailService) Delete(ctx context.Context, id string) error {
	cocktailID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if err := s.repo.DeleteCocktail(ctx, cocktailID); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Search pages through the catalog; when a user is present each result is
// annotated with that user's rating.
func (s *CocktailService) Search(ctx context.Context, query url.Values, user *model.AuthUser) ([]model.CocktailDetail, int, error) {
	params := ParseSearchParams(query)

	list, total, err := s.repo.SearchCocktails(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	if user != nil {
		for i := range list {
			rating, err := s.repo.GetUserRating(ctx, user.ID, list[i].ID)
			if err != nil {
				return nil, 0, err
			}
			list[i].UserRating = rating
		}
	}
	return list, total, nil
}

// ParseSearchParams extracts page, search term and the comma-separated
// ingredient facets from the /retrieve query string.
func ParseSearchParams(query url.Values) model.SearchParams {
	params := model.SearchParams{Page: 1}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	params.Search = strings.TrimSpace(query.Get("search"))

	for _, key := range ingredientFilterKeys {
		value := query.Get(key)
		if value == "" {
			continue
		}
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				params.Ingredients = append(params.Ingredients, name)
			}
		}
	}
	return params
}

// Filters groups ingredient names into the UI facets. Anything that is not
// a spirit, liqueur or mixer lands in the wine/vermouth bucket.
func (s *CocktailService) Filters(ctx context.Context) ([]model.FilterGroup, error) {
	ingredients, err := s.repo.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}

	groups := []model.FilterGroup{
		{Name: "Spirit", Label: "spirit", Value: []string{}},
		{Name: "Liqueur", Label: "liqueur", Value: []string{}},
		{Name: "Wine/Vermouth", Label: "wine", Value: []string{}},
		{Name: "Mixer", Label: "mixer", Value: []string{}},
	}

	for _, ing := range ingredients {
		switch ing.Type {
		case "Spirit":
			groups[0].Value = append(groups[0].Value, ing.Name)
		case "Liqueur":
			groups[1].Value = append(groups[1].Value, ing.Name)
		case "Mixer":
			groups[3].Value = append(groups[3].Value, ing.Name)
		default:
			groups[2].Value = append(groups[2].Value, ing.Name)
		}
	}
	return groups, nil
}

func (s *CocktailService) AddFavorite(ctx context.Context, user *model.AuthUser, name string) (*model.CocktailDetail, error) {
	cocktailID, err := s.cocktailIDByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddFavorite(ctx, user.ID, cocktailID); err != nil {
		return nil, err
	}
	return s.repo.GetCocktail(ctx, cocktailID)
}

func (s *CocktailService) RemoveFavorite(ctx context.Context, user *model.AuthUser, name string) (*model.CocktailDetail, error) {
	cocktailID, err := s.cocktailIDByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveFavorite(ctx, user.ID, cocktailID); err != nil {
		return nil, err
	}
	return s.repo.GetCocktail(ctx, cocktailID)
}

func (s *CocktailService) Favorites(ctx context.Context, user *model.AuthUser) ([]model.CocktailDetail, error) {
	return s.repo.ListFavorites(ctx, user.ID)
}

func (s *CocktailService) Rate(ctx context.Context, user *model.AuthUser, name string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidInput
	}
	cocktailID, err := s.cocktailIDByName(ctx, name)
	if err != nil {
		return err
	}
	return s.repo.UpsertRating(ctx, user.ID, cocktailID, rating)
}

func (s *CocktailService) cocktailIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, ErrInvalidInput
	}
	id, err := s.repo.GetCocktailIDByName(ctx, name)
	if err != nil {
		if db.IsNoRows(err) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}

func toIngredientInputs(list []model.CocktailIngredient) []db.IngredientInput {
	inputs := make([]db.IngredientInput, 0, len(list))
	for _, ing := range list {
		inputs = append(inputs, db.IngredientInput{
			Name:   ing.Name,
			Type:   ing.Type,
			Amount: ing.Amount,
			Main:   ing.Main,
		})
	}
	return inputs
}
