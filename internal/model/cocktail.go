package model

import (
	"time"

	"github.com/google/uuid"
)

type Cocktail struct {
	ID          uuid.UUID
	Name        string
	Preparation string
	Garnish     string
	ImgURL      string
	GlasswareID uuid.UUID
	MethodID    uuid.UUID
	CreatedAt   time.Time
}

type Ingredient struct {
	ID   uuid.UUID
	Name string
	Type string
}

type Glassware struct {
	ID   uuid.UUID
	Name string
}

type Method struct {
	ID   uuid.UUID
	Name string
}

// CocktailIngredient is one line of a recipe. Type is only set on requests
// that introduce a new ingredient.
type CocktailIngredient struct {
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Amount string `json:"amount"`
	Main   bool   `json:"main"`
}

// CocktailDetail is the wire shape of a cocktail, taxonomies resolved to
// their names.
type CocktailDetail struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Preparation string               `json:"preparation"`
	Garnish     string               `json:"garnish"`
	Method      string               `json:"method"`
	Glassware   string               `json:"glassware"`
	ImgURL      string               `json:"img_url"`
	Ingredients []CocktailIngredient `json:"ingredients"`
	UserRating  *int                 `json:"user_rating,omitempty"`
}

// SearchParams come from the /retrieve query string. Ingredients holds the
// already-split names from the spirit/liqueur/wine/mixer keys.
type SearchParams struct {
	Page        int
	Search      string
	Ingredients []string
}

// FilterGroup groups ingredient names under a UI facet.
type FilterGroup struct {
	Name  string   `json:"name"`
	Label string   `json:"label"`
	Value []string `json:"value"`
}

// AdminPanelData carries the distinct value lists for the admin edit forms.
type AdminPanelData struct {
	Name        []string `json:"name"`
	Glassware   []string `json:"glassware"`
	Method      []string `json:"method"`
	Garnish     []string `json:"garnish"`
	Ingredients []string `json:"ingredients"`
}
