package model

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResendRequest struct {
	Email string `json:"email"`
}

type FavoriteRequest struct {
	Name string `json:"name"`
}

type RateRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

type CocktailImage struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type CocktailRequest struct {
	Name        string               `json:"name"`
	Preparation string               `json:"preparation"`
	Garnish     string               `json:"garnish"`
	Glassware   string               `json:"glassware"`
	Method      string               `json:"method"`
	Ingredients []CocktailIngredient `json:"ingredients"`
	Image       *CocktailImage       `json:"image,omitempty"`
}
