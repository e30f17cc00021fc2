package model

// ErrorResponse is the error wire format: {"message": ..., "status": ...}.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// MessageResponse wraps every success payload under "message".
type MessageResponse struct {
	Message any `json:"message"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CocktailListResponse is the paginated /retrieve payload.
type CocktailListResponse struct {
	Cocktails []CocktailDetail `json:"cocktails"`
	Total     int              `json:"total"`
}
