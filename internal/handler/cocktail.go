package handler

import (
	"net/http"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/Jonny137/cocktail-bar-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type CocktailHandler struct {
	svc *service.CocktailService
}

func NewCocktailHandler(svc *service.CocktailService) *CocktailHandler {
	return &CocktailHandler{svc: svc}
}

// Add godoc
// @Summary Add a cocktail
// @Tags cocktail
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CocktailRequest true "Cocktail payload"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/cocktail [post]
func (h *CocktailHandler) Add(c *gin.Context) {
	var req model.CocktailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	detail, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: detail})
}

// Get returns a single cocktail; a logged-in caller also gets their rating.
func (h *CocktailHandler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Request.Context(), c.Param("id"), GetAuthUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: detail})
}

// Edit replaces a cocktail's fields, taxonomies and recipe lines.
func (h *CocktailHandler) Edit(c *gin.Context) {
	var req model.CocktailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	detail, err := h.svc.Edit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: detail})
}

func (h *CocktailHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Deleted cocktail id: " + id})
}

// Retrieve godoc
// @Summary Search cocktails
// @Description Paginated search with ingredient facets (spirit, liqueur, wine, mixer).
// @Tags cocktail
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Search term"
// @Success 200 {object} model.MessageResponse
// @Router /api/cocktail/retrieve [get]
func (h *CocktailHandler) Retrieve(c *gin.Context) {
	list, total, err := h.svc.Search(c.Request.Context(), c.Request.URL.Query(), GetAuthUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{
		Message: model.CocktailListResponse{
			Cocktails: list,
			Total:     total,
		},
	})
}

// Filters returns the ingredient facets for the search UI.
func (h *CocktailHandler) Filters(c *gin.Context) {
	groups, err := h.svc.Filters(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: groups})
}
