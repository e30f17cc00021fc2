package handler

import (
	"errors"
	"net/http"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/Jonny137/cocktail-bar-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc       *service.AuthService
	cocktails *service.CocktailService
}

func NewAuthHandler(svc *service.AuthService, cocktails *service.CocktailService) *AuthHandler {
	return &AuthHandler{svc: svc, cocktails: cocktails}
}

// Register godoc
// @Summary Register a new user
// @Description Creates an unconfirmed account and mails a confirmation link.
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Username, email and password"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/user/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: user.ToDict()})
}

// Confirm godoc
// @Summary Confirm an email address
// @Tags user
// @Produce json
// @Param token path string true "Confirmation token"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/user/confirm/{token} [get]
func (h *AuthHandler) Confirm(c *gin.Context) {
	user, err := h.svc.Confirm(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			abortWith(c, http.StatusBadRequest, "Invalid or expired confirmation link")
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: user.ToDict()})
}

// Resend godoc
// @Summary Resend the confirmation mail
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.ResendRequest true "Registered email"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/user/resend [post]
func (h *AuthHandler) Resend(c *gin.Context) {
	var req model.ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.svc.Resend(c.Request.Context(), req.Email); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Confirmation mail sent"})
}

// Login godoc
// @Summary Login
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/user/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: pair})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented token.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/user/logout [put]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUnauthorized):
			abortWith(c, http.StatusUnauthorized, "Logout unsuccessful, no token")
		default:
			abortWith(c, http.StatusInternalServerError, "Logout unsuccessful, internal error")
		}
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Logout successful"})
}

// RemoveAccount deletes the calling user; favorites and ratings cascade.
func (h *AuthHandler) RemoveAccount(c *gin.Context) {
	user := GetAuthUser(c)
	if err := h.svc.RemoveAccount(c.Request.Context(), user.ID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Account removed"})
}

// SetFavorite adds a cocktail (by name) to the caller's favorites.
func (h *AuthHandler) SetFavorite(c *gin.Context) {
	var req model.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	detail, err := h.cocktails.AddFavorite(c.Request.Context(), GetAuthUser(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: detail})
}

// GetFavorites lists the caller's favorite cocktails.
func (h *AuthHandler) GetFavorites(c *gin.Context) {
	list, err := h.cocktails.Favorites(c.Request.Context(), GetAuthUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: list})
}

// RemoveFavorite drops a cocktail (by name) from the caller's favorites.
func (h *AuthHandler) RemoveFavorite(c *gin.Context) {
	var req model.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	detail, err := h.cocktails.RemoveFavorite(c.Request.Context(), GetAuthUser(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: detail})
}

// Rate records the caller's 1-5 rating for a cocktail.
func (h *AuthHandler) Rate(c *gin.Context) {
	var req model.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.cocktails.Rate(c.Request.Context(), GetAuthUser(c), req.Name, req.Rating); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Rating saved"})
}
