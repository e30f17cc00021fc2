package handler

import (
	"errors"
	"net/http"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/Jonny137/cocktail-bar-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc  *service.AdminService
	auth *service.AuthService
}

func NewAdminHandler(svc *service.AdminService, auth *service.AuthService) *AdminHandler {
	return &AdminHandler{svc: svc, auth: auth}
}

// Register godoc
// @Summary Register an admin user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/admin/register [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid request")
		return
	}

	admin, err := h.svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			abortWith(c, http.StatusBadRequest, "Admin user already exists")
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: map[string]any{
		"id":       admin.ID,
		"username": admin.Username,
	}})
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
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

// Logout revokes the presented admin token; same path as user logout.
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), bearerToken(c)); err != nil {
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

// TokenCheck reports whether the presented token is still valid (signed,
// unexpired, not revoked).
func (h *AdminHandler) TokenCheck(c *gin.Context) {
	valid := h.svc.TokenValid(c.Request.Context(), bearerToken(c))
	c.JSON(http.StatusOK, model.MessageResponse{Message: valid})
}

// Data returns the distinct value lists backing the admin panel forms.
func (h *AdminHandler) Data(c *gin.Context) {
	data, err := h.svc.PanelData(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: data})
}
