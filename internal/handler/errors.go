package handler

import (
	"errors"
	"net/http"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/Jonny137/cocktail-bar-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// writeError translates service sentinels into the {message, status} wire
// format. The router never alters error semantics; it only formats them.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		abortWith(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, service.ErrEmailInUse):
		abortWith(c, http.StatusBadRequest, "Email is already in use")
	case errors.Is(err, service.ErrConflict):
		abortWith(c, http.StatusBadRequest, "Already exists")
	case errors.Is(err, service.ErrAlreadyConfirmed):
		abortWith(c, http.StatusBadRequest, "Account already confirmed")
	case errors.Is(err, service.ErrUnauthorized):
		abortWith(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrForbidden):
		abortWith(c, http.StatusForbidden, "Invalid credentials")
	case errors.Is(err, service.ErrUnconfirmed):
		abortWith(c, http.StatusForbidden, "Account not confirmed")
	case errors.Is(err, service.ErrNotFound):
		abortWith(c, http.StatusNotFound, "Not found")
	default:
		abortWith(c, http.StatusInternalServerError, "Internal server error")
	}
}

func abortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, model.ErrorResponse{
		Message: message,
		Status:  status,
	})
}
