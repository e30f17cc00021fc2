package handler

import (
	"net/http"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/gin-gonic/gin"
)

// Health check endpoint.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// Root endpoint.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Status:  "ok",
		Message: "Cocktail bar API server is running",
	})
}
