package handler

import (
	"time"

	"github.com/Jonny137/cocktail-bar-backend/internal/config"
	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/Jonny137/cocktail-bar-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the middleware chain and all routes.
func NewRouter(cfg config.ServerConfig, auth *service.AuthService, admin *service.AdminService, cocktails *service.CocktailService) *gin.Engine {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	if cfg.FrontendURL != "" {
		corsCfg.AllowOrigins = []string{cfg.FrontendURL}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = cfg.FrontendURL != ""
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Authorization", "Content-Type"}
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/ping", Ping)
	router.GET("/", Root)

	authHandler := NewAuthHandler(auth, cocktails)
	cocktailHandler := NewCocktailHandler(cocktails)
	adminHandler := NewAdminHandler(admin, auth)

	user := router.Group("/api/user")
	{
		user.POST("/register", authHandler.Register)
		user.GET("/confirm/:token", authHandler.Confirm)
		user.POST("/resend", authHandler.Resend)
		user.POST("/login", authHandler.Login)

		protected := user.Group("", AuthRequired(auth))
		{
			protected.PUT("/logout", authHandler.Logout)
			protected.DELETE("/remove_account", authHandler.RemoveAccount)
			protected.POST("/favorite", authHandler.SetFavorite)
			protected.GET("/favorite", authHandler.GetFavorites)
			protected.DELETE("/favorite", authHandler.RemoveFavorite)
			protected.PATCH("/rate", authHandler.Rate)
		}
	}

	cocktail := router.Group("/api/cocktail")
	{
		cocktail.GET("/retrieve", OptionalAuth(auth), cocktailHandler.Retrieve)
		cocktail.GET("/filters", cocktailHandler.Filters)
		cocktail.GET("/:id", OptionalAuth(auth), cocktailHandler.Get)

		protected := cocktail.Group("", AuthRequired(auth))
		{
			protected.POST("", cocktailHandler.Add)
			protected.PUT("/:id", cocktailHandler.Edit)
			protected.DELETE("/:id", cocktailHandler.Delete)
		}
	}

	adminGroup := router.Group("/api/admin")
	{
		adminGroup.POST("/register", adminHandler.Register)
		adminGroup.POST("/login", adminHandler.Login)

		protected := adminGroup.Group("", AuthRequired(auth))
		{
			protected.PUT("/logout", adminHandler.Logout)
			protected.GET("/token", adminHandler.TokenCheck)

			panel := protected.Group("", RequireRole(model.RoleAdmin))
			{
				panel.GET("/data", adminHandler.Data)
			}
		}
	}

	return router
}
