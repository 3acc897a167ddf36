package handler

import (
	"github.com/gin-gonic/gin"

	"streamflix/internal/app"
)

// NewRouter wires the HTTP surface. Reads are public; every mutating route
// passes through the admin gate first.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(a.Logger))

	movies := NewMovieHandler(a)
	auth := NewAuthHandler(a)

	api := router.Group("/api")
	{
		api.GET("/movies", movies.HandleListMovies)
		api.GET("/movies/:id", movies.HandleGetMovie)
		api.POST("/auth/login", auth.HandleLogin)

		admin := api.Group("", RequireAdmin(a.Tokens))
		{
			admin.POST("/movies", movies.HandleCreateMovie)
			admin.PUT("/movies/:id", movies.HandleUpdateMovie)
			admin.DELETE("/movies/:id", movies.HandleDeleteMovie)
		}
	}

	return router
}
