// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/Mark1william11/FlavorFind/internal/feature/auth/transport/handler"
	authusecase "github.com/Mark1william11/FlavorFind/internal/feature/auth/usecase"
	searchhandler "github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/transport/handler"
	recipehandler "github.com/Mark1william11/FlavorFind/internal/feature/recipes/transport/handler"
	"github.com/Mark1william11/FlavorFind/internal/platform/http/handler"
	"github.com/Mark1william11/FlavorFind/internal/platform/session"
)

// NewRouter builds the route table. Personal-recipe routes all sit behind
// the session gate; the external search routes take no session.
func NewRouter(auth *authhandler.AuthHandler, recipes *recipehandler.RecipeHandler,
	search *searchhandler.SearchHandler, sessions authusecase.SessionRepository, secret []byte) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", auth.Logout)
		authGroup.GET("/status", auth.Status)
	}

	// Public pass-through to the external recipe database.
	r.GET("/api/recipes/search", search.Search)
	r.GET("/api/recipes/external/:id", search.Lookup)

	protected := r.Group("/api/recipes")
	protected.Use(session.AuthRequired(sessions, secret))
	{
		protected.POST("", recipes.Create)
		protected.GET("", recipes.List)
		protected.GET("/:id", recipes.Get)
		protected.PUT("/:id", recipes.Update)
		protected.DELETE("/:id", recipes.Delete)
	}

	return r
}
