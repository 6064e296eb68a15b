package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/Mark1william11/FlavorFind/internal/app/di"
	"github.com/Mark1william11/FlavorFind/internal/app/router"
	"github.com/Mark1william11/FlavorFind/internal/config"
	authadapters "github.com/Mark1william11/FlavorFind/internal/feature/auth/adapters"
	authhandler "github.com/Mark1william11/FlavorFind/internal/feature/auth/transport/handler"
	authusecase "github.com/Mark1william11/FlavorFind/internal/feature/auth/usecase"
	searchhandler "github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/transport/handler"
	searchusecase "github.com/Mark1william11/FlavorFind/internal/feature/mealsearch/usecase"
	recipeadapters "github.com/Mark1william11/FlavorFind/internal/feature/recipes/adapters"
	recipehandler "github.com/Mark1william11/FlavorFind/internal/feature/recipes/transport/handler"
	recipeusecase "github.com/Mark1william11/FlavorFind/internal/feature/recipes/usecase"
	"github.com/Mark1william11/FlavorFind/internal/platform/db"
	platformredis "github.com/Mark1william11/FlavorFind/internal/platform/redis"
	"github.com/Mark1william11/FlavorFind/internal/platform/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	gormDB := db.OpenDB(cfg.DatabaseURL)

	// Redis is optional. Without it the session store lives in Postgres.
	rdb, err := platformredis.NewRedisClient()
	if err != nil {
		slog.Warn("Redis unavailable, falling back to database sessions", "error", err)
		rdb = nil
	} else {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	userRepo := authadapters.NewUserGorm(gormDB)
	recipeRepo := recipeadapters.NewRecipeGorm(gormDB)
	sessionRepo := di.NewSessionRepository(rdb, gormDB)

	if n, err := sessionRepo.DeleteExpired(context.Background()); err != nil {
		slog.Warn("failed to sweep expired sessions", "error", err)
	} else if n > 0 {
		slog.Info("swept expired sessions", "count", n)
	}

	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, session.NewToken)
	recipesUC := recipeusecase.NewRecipesUsecase(recipeRepo, userRepo)
	searchUC := searchusecase.NewSearchUsecase(di.NewMealDB())

	secret := []byte(cfg.SecretKey)
	authH := authhandler.NewAuthHandler(authUC, secret)
	recipeH := recipehandler.NewRecipeHandler(recipesUC)
	searchH := searchhandler.NewSearchHandler(searchUC)

	r := router.NewRouter(authH, recipeH, searchH, sessionRepo, secret)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
