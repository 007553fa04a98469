package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/secureapp/secureapp/internal/app"
	"github.com/secureapp/secureapp/internal/auth"
	"github.com/secureapp/secureapp/internal/products"
	"github.com/secureapp/secureapp/internal/storage/postgres"
	"github.com/secureapp/secureapp/pkg/httpserver"
	"github.com/secureapp/secureapp/pkg/jwt"
	"github.com/secureapp/secureapp/pkg/logger"
	"github.com/secureapp/secureapp/pkg/password"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log, os.Stderr)

	pool, err := postgres.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	hasher, err := password.New(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	tokens, err := jwt.New([]byte(cfg.Auth.SigningKey))
	if err != nil {
		return err
	}

	authService := auth.NewService(postgres.NewUserStore(pool), hasher, tokens, log, cfg.Auth)
	productService := products.NewService(postgres.NewProductStore(pool))

	router := app.NewRouter(log, authService, productService, tokens)

	srv := httpserver.New(cfg.HTTP, log)
	return srv.Run(ctx, router)
}
