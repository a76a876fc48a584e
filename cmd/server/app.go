package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"catalogapi/internal/config"
	"catalogapi/internal/platform/postgres"
	"catalogapi/internal/service"
	"catalogapi/internal/service/auth"
	"catalogapi/internal/store"
)

// application holds the wired dependencies for the running server.
// Construction is explicit: every collaborator is created here and passed
// down, with no process-wide mutable registry.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	db             *sql.DB
	jwtService     auth.JWTService
	productStore   store.ProductStore
	productService service.ProductService
}

// newApplication wires the application's services from configuration and
// an established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	productStore := postgres.NewPostgresProductStore(db, logger)
	productService := service.NewProductService(productStore, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		jwtService:     jwtService,
		productStore:   productStore,
		productService: productService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
