// Package initializer builds the application dependencies in order: logger,
// database, schema, repositories. A failure at any step aborts startup; a
// missing table or unreachable store is a deployment problem, not something
// the request path recovers from.
package initializer

import (
	"fmt"

	"github.com/amirasaad/cashcard/infra"
	cashcardrepo "github.com/amirasaad/cashcard/infra/repository/cashcard"
	"github.com/amirasaad/cashcard/pkg/app"
	"github.com/amirasaad/cashcard/pkg/config"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		logger.Error("failed to apply schema", "error", err)
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	deps.CashCardRepo = cashcardrepo.New(db)
	return deps, nil
}
