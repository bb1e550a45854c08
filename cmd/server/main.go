package main

import (
	"fmt"

	"github.com/amirasaad/cashcard/infra/initializer"
	"github.com/amirasaad/cashcard/pkg/app"
	"github.com/amirasaad/cashcard/pkg/config"
	"github.com/amirasaad/cashcard/webapi"
	"github.com/charmbracelet/log"
)

// @title Cash Card API
// @version 1.0.0
// @description Read-only lookup API for cash cards
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"scheme", cfg.Server.Scheme,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	app := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return fiberApp.Listen(addr)
}
