// Package app composes the application: it takes the initialized
// dependencies and hands each service its collaborators explicitly. There is
// no implicit runtime discovery; everything a handler can reach is wired here.
package app

import (
	"log/slog"

	"github.com/amirasaad/cashcard/pkg/config"
	"github.com/amirasaad/cashcard/pkg/repository/cashcard"
	cashcardsvc "github.com/amirasaad/cashcard/pkg/service/cashcard"
)

// Deps contains the infrastructure dependencies built by the initializer.
type Deps struct {
	CashCardRepo cashcard.Repository
	Logger       *slog.Logger
}

type App struct {
	Deps            *Deps
	Config          *config.App
	CashCardService *cashcardsvc.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:            deps,
		Config:          cfg,
		CashCardService: cashcardsvc.New(deps.CashCardRepo, deps.Logger),
	}
}
