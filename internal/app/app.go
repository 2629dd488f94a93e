package app

import (
	"log/slog"

	"github.com/gammaphi/lamden-deploy/internal/domain/config"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract *usecase.DeployContract
	TransferTokens *usecase.TransferTokens
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	transferTokens *usecase.TransferTokens,
) *App {
	return &App{
		Config:         cfg,
		Log:            log,
		DeployContract: deployContract,
		TransferTokens: transferTokens,
	}
}
