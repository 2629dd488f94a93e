//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/gammaphi/lamden-deploy/internal/adapters"
	"github.com/gammaphi/lamden-deploy/internal/config"
	"github.com/gammaphi/lamden-deploy/internal/logging"
	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewTransferTokens,

		// App
		NewApp,
	)
	return nil, nil
}
