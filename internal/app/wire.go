//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-genesis/internal/adapters"
	"github.com/trebuchet-org/treb-genesis/internal/config"
	"github.com/trebuchet-org/treb-genesis/internal/logging"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewGenerateProfile,
		usecase.NewListProfiles,
		usecase.NewRecoverSources,
		usecase.NewRenderHolders,
		usecase.NewRenderValidators,
		usecase.NewEncodeValidators,
		usecase.NewAnnotateErrors,

		// App
		NewApp,
	)
	return nil, nil
}
