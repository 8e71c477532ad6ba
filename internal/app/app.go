package app

import (
	"log/slog"

	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector usecase.Selector
	Profiles usecase.ProfileRegistry
	Progress usecase.ProgressSink

	// Use cases
	GenerateProfile  *usecase.GenerateProfile
	ListProfiles     *usecase.ListProfiles
	RecoverSources   *usecase.RecoverSources
	RenderHolders    *usecase.RenderHolders
	RenderValidators *usecase.RenderValidators
	EncodeValidators *usecase.EncodeValidators
	AnnotateErrors   *usecase.AnnotateErrors
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.Selector,
	profiles usecase.ProfileRegistry,
	progress usecase.ProgressSink,
	generateProfile *usecase.GenerateProfile,
	listProfiles *usecase.ListProfiles,
	recoverSources *usecase.RecoverSources,
	renderHolders *usecase.RenderHolders,
	renderValidators *usecase.RenderValidators,
	encodeValidators *usecase.EncodeValidators,
	annotateErrors *usecase.AnnotateErrors,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		Selector:         selector,
		Profiles:         profiles,
		Progress:         progress,
		GenerateProfile:  generateProfile,
		ListProfiles:     listProfiles,
		RecoverSources:   recoverSources,
		RenderHolders:    renderHolders,
		RenderValidators: renderValidators,
		EncodeValidators: encodeValidators,
		AnnotateErrors:   annotateErrors,
	}, nil
}
