// Maintained by hand to match the injector in wire.go.
// go generate replaces it with the output of the wire tool.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-genesis/internal/adapters"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/forge"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/fs"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/genesis"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/solidity"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/template"
	"github.com/trebuchet-org/treb-genesis/internal/config"
	"github.com/trebuchet-org/treb-genesis/internal/logging"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// Injectors from wire.go:

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	runtimeConfig, err := config.Provider(v)
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger(runtimeConfig)
	selectorAdapter := interactive.NewSelectorAdapter(runtimeConfig)
	profileRegistry, err := adapters.ProvideProfileRegistry(runtimeConfig, logger)
	if err != nil {
		return nil, err
	}
	progressSink := adapters.ProvideProgressSink(runtimeConfig, logger)
	backupStoreAdapter := fs.NewBackupStoreAdapter(runtimeConfig, logger)
	sourcePatcherAdapter := fs.NewSourcePatcherAdapter(runtimeConfig, backupStoreAdapter, logger)
	execRunner := forge.NewExecRunner(logger)
	nodeEncoderAdapter := forge.NewNodeEncoderAdapter(runtimeConfig, execRunner, logger)
	validatorSourceAdapter := fs.NewValidatorSourceAdapter()
	validatorSetCodec := genesis.NewValidatorSetCodec()
	nativeEncoderAdapter := genesis.NewNativeEncoderAdapter(runtimeConfig, validatorSourceAdapter, validatorSetCodec, logger)
	validatorSetEncoder := adapters.ProvideValidatorSetEncoder(runtimeConfig, nodeEncoderAdapter, nativeEncoderAdapter)
	buildAdapter := forge.NewBuildAdapter(runtimeConfig, execRunner, logger)
	generateProfile := usecase.NewGenerateProfile(profileRegistry, sourcePatcherAdapter, validatorSetEncoder, buildAdapter, progressSink, logger)
	listProfiles := usecase.NewListProfiles(profileRegistry)
	recoverSources := usecase.NewRecoverSources(runtimeConfig, backupStoreAdapter)
	rendererAdapter := template.NewRendererAdapter(logger)
	fileWriterAdapter := fs.NewFileWriterAdapter()
	renderHolders := usecase.NewRenderHolders(runtimeConfig, rendererAdapter, fileWriterAdapter)
	renderValidators := usecase.NewRenderValidators(runtimeConfig, validatorSourceAdapter, rendererAdapter, fileWriterAdapter)
	encodeValidators := usecase.NewEncodeValidators(runtimeConfig, validatorSourceAdapter, validatorSetCodec)
	annotatorAdapter := solidity.NewAnnotatorAdapter(logger)
	annotateErrors := usecase.NewAnnotateErrors(runtimeConfig, fileWriterAdapter, annotatorAdapter, logger)
	appApp, err := NewApp(runtimeConfig, logger, selectorAdapter, profileRegistry, progressSink, generateProfile, listProfiles, recoverSources, renderHolders, renderValidators, encodeValidators, annotateErrors)
	if err != nil {
		return nil, err
	}
	return appApp, nil
}
