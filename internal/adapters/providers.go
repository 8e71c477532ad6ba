package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/forge"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/fs"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/genesis"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/progress"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/solidity"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/template"
	internalconfig "github.com/trebuchet-org/treb-genesis/internal/config"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/profiles"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// ProvideValidatorSetEncoder picks the encoder configured for the project
func ProvideValidatorSetEncoder(
	cfg *config.RuntimeConfig,
	node *forge.NodeEncoderAdapter,
	native *genesis.NativeEncoderAdapter,
) usecase.ValidatorSetEncoder {
	if cfg.Encoder == internalconfig.EncoderNative {
		return native
	}
	return node
}

// ProvideProgressSink renders progress with a spinner unless running non-interactively
func ProvideProgressSink(cfg *config.RuntimeConfig, log *slog.Logger) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Debug {
		return progress.NewLogSink(log)
	}
	return progress.NewSpinnerSink()
}

// ProvideProfileRegistry builds the registry from the built-in and configured profiles
func ProvideProfileRegistry(cfg *config.RuntimeConfig, log *slog.Logger) (usecase.ProfileRegistry, error) {
	return profiles.NewRegistry(cfg, log)
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewBackupStoreAdapter,
	wire.Bind(new(usecase.BackupStore), new(*fs.BackupStoreAdapter)),

	fs.NewSourcePatcherAdapter,
	wire.Bind(new(usecase.SourcePatcher), new(*fs.SourcePatcherAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewValidatorSourceAdapter,
	wire.Bind(new(usecase.ValidatorSource), new(*fs.ValidatorSourceAdapter)),
)

// ForgeSet provides subprocess-based implementations
var ForgeSet = wire.NewSet(
	forge.NewExecRunner,
	wire.Bind(new(forge.CommandRunner), new(*forge.ExecRunner)),

	forge.NewBuildAdapter,
	wire.Bind(new(usecase.BuildTrigger), new(*forge.BuildAdapter)),

	forge.NewNodeEncoderAdapter,
)

// GenesisSet provides the in-process validator-set encoding
var GenesisSet = wire.NewSet(
	genesis.NewValidatorSetCodec,
	wire.Bind(new(usecase.ValidatorSetCodec), new(*genesis.ValidatorSetCodec)),

	genesis.NewNativeEncoderAdapter,
)

// TemplateSet provides template-based implementations
var TemplateSet = wire.NewSet(
	template.NewRendererAdapter,
	wire.Bind(new(usecase.TemplateRenderer), new(*template.RendererAdapter)),
)

// SoliditySet provides source annotation implementations
var SoliditySet = wire.NewSet(
	solidity.NewAnnotatorAdapter,
	wire.Bind(new(usecase.ErrorAnnotator), new(*solidity.AnnotatorAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.Selector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	// Provider functions
	ProvideValidatorSetEncoder,
	ProvideProgressSink,
	ProvideProfileRegistry,

	// Adapter sets
	FSSet,
	ForgeSet,
	GenesisSet,
	TemplateSet,
	SoliditySet,
	InteractiveSet,
)
