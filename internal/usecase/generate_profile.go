package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenerateStage is a phase of a profile run reported to the progress sink
type GenerateStage string

const (
	StageEncoding  GenerateStage = "encoding"
	StagePatching  GenerateStage = "patching"
	StageBuilding  GenerateStage = "building"
	StageGenesis   GenerateStage = "genesis"
	StageCompleted GenerateStage = "completed"
)

// Title returns the stage name for display
func (s GenerateStage) Title() string {
	return cases.Title(language.English).String(string(s))
}

// GenerateProfileParams contains parameters for a profile run
type GenerateProfileParams struct {
	Profile string
	// Overrides are already merged from value files and flags
	Overrides map[string]string
	// Output is passed to the genesis generator when set
	Output    string
	SkipBuild bool
}

// GenerateProfileResult contains the result of a profile run
type GenerateProfileResult struct {
	Context      *domain.ProfileContext
	Instructions []domain.Instruction
	Built        bool
	Duration     time.Duration
}

// GenerateProfile patches the system contracts for one profile and builds the genesis
type GenerateProfile struct {
	registry ProfileRegistry
	patcher  SourcePatcher
	encoder  ValidatorSetEncoder
	build    BuildTrigger
	progress ProgressSink
	log      *slog.Logger
}

// NewGenerateProfile creates a new GenerateProfile use case
func NewGenerateProfile(
	registry ProfileRegistry,
	patcher SourcePatcher,
	encoder ValidatorSetEncoder,
	build BuildTrigger,
	progress ProgressSink,
	log *slog.Logger,
) *GenerateProfile {
	return &GenerateProfile{
		registry: registry,
		patcher:  patcher,
		encoder:  encoder,
		build:    build,
		progress: progress,
		log:      log.With("component", "GenerateProfile"),
	}
}

// Run resolves the profile, applies every instruction in order and triggers the build.
// The first failing step aborts the run; files already patched stay patched.
func (uc *GenerateProfile) Run(ctx context.Context, params GenerateProfileParams) (*GenerateProfileResult, error) {
	start := time.Now()

	pc, err := uc.registry.Resolve(params.Profile, params.Overrides)
	if err != nil {
		return nil, err
	}

	if pc.Profile.ValidatorSetFromEncoder {
		uc.report(ctx, StageEncoding, 0, 0, "encoding init validator set", true)
		encoded, err := uc.encoder.EncodeValidatorSet(ctx)
		if err != nil {
			return nil, err
		}
		pc.Params[domain.ParamValidatorSetBytes] = encoded
	}

	instructions, err := uc.registry.Instructions(pc)
	if err != nil {
		return nil, err
	}

	for i, ins := range instructions {
		uc.report(ctx, StagePatching, i+1, len(instructions), ins.Target, true)
		uc.log.Debug("applying instruction", "index", i+1, "instruction", ins.String())

		if err := uc.patcher.Apply(ctx, ins); err != nil {
			return nil, fmt.Errorf("instruction %d/%d (%s): %w", i+1, len(instructions), ins.Target, err)
		}
	}

	result := &GenerateProfileResult{
		Context:      pc,
		Instructions: instructions,
	}

	if !params.SkipBuild {
		uc.report(ctx, StageBuilding, 0, 0, "forge build", true)
		if err := uc.build.Build(ctx); err != nil {
			return nil, err
		}

		uc.report(ctx, StageGenesis, 0, 0, fmt.Sprintf("chain %d", pc.ChainID), true)
		if err := uc.build.GenerateGenesis(ctx, pc.ChainID, params.Output); err != nil {
			return nil, err
		}
		result.Built = true
	}

	uc.report(ctx, StageCompleted, 0, 0, "", false)
	result.Duration = time.Since(start)
	return result, nil
}

func (uc *GenerateProfile) report(ctx context.Context, stage GenerateStage, current, total int, message string, spinner bool) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   string(stage),
		Current: current,
		Total:   total,
		Message: message,
		Spinner: spinner,
	})
}
