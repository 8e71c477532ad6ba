package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
)

// ProfileRegistry resolves profile names into ordered patch instructions
type ProfileRegistry interface {
	List() []*domain.Profile
	Lookup(name string) (*domain.Profile, error)
	// Resolve merges parameter defaults, config overrides and caller overrides
	Resolve(name string, overrides map[string]string) (*domain.ProfileContext, error)
	// Instructions expands the profile's patch groups in declaration order
	Instructions(pc *domain.ProfileContext) ([]domain.Instruction, error)
}

// SourcePatcher applies a single instruction to a contract source file
type SourcePatcher interface {
	Apply(ctx context.Context, instruction domain.Instruction) error
}

// BackupStore snapshots files before their first mutation in a run and restores them
type BackupStore interface {
	Snapshot(ctx context.Context, path string) error
	// RecoverAll restores every backup directly under dirs and returns the restored originals
	RecoverAll(ctx context.Context, dirs []string) ([]string, error)
}

// BuildTrigger compiles the patched sources and writes the genesis state
type BuildTrigger interface {
	Build(ctx context.Context) error
	GenerateGenesis(ctx context.Context, chainID uint64, output string) error
}

// ValidatorSetEncoder produces the encoded initial validator set, hex without 0x prefix
type ValidatorSetEncoder interface {
	EncodeValidatorSet(ctx context.Context) (string, error)
}

// ValidatorSetCodec encodes validator records in-process
type ValidatorSetCodec interface {
	Encode(records []domain.ValidatorRecord) (*domain.ValidatorSetEncoding, error)
}

// ValidatorSource reads validators.conf style files
type ValidatorSource interface {
	ReadValidators(ctx context.Context, path string) ([]domain.ValidatorRecord, error)
}

// TemplateRenderer renders structured data through a template file
type TemplateRenderer interface {
	Render(ctx context.Context, templatePath string, format domain.OutputFormat, data map[string]any) (string, error)
}

// FileWriter handles generated output files
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content string) error
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
	// ListFiles lists files directly under dir with the given extension
	ListFiles(ctx context.Context, dir string, ext string) ([]string, error)
}

// ErrorAnnotator maintains selector annotations above error declarations
type ErrorAnnotator interface {
	// AnnotateFile updates one file and reports the declarations found and whether it changed
	AnnotateFile(ctx context.Context, path string) ([]domain.ErrorSignature, bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// Selector asks the user to pick or confirm
type Selector interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
	SelectProfile(ctx context.Context, profiles []*domain.Profile) (*domain.Profile, error)
}
