package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
)

// RecoverSourcesParams contains parameters for restoring backups
type RecoverSourcesParams struct {
	// Dirs overrides the configured recover directories when set.
	// Relative entries are resolved against the project root.
	Dirs []string
}

// RecoverSourcesResult contains the restored source files
type RecoverSourcesResult struct {
	Restored []string
	Dirs     []string
}

// RecoverSources restores every backup in the recover directories over its source file
type RecoverSources struct {
	config  *config.RuntimeConfig
	backups BackupStore
}

// NewRecoverSources creates a new RecoverSources use case
func NewRecoverSources(cfg *config.RuntimeConfig, backups BackupStore) *RecoverSources {
	return &RecoverSources{
		config:  cfg,
		backups: backups,
	}
}

// Run executes the use case
func (uc *RecoverSources) Run(ctx context.Context, params RecoverSourcesParams) (*RecoverSourcesResult, error) {
	dirs := uc.config.RecoverDirs
	if len(params.Dirs) > 0 {
		dirs = make([]string, 0, len(params.Dirs))
		for _, d := range params.Dirs {
			dirs = append(dirs, projectPath(uc.config.ProjectRoot, d, ""))
		}
	}

	restored, err := uc.backups.RecoverAll(ctx, dirs)
	if err != nil {
		return nil, err
	}

	return &RecoverSourcesResult{
		Restored: restored,
		Dirs:     dirs,
	}, nil
}
