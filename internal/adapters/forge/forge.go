package forge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// BuildAdapter compiles patched sources and invokes the genesis generator
type BuildAdapter struct {
	log         *slog.Logger
	runner      CommandRunner
	projectRoot string
	tools       config.Tools
	debug       bool
}

// NewBuildAdapter creates a new build trigger
func NewBuildAdapter(cfg *config.RuntimeConfig, runner CommandRunner, log *slog.Logger) *BuildAdapter {
	return &BuildAdapter{
		log:         log.With("component", "BuildAdapter"),
		runner:      runner,
		projectRoot: cfg.ProjectRoot,
		tools:       cfg.Tools,
		debug:       cfg.Debug,
	}
}

// Build runs the configured build tool (forge build by default)
func (b *BuildAdapter) Build(ctx context.Context) error {
	start := time.Now()
	b.log.Debug("running build", "dir", b.projectRoot)

	if err := b.run(ctx, b.tools.Build.Path, b.tools.Build.Args); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	b.log.Debug("build completed successfully", "duration", time.Since(start))
	return nil
}

// GenerateGenesis runs the genesis generator for chainID.
// output is passed through as --output when set.
func (b *BuildAdapter) GenerateGenesis(ctx context.Context, chainID uint64, output string) error {
	args := append([]string{}, b.tools.Genesis.Args...)
	args = append(args, "--chainId", strconv.FormatUint(chainID, 10))
	if output != "" {
		args = append(args, "--output", output)
	}

	start := time.Now()
	b.log.Debug("generating genesis", "chain_id", chainID, "output", output)

	if err := b.run(ctx, b.tools.Genesis.Path, args); err != nil {
		return fmt.Errorf("genesis generation failed: %w", err)
	}

	b.log.Debug("genesis generated", "duration", time.Since(start))
	return nil
}

func (b *BuildAdapter) run(ctx context.Context, name string, args []string) error {
	if b.debug {
		return b.runner.Stream(ctx, b.projectRoot, os.Stderr, name, args...)
	}
	_, err := b.runner.Output(ctx, b.projectRoot, name, args...)
	return err
}

// Ensure the adapter implements the interface
var _ usecase.BuildTrigger = (*BuildAdapter)(nil)
