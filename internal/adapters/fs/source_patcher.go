package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/domain/patch"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// SourcePatcherAdapter applies patch instructions to files under the contracts directory
type SourcePatcherAdapter struct {
	log          *slog.Logger
	contractsDir string
	backups      usecase.BackupStore
}

// NewSourcePatcherAdapter creates a new source patcher
func NewSourcePatcherAdapter(cfg *config.RuntimeConfig, backups usecase.BackupStore, log *slog.Logger) *SourcePatcherAdapter {
	return &SourcePatcherAdapter{
		log:          log.With("component", "SourcePatcher"),
		contractsDir: cfg.ContractsDir,
		backups:      backups,
	}
}

// Apply snapshots the target, then reads, edits and rewrites it.
// The file is not written when the anchor is missing.
func (p *SourcePatcherAdapter) Apply(ctx context.Context, ins domain.Instruction) error {
	switch ins.Action {
	case domain.ReplaceParameter:
		return p.ReplaceParameter(ctx, ins.Target, ins.Pattern, ins.Payload)
	case domain.ReplaceFirstMatch:
		return p.Replace(ctx, ins.Target, ins.Pattern, ins.Payload, ins.Count)
	case domain.InsertBeforeLine:
		return p.InsertBefore(ctx, ins.Target, ins.Pattern, ins.Payload)
	default:
		return fmt.Errorf("unknown patch action %q", ins.Action)
	}
}

// ReplaceParameter sets `<prefix> = <value>;` at the first declaration of prefix
func (p *SourcePatcherAdapter) ReplaceParameter(ctx context.Context, target, prefix, value string) error {
	return p.edit(ctx, target, patch.ParameterPattern(prefix).String(), func(content string) (string, bool) {
		return patch.ReplaceParameter(content, prefix, value)
	})
}

// Replace substitutes replacement for the first count matches of expr
func (p *SourcePatcherAdapter) Replace(ctx context.Context, target, expr, replacement string, count int) error {
	pattern, err := patch.Compile(expr)
	if err != nil {
		return err
	}
	return p.edit(ctx, target, expr, func(content string) (string, bool) {
		out, n := patch.Replace(content, pattern, replacement, count)
		return out, n > 0
	})
}

// InsertBefore adds line before the first line matching expr
func (p *SourcePatcherAdapter) InsertBefore(ctx context.Context, target, expr, line string) error {
	pattern, err := patch.Compile(expr)
	if err != nil {
		return err
	}
	return p.edit(ctx, target, expr, func(content string) (string, bool) {
		return patch.InsertBefore(content, pattern, line)
	})
}

func (p *SourcePatcherAdapter) edit(ctx context.Context, target, expr string, fn func(string) (string, bool)) error {
	path := p.resolve(target)

	if err := p.backups.Snapshot(ctx, path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", target, err)
	}

	out, found := fn(string(data))
	if !found {
		return domain.PatternNotFoundError{Target: target, Pattern: expr}
	}

	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	p.log.Debug("patched source", "target", target, "pattern", expr)
	return nil
}

func (p *SourcePatcherAdapter) resolve(target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(p.contractsDir, filepath.FromSlash(target))
}

// Ensure the adapter implements the interface
var _ usecase.SourcePatcher = (*SourcePatcherAdapter)(nil)
