package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// BackupStoreAdapter keeps sibling backups of contract sources.
// A file is copied at most once per run; the set of touched paths lives for
// the lifetime of the adapter, which is one CLI invocation.
type BackupStoreAdapter struct {
	log       *slog.Logger
	sourceExt string
	backupExt string
	strict    bool

	touched map[string]struct{}
}

// NewBackupStoreAdapter creates a new backup store
func NewBackupStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *BackupStoreAdapter {
	return &BackupStoreAdapter{
		log:       log.With("component", "BackupStore"),
		sourceExt: cfg.SourceExt,
		backupExt: cfg.BackupExt,
		strict:    cfg.StrictBackup,
		touched:   make(map[string]struct{}),
	}
}

// BackupPath returns the sibling backup path for a source file
func (s *BackupStoreAdapter) BackupPath(path string) string {
	if s.sourceExt != "" && strings.HasSuffix(path, s.sourceExt) {
		return strings.TrimSuffix(path, s.sourceExt) + s.backupExt
	}
	return path + s.backupExt
}

// originalPath is the inverse of BackupPath
func (s *BackupStoreAdapter) originalPath(backup string) string {
	return strings.TrimSuffix(backup, s.backupExt) + s.sourceExt
}

// Snapshot copies path to its backup on the first call for that path.
// Copy failures are logged and swallowed unless strict backups are enabled.
func (s *BackupStoreAdapter) Snapshot(ctx context.Context, path string) error {
	key := s.key(path)
	if _, ok := s.touched[key]; ok {
		return nil
	}
	// Marked before copying: a retry after a failure would capture an already patched file.
	s.touched[key] = struct{}{}

	backup := s.BackupPath(path)
	if _, err := os.Stat(backup); err == nil {
		s.log.Warn("overwriting backup left by an earlier run", "backup", backup)
	}

	if err := copyFile(path, backup); err != nil {
		bErr := domain.BackupFailedError{Source: path, Destination: backup, Err: err}
		if s.strict {
			return bErr
		}
		s.log.Warn("backup failed, file will not be recoverable", "error", bErr)
		return nil
	}

	s.log.Debug("backed up source", "path", path, "backup", backup)
	return nil
}

// RecoverAll moves every backup found directly under dirs back over its original
func (s *BackupStoreAdapter) RecoverAll(ctx context.Context, dirs []string) ([]string, error) {
	var restored []string

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				s.log.Debug("recover directory does not exist", "dir", dir)
				continue
			}
			return restored, fmt.Errorf("failed to read %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.backupExt) {
				continue
			}

			backup := filepath.Join(dir, entry.Name())
			original := s.originalPath(backup)
			if err := os.Rename(backup, original); err != nil {
				return restored, fmt.Errorf("failed to restore %s: %w", original, err)
			}

			delete(s.touched, s.key(original))
			restored = append(restored, original)
			s.log.Debug("restored source", "path", original)
		}
	}

	sort.Strings(restored)
	return restored, nil
}

func (s *BackupStoreAdapter) key(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// copyFile copies src to dst, keeping the source permissions
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Ensure the adapter implements the interface
var _ usecase.BackupStore = (*BackupStoreAdapter)(nil)
