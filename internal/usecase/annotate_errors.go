package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
)

// DefaultAnnotateDir is the directory scanned for error declarations
const DefaultAnnotateDir = "contracts/BC_fusion"

// AnnotateErrorsParams contains parameters for annotating error selectors
type AnnotateErrorsParams struct {
	Dir string
}

// AnnotatedFile is the outcome for one source file
type AnnotatedFile struct {
	Path       string
	Signatures []domain.ErrorSignature
	Changed    bool
}

// AnnotateErrorsResult contains the per-file outcome
type AnnotateErrorsResult struct {
	Dir   string
	Files []AnnotatedFile
}

// Changed returns the number of rewritten files
func (r *AnnotateErrorsResult) Changed() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// AnnotateErrors writes selector annotations for every source file in a directory
type AnnotateErrors struct {
	config    *config.RuntimeConfig
	files     FileWriter
	annotator ErrorAnnotator
	log       *slog.Logger
}

// NewAnnotateErrors creates a new AnnotateErrors use case
func NewAnnotateErrors(cfg *config.RuntimeConfig, files FileWriter, annotator ErrorAnnotator, log *slog.Logger) *AnnotateErrors {
	return &AnnotateErrors{
		config:    cfg,
		files:     files,
		annotator: annotator,
		log:       log.With("component", "AnnotateErrors"),
	}
}

// Run processes each source file independently; the first failure stops the run
func (uc *AnnotateErrors) Run(ctx context.Context, params AnnotateErrorsParams) (*AnnotateErrorsResult, error) {
	dir := projectPath(uc.config.ProjectRoot, params.Dir, DefaultAnnotateDir)

	paths, err := uc.files.ListFiles(ctx, dir, uc.config.SourceExt)
	if err != nil {
		return nil, err
	}

	result := &AnnotateErrorsResult{Dir: dir}
	for _, path := range paths {
		sigs, changed, err := uc.annotator.AnnotateFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to annotate %s: %w", path, err)
		}
		uc.log.Debug("annotated file", "file", path, "errors", len(sigs), "changed", changed)
		result.Files = append(result.Files, AnnotatedFile{Path: path, Signatures: sigs, Changed: changed})
	}

	return result, nil
}
