package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// RecoverRenderer renders restored backups
type RecoverRenderer struct {
	out  io.Writer
	root string
}

// NewRecoverRenderer creates a new recover renderer
func NewRecoverRenderer(out io.Writer, root string) Renderer[*usecase.RecoverSourcesResult] {
	return &RecoverRenderer{out: out, root: root}
}

func (r *RecoverRenderer) Render(result *usecase.RecoverSourcesResult) error {
	if len(result.Restored) == 0 {
		fmt.Fprintln(r.out, "No backups found")
		return nil
	}

	for _, path := range result.Restored {
		fmt.Fprintf(r.out, "  restored %s\n", relPath(r.root, path))
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Recovered %d source files", len(result.Restored))))
	return nil
}

// RenderOutputRenderer renders generated script files
type RenderOutputRenderer struct {
	out  io.Writer
	root string
	what string
}

// NewRenderOutputRenderer creates a renderer for a generated file; what names the records
func NewRenderOutputRenderer(out io.Writer, root, what string) Renderer[*usecase.RenderResult] {
	return &RenderOutputRenderer{out: out, root: root, what: what}
}

func (r *RenderOutputRenderer) Render(result *usecase.RenderResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Generated %s with %d %s", relPath(r.root, result.Output), result.Records, r.what)))
	return nil
}

// AnnotateRenderer renders error selector annotations
type AnnotateRenderer struct {
	out     io.Writer
	root    string
	verbose bool
}

// NewAnnotateRenderer creates a new annotate renderer
func NewAnnotateRenderer(out io.Writer, root string, verbose bool) Renderer[*usecase.AnnotateErrorsResult] {
	return &AnnotateRenderer{out: out, root: root, verbose: verbose}
}

func (r *AnnotateRenderer) Render(result *usecase.AnnotateErrorsResult) error {
	selector := color.New(color.FgCyan)
	for _, f := range result.Files {
		if !f.Changed && !r.verbose {
			continue
		}
		fmt.Fprintf(r.out, "%s\n", relPath(r.root, f.Path))
		for _, sig := range f.Signatures {
			fmt.Fprintf(r.out, "  %s  %s\n", selector.Sprint(sig.Selector), sig.Signature)
		}
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Annotated %d of %d files in %s",
		result.Changed(), len(result.Files), relPath(r.root, result.Dir))))
	return nil
}

// EncodeRenderer prints an encoded validator set
type EncodeRenderer struct {
	out io.Writer
}

// NewEncodeRenderer creates a new encode renderer
func NewEncodeRenderer(out io.Writer) Renderer[*usecase.EncodeValidatorsResult] {
	return &EncodeRenderer{out: out}
}

func (r *EncodeRenderer) Render(result *usecase.EncodeValidatorsResult) error {
	enc := result.Encoding
	fmt.Fprintf(r.out, "validators:        %d\n", enc.Validators)
	fmt.Fprintf(r.out, "validatorSetBytes: 0x%s\n", enc.ValidatorSetBytes)
	fmt.Fprintf(r.out, "extraData:         %s\n", enc.ExtraData)
	return nil
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !filepath.IsAbs(rel) && rel != "" {
		return rel
	}
	return path
}
