package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// GenerateRenderer renders profile run results
type GenerateRenderer struct {
	out     io.Writer
	verbose bool
}

// NewGenerateRenderer creates a new generate renderer
func NewGenerateRenderer(out io.Writer, verbose bool) Renderer[*usecase.GenerateProfileResult] {
	return &GenerateRenderer{out: out, verbose: verbose}
}

func (r *GenerateRenderer) Render(result *usecase.GenerateProfileResult) error {
	pc := result.Context
	if r.verbose {
		for _, ins := range result.Instructions {
			fmt.Fprintf(r.out, "  %s\n", color.New(color.Faint).Sprint(ins.String()))
		}
	}

	if !result.Built {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Patched %d instructions for %s (chain %d), build skipped",
			len(result.Instructions), pc.Profile.Name, pc.ChainID)))
		return nil
	}

	fmt.Fprintf(r.out, "Generate genesis of %s successfully\n", pc.Profile.Name)
	return nil
}
