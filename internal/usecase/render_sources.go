package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
)

// Default template locations, relative to the project root
const (
	DefaultHoldersTemplate    = "scripts/init_holders.template"
	DefaultHoldersOutput      = "scripts/init_holders.js"
	DefaultValidatorsInput    = "validators.conf"
	DefaultValidatorsTemplate = "scripts/validators.template"
	DefaultValidatorsOutput   = "scripts/validators.js"
)

// RenderResult describes a generated file
type RenderResult struct {
	Output  string
	Records int
}

// RenderHoldersParams contains parameters for rendering init holders
type RenderHoldersParams struct {
	// Holders is a comma separated address list
	Holders  string
	Template string
	Output   string
}

// RenderHolders renders the init holders script from an address list
type RenderHolders struct {
	config   *config.RuntimeConfig
	renderer TemplateRenderer
	writer   FileWriter
}

// NewRenderHolders creates a new RenderHolders use case
func NewRenderHolders(cfg *config.RuntimeConfig, renderer TemplateRenderer, writer FileWriter) *RenderHolders {
	return &RenderHolders{config: cfg, renderer: renderer, writer: writer}
}

// Run executes the use case
func (uc *RenderHolders) Run(ctx context.Context, params RenderHoldersParams) (*RenderResult, error) {
	holders := lo.Map(strings.Split(params.Holders, ","), func(s string, _ int) string { return strings.TrimSpace(s) })
	holders = lo.Compact(holders)
	if len(holders) == 0 {
		return nil, fmt.Errorf("no init holders given")
	}

	templatePath := uc.path(params.Template, DefaultHoldersTemplate)
	output := uc.path(params.Output, DefaultHoldersOutput)

	data := map[string]any{"initHolders": holders}
	if err := renderTo(ctx, uc.renderer, uc.writer, templatePath, output, data); err != nil {
		return nil, err
	}

	return &RenderResult{Output: output, Records: len(holders)}, nil
}

func (uc *RenderHolders) path(p, fallback string) string {
	return projectPath(uc.config.ProjectRoot, p, fallback)
}

// RenderValidatorsParams contains parameters for rendering the validators script
type RenderValidatorsParams struct {
	Input    string
	Template string
	Output   string
}

// RenderValidators renders the validators script from a validators.conf file
type RenderValidators struct {
	config   *config.RuntimeConfig
	source   ValidatorSource
	renderer TemplateRenderer
	writer   FileWriter
}

// NewRenderValidators creates a new RenderValidators use case
func NewRenderValidators(cfg *config.RuntimeConfig, source ValidatorSource, renderer TemplateRenderer, writer FileWriter) *RenderValidators {
	return &RenderValidators{config: cfg, source: source, renderer: renderer, writer: writer}
}

// Run reads every record before rendering, so a malformed line leaves the output untouched
func (uc *RenderValidators) Run(ctx context.Context, params RenderValidatorsParams) (*RenderResult, error) {
	input := projectPath(uc.config.ProjectRoot, params.Input, DefaultValidatorsInput)
	templatePath := projectPath(uc.config.ProjectRoot, params.Template, DefaultValidatorsTemplate)
	output := projectPath(uc.config.ProjectRoot, params.Output, DefaultValidatorsOutput)

	records, err := uc.source.ReadValidators(ctx, input)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"validators": lo.Map(records, func(r domain.ValidatorRecord, _ int) map[string]string {
			return map[string]string{
				"consensusAddr": r.ConsensusAddr,
				"feeAddr":       r.FeeAddr,
				"bscFeeAddr":    r.BSCFeeAddr,
				"votingPower":   r.VotingPower,
				"bLSPublicKey":  r.BLSPublicKey,
			}
		}),
	}

	if err := renderTo(ctx, uc.renderer, uc.writer, templatePath, output, data); err != nil {
		return nil, err
	}

	return &RenderResult{Output: output, Records: len(records)}, nil
}

func renderTo(ctx context.Context, renderer TemplateRenderer, writer FileWriter, templatePath, output string, data map[string]any) error {
	content, err := renderer.Render(ctx, templatePath, domain.OutputFormatForPath(output), data)
	if err != nil {
		return err
	}
	if err := writer.WriteFile(ctx, output, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return nil
}

// projectPath resolves p (or fallback when p is empty) against the project root
func projectPath(root, p, fallback string) string {
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
