package template

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// RendererAdapter renders generated sources (init holders, validators) from template files
type RendererAdapter struct {
	log *slog.Logger
}

// NewRendererAdapter creates a new template renderer
func NewRendererAdapter(log *slog.Logger) *RendererAdapter {
	return &RendererAdapter{log: log.With("component", "TemplateRenderer")}
}

// Render executes the template at templatePath against data.
// String values in data are escaped for format before execution.
func (r *RendererAdapter) Render(ctx context.Context, templatePath string, format domain.OutputFormat, data map[string]any) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, templatePath)
		}
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	t, err := template.New(filepath.Base(templatePath)).
		Option("missingkey=error").
		Funcs(funcMap).
		Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templatePath, err)
	}

	escaped := escapeValue(data, escaperFor(format))

	var buf bytes.Buffer
	if err := t.Execute(&buf, escaped); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templatePath, err)
	}

	r.log.Debug("rendered template", "template", templatePath, "format", format, "bytes", buf.Len())
	return buf.String(), nil
}

var funcMap = template.FuncMap{
	"join": strings.Join,
	// last reports whether i is the final index of list
	"last": func(i int, list any) bool {
		v := reflect.ValueOf(list)
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			return i == v.Len()-1
		default:
			return false
		}
	},
}

func escaperFor(format domain.OutputFormat) func(string) string {
	switch format {
	case domain.OutputFormatJS:
		return template.JSEscapeString
	case domain.OutputFormatHTML:
		return html.EscapeString
	default:
		return func(s string) string { return s }
	}
}

func escapeValue(v any, esc func(string) string) any {
	switch val := v.(type) {
	case string:
		return esc(val)
	case []string:
		return lo.Map(val, func(s string, _ int) string { return esc(s) })
	case map[string]string:
		return lo.MapValues(val, func(s string, _ string) string { return esc(s) })
	case []map[string]string:
		return lo.Map(val, func(m map[string]string, _ int) map[string]string {
			return lo.MapValues(m, func(s string, _ string) string { return esc(s) })
		})
	case map[string]any:
		return lo.MapValues(val, func(item any, _ string) any { return escapeValue(item, esc) })
	case []any:
		return lo.Map(val, func(item any, _ int) any { return escapeValue(item, esc) })
	default:
		return v
	}
}

// Ensure the adapter implements the interface
var _ usecase.TemplateRenderer = (*RendererAdapter)(nil)
