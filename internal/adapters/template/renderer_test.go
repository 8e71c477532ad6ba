package template

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
)

const validatorsTemplate = `const validators = [
{{- range $i, $v := .validators}}
  { consensusAddr: "{{$v.consensusAddr}}", votingPower: {{$v.votingPower}} }{{if not (last $i $.validators)}},{{end}}
{{- end}}
];
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.template")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newRenderer() *RendererAdapter {
	return NewRendererAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRenderValidators(t *testing.T) {
	path := writeTemplate(t, validatorsTemplate)
	data := map[string]any{
		"validators": []map[string]string{
			{"consensusAddr": "0xA1", "votingPower": "0x64"},
			{"consensusAddr": "0xA2", "votingPower": "0x65"},
			{"consensusAddr": "0xA3", "votingPower": "0x66"},
		},
	}

	out, err := newRenderer().Render(context.Background(), path, domain.OutputFormatJS, data)
	require.NoError(t, err)

	expected := `const validators = [
  { consensusAddr: "0xA1", votingPower: 0x64 },
  { consensusAddr: "0xA2", votingPower: 0x65 },
  { consensusAddr: "0xA3", votingPower: 0x66 }
];
`
	assert.Equal(t, expected, out)
}

func TestRenderHolders(t *testing.T) {
	path := writeTemplate(t, `{{range .initHolders}}{{.}};{{end}}`)

	out, err := newRenderer().Render(context.Background(), path, domain.OutputFormatText, map[string]any{
		"initHolders": []string{"0x1", "0x2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "0x1;0x2;", out)
}

func TestRenderEscaping(t *testing.T) {
	path := writeTemplate(t, `{{.value}}`)

	tests := []struct {
		format domain.OutputFormat
		want   string
	}{
		{format: domain.OutputFormatText, want: `a"<b>'`},
		{format: domain.OutputFormatJS, want: `a\"\u003Cb\u003E\'`},
		{format: domain.OutputFormatHTML, want: `a&#34;&lt;b&gt;&#39;`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			out, err := newRenderer().Render(context.Background(), path, tt.format, map[string]any{"value": `a"<b>'`})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderTemplateNotFound(t *testing.T) {
	_, err := newRenderer().Render(context.Background(), filepath.Join(t.TempDir(), "missing.template"), domain.OutputFormatJS, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTemplateNotFound))
}

func TestRenderMissingKey(t *testing.T) {
	path := writeTemplate(t, `{{.validators}}`)
	_, err := newRenderer().Render(context.Background(), path, domain.OutputFormatJS, map[string]any{})
	assert.Error(t, err)
}

func TestOutputFormatForPath(t *testing.T) {
	assert.Equal(t, domain.OutputFormatJS, domain.OutputFormatForPath("scripts/validators.js"))
	assert.Equal(t, domain.OutputFormatHTML, domain.OutputFormatForPath("index.HTML"))
	assert.Equal(t, domain.OutputFormatText, domain.OutputFormatForPath("validators.conf"))
}
