package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	profileNameStyle = color.New(color.FgCyan, color.Bold)
	devTagStyle      = color.New(color.FgYellow)
	sourceStyle      = color.New(color.Faint)
)

// ProfilesRenderer renders the profile table
type ProfilesRenderer struct {
	out   io.Writer
	color bool
}

// NewProfilesRenderer creates a new profiles renderer
func NewProfilesRenderer(out io.Writer, color bool) Renderer[*usecase.ListProfilesResult] {
	return &ProfilesRenderer{out: out, color: color}
}

func (r *ProfilesRenderer) Render(result *usecase.ListProfilesResult) error {
	if len(result.Profiles) == 0 {
		fmt.Fprintln(r.out, "No profiles available")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = true
	t.Style().Format.Header = text.FormatDefault
	t.Style().Box.PaddingRight = "  "

	t.AppendHeader(table.Row{"Profile", "Network", "Chain ID", "Hex", "Tag", "Source", "Groups"})

	title := cases.Title(language.English)
	for _, s := range result.Profiles {
		p := s.Profile

		hex := s.HexChainID
		if s.Error != nil {
			hex = "invalid"
		}
		tag := "-"
		if p.IsDevelopment() {
			tag = title.String(string(p.Environment))
		}

		t.AppendRow(table.Row{
			r.style(profileNameStyle, p.Name),
			p.Network,
			p.ChainID,
			"0x" + hex,
			r.style(devTagStyle, tag),
			r.style(sourceStyle, p.Source),
			strings.Join(p.Groups, ", "),
		})
	}

	t.Render()
	return nil
}

func (r *ProfilesRenderer) style(c *color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}
