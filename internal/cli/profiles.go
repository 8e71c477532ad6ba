package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-genesis/internal/cli/render"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// NewProfilesCmd creates the profiles command
func NewProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"ls"},
		Short:   "List available profiles",
		Long: `List the built-in profiles and the profiles declared in trebgen.toml,
with their chain ID, its 2-byte encoding and the patch groups they apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProfiles.Run(cmd.Context(), usecase.ListProfilesParams{})
			if err != nil {
				return err
			}

			renderer := render.NewProfilesRenderer(cmd.OutOrStdout(), !color.NoColor)
			return renderer.Render(result)
		},
	}
}
