package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-genesis/internal/cli/render"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// NewRecoverCmd creates the recover command
func NewRecoverCmd() *cobra.Command {
	var (
		yes  bool
		dirs []string
	)

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Restore patched contract sources from their backups",
		Long: `Move every backup found in the recover directories back over its source
file. The directories default to contracts and contracts/BC_fusion and can be
changed with recover_dirs in trebgen.toml or --dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if !yes && !app.Config.NonInteractive {
				ok, err := app.Selector.Confirm(ctx, "Restore all backups over the current sources")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), render.FormatWarning("Recover cancelled"))
					return nil
				}
			}

			result, err := app.RecoverSources.Run(ctx, usecase.RecoverSourcesParams{Dirs: dirs})
			if err != nil {
				return err
			}

			return render.NewRecoverRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot).Render(result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringSliceVar(&dirs, "dir", nil, "Directory to recover instead of the configured ones, may be repeated")

	return cmd
}
