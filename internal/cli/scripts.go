package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-genesis/internal/cli/render"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// argAt returns args[i] or an empty string
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// NewRenderHoldersCmd creates the render-holders command
func NewRenderHoldersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render-holders <addr,addr,...> [template] [output]",
		Short: "Generate the init holders script",
		Long: `Render the init holders template with a comma separated address list.

Defaults: template scripts/init_holders.template, output scripts/init_holders.js.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RenderHolders.Run(cmd.Context(), usecase.RenderHoldersParams{
				Holders:  args[0],
				Template: argAt(args, 1),
				Output:   argAt(args, 2),
			})
			if err != nil {
				return err
			}

			return render.NewRenderOutputRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot, "holders").Render(result)
		},
	}
}

// NewRenderValidatorsCmd creates the render-validators command
func NewRenderValidatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render-validators [input] [template] [output]",
		Short: "Generate the validators script from validators.conf",
		Long: `Render the validators template from a validators.conf file. Each line
holds five comma separated fields: consensus address, fee address, BSC fee
address, voting power and BLS public key. Nothing is written if a line is
malformed.

Defaults: input validators.conf, template scripts/validators.template,
output scripts/validators.js.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RenderValidators.Run(cmd.Context(), usecase.RenderValidatorsParams{
				Input:    argAt(args, 0),
				Template: argAt(args, 1),
				Output:   argAt(args, 2),
			})
			if err != nil {
				return err
			}

			return render.NewRenderOutputRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot, "validators").Render(result)
		},
	}
}

// NewEncodeValidatorsCmd creates the encode-validators command
func NewEncodeValidatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode-validators [input]",
		Short: "Print the RLP encoded init validator set and the genesis extra data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.EncodeValidators.Run(cmd.Context(), usecase.EncodeValidatorsParams{
				Input: argAt(args, 0),
			})
			if err != nil {
				return err
			}

			return render.NewEncodeRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}

// NewAnnotateErrorsCmd creates the annotate-errors command
func NewAnnotateErrorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate-errors [dir]",
		Short: "Annotate custom error declarations with their selectors",
		Long: `Write a '// @notice signature: 0x...' line above every custom error
declaration in the Solidity files of a directory (default contracts/BC_fusion).
Existing annotations are updated in place; unchanged files are not rewritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.AnnotateErrors.Run(cmd.Context(), usecase.AnnotateErrorsParams{
				Dir: argAt(args, 0),
			})
			if err != nil {
				return err
			}

			return render.NewAnnotateRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot, app.Config.Debug).Render(result)
		},
	}
}
