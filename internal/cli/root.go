package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-genesis/internal/app"
	"github.com/trebuchet-org/treb-genesis/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trebgen",
		Short: "Generate BSC genesis system contracts",
		Long: `trebgen patches the BSC system contract sources for a network profile
(chain ID, relayer whitelist, consensus state, validator set, ...) and then
builds the contracts and the genesis state.

Every touched source is backed up first; run 'trebgen recover' to restore them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipAppInit(cmd.Name()) {
				return nil
			}

			projectRoot, _ := cmd.Flags().GetString("project-root")
			if projectRoot == "" {
				var err error
				projectRoot, err = config.FindProjectRoot()
				if err != nil {
					return err
				}
			}

			// Set up viper with every flag the user set
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output and stream tool output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with foundry.toml or trebgen.toml)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "scripts",
		Title: "Script Commands",
	})

	// Main commands
	profileCmd := NewProfileCmd()
	profileCmd.GroupID = "main"
	rootCmd.AddCommand(profileCmd)

	profilesCmd := NewProfilesCmd()
	profilesCmd.GroupID = "main"
	rootCmd.AddCommand(profilesCmd)

	recoverCmd := NewRecoverCmd()
	recoverCmd.GroupID = "main"
	rootCmd.AddCommand(recoverCmd)

	// Script commands
	for _, cmd := range []*cobra.Command{
		NewRenderHoldersCmd(),
		NewRenderValidatorsCmd(),
		NewEncodeValidatorsCmd(),
		NewAnnotateErrorsCmd(),
	} {
		cmd.GroupID = "scripts"
		rootCmd.AddCommand(cmd)
	}

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipAppInit reports whether a command runs without a project
func skipAppInit(name string) bool {
	switch name {
	case "version", "help", "completion", "__complete":
		return true
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
