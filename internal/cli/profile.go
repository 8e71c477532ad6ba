package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/progress"
	"github.com/trebuchet-org/treb-genesis/internal/cli/render"
	"github.com/trebuchet-org/treb-genesis/internal/config"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/profiles"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// paramFlags maps a flag name to the profile parameter it sets
type paramFlags map[string]string

// NewProfileCmd creates the profile command
func NewProfileCmd() *cobra.Command {
	var (
		valuesFile string
		sets       map[string]string
		output     string
		skipBuild  bool
	)

	cmd := &cobra.Command{
		Use:   "profile [name]",
		Short: "Patch the system contracts for a profile and generate the genesis",
		Long: `Patch the system contracts for a network profile, then run the build and
the genesis generator.

Parameters are resolved from, lowest to highest priority: the profile
defaults, [profiles.<name>.params] in trebgen.toml, --values, --set and
the per-parameter flags. Only parameters the profile marks as overridable
are accepted.

Without a name, the profile is picked interactively.`,
		Example: `  trebgen profile mainnet
  trebgen profile dev --chain-id 1337 --init-burn-ratio 0
  trebgen profile qa --values qa.yaml --output genesis-qa.json
  trebgen profile local --set init_batch_size=10 --skip-build`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, p := range profiles.Builtin() {
				names = append(names, p.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var name string
			if len(args) > 0 {
				name = args[0]
			} else {
				p, err := app.Selector.SelectProfile(ctx, app.Profiles.List())
				if err != nil {
					return err
				}
				name = p.Name
			}

			var values map[string]string
			if valuesFile != "" {
				if values, err = config.LoadValuesFile(valuesFile); err != nil {
					return err
				}
			}
			overrides := collectOverrides(cmd.Flags(), flagsFor(cmd), values, sets)

			if sink, ok := app.Progress.(*progress.SpinnerSink); ok {
				defer sink.Stop()
			}

			result, err := app.GenerateProfile.Run(ctx, usecase.GenerateProfileParams{
				Profile:   name,
				Overrides: overrides,
				Output:    output,
				SkipBuild: skipBuild,
			})
			if err != nil {
				return err
			}

			renderer := render.NewGenerateRenderer(cmd.OutOrStdout(), app.Config.Debug)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&valuesFile, "values", "", "YAML or TOML file with parameter values")
	cmd.Flags().StringToStringVar(&sets, "set", nil, "Set a parameter by key (key=value), may be repeated")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Genesis output file passed to the genesis generator")
	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Only patch the sources")

	registerParamFlags(cmd.Flags(), profiles.Builtin())

	return cmd
}

// flagName turns a parameter key into its flag name
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// registerParamFlags adds one string flag for every overridable parameter of
// the given profiles. Parameters shared between profiles get a single flag.
func registerParamFlags(flags *pflag.FlagSet, ps []*domain.Profile) paramFlags {
	specs := map[string]domain.ParamSpec{}
	for _, p := range ps {
		for _, spec := range p.OverridableParams() {
			if _, ok := specs[spec.Key]; !ok {
				specs[spec.Key] = spec
			}
		}
	}

	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	registered := paramFlags{}
	for _, key := range keys {
		name := flagName(key)
		if flags.Lookup(name) != nil {
			continue
		}
		spec := specs[key]
		usage := spec.Usage
		if usage == "" {
			usage = fmt.Sprintf("Value of %s", key)
		}
		flags.String(name, "", usage)
		flags.SetAnnotation(name, paramKeyAnnotation, []string{key})
		registered[name] = key
	}
	return registered
}

const paramKeyAnnotation = "trebgen_param"

// flagsFor recovers the parameter flags registered on cmd
func flagsFor(cmd *cobra.Command) paramFlags {
	registered := paramFlags{}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if keys, ok := f.Annotations[paramKeyAnnotation]; ok && len(keys) == 1 {
			registered[f.Name] = keys[0]
		}
	})
	return registered
}

// collectOverrides merges parameter sources; later sources win:
// values file, --set, then per-parameter flags the user actually set.
func collectOverrides(flags *pflag.FlagSet, registered paramFlags, values, sets map[string]string) map[string]string {
	overrides := make(map[string]string, len(values)+len(sets))
	for k, v := range values {
		overrides[k] = v
	}
	for k, v := range sets {
		overrides[k] = v
	}
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := registered[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	return overrides
}
