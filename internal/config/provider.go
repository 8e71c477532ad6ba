package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	// .env first so trebgen.toml values can reference it
	loadEnvFiles(projectRoot)

	fileCfg, configFile, err := loadTrebgenConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ContractsDir:   resolvePath(projectRoot, fileCfg.ContractsDir),
		BackupExt:      fileCfg.BackupExt,
		SourceExt:      fileCfg.SourceExt,
		StrictBackup:   fileCfg.StrictBackup || v.GetBool("strict_backup"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Encoder:        fileCfg.Encoder,
		Tools:          fileCfg.Tools,
		Profiles:       fileCfg.Profiles,
		ConfigFile:     configFile,
	}

	if enc := v.GetString("encoder"); enc != "" {
		cfg.Encoder = enc
	}
	switch cfg.Encoder {
	case EncoderNode, EncoderNative:
	default:
		return nil, fmt.Errorf("invalid encoder %q: expected %q or %q", cfg.Encoder, EncoderNode, EncoderNative)
	}

	for _, dir := range fileCfg.RecoverDirs {
		cfg.RecoverDirs = append(cfg.RecoverDirs, resolvePath(projectRoot, dir))
	}
	cfg.Tools.ValidatorsFile = resolvePath(projectRoot, cfg.Tools.ValidatorsFile)

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml or trebgen.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{ConfigFileName, "foundry.toml"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a contracts project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("TREBGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("strict_backup", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		bindFlags(v, cmd.Flags())
		bindFlags(v, cmd.InheritedFlags())
	}

	return v
}

// bindFlags binds changed flags under their snake_case key
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}

// resolvePath makes p absolute relative to root
func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
