package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
)

const (
	// ConfigFileName is the optional project configuration file
	ConfigFileName = "trebgen.toml"

	EncoderNode   = "node"
	EncoderNative = "native"
)

// DefaultFileConfig returns the configuration used when trebgen.toml is absent
func DefaultFileConfig() config.TrebgenFileConfig {
	return config.TrebgenFileConfig{
		ContractsDir: "contracts",
		BackupExt:    ".bak",
		SourceExt:    ".sol",
		RecoverDirs:  []string{"contracts", "contracts/BC_fusion"},
		Encoder:      EncoderNode,
		Tools: config.Tools{
			Build:            config.Command{Path: "forge", Args: []string{"build"}},
			Genesis:          config.Command{Path: "node", Args: []string{"scripts/generate-genesis.js"}},
			ValidatorEncoder: config.Command{Path: "node", Args: []string{"scripts/validators.js"}},
			ValidatorsFile:   "validators.conf",
		},
	}
}

// loadEnvFiles loads .env and .env.local from the project root, if present
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadTrebgenConfig loads trebgen.toml over the defaults.
// Returns the defaults and an empty path when the file does not exist.
func loadTrebgenConfig(projectRoot string) (config.TrebgenFileConfig, string, error) {
	cfg := DefaultFileConfig()
	path := filepath.Join(projectRoot, ConfigFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, "", nil
	}

	var raw config.TrebgenFileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return cfg, "", fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	mergeFileConfig(&cfg, &raw)
	return cfg, path, nil
}

// mergeFileConfig overlays the non-zero fields of raw onto cfg
func mergeFileConfig(cfg, raw *config.TrebgenFileConfig) {
	if raw.ContractsDir != "" {
		cfg.ContractsDir = raw.ContractsDir
	}
	if raw.BackupExt != "" {
		cfg.BackupExt = raw.BackupExt
	}
	if raw.SourceExt != "" {
		cfg.SourceExt = raw.SourceExt
	}
	if len(raw.RecoverDirs) > 0 {
		cfg.RecoverDirs = raw.RecoverDirs
	}
	if raw.Encoder != "" {
		cfg.Encoder = raw.Encoder
	}
	cfg.StrictBackup = raw.StrictBackup

	if !raw.Tools.Build.IsZero() {
		cfg.Tools.Build = raw.Tools.Build
	}
	if !raw.Tools.Genesis.IsZero() {
		cfg.Tools.Genesis = raw.Tools.Genesis
	}
	if !raw.Tools.ValidatorEncoder.IsZero() {
		cfg.Tools.ValidatorEncoder = raw.Tools.ValidatorEncoder
	}
	if raw.Tools.ValidatorsFile != "" {
		cfg.Tools.ValidatorsFile = raw.Tools.ValidatorsFile
	}

	if len(raw.Profiles) > 0 {
		cfg.Profiles = make(map[string]config.ProfileFileConfig, len(raw.Profiles))
		for name, p := range raw.Profiles {
			for key, value := range p.Params {
				p.Params[key] = os.ExpandEnv(value)
			}
			cfg.Profiles[name] = p
		}
	}
}
