package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ContractsDir string // absolute

	// Backup settings
	BackupExt    string   // e.g. ".bak"
	SourceExt    string   // e.g. ".sol"
	RecoverDirs  []string // absolute, scanned non-recursively by recover
	StrictBackup bool     // fail the run when a snapshot cannot be written

	// Execution settings
	Debug          bool
	NonInteractive bool

	// Validator-set encoder used by profiles that need one: "node" or "native"
	Encoder string

	Tools Tools

	// Profiles declared or overridden in trebgen.toml
	Profiles map[string]ProfileFileConfig

	// ConfigFile is the trebgen.toml that was loaded, empty if none
	ConfigFile string
}

// Tools configures the external collaborators invoked by a run
type Tools struct {
	Build            Command `toml:"build"`
	Genesis          Command `toml:"genesis"`
	ValidatorEncoder Command `toml:"validator_encoder"`
	// ValidatorsFile is read by the native encoder
	ValidatorsFile string `toml:"validators_file"`
}

// Command is an executable plus its fixed leading arguments
type Command struct {
	Path string   `toml:"path"`
	Args []string `toml:"args"`
}

// IsZero reports whether no command was configured
func (c Command) IsZero() bool {
	return c.Path == ""
}
