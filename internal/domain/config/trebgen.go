package config

// TrebgenFileConfig is the raw structure of trebgen.toml
//
//	contracts_dir = "contracts"
//	recover_dirs  = ["contracts", "contracts/BC_fusion"]
//	strict_backup = false
//	encoder       = "node"
//
//	[tools.build]
//	path = "forge"
//	args = ["build"]
//
//	[profiles.local]
//	extends = "dev"
//	chain_id = 1337
//	[profiles.local.params]
//	whitelist_1 = "0x..."
type TrebgenFileConfig struct {
	ContractsDir string                       `toml:"contracts_dir"`
	BackupExt    string                       `toml:"backup_ext"`
	SourceExt    string                       `toml:"source_ext"`
	RecoverDirs  []string                     `toml:"recover_dirs"`
	StrictBackup bool                         `toml:"strict_backup"`
	Encoder      string                       `toml:"encoder"`
	Tools        Tools                        `toml:"tools"`
	Profiles     map[string]ProfileFileConfig `toml:"profiles"`
}

// ProfileFileConfig declares a new profile or overrides parameters of an existing one
type ProfileFileConfig struct {
	// Extends names the profile this one is based on. Empty means the entry
	// only overrides parameters of the built-in profile of the same name.
	Extends     string            `toml:"extends" yaml:"extends"`
	Network     string            `toml:"network" yaml:"network"`
	ChainID     uint64            `toml:"chain_id" yaml:"chain_id"`
	Development *bool             `toml:"development" yaml:"development"`
	Description string            `toml:"description" yaml:"description"`
	ExtraGroups []string          `toml:"extra_groups" yaml:"extra_groups"`
	Params      map[string]string `toml:"params" yaml:"params"`
}
