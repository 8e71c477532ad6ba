package domain

import (
	"fmt"
	"sort"
)

// Environment gates optional instructions
type Environment string

const (
	EnvironmentDefault     Environment = ""
	EnvironmentDevelopment Environment = "development"
)

// Well-known parameter keys
const (
	// ParamValidatorSetBytes is filled from the validator-set encoder for profiles that need it
	ParamValidatorSetBytes = "init_validatorset_bytes"
	// ParamChainID lets a profile expose its chain ID as an overridable parameter
	ParamChainID           = "chain_id"
)

// MaxChainID is the largest chain ID that fits the 2-byte encoding used by the system contracts
const MaxChainID = 0xffff

// ParamSpec declares a literal parameter of a profile
type ParamSpec struct {
	Key     string
	Default string
	Usage   string
	// Overridable parameters may be set from config, value files and flags.
	Overridable bool
}

// Profile is a named, ordered bundle of patch groups for one deployment environment
type Profile struct {
	Name        string
	Network     string
	ChainID     uint64
	Environment Environment
	Description string

	// Groups are patch group names, applied in order
	Groups []string
	Params []ParamSpec

	// ValidatorSetFromEncoder makes the run obtain init_validatorset_bytes
	// from the validator-set encoder before any instruction is applied.
	ValidatorSetFromEncoder bool

	// Source is "builtin" or the config file that declared the profile
	Source string
}

// IsDevelopment reports whether development-gated instructions apply
func (p *Profile) IsDevelopment() bool {
	return p.Environment == EnvironmentDevelopment
}

// Param returns the parameter declared under key
func (p *Profile) Param(key string) (ParamSpec, bool) {
	for _, spec := range p.Params {
		if spec.Key == key {
			return spec, true
		}
	}
	return ParamSpec{}, false
}

// OverridableParams returns the parameters that callers may set, sorted by key
func (p *Profile) OverridableParams() []ParamSpec {
	var specs []ParamSpec
	for _, spec := range p.Params {
		if spec.Overridable {
			specs = append(specs, spec)
		}
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Key < specs[j].Key })
	return specs
}

// ProfileContext is the fully resolved input of one profile run.
// It is passed explicitly into every patch group builder.
type ProfileContext struct {
	Profile    *Profile
	Network    string
	ChainID    uint64
	HexChainID string
	Params     map[string]string
}

// IsDevelopment reports whether development-gated instructions apply
func (c *ProfileContext) IsDevelopment() bool {
	return c.Profile != nil && c.Profile.IsDevelopment()
}

// Get returns a parameter or ErrMissingParameter
func (c *ProfileContext) Get(key string) (string, error) {
	v, ok := c.Params[key]
	if !ok {
		return "", fmt.Errorf("%w: %s (profile %s)", ErrMissingParameter, key, c.Profile.Name)
	}
	return v, nil
}

// EncodeChainID renders a chain ID as 4 hex digits (2 bytes, big endian)
func EncodeChainID(chainID uint64) (string, error) {
	if chainID > MaxChainID {
		return "", fmt.Errorf("%w: %d does not fit in 2 bytes", ErrInvalidChainID, chainID)
	}
	return fmt.Sprintf("%04x", chainID), nil
}
