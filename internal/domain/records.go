package domain

import (
	"path/filepath"
	"strings"
)

// ValidatorFieldCount is the number of comma-separated fields per validators.conf line
const ValidatorFieldCount = 5

// ValidatorRecord is one line of a validators.conf file
type ValidatorRecord struct {
	ConsensusAddr string
	FeeAddr       string
	BSCFeeAddr    string
	VotingPower   string
	BLSPublicKey  string
}

// Fields returns the record in file order
func (r ValidatorRecord) Fields() []string {
	return []string{r.ConsensusAddr, r.FeeAddr, r.BSCFeeAddr, r.VotingPower, r.BLSPublicKey}
}

// ErrorSignature is a normalized error declaration and its selector
type ErrorSignature struct {
	File      string
	Line      int
	Signature string
	Selector  string
	// Updated is true when an existing annotation was rewritten rather than inserted
	Updated bool
}

// ValidatorSetEncoding is the natively encoded validator set
type ValidatorSetEncoding struct {
	// ValidatorSetBytes is the RLP validator-set package, hex without 0x prefix
	ValidatorSetBytes string
	// ExtraData is vanity + consensus addresses + seal, hex with 0x prefix
	ExtraData  string
	Validators int
}

// OutputFormat selects the escaping applied to values interpolated into templates
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJS   OutputFormat = "js"
	OutputFormatHTML OutputFormat = "html"
)

// OutputFormatForPath picks the escaping for a generated file from its extension
func OutputFormatForPath(path string) OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs", ".ts":
		return OutputFormatJS
	case ".html", ".htm", ".xml":
		return OutputFormatHTML
	default:
		return OutputFormatText
	}
}
