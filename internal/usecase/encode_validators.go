package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
)

// EncodeValidatorsParams contains parameters for encoding a validators file
type EncodeValidatorsParams struct {
	// Input defaults to the configured validators file
	Input string
}

// EncodeValidatorsResult contains the encoded validator set
type EncodeValidatorsResult struct {
	Input    string
	Encoding *domain.ValidatorSetEncoding
}

// EncodeValidators encodes a validators.conf file in-process
type EncodeValidators struct {
	config *config.RuntimeConfig
	source ValidatorSource
	codec  ValidatorSetCodec
}

// NewEncodeValidators creates a new EncodeValidators use case
func NewEncodeValidators(cfg *config.RuntimeConfig, source ValidatorSource, codec ValidatorSetCodec) *EncodeValidators {
	return &EncodeValidators{config: cfg, source: source, codec: codec}
}

// Run executes the use case
func (uc *EncodeValidators) Run(ctx context.Context, params EncodeValidatorsParams) (*EncodeValidatorsResult, error) {
	input := params.Input
	if input == "" {
		input = uc.config.Tools.ValidatorsFile
	}
	input = projectPath(uc.config.ProjectRoot, input, DefaultValidatorsInput)

	records, err := uc.source.ReadValidators(ctx, input)
	if err != nil {
		return nil, err
	}

	enc, err := uc.codec.Encode(records)
	if err != nil {
		return nil, err
	}

	return &EncodeValidatorsResult{Input: input, Encoding: enc}, nil
}
