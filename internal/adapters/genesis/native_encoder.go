package genesis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// NativeEncoderAdapter encodes the validator set in-process from the configured validators file
type NativeEncoderAdapter struct {
	log    *slog.Logger
	source usecase.ValidatorSource
	codec  usecase.ValidatorSetCodec
	path   string
}

// NewNativeEncoderAdapter creates a new in-process validator-set encoder
func NewNativeEncoderAdapter(cfg *config.RuntimeConfig, source usecase.ValidatorSource, codec usecase.ValidatorSetCodec, log *slog.Logger) *NativeEncoderAdapter {
	return &NativeEncoderAdapter{
		log:    log.With("component", "NativeEncoder"),
		source: source,
		codec:  codec,
		path:   cfg.Tools.ValidatorsFile,
	}
}

func (e *NativeEncoderAdapter) EncodeValidatorSet(ctx context.Context) (string, error) {
	records, err := e.source.ReadValidators(ctx, e.path)
	if err != nil {
		return "", fmt.Errorf("failed to read validators: %w", err)
	}

	enc, err := e.codec.Encode(records)
	if err != nil {
		return "", err
	}

	e.log.Debug("validator set encoded", "validators", enc.Validators, "source", e.path)
	return enc.ValidatorSetBytes, nil
}

// Ensure the adapter implements the interface
var _ usecase.ValidatorSetEncoder = (*NativeEncoderAdapter)(nil)
