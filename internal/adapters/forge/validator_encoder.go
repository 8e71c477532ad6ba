package forge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// NodeEncoderAdapter obtains the validator-set bytes from the project's
// validators script through an external process
type NodeEncoderAdapter struct {
	log         *slog.Logger
	runner      CommandRunner
	projectRoot string
	command     config.Command
}

// NewNodeEncoderAdapter creates a new external validator-set encoder
func NewNodeEncoderAdapter(cfg *config.RuntimeConfig, runner CommandRunner, log *slog.Logger) *NodeEncoderAdapter {
	return &NodeEncoderAdapter{
		log:         log.With("component", "NodeEncoder"),
		runner:      runner,
		projectRoot: cfg.ProjectRoot,
		command:     cfg.Tools.ValidatorEncoder,
	}
}

// EncodeValidatorSet runs the encoder and returns its output as hex without 0x prefix
func (e *NodeEncoderAdapter) EncodeValidatorSet(ctx context.Context) (string, error) {
	out, err := e.runner.Output(ctx, e.projectRoot, e.command.Path, e.command.Args...)
	if err != nil {
		return "", fmt.Errorf("failed to get init validator set bytes: %w", err)
	}

	encoded, err := ParseHexOutput(string(out))
	if err != nil {
		return "", domain.ExternalProcessFailedError{
			Command: e.command.Path,
			Output:  domain.Abbreviate(strings.TrimSpace(string(out)), 80),
			Err:     err,
		}
	}

	e.log.Debug("validator set encoded", "bytes", len(encoded)/2)
	return encoded, nil
}

// ParseHexOutput validates the last hex value printed by a process and
// returns it without the 0x prefix. Scripts that print the bytes more than
// once, with or without a separator, yield the final copy.
func ParseHexOutput(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty output, expected hex")
	}
	s := fields[len(fields)-1]
	if i := strings.LastIndex(strings.ToLower(s), "0x"); i >= 0 {
		s = s[i+2:]
	}
	if s == "" {
		return "", fmt.Errorf("empty output, expected hex")
	}
	if _, err := hexutil.Decode("0x" + s); err != nil {
		return "", fmt.Errorf("output is not hex: %w", err)
	}
	return strings.ToLower(s), nil
}

// Ensure the adapter implements the interface
var _ usecase.ValidatorSetEncoder = (*NodeEncoderAdapter)(nil)
