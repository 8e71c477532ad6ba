package fs

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// ValidatorSourceAdapter reads validators.conf files: one validator per line,
// five comma-separated fields, blank lines ignored
type ValidatorSourceAdapter struct{}

// NewValidatorSourceAdapter creates a new validator source
func NewValidatorSourceAdapter() *ValidatorSourceAdapter {
	return &ValidatorSourceAdapter{}
}

// ReadValidators parses the whole file; any malformed line fails the read
func (a *ValidatorSourceAdapter) ReadValidators(ctx context.Context, path string) ([]domain.ValidatorRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open validators file: %w", err)
	}
	defer f.Close()

	var records []domain.ValidatorRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != domain.ValidatorFieldCount {
			return nil, domain.MalformedInputRecordError{
				Source:   path,
				Line:     lineNo,
				Content:  line,
				Expected: domain.ValidatorFieldCount,
				Got:      len(fields),
			}
		}

		records = append(records, domain.ValidatorRecord{
			ConsensusAddr: fields[0],
			FeeAddr:       fields[1],
			BSCFeeAddr:    fields[2],
			VotingPower:   fields[3],
			BLSPublicKey:  fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read validators file: %w", err)
	}

	return records, nil
}

// Ensure the adapter implements the interface
var _ usecase.ValidatorSource = (*ValidatorSourceAdapter)(nil)
