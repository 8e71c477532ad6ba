package genesis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

const (
	extraVanityLength = 32
	extraSealLength   = 65
)

// validatorEntry is the RLP layout of one validator in the init package
type validatorEntry struct {
	ConsensusAddr common.Address
	BSCFeeAddr    common.Address
	FeeAddr       common.Address
	VotingPower   uint64
	BLSPublicKey  []byte
}

// validatorSetPackage is the RLP layout consumed by ValidatorSet.init
type validatorSetPackage struct {
	Type       uint64
	Validators []validatorEntry
}

// ValidatorSetCodec encodes validators.conf records into the init validator set
// bytes and the genesis extraData
type ValidatorSetCodec struct{}

// NewValidatorSetCodec creates a new codec
func NewValidatorSetCodec() *ValidatorSetCodec {
	return &ValidatorSetCodec{}
}

// Encode validates every record and produces the validator-set encoding
func (c *ValidatorSetCodec) Encode(records []domain.ValidatorRecord) (*domain.ValidatorSetEncoding, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no validators to encode")
	}

	entries := make([]validatorEntry, 0, len(records))
	consensus := make([]common.Address, 0, len(records))
	for i, r := range records {
		entry, err := toEntry(r)
		if err != nil {
			return nil, fmt.Errorf("validator %d: %w", i+1, err)
		}
		entries = append(entries, entry)
		consensus = append(consensus, entry.ConsensusAddr)
	}

	encoded, err := rlp.EncodeToBytes(validatorSetPackage{Validators: entries})
	if err != nil {
		return nil, fmt.Errorf("failed to rlp encode validator set: %w", err)
	}

	return &domain.ValidatorSetEncoding{
		ValidatorSetBytes: strings.TrimPrefix(hexutil.Encode(encoded), "0x"),
		ExtraData:         hexutil.Encode(CreateExtraData(consensus)),
		Validators:        len(entries),
	}, nil
}

// CreateExtraData builds vanity + consensus addresses + empty seal
func CreateExtraData(validators []common.Address) []byte {
	extra := make([]byte, extraVanityLength+common.AddressLength*len(validators)+extraSealLength)
	for i, v := range validators {
		copy(extra[extraVanityLength+common.AddressLength*i:], v.Bytes())
	}
	return extra
}

func toEntry(r domain.ValidatorRecord) (validatorEntry, error) {
	var entry validatorEntry

	addrs := []struct {
		name  string
		value string
		dst   *common.Address
	}{
		{"consensus address", r.ConsensusAddr, &entry.ConsensusAddr},
		{"fee address", r.FeeAddr, &entry.FeeAddr},
		{"bsc fee address", r.BSCFeeAddr, &entry.BSCFeeAddr},
	}
	for _, a := range addrs {
		if !common.IsHexAddress(a.value) {
			return entry, fmt.Errorf("%w: invalid %s %q", domain.ErrMalformedInputRecord, a.name, a.value)
		}
		*a.dst = common.HexToAddress(a.value)
	}

	power, err := parseVotingPower(r.VotingPower)
	if err != nil {
		return entry, fmt.Errorf("%w: invalid voting power %q: %v", domain.ErrMalformedInputRecord, r.VotingPower, err)
	}
	entry.VotingPower = power

	key := r.BLSPublicKey
	if !strings.HasPrefix(key, "0x") && !strings.HasPrefix(key, "0X") {
		key = "0x" + key
	}
	entry.BLSPublicKey, err = hexutil.Decode(key)
	if err != nil {
		return entry, fmt.Errorf("%w: invalid BLS public key: %v", domain.ErrMalformedInputRecord, err)
	}

	return entry, nil
}

// parseVotingPower accepts 0x-prefixed hex (leading zeros allowed) or decimal
func parseVotingPower(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

// Ensure the codec implements the interface
var _ usecase.ValidatorSetCodec = (*ValidatorSetCodec)(nil)
