package genesis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/fs"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
)

const (
	testAddr   = "0x9fB29AAc15b9A4B7F17c3385939b007540f4d791"
	testBLSKey = "0x85e6972fc98cd3c81d64d40e325acfed44365b97a7567a27939c14dbc7512ddcf54cb1284eb637cfa308ae4e00cb5588"
)

func testRecord() domain.ValidatorRecord {
	return domain.ValidatorRecord{
		ConsensusAddr: testAddr,
		FeeAddr:       testAddr,
		BSCFeeAddr:    testAddr,
		VotingPower:   "0x0000000000000064",
		BLSPublicKey:  testBLSKey,
	}
}

func TestEncodeSingleValidator(t *testing.T) {
	enc, err := NewValidatorSetCodec().Encode([]domain.ValidatorRecord{testRecord()})
	require.NoError(t, err)

	addr := strings.ToLower(strings.TrimPrefix(testAddr, "0x"))
	expected := "f87680f873f871" +
		"94" + addr +
		"94" + addr +
		"94" + addr +
		"64" +
		"b0" + strings.TrimPrefix(testBLSKey, "0x")

	assert.Equal(t, expected, enc.ValidatorSetBytes)
	assert.Equal(t, 1, enc.Validators)

	// 32 vanity + 20 address + 65 seal
	assert.Equal(t, 2+2*(32+20+65), len(enc.ExtraData))
	assert.Equal(t, "0x"+strings.Repeat("00", 32)+addr+strings.Repeat("00", 65), enc.ExtraData)
}

func TestEncodeDecimalVotingPower(t *testing.T) {
	r := testRecord()
	r.VotingPower = "100"

	enc, err := NewValidatorSetCodec().Encode([]domain.ValidatorRecord{r})
	require.NoError(t, err)
	assert.Contains(t, enc.ValidatorSetBytes, "64b0")
}

func TestEncodeInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.ValidatorRecord)
	}{
		{name: "bad consensus address", mutate: func(r *domain.ValidatorRecord) { r.ConsensusAddr = "0x1234" }},
		{name: "bad fee address", mutate: func(r *domain.ValidatorRecord) { r.FeeAddr = "nope" }},
		{name: "bad voting power", mutate: func(r *domain.ValidatorRecord) { r.VotingPower = "0xzz" }},
		{name: "bad bls key", mutate: func(r *domain.ValidatorRecord) { r.BLSPublicKey = "0xabc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRecord()
			tt.mutate(&r)

			_, err := NewValidatorSetCodec().Encode([]domain.ValidatorRecord{r})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedInputRecord))
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	_, err := NewValidatorSetCodec().Encode(nil)
	assert.Error(t, err)
}

func TestCreateExtraData(t *testing.T) {
	a := common.HexToAddress("0x0000000000000000000000000000000000001000")
	b := common.HexToAddress("0x0000000000000000000000000000000000002000")

	extra := CreateExtraData([]common.Address{a, b})
	require.Len(t, extra, 32+40+65)
	assert.Equal(t, a.Bytes(), extra[32:52])
	assert.Equal(t, b.Bytes(), extra[52:72])
}

func TestNativeEncoder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "validators.conf")
	line := strings.Join(testRecord().Fields(), ",")
	require.NoError(t, os.WriteFile(path, []byte(line+"\n"), 0644))

	cfg := &config.RuntimeConfig{Tools: config.Tools{ValidatorsFile: path}}
	encoder := NewNativeEncoderAdapter(cfg, fs.NewValidatorSourceAdapter(), NewValidatorSetCodec(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	encoded, err := encoder.EncodeValidatorSet(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "f87680f873f87194"))
}
