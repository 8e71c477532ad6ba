package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-genesis/internal/adapters/fs"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/profiles"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

var contractFixtures = map[string]string{
	"System.sol": `contract System {
  uint16 constant public bscChainID = 0x0060;
}
`,
	"CrossChain.sol": `contract CrossChain {
  uint256 constant public CROSS_CHAIN_KEY_PREFIX = 0x01006000;
  uint256 constant public INIT_BATCH_SIZE = 50;
}
`,
	"RelayerHub.sol": `contract RelayerHub {
  address public constant WHITELIST_1 = 0xb005741528b86F5952469d80A8614591E3c5B632;
  address public constant WHITELIST_2 = 0x446AA6E0DC65690403dF3F127750da1322941F3e;
}
`,
	"TendermintLightClient.sol": `contract TendermintLightClient {
  bytes constant public INIT_CONSENSUS_STATE_BYTES = hex"00";
  uint256 constant public INIT_REWARD_FOR_VALIDATOR_SER_CHANGE = 1e16;
}
`,
	"BSCValidatorSet.sol": `contract BSCValidatorSet {
  uint256 public constant INIT_BURN_RATIO = 0;
  bytes public constant INIT_VALIDATORSET_BYTES = hex"00";
}
`,
	"BC_fusion/TokenRecoverPortal.sol": `contract TokenRecoverPortal {
  string public constant SOURCE_CHAIN_ID = "Binance-Chain-Tigris";
}
`,
}

// devContractFixtures adds the contracts only the development profile touches
var devContractFixtures = map[string]string{
	"System.sol":                       contractFixtures["System.sol"],
	"CrossChain.sol":                   contractFixtures["CrossChain.sol"],
	"TendermintLightClient.sol":        contractFixtures["TendermintLightClient.sol"],
	"BC_fusion/TokenRecoverPortal.sol": contractFixtures["BC_fusion/TokenRecoverPortal.sol"],
	"SystemReward.sol": `contract SystemReward {
  function init() external onlyNotInit {
    operators[LIGHT_CLIENT_ADDR] = true;
    operators[INCENTIVIZE_ADDR] = true;
    numOperator = 2;
    alreadyInit = true;
  }
}
`,
	"SlashIndicator.sol": `contract SlashIndicator {
  uint256 public constant INIT_FELONY_SLASH_SCOPE = 28800;
  function init() external onlyNotInit {
    misdemeanorThreshold = MISDEMEANOR_THRESHOLD;
    alreadyInit = true;
  }
}
`,
	"RelayerHub.sol": `contract RelayerHub {
  address public constant WHITELIST_1 = 0xb005741528b86F5952469d80A8614591E3c5B632;
  address public constant WHITELIST_2 = 0x446AA6E0DC65690403dF3F127750da1322941F3e;
  function init() external onlyNotInit {
    requiredDeposit = INIT_REQUIRED_DEPOSIT;
    alreadyInit = true;
  }
  function whitelistInit() external {
    whiteListRelayer(WHITELIST_1);
  }
}
`,
	"BSCValidatorSet.sol": `contract BSCValidatorSet {
  uint256 public constant INIT_BURN_RATIO = 0;
  bytes public constant INIT_VALIDATORSET_BYTES = hex"00";
  function init() external onlyNotInit {
    (IbcValidatorSetPackage memory validatorSetPkg, bool valid) = decodeValidatorSetSyncPackage(INIT_VALIDATORSET_BYTES);
    for (uint i; i<validatorSetPkg.validatorSet.length; ++i) {
      currentValidatorSet.push(validatorSetPkg.validatorSet[i]);
    }
  }
}
`,
	"BC_fusion/StakeHub.sol": `contract StakeHub {
  uint256 public constant BREATHE_BLOCK_INTERVAL = 1 days;
  bytes private constant INIT_BC_CONSENSUS_ADDRESSES = hex"00";
  bytes private constant INIT_BC_VOTE_ADDRESSES = hex"00";
  function initialize() external initializer onlyCoinbase onlyZeroGasPrice {
    unbondPeriod = 7 days;
    downtimeJailTime = 2 days;
    felonyJailTime = 30 days;
    assetProtector = 0x08E68Ec70FA3b629784fDB28887e206ce8561E08;
  }
}
`,
	"BC_fusion/BSCGovernor.sol": `contract BSCGovernor {
  uint256 private constant BLOCK_INTERVAL = 3 seconds;
  uint256 private constant INIT_VOTING_DELAY = 0 hours / BLOCK_INTERVAL;
  uint256 private constant INIT_VOTING_PERIOD = 7 days / BLOCK_INTERVAL;
  uint64 private constant INIT_MIN_PERIOD_AFTER_QUORUM = uint64(1 days / BLOCK_INTERVAL);
  function initialize() external initializer onlyCoinbase onlyZeroGasPrice {
    governorProtector = 0x08E68Ec70FA3b629784fDB28887e206ce8561E08;
  }
}
`,
	"BC_fusion/BSCTimelock.sol": `contract BSCTimelock {
  uint256 private constant INIT_MINIMAL_DELAY = 6 hours;
}
`,
}

type fsProject struct {
	root      string
	contracts string
	fixtures  map[string]string
	cfg       *config.RuntimeConfig
}

func newFSProject(t *testing.T) *fsProject {
	t.Helper()
	return newFSProjectWith(t, contractFixtures)
}

func newFSProjectWith(t *testing.T, fixtures map[string]string) *fsProject {
	t.Helper()
	root := t.TempDir()
	contracts := filepath.Join(root, "contracts")
	for name, content := range fixtures {
		path := filepath.Join(contracts, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return &fsProject{
		root:      root,
		contracts: contracts,
		fixtures:  fixtures,
		cfg: &config.RuntimeConfig{
			ProjectRoot:  root,
			ContractsDir: contracts,
			SourceExt:    ".sol",
			BackupExt:    ".bak",
			RecoverDirs:  []string{contracts, filepath.Join(contracts, "BC_fusion")},
		},
	}
}

func (p *fsProject) read(t *testing.T) map[string]string {
	t.Helper()
	out := make(map[string]string, len(p.fixtures))
	for name := range p.fixtures {
		data, err := os.ReadFile(filepath.Join(p.contracts, name))
		require.NoError(t, err)
		out[name] = string(data)
	}
	return out
}

// run wires the file system adapters the way the app does, without the build
func (p *fsProject) run(t *testing.T, profile string) (*usecase.GenerateProfileResult, error) {
	t.Helper()
	return p.runWith(t, new(MockValidatorSetEncoder), usecase.GenerateProfileParams{Profile: profile})
}

func (p *fsProject) runWith(t *testing.T, encoder usecase.ValidatorSetEncoder, params usecase.GenerateProfileParams) (*usecase.GenerateProfileResult, error) {
	t.Helper()
	registry, err := profiles.NewRegistry(p.cfg, testLogger())
	require.NoError(t, err)

	backups := fs.NewBackupStoreAdapter(p.cfg, testLogger())
	patcher := fs.NewSourcePatcherAdapter(p.cfg, backups, testLogger())
	uc := usecase.NewGenerateProfile(registry, patcher, encoder, new(MockBuildTrigger), &MockProgressSink{}, testLogger())
	params.SkipBuild = true
	return uc.Run(context.Background(), params)
}

func (p *fsProject) recover(t *testing.T) []string {
	t.Helper()
	uc := usecase.NewRecoverSources(p.cfg, fs.NewBackupStoreAdapter(p.cfg, testLogger()))
	result, err := uc.Run(context.Background(), usecase.RecoverSourcesParams{})
	require.NoError(t, err)
	return result.Restored
}

func TestGenerateProfileOnSources(t *testing.T) {
	t.Run("testnet patches every target", func(t *testing.T) {
		p := newFSProject(t)

		_, err := p.run(t, "testnet")
		require.NoError(t, err)

		files := p.read(t)
		assert.Contains(t, files["System.sol"], "uint16 constant public bscChainID = 0x0061;")
		assert.Contains(t, files["CrossChain.sol"], "uint256 constant public CROSS_CHAIN_KEY_PREFIX = 0x01006100;")
		assert.Contains(t, files["RelayerHub.sol"], "WHITELIST_1 = 0x9fB29AAc15b9A4B7F17c3385939b007540f4d791;")
		assert.Contains(t, files["BSCValidatorSet.sol"], "uint256 public constant INIT_BURN_RATIO = 1000;")
		assert.Contains(t, files["BC_fusion/TokenRecoverPortal.sol"], `SOURCE_CHAIN_ID = "Binance-Chain-Ganges";`)

		// the pristine copy sits next to each touched file
		backup, err := os.ReadFile(filepath.Join(p.contracts, "System.bak"))
		require.NoError(t, err)
		assert.Equal(t, contractFixtures["System.sol"], string(backup))
	})

	t.Run("dev applies the development edits", func(t *testing.T) {
		p := newFSProjectWith(t, devContractFixtures)
		encoder := new(MockValidatorSetEncoder)
		encoder.On("EncodeValidatorSet", mock.Anything).Return("f87680f873", nil)

		_, err := p.runWith(t, encoder, usecase.GenerateProfileParams{
			Profile:   "dev",
			Overrides: map[string]string{"chain_id": "1337", "unbond_period": "1 days"},
		})
		require.NoError(t, err)
		encoder.AssertExpectations(t)

		files := p.read(t)
		assert.Contains(t, files["System.sol"], "bscChainID = 0x0539;")
		assert.Contains(t, files["CrossChain.sol"], "CROSS_CHAIN_KEY_PREFIX = 0x01053900;")

		assert.Equal(t, `contract SystemReward {
  function init() external onlyNotInit {
    operators[LIGHT_CLIENT_ADDR] = true;
    operators[INCENTIVIZE_ADDR] = true;
		operators[VALIDATOR_CONTRACT_ADDR] = true;
		operators[SLASH_CONTRACT_ADDR] = true;
    numOperator = 4;
    alreadyInit = true;
  }
}
`, files["SystemReward.sol"])

		assert.Equal(t, `contract SlashIndicator {
  uint256 public constant INIT_FELONY_SLASH_SCOPE = 86400;
  function init() external onlyNotInit {
    misdemeanorThreshold = MISDEMEANOR_THRESHOLD;
		enableMaliciousVoteSlash = true;
    alreadyInit = true;
  }
}
`, files["SlashIndicator.sol"])

		relayer := files["RelayerHub.sol"]
		assert.Contains(t, relayer, "WHITELIST_1 = 0xA904540818AC9c47f2321F97F1069B9d8746c6DB;")
		assert.Contains(t, relayer, "function whitelistInit() public {")
		assert.Contains(t, relayer, "\t\twhitelistInit();\n    alreadyInit = true;")

		assert.Equal(t, `contract BSCValidatorSet {
  uint256 public constant INIT_BURN_RATIO = 1000;
  bytes public constant INIT_VALIDATORSET_BYTES = hex"f87680f873";
  function init() external onlyNotInit {
    (IbcValidatorSetPackage memory validatorSetPkg, bool valid) = decodeValidatorSetSyncPackage(INIT_VALIDATORSET_BYTES);
		ValidatorExtra memory validatorExtra;
    for (uint i; i<validatorSetPkg.validatorSet.length; ++i) {
			validatorExtraSet.push(validatorExtra);
			validatorExtraSet[i].voteAddress=validatorSetPkg.voteAddrs[i];
      currentValidatorSet.push(validatorSetPkg.validatorSet[i]);
    }
  }
}
`, files["BSCValidatorSet.sol"])

		stakeHub := files["BC_fusion/StakeHub.sol"]
		assert.Contains(t, stakeHub, "unbondPeriod = 1 days;")
		assert.Contains(t, stakeHub, "downtimeJailTime = 2 days;")
		assert.Contains(t, stakeHub, "felonyJailTime = 30 days;")
		assert.Contains(t, stakeHub, "assetProtector = address(0xdEaD);")
		assert.Contains(t, stakeHub, "INIT_BC_VOTE_ADDRESSES = hex\"0000")

		governor := files["BC_fusion/BSCGovernor.sol"]
		assert.Contains(t, governor, "INIT_VOTING_DELAY = 24 hours / BLOCK_INTERVAL;")
		assert.Contains(t, governor, "INIT_VOTING_PERIOD = 14 days / BLOCK_INTERVAL;")
		assert.Contains(t, governor, "governorProtector = address(0xdEaD);")

		assert.Contains(t, files["BC_fusion/BSCTimelock.sol"], "INIT_MINIMAL_DELAY = 24 hours;")

		restored := p.recover(t)
		assert.Len(t, restored, len(devContractFixtures))
		assert.Equal(t, devContractFixtures, p.read(t))
	})

	t.Run("repeated runs are deterministic", func(t *testing.T) {
		p := newFSProject(t)

		_, err := p.run(t, "qa")
		require.NoError(t, err)
		first := p.read(t)

		restored := p.recover(t)
		assert.Len(t, restored, len(contractFixtures))
		assert.Equal(t, contractFixtures, p.read(t))

		_, err = p.run(t, "qa")
		require.NoError(t, err)
		assert.Equal(t, first, p.read(t))
	})

	t.Run("recover restores originals", func(t *testing.T) {
		p := newFSProject(t)

		_, err := p.run(t, "mainnet")
		require.NoError(t, err)
		p.recover(t)

		assert.Equal(t, contractFixtures, p.read(t))
		leftovers, err := filepath.Glob(filepath.Join(p.contracts, "*.bak"))
		require.NoError(t, err)
		assert.Empty(t, leftovers)
	})

	t.Run("missing anchor stops the run", func(t *testing.T) {
		p := newFSProject(t)
		relayer := filepath.Join(p.contracts, "RelayerHub.sol")
		require.NoError(t, os.WriteFile(relayer, []byte("contract RelayerHub {}\n"), 0644))

		_, err := p.run(t, "mainnet")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPatternNotFound))

		files := p.read(t)
		// earlier groups were applied, later ones untouched
		assert.Contains(t, files["System.sol"], "bscChainID = 0x0038;")
		assert.Equal(t, contractFixtures["BSCValidatorSet.sol"], files["BSCValidatorSet.sol"])
		assert.Equal(t, "contract RelayerHub {}\n", files["RelayerHub.sol"])
	})
}
