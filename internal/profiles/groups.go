package profiles

import (
	"fmt"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
)

// Patch group names, one per target contract
const (
	GroupSystem                = "system"
	GroupCrossChain            = "cross-chain"
	GroupSystemReward          = "system-reward"
	GroupSlashIndicator        = "slash-indicator"
	GroupRelayerHub            = "relayer-hub"
	GroupTendermintLightClient = "tendermint-light-client"
	GroupTokenHub              = "token-hub"
	GroupValidatorSet          = "validator-set"
	GroupTokenRecoverPortal    = "token-recover-portal"
	GroupStakeHub              = "stake-hub"
	GroupGovernor              = "governor"
	GroupTimelock              = "timelock"
)

// Targets, relative to the contracts directory
const (
	systemContract                = "System.sol"
	crossChainContract            = "CrossChain.sol"
	systemRewardContract          = "SystemReward.sol"
	slashIndicatorContract        = "SlashIndicator.sol"
	relayerHubContract            = "RelayerHub.sol"
	tendermintLightClientContract = "TendermintLightClient.sol"
	tokenHubContract              = "TokenHub.sol"
	validatorSetContract          = "BSCValidatorSet.sol"
	tokenRecoverPortalContract    = "BC_fusion/TokenRecoverPortal.sol"
	stakeHubContract              = "BC_fusion/StakeHub.sol"
	governorContract              = "BC_fusion/BSCGovernor.sol"
	timelockContract              = "BC_fusion/BSCTimelock.sol"
)

// GroupBuilder expands one patch group for a resolved profile
type GroupBuilder func(pc *domain.ProfileContext) ([]domain.Instruction, error)

// groupOrder is the canonical application order of all patch groups
var groupOrder = []string{
	GroupSystem,
	GroupCrossChain,
	GroupSystemReward,
	GroupSlashIndicator,
	GroupRelayerHub,
	GroupTendermintLightClient,
	GroupTokenHub,
	GroupValidatorSet,
	GroupTokenRecoverPortal,
	GroupStakeHub,
	GroupGovernor,
	GroupTimelock,
}

var groupBuilders = map[string]GroupBuilder{
	GroupSystem:                systemGroup,
	GroupCrossChain:            crossChainGroup,
	GroupSystemReward:          systemRewardGroup,
	GroupSlashIndicator:        slashIndicatorGroup,
	GroupRelayerHub:            relayerHubGroup,
	GroupTendermintLightClient: tendermintLightClientGroup,
	GroupTokenHub:              tokenHubGroup,
	GroupValidatorSet:          validatorSetGroup,
	GroupTokenRecoverPortal:    tokenRecoverPortalGroup,
	GroupStakeHub:              stakeHubGroup,
	GroupGovernor:              governorGroup,
	GroupTimelock:              timelockGroup,
}

// GroupNames returns every known group in application order
func GroupNames() []string {
	return append([]string{}, groupOrder...)
}

// groupIndex returns the position of name in the canonical order, or -1
func groupIndex(name string) int {
	for i, g := range groupOrder {
		if g == name {
			return i
		}
	}
	return -1
}

// params reads profile parameters and keeps the first missing key
type params struct {
	pc  *domain.ProfileContext
	err error
}

func (p *params) get(key string) string {
	v, err := p.pc.Get(key)
	if err != nil && p.err == nil {
		p.err = err
	}
	return v
}

func setParam(target, prefix, value string) domain.Instruction {
	return domain.Instruction{Target: target, Action: domain.ReplaceParameter, Pattern: prefix, Payload: value}
}

func replaceFirst(target, pattern, replacement string) domain.Instruction {
	return domain.Instruction{Target: target, Action: domain.ReplaceFirstMatch, Pattern: pattern, Payload: replacement, Count: 1}
}

func insertBefore(target, pattern, line string) domain.Instruction {
	return domain.Instruction{Target: target, Action: domain.InsertBeforeLine, Pattern: pattern, Payload: line}
}

func systemGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	return []domain.Instruction{
		setParam(systemContract, "uint16 constant public bscChainID", "0x"+pc.HexChainID),
	}, nil
}

func crossChainGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(crossChainContract, "uint256 constant public CROSS_CHAIN_KEY_PREFIX", fmt.Sprintf("0x01%s00", pc.HexChainID)),
		setParam(crossChainContract, "uint256 constant public INIT_BATCH_SIZE", p.get("init_batch_size")),
	}
	return ins, p.err
}

func systemRewardGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	if !pc.IsDevelopment() {
		return nil, nil
	}
	return []domain.Instruction{
		insertBefore(systemRewardContract, `numOperator = 2;`, "\t\toperators[VALIDATOR_CONTRACT_ADDR] = true;"),
		insertBefore(systemRewardContract, `numOperator = 2;`, "\t\toperators[SLASH_CONTRACT_ADDR] = true;"),
		replaceFirst(systemRewardContract, `numOperator = 2;`, "numOperator = 4;"),
	}, nil
}

func slashIndicatorGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(slashIndicatorContract, "uint256 public constant INIT_FELONY_SLASH_SCOPE", p.get("init_felony_slash_scope")),
	}
	if pc.IsDevelopment() {
		ins = append(ins, insertBefore(slashIndicatorContract, `alreadyInit = true;`, "\t\tenableMaliciousVoteSlash = true;"))
	}
	return ins, p.err
}

func relayerHubGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(relayerHubContract, "address public constant WHITELIST_1", p.get("whitelist_1")),
		setParam(relayerHubContract, "address public constant WHITELIST_2", p.get("whitelist_2")),
	}
	if pc.IsDevelopment() {
		ins = append(ins,
			replaceFirst(relayerHubContract, `function whitelistInit\(\) external`, "function whitelistInit() public"),
			insertBefore(relayerHubContract, `alreadyInit = true;`, "\t\twhitelistInit();"),
		)
	}
	return ins, p.err
}

func tendermintLightClientGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(tendermintLightClientContract, "bytes constant public INIT_CONSENSUS_STATE_BYTES",
			fmt.Sprintf("hex\"%s\"", p.get("init_consensus_bytes"))),
		setParam(tendermintLightClientContract, "uint256 constant public INIT_REWARD_FOR_VALIDATOR_SER_CHANGE",
			p.get("init_reward_for_validator_ser_change")),
	}
	return ins, p.err
}

func tokenHubGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(tokenHubContract, "uint256 constant public MAX_GAS_FOR_TRANSFER_BNB", p.get("max_gas_for_transfer_bnb")),
		setParam(tokenHubContract, "uint256 constant public MAX_GAS_FOR_CALLING_BEP20", p.get("max_gas_for_calling_bep20")),
		setParam(tokenHubContract, "uint256 constant public REWARD_UPPER_LIMIT", p.get("reward_upper_limit")),
		setParam(tokenHubContract, "uint256 constant public INIT_MINIMUM_RELAY_FEE", p.get("init_minimum_relay_fee")),
	}
	return ins, p.err
}

func validatorSetGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(validatorSetContract, "uint256 public constant INIT_BURN_RATIO", p.get("init_burn_ratio")),
		setParam(validatorSetContract, "bytes public constant INIT_VALIDATORSET_BYTES",
			fmt.Sprintf("hex\"%s\"", p.get(domain.ParamValidatorSetBytes))),
	}
	if pc.IsDevelopment() {
		ins = append(ins,
			insertBefore(validatorSetContract, `for \(uint i; i<validatorSetPkg\.validatorSet\.length; \+\+i\)`,
				"\t\tValidatorExtra memory validatorExtra;"),
			insertBefore(validatorSetContract, `currentValidatorSet\.push\(validatorSetPkg.validatorSet\[i\]\);`,
				"\t\t\tvalidatorExtraSet.push(validatorExtra);"),
			insertBefore(validatorSetContract, `currentValidatorSet\.push\(validatorSetPkg.validatorSet\[i\]\);`,
				"\t\t\tvalidatorExtraSet[i].voteAddress=validatorSetPkg.voteAddrs[i];"),
		)
	}
	return ins, p.err
}

func tokenRecoverPortalGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(tokenRecoverPortalContract, "string public constant SOURCE_CHAIN_ID", `"`+p.get("source_chain_id")+`"`),
	}
	return ins, p.err
}

func stakeHubGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(stakeHubContract, "uint256 public constant BREATHE_BLOCK_INTERVAL", p.get("breathe_block_interval")),
		setParam(stakeHubContract, "bytes private constant INIT_BC_CONSENSUS_ADDRESSES", p.get("init_bc_consensus_addresses")),
		setParam(stakeHubContract, "bytes private constant INIT_BC_VOTE_ADDRESSES", p.get("init_bc_vote_addresses")),
		replaceFirst(stakeHubContract, `unbondPeriod = .*;`, "unbondPeriod = "+p.get("unbond_period")+";"),
		replaceFirst(stakeHubContract, `downtimeJailTime = .*;`, "downtimeJailTime = "+p.get("downtime_jail_time")+";"),
		replaceFirst(stakeHubContract, `felonyJailTime = .*;`, "felonyJailTime = "+p.get("felony_jail_time")+";"),
		replaceFirst(stakeHubContract, `assetProtector = .*;`, "assetProtector = "+p.get("asset_protector")+";"),
	}
	return ins, p.err
}

func governorGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(governorContract, "uint256 private constant BLOCK_INTERVAL", p.get("block_interval")),
		setParam(governorContract, "uint256 private constant INIT_VOTING_DELAY", p.get("init_voting_delay")),
		setParam(governorContract, "uint256 private constant INIT_VOTING_PERIOD", p.get("init_voting_period")),
		setParam(governorContract, "uint64 private constant INIT_MIN_PERIOD_AFTER_QUORUM", p.get("init_min_period_after_quorum")),
		replaceFirst(governorContract, `governorProtector = .*;`, "governorProtector = "+p.get("governor_protector")+";"),
	}
	return ins, p.err
}

func timelockGroup(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	p := &params{pc: pc}
	ins := []domain.Instruction{
		setParam(timelockContract, "uint256 private constant INIT_MINIMAL_DELAY", p.get("init_minimal_delay")),
	}
	return ins, p.err
}
