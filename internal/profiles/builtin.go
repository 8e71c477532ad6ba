package profiles

import (
	"github.com/trebuchet-org/treb-genesis/internal/domain"
)

// SourceBuiltin marks profiles compiled into the binary
const SourceBuiltin = "builtin"

const devZeroBCAddresses = `hex"00000000000000000000000000000000000000000000000000000000000000200000000000000000000000000000000000000000000000000000000000000000"`

func fixed(key, value string) domain.ParamSpec {
	return domain.ParamSpec{Key: key, Default: value}
}

func option(key, value, usage string) domain.ParamSpec {
	return domain.ParamSpec{Key: key, Default: value, Usage: usage, Overridable: true}
}

var publicGroups = []string{
	GroupSystem,
	GroupCrossChain,
	GroupRelayerHub,
	GroupTendermintLightClient,
	GroupValidatorSet,
	GroupTokenRecoverPortal,
}

// Builtin returns fresh copies of the built-in profiles in display order
func Builtin() []*domain.Profile {
	return []*domain.Profile{
		{
			Name:        "mainnet",
			Network:     "mainnet",
			ChainID:     56,
			Description: "Generate contracts for BSC mainnet",
			Groups:      append([]string{}, publicGroups...),
			Params: []domain.ParamSpec{
				fixed("init_batch_size", "50"),
				fixed("whitelist_1", "0xb005741528b86F5952469d80A8614591E3c5B632"),
				fixed("whitelist_2", "0x446AA6E0DC65690403dF3F127750da1322941F3e"),
				fixed("init_consensus_bytes", mainnetConsensusBytes),
				fixed("init_reward_for_validator_ser_change", "1e16"),
				fixed("init_burn_ratio", "1000"),
				fixed(domain.ParamValidatorSetBytes, mainnetValidatorSetBytes),
				fixed("source_chain_id", "Binance-Chain-Tigris"),
			},
			Source: SourceBuiltin,
		},
		{
			Name:        "testnet",
			Network:     "testnet",
			ChainID:     97,
			Description: "Generate contracts for BSC testnet",
			Groups:      append([]string{}, publicGroups...),
			Params: []domain.ParamSpec{
				fixed("init_batch_size", "50"),
				fixed("whitelist_1", "0x9fB29AAc15b9A4B7F17c3385939b007540f4d791"),
				fixed("whitelist_2", "0x37B8516a0F88E65D677229b402ec6C1e0E333004"),
				fixed("init_consensus_bytes", testnetConsensusBytes),
				fixed("init_reward_for_validator_ser_change", "1e16"),
				fixed("init_burn_ratio", "1000"),
				fixed(domain.ParamValidatorSetBytes, testnetValidatorSetBytes),
				fixed("source_chain_id", "Binance-Chain-Ganges"),
			},
			Source: SourceBuiltin,
		},
		{
			Name:        "qa",
			Network:     "qa",
			ChainID:     714,
			Description: "Generate contracts for qa environment",
			Groups:      append([]string{}, publicGroups...),
			Params: []domain.ParamSpec{
				fixed("init_batch_size", "50"),
				option("whitelist_1", "0x88cb4D8F77742c24d647BEf8049D3f3C56067cDD", "whitelist relayer1's address"),
				option("whitelist_2", "0x42D596440775C90db8d9187b47650986E1063493", "whitelist relayer2's address"),
				fixed("init_consensus_bytes", testnetConsensusBytes),
				fixed("init_reward_for_validator_ser_change", "1e16"),
				fixed("init_burn_ratio", "1000"),
				fixed(domain.ParamValidatorSetBytes, testnetValidatorSetBytes),
				option("source_chain_id", "Binance-Chain-Ganges", "source chain id of the token recover portal"),
			},
			Source: SourceBuiltin,
		},
		{
			Name:        "dev",
			Network:     "dev",
			ChainID:     714,
			Environment: domain.EnvironmentDevelopment,
			Description: "Generate contracts for dev environment",
			Groups: []string{
				GroupSystem,
				GroupCrossChain,
				GroupSystemReward,
				GroupSlashIndicator,
				GroupRelayerHub,
				GroupTendermintLightClient,
				GroupValidatorSet,
				GroupTokenRecoverPortal,
				GroupStakeHub,
				GroupGovernor,
				GroupTimelock,
			},
			Params: []domain.ParamSpec{
				option(domain.ParamChainID, "714", "chain id of the dev network"),
				fixed("init_batch_size", "50"),
				fixed("init_reward_for_validator_ser_change", "1e16"),
				option("init_consensus_bytes", devConsensusBytes, "init consensus state bytes of TendermintLightClient"),
				option("init_burn_ratio", "1000", "init burn ratio of BscValidatorSet"),
				option("whitelist_1", "0xA904540818AC9c47f2321F97F1069B9d8746c6DB", "whitelist relayer1's address"),
				option("whitelist_2", "0x316b2Fa7C8a2ab7E21110a4B3f58771C01A71344", "whitelist relayer2's address"),
				option("source_chain_id", "Binance-Chain-Ganges", "source chain id of the token recover portal"),
				option("init_felony_slash_scope", "86400", "INIT_FELONY_SLASH_SCOPE of SlashIndicator"),
				option("breathe_block_interval", "1 days", "breath block interval of Parlia"),
				option("block_interval", "3 seconds", "block interval of Parlia"),
				option("init_bc_consensus_addresses", devZeroBCAddresses, "INIT_BC_CONSENSUS_ADDRESSES of StakeHub"),
				option("init_bc_vote_addresses", devZeroBCAddresses, "INIT_BC_VOTE_ADDRESSES of StakeHub"),
				option("asset_protector", "address(0xdEaD)", "assetProtector of StakeHub"),
				option("unbond_period", "7 days", "unbondPeriod of StakeHub"),
				option("downtime_jail_time", "2 days", "downtimeJailTime of StakeHub"),
				option("felony_jail_time", "30 days", "felonyJailTime of StakeHub"),
				option("init_voting_delay", "24 hours / BLOCK_INTERVAL", "INIT_VOTING_DELAY of BSCGovernor"),
				option("init_voting_period", "14 days / BLOCK_INTERVAL", "INIT_VOTING_PERIOD of BSCGovernor"),
				option("init_min_period_after_quorum", "uint64(1 days / BLOCK_INTERVAL)", "INIT_MIN_PERIOD_AFTER_QUORUM of BSCGovernor"),
				option("governor_protector", "address(0xdEaD)", "governorProtector of BSCGovernor"),
				option("init_minimal_delay", "24 hours", "INIT_MINIMAL_DELAY of BSCTimelock"),
			},
			ValidatorSetFromEncoder: true,
			Source:                  SourceBuiltin,
		},
	}
}
