package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-genesis/internal/domain"
)

// ListProfilesParams contains parameters for listing profiles
type ListProfilesParams struct{}

// ProfileSummary is a profile with its encoded chain ID
type ProfileSummary struct {
	Profile    *domain.Profile
	HexChainID string
	Error      error
}

// ListProfilesResult contains the result of listing profiles
type ListProfilesResult struct {
	Profiles []ProfileSummary
}

// ListProfiles is a use case for listing available profiles
type ListProfiles struct {
	registry ProfileRegistry
}

// NewListProfiles creates a new ListProfiles use case
func NewListProfiles(registry ProfileRegistry) *ListProfiles {
	return &ListProfiles{registry: registry}
}

// Run executes the use case
func (uc *ListProfiles) Run(ctx context.Context, params ListProfilesParams) (*ListProfilesResult, error) {
	profiles := uc.registry.List()

	summaries := make([]ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		summary := ProfileSummary{Profile: p}
		summary.HexChainID, summary.Error = domain.EncodeChainID(p.ChainID)
		summaries = append(summaries, summary)
	}

	return &ListProfilesResult{Profiles: summaries}, nil
}
