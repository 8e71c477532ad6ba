package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// SelectorAdapter handles interactive selection and confirmation
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// Confirm asks a yes/no question. Non-interactive mode always answers no.
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if s.config.NonInteractive {
		return false, nil
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
	return true, nil
}

// SelectProfile picks a profile from a fuzzy-searchable list
func (s *SelectorAdapter) SelectProfile(ctx context.Context, profiles []*domain.Profile) (*domain.Profile, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles provided for selection")
	}

	if len(profiles) == 1 {
		return profiles[0], nil
	}

	options := formatProfileOptions(profiles)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             "Select a profile",
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return profiles[index], nil
}

// formatProfileOptions renders "name [development] (network, chain 714)"
func formatProfileOptions(profiles []*domain.Profile) []string {
	options := make([]string, len(profiles))
	for i, p := range profiles {
		name := color.New(color.FgWhite, color.Bold).Sprint(p.Name)
		details := color.New(color.FgBlue).Sprintf("%s, chain %d", p.Network, p.ChainID)

		if p.IsDevelopment() {
			tag := color.New(color.FgYellow).Sprint("[development]")
			options[i] = fmt.Sprintf("%s %s (%s)", name, tag, details)
		} else {
			options[i] = fmt.Sprintf("%s (%s)", name, details)
		}
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.Selector = (*SelectorAdapter)(nil)
