// Package profiles declares the built-in deployment profiles, the patch groups
// they expand into, and the registry that merges in profiles from trebgen.toml.
package profiles

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/domain/config"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

const maxSuggestions = 3

// Registry holds every profile known to this project
type Registry struct {
	log      *slog.Logger
	profiles map[string]*domain.Profile
	order    []string
}

// NewRegistry loads the built-in profiles and applies [profiles.*] from the project config
func NewRegistry(cfg *config.RuntimeConfig, log *slog.Logger) (*Registry, error) {
	r := &Registry{
		log:      log.With("component", "ProfileRegistry"),
		profiles: make(map[string]*domain.Profile),
	}

	builtins := make(map[string]*domain.Profile)
	for _, p := range Builtin() {
		builtins[p.Name] = p
		r.profiles[p.Name] = p
		r.order = append(r.order, p.Name)
	}

	l := &loader{
		registry: r,
		builtins: builtins,
		decls:    cfg.Profiles,
		source:   cfg.ConfigFile,
		done:     make(map[string]bool),
		visiting: make(map[string]bool),
	}

	names := lo.Keys(cfg.Profiles)
	sort.Strings(names)
	for _, name := range names {
		if _, err := l.load(name); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// List returns all profiles, built-ins first
func (r *Registry) List() []*domain.Profile {
	return lo.Map(r.order, func(name string, _ int) *domain.Profile { return r.profiles[name] })
}

// Lookup finds a profile by exact name
func (r *Registry) Lookup(name string) (*domain.Profile, error) {
	if p, ok := r.profiles[name]; ok {
		return p, nil
	}

	matches := fuzzy.Find(name, r.order)
	suggestions := lo.Map(matches, func(m fuzzy.Match, _ int) string { return m.Str })
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return nil, domain.ProfileNotFoundError{Name: name, Suggestions: suggestions}
}

// Resolve layers caller overrides on top of the profile's parameter defaults.
// Only overridable parameters may be set.
func (r *Registry) Resolve(name string, overrides map[string]string) (*domain.ProfileContext, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	params := make(map[string]string, len(p.Params))
	for _, spec := range p.Params {
		params[spec.Key] = spec.Default
	}

	keys := lo.Keys(overrides)
	sort.Strings(keys)
	for _, key := range keys {
		spec, ok := p.Param(key)
		if !ok || !spec.Overridable {
			allowed := lo.Map(p.OverridableParams(), func(s domain.ParamSpec, _ int) string { return s.Key })
			if len(allowed) == 0 {
				return nil, fmt.Errorf("profile %s does not accept parameter %q", p.Name, key)
			}
			return nil, fmt.Errorf("profile %s does not accept parameter %q (allowed: %s)",
				p.Name, key, strings.Join(allowed, ", "))
		}
		params[key] = overrides[key]
	}

	chainID := p.ChainID
	if v, ok := params[domain.ParamChainID]; ok {
		chainID, err = strconv.ParseUint(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidChainID, v)
		}
	}

	hexChainID, err := domain.EncodeChainID(chainID)
	if err != nil {
		return nil, err
	}

	r.log.Debug("resolved profile", "profile", p.Name, "chain_id", chainID, "overrides", len(overrides))

	return &domain.ProfileContext{
		Profile:    p,
		Network:    p.Network,
		ChainID:    chainID,
		HexChainID: hexChainID,
		Params:     params,
	}, nil
}

// Instructions expands the profile's patch groups in order
func (r *Registry) Instructions(pc *domain.ProfileContext) ([]domain.Instruction, error) {
	var all []domain.Instruction
	for _, group := range pc.Profile.Groups {
		build, ok := groupBuilders[group]
		if !ok {
			return nil, fmt.Errorf("profile %s: unknown patch group %q", pc.Profile.Name, group)
		}
		ins, err := build(pc)
		if err != nil {
			return nil, fmt.Errorf("patch group %s: %w", group, err)
		}
		all = append(all, ins...)
	}
	return all, nil
}

// loader resolves config-declared profiles, following extends chains
type loader struct {
	registry *Registry
	builtins map[string]*domain.Profile
	decls    map[string]config.ProfileFileConfig
	source   string
	done     map[string]bool
	visiting map[string]bool
}

func (l *loader) load(name string) (*domain.Profile, error) {
	if l.done[name] {
		return l.registry.profiles[name], nil
	}
	if l.visiting[name] {
		return nil, fmt.Errorf("profile %s: extends cycle", name)
	}
	l.visiting[name] = true
	defer delete(l.visiting, name)

	decl := l.decls[name]

	var base *domain.Profile
	customize := false
	switch {
	case decl.Extends == "" || decl.Extends == name:
		b, ok := l.builtins[name]
		if !ok {
			return nil, fmt.Errorf("profile %s: extends is required for profiles that are not built in", name)
		}
		base, customize = b, true
	case hasDecl(l.decls, decl.Extends):
		b, err := l.load(decl.Extends)
		if err != nil {
			return nil, err
		}
		base = b
	default:
		b, ok := l.builtins[decl.Extends]
		if !ok {
			_, err := l.registry.Lookup(decl.Extends)
			return nil, fmt.Errorf("profile %s: %w", name, err)
		}
		base = b
	}

	p, err := derive(base, name, decl, customize)
	if err != nil {
		return nil, err
	}
	p.Source = l.source

	if _, exists := l.registry.profiles[name]; !exists {
		l.registry.order = append(l.registry.order, name)
	}
	l.registry.profiles[name] = p
	l.done[name] = true

	l.registry.log.Debug("loaded profile from config", "profile", name, "extends", base.Name, "groups", len(p.Groups))
	return p, nil
}

func hasDecl(decls map[string]config.ProfileFileConfig, name string) bool {
	_, ok := decls[name]
	return ok
}

// derive copies base and applies a config declaration. Derived profiles expose
// every parameter as overridable; customizing a built-in keeps its overridable set.
func derive(base *domain.Profile, name string, decl config.ProfileFileConfig, customize bool) (*domain.Profile, error) {
	p := *base
	p.Name = name
	p.Groups = append([]string{}, base.Groups...)
	p.Params = append([]domain.ParamSpec{}, base.Params...)

	if decl.Network != "" {
		p.Network = decl.Network
	} else if !customize {
		p.Network = name
	}
	if decl.Description != "" {
		p.Description = decl.Description
	}
	if decl.Development != nil {
		p.Environment = domain.EnvironmentDefault
		if *decl.Development {
			p.Environment = domain.EnvironmentDevelopment
		}
	}
	if decl.ChainID != 0 {
		if _, err := domain.EncodeChainID(decl.ChainID); err != nil {
			return nil, fmt.Errorf("profile %s: %w", name, err)
		}
		p.ChainID = decl.ChainID
		if i := paramIndex(p.Params, domain.ParamChainID); i >= 0 {
			p.Params[i].Default = strconv.FormatUint(decl.ChainID, 10)
		}
	}

	for _, group := range decl.ExtraGroups {
		if groupIndex(group) < 0 {
			return nil, fmt.Errorf("profile %s: unknown patch group %q (known: %s)",
				name, group, strings.Join(groupOrder, ", "))
		}
		if !lo.Contains(p.Groups, group) {
			p.Groups = append(p.Groups, group)
		}
	}
	sort.SliceStable(p.Groups, func(i, j int) bool {
		return groupIndex(p.Groups[i]) < groupIndex(p.Groups[j])
	})

	keys := lo.Keys(decl.Params)
	sort.Strings(keys)
	for _, key := range keys {
		if i := paramIndex(p.Params, key); i >= 0 {
			p.Params[i].Default = decl.Params[key]
			continue
		}
		p.Params = append(p.Params, option(key, decl.Params[key], ""))
	}

	if !customize {
		for i := range p.Params {
			p.Params[i].Overridable = true
		}
	}

	return &p, nil
}

func paramIndex(specs []domain.ParamSpec, key string) int {
	for i, spec := range specs {
		if spec.Key == key {
			return i
		}
	}
	return -1
}

// Ensure the registry implements the interface
var _ usecase.ProfileRegistry = (*Registry)(nil)
