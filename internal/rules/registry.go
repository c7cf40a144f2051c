package rules

import (
	"fmt"
	"slices"

	"github.com/ludo-technologies/archscan/domain"
)

// Registry maps architectural styles to their rule constructors
type Registry struct {
	styles map[domain.ArchitectureType][]func() Rule
	order  []domain.ArchitectureType
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{styles: make(map[domain.ArchitectureType][]func() Rule)}
}

// Register adds rule constructors for style, keeping registration order
func (r *Registry) Register(style domain.ArchitectureType, ctors ...func() Rule) {
	if _, ok := r.styles[style]; !ok {
		r.order = append(r.order, style)
	}
	r.styles[style] = append(r.styles[style], ctors...)
}

// Styles returns the registered styles in registration order
func (r *Registry) Styles() []domain.ArchitectureType {
	return slices.Clone(r.order)
}

// All returns fresh instances of every registered rule, grouped by style
func (r *Registry) All() []Rule {
	var out []Rule
	for _, style := range r.order {
		for _, ctor := range r.styles[style] {
			out = append(out, ctor())
		}
	}
	return out
}

// Lookup returns fresh rule instances for style.
// ArchitectureAuto selects every registered rule.
func (r *Registry) Lookup(style domain.ArchitectureType) ([]Rule, error) {
	if style == domain.ArchitectureAuto || style == "" {
		return r.All(), nil
	}
	ctors, ok := r.styles[style]
	if !ok {
		return nil, domain.NewConfigError(fmt.Sprintf("unknown architecture type %q", style), nil)
	}
	out := make([]Rule, 0, len(ctors))
	for _, ctor := range ctors {
		out = append(out, ctor())
	}
	return out, nil
}

// Find returns a fresh instance of the rule with id
func (r *Registry) Find(id string) (Rule, bool) {
	for _, rule := range r.All() {
		if rule.ID() == id {
			return rule, true
		}
	}
	return nil, false
}

// DefaultRegistry returns the registry of built-in styles
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(domain.ArchitectureFSD,
		func() Rule { return NewFSDLayerRule() },
		func() Rule { return NewFSDNamingRule() },
	)
	reg.Register(domain.ArchitectureClean,
		func() Rule { return NewCleanDependencyRule() },
		func() Rule { return NewCleanUseCaseRule() },
	)
	reg.Register(domain.ArchitectureHexagonal,
		func() Rule { return NewHexagonalPortsRule() },
		func() Rule { return NewHexagonalPortInterfaceRule() },
	)
	return reg
}
