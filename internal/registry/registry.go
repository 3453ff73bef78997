package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/golaunch/internal/index"
	"github.com/vk/golaunch/internal/launch"
	"github.com/vk/golaunch/internal/launchref"
)

// Generator produces a launch description, resolving any package resource
// paths it needs through the provided index.
type Generator func(ctx context.Context, ix *index.Index) (*launch.Description, error)

// Provider is the interface every built-in description package implements
// to be registered.
type Provider interface {
	Register(r *Registry)
}

// Registry maps canonical launch references to their generator functions
// for a single application instance.
type Registry struct {
	generators map[string]Generator
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// RegisterDescription registers a generator under a canonical reference.
// An invalid reference or a duplicate registration panics: both are
// programmer errors in a provider, not runtime conditions.
func (r *Registry) RegisterDescription(ref string, gen Generator) {
	parsed, err := launchref.Parse(ref)
	if err != nil {
		panic(fmt.Sprintf("cannot register launch description: %v", err))
	}
	canonical := parsed.String()
	if _, exists := r.generators[canonical]; exists {
		panic(fmt.Sprintf("launch description %q already registered", canonical))
	}
	slog.Debug("Registering launch description.", "ref", canonical)
	r.generators[canonical] = gen
}

// Lookup returns the generator registered under the given reference.
func (r *Registry) Lookup(ref launchref.Ref) (Generator, bool) {
	gen, ok := r.generators[ref.String()]
	return gen, ok
}

// Refs returns the canonical references of all registered descriptions in
// sorted order.
func (r *Registry) Refs() []string {
	refs := make([]string, 0, len(r.generators))
	for ref := range r.generators {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
