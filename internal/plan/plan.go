package plan

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vk/golaunch/internal/ctxlog"
	"github.com/vk/golaunch/internal/launch"
)

// Plan is a composed launch plan: an identified, ordered sequence of
// directives together with the sources it was built from.
type Plan struct {
	// ID uniquely identifies this composition.
	ID string

	// GeneratedAt records when the plan was composed, in UTC.
	GeneratedAt time.Time

	// Sources lists the launch references and files that contributed
	// directives, in the order they were consulted.
	Sources []string

	// Directives is the plan's ordered directive sequence.
	Directives []launch.Directive
}

// Compose stamps a description into a plan without touching its directives.
// Include directives stay unexpanded; runtimes that resolve includes
// themselves consume this form.
func Compose(ctx context.Context, desc *launch.Description, source string) *Plan {
	logger := ctxlog.FromContext(ctx)
	p := &Plan{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Sources:     []string{source},
		Directives:  desc.Directives(),
	}
	logger.Debug("Plan composed.", "id", p.ID, "source", source, "directive_count", len(p.Directives))
	return p
}

// Flatten composes a plan with every include directive expanded in place.
// Included files are loaded through the given loader; expansion is
// depth-first and preserves directive order. An include cycle is an error.
func Flatten(ctx context.Context, desc *launch.Description, loader launch.Loader, source string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	f := &flattener{
		loader:   loader,
		visiting: make(map[string]bool),
		sources:  []string{source},
	}
	directives, err := f.expand(ctx, desc.Directives())
	if err != nil {
		return nil, err
	}

	p := &Plan{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Sources:     f.sources,
		Directives:  directives,
	}
	logger.Debug("Plan flattened.", "id", p.ID, "source_count", len(p.Sources), "directive_count", len(p.Directives))
	return p, nil
}

// flattener tracks in-progress include expansions to detect cycles.
type flattener struct {
	loader   launch.Loader
	visiting map[string]bool
	sources  []string
}

// expand splices included descriptions into the directive sequence.
func (f *flattener) expand(ctx context.Context, directives []launch.Directive) ([]launch.Directive, error) {
	var out []launch.Directive
	for _, d := range directives {
		include, ok := d.(*launch.Include)
		if !ok {
			out = append(out, d)
			continue
		}

		source := include.Source
		if abs, err := filepath.Abs(source); err == nil {
			source = abs
		}
		if f.visiting[source] {
			return nil, fmt.Errorf("include cycle detected at %s", source)
		}

		f.visiting[source] = true
		f.sources = append(f.sources, source)

		included, err := f.loader.Load(ctx, include.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to load included launch file %s: %w", include.Source, err)
		}
		expanded, err := f.expand(ctx, included.Directives())
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)

		delete(f.visiting, source)
	}
	return out, nil
}
