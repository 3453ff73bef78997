package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/golaunch/internal/ctxlog"
	"github.com/vk/golaunch/internal/fsutil"
	"github.com/vk/golaunch/internal/launch"
	"github.com/vk/golaunch/internal/launchref"
	"github.com/vk/golaunch/internal/plan"
)

// Run executes the main application logic: load or generate the requested
// launch description, compose the plan, and write it out.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
	}

	desc, source, err := a.loadDescription(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Launch description ready.", "source", source, "directive_count", desc.Len())

	var composed *plan.Plan
	if a.config.Flatten {
		composed, err = plan.Flatten(ctx, desc, a.loader, source)
		if err != nil {
			return fmt.Errorf("failed to flatten launch plan: %w", err)
		}
	} else {
		composed = plan.Compose(ctx, desc, source)
	}

	if err := a.writePlan(composed); err != nil {
		return err
	}

	a.logger.Info("🚀 Launch plan composed.", "id", composed.ID, "directives", len(composed.Directives), "format", a.config.Format)
	return nil
}

// loadDescription decides whether the configured launch reference names a
// file on disk or a built-in description, and produces the description.
func (a *App) loadDescription(ctx context.Context) (*launch.Description, string, error) {
	ref := a.config.LaunchRef

	if a.refersToPath(ref) {
		source := ref
		if abs, err := filepath.Abs(ref); err == nil {
			source = abs
		}
		desc, err := a.loader.Load(ctx, ref)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load launch description from %s: %w", ref, err)
		}
		return desc, source, nil
	}

	parsed, err := launchref.Parse(ref)
	if err != nil {
		return nil, "", fmt.Errorf("%w (known descriptions: %s)", err, strings.Join(a.registry.Refs(), ", "))
	}
	gen, ok := a.registry.Lookup(parsed)
	if !ok {
		return nil, "", fmt.Errorf("unknown launch description %q (known descriptions: %s)", parsed, strings.Join(a.registry.Refs(), ", "))
	}

	desc, err := gen(ctx, a.ix)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate launch description %q: %w", parsed, err)
	}
	return desc, parsed.String(), nil
}

// refersToPath reports whether the launch reference is a filesystem path
// rather than a built-in reference.
func (a *App) refersToPath(ref string) bool {
	if strings.HasSuffix(ref, ".hcl") || fsutil.IsDir(ref) {
		return true
	}
	_, err := os.Stat(ref)
	return err == nil
}

// writePlan encodes the plan in the configured format to the configured
// destination.
func (a *App) writePlan(p *plan.Plan) error {
	out := a.outW
	if a.config.OutputPath != "" {
		f, err := os.Create(a.config.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return encodePlan(out, p, a.config.Format)
}

// encodePlan dispatches to the encoder for the given format. The format has
// been validated by NewConfig.
func encodePlan(w io.Writer, p *plan.Plan, format string) error {
	if format == "json" {
		return plan.EncodeJSON(w, p)
	}
	return plan.EncodeYAML(w, p)
}
