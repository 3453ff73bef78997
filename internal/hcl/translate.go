package hcl

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/golaunch/internal/launch"
	"github.com/vk/golaunch/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// translateNode converts a decoded `node` block into the launch model.
func (l *Loader) translateNode(block *hcl.Block, evalCtx *hcl.EvalContext) (*launch.Node, error) {
	name := block.Labels[0]

	var body schema.NodeBody
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("node %q: %w", name, diags)
	}

	output := launch.Output(body.Output)
	switch output {
	case "":
		output = launch.OutputLog
	case launch.OutputLog, launch.OutputScreen:
		// valid
	default:
		return nil, fmt.Errorf("node %q: invalid output %q: must be 'screen' or 'log'", name, body.Output)
	}

	params, err := l.extractParameters(body.Parameters, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", name, err)
	}

	return &launch.Node{
		Package:    body.Package,
		Executable: body.Executable,
		Name:       name,
		Output:     output,
		Parameters: params,
		Arguments:  body.Arguments,
	}, nil
}

// translateInclude converts a decoded `include` block into the launch
// model. A relative source is resolved against the including file's
// directory.
func (l *Loader) translateInclude(block *hcl.Block, filePath string, evalCtx *hcl.EvalContext) (*launch.Include, error) {
	var body schema.IncludeBody
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("include: %s", diags.Error())
	}
	if body.Source == "" {
		return nil, fmt.Errorf("include: source cannot be empty")
	}

	source := body.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(filepath.Dir(filePath), source)
	}

	return &launch.Include{Source: source}, nil
}

// extractParameters evaluates the free-form attributes of a `parameters`
// block into parameter values.
func (l *Loader) extractParameters(body *schema.ParamsBody, evalCtx *hcl.EvalContext) (map[string]cty.Value, error) {
	if body == nil {
		return nil, nil
	}

	attrs, diags := body.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid parameters block: %s", diags.Error())
	}

	params := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parameter %q: %s", name, diags.Error())
		}
		params[name] = val
	}

	return params, nil
}
