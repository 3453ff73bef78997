// Package schema declares the HCL structures of a launch file. These types
// are decoding targets only; translate in the hcl package turns them into
// the launch model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// FileSchema describes the top-level blocks of a launch file. It is used
// with hcl.Body.Content so that node and include blocks come back in source
// order: a launch description is an ordered sequence, and the relative
// order of the two block kinds is significant.
var FileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "node", LabelNames: []string{"name"}},
		{Type: "include"},
	},
}

// ParamsBody represents the content of the 'parameters' block within a
// node. Its attributes are free-form and evaluated individually.
type ParamsBody struct {
	Body hcl.Body `hcl:",remain"`
}

// NodeBody represents the body of a `node` block. The node's display name
// is the block label and is carried separately.
type NodeBody struct {
	Package    string      `hcl:"package"`
	Executable string      `hcl:"executable"`
	Output     string      `hcl:"output,optional"`
	Parameters *ParamsBody `hcl:"parameters,block"`
	Arguments  []string    `hcl:"arguments,optional"`
}

// IncludeBody represents the body of an `include` block.
type IncludeBody struct {
	Source string `hcl:"source"`
}
