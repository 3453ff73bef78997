package launch

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Output selects where a launched process's stdout and stderr go.
type Output string

const (
	// OutputLog sends process output to the runtime's log files. This is
	// the default when a launch file omits the output attribute.
	OutputLog Output = "log"

	// OutputScreen sends process output to the launching terminal.
	OutputScreen Output = "screen"
)

// Directive is one entry in a launch description: either a process to start
// or the inclusion of another launch description.
type Directive interface {
	// directive restricts implementations to this package's types.
	directive()
}

// Node declares a single pre-built executable to start, together with its
// display name, output sink, startup parameters, and command-line arguments.
type Node struct {
	// Package is the installed package that provides the executable.
	Package string

	// Executable is the executable's name within the package.
	Executable string

	// Name is the display name the runtime assigns to the process.
	Name string

	// Output selects the process's output sink.
	Output Output

	// Parameters maps parameter names to their values. Values keep their
	// source types: strings, numbers, and bools all round-trip unchanged.
	Parameters map[string]cty.Value

	// Arguments are passed to the executable verbatim, in order.
	Arguments []string
}

func (*Node) directive() {}

// ParameterNames returns the node's parameter names in sorted order.
func (n *Node) ParameterNames() []string {
	names := make([]string, 0, len(n.Parameters))
	for name := range n.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Include pulls another launch description into this one by file path. The
// source is left unexpanded in the description; plan flattening resolves it.
type Include struct {
	// Source is the path to the included .launch.hcl file.
	Source string
}

func (*Include) directive() {}
