package hcl

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/golaunch/internal/index"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// evalContext builds the evaluation context launch-file expressions run in.
// All resource resolution available to a launch file goes through these
// functions; there are no ambient variables.
func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"share_dir":  shareDirFunc(l.ix),
			"share_file": shareFileFunc(l.ix),
			"launch_dir": launchDirFunc(l.ix),
			"env":        envFunc(),
		},
	}
}

// shareDirFunc resolves a package name to its installed share directory.
func shareDirFunc(ix *index.Index) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "package", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			dir, err := ix.ShareDir(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(dir), nil
		},
	})
}

// shareFileFunc joins path elements onto a package's share directory.
func shareFileFunc(ix *index.Index) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "package", Type: cty.String},
		},
		VarParam: &function.Parameter{Name: "elem", Type: cty.String},
		Type:     function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			elems := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				elems = append(elems, arg.AsString())
			}
			path, err := ix.ShareFile(args[0].AsString(), elems...)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(path), nil
		},
	})
}

// launchDirFunc resolves a package's launch-file directory.
func launchDirFunc(ix *index.Index) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "package", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			dir, err := ix.LaunchDir(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(dir), nil
		},
	})
}

// envFunc reads an environment variable, yielding an empty string when the
// variable is unset.
func envFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(os.Getenv(args[0].AsString())), nil
		},
	})
}
