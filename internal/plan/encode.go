package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/vk/golaunch/internal/launch"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// planDoc is the serialized shape of a plan. Both encoders share it so the
// YAML and JSON renderings stay field-for-field identical.
type planDoc struct {
	ID          string         `yaml:"id" json:"id"`
	GeneratedAt string         `yaml:"generated_at" json:"generated_at"`
	Sources     []string       `yaml:"sources" json:"sources"`
	Directives  []directiveDoc `yaml:"directives" json:"directives"`
}

// directiveDoc is the serialized shape of a single directive. Kind selects
// which of the remaining fields are populated.
type directiveDoc struct {
	Kind       string         `yaml:"kind" json:"kind"`
	Name       string         `yaml:"name,omitempty" json:"name,omitempty"`
	Package    string         `yaml:"package,omitempty" json:"package,omitempty"`
	Executable string         `yaml:"executable,omitempty" json:"executable,omitempty"`
	Output     string         `yaml:"output,omitempty" json:"output,omitempty"`
	Parameters map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Arguments  []string       `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	Source     string         `yaml:"source,omitempty" json:"source,omitempty"`
}

// EncodeYAML writes the plan to w as a YAML document.
func EncodeYAML(w io.Writer, p *Plan) error {
	doc, err := newPlanDoc(p)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode plan as YAML: %w", err)
	}
	return enc.Close()
}

// EncodeJSON writes the plan to w as indented JSON.
func EncodeJSON(w io.Writer, p *Plan) error {
	doc, err := newPlanDoc(p)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode plan as JSON: %w", err)
	}
	return nil
}

// newPlanDoc lowers a plan into its serialized shape.
func newPlanDoc(p *Plan) (*planDoc, error) {
	doc := &planDoc{
		ID:          p.ID,
		GeneratedAt: p.GeneratedAt.Format(time.RFC3339Nano),
		Sources:     p.Sources,
		Directives:  make([]directiveDoc, 0, len(p.Directives)),
	}
	for _, d := range p.Directives {
		dd, err := newDirectiveDoc(d)
		if err != nil {
			return nil, err
		}
		doc.Directives = append(doc.Directives, dd)
	}
	return doc, nil
}

// newDirectiveDoc lowers a single directive.
func newDirectiveDoc(d launch.Directive) (directiveDoc, error) {
	switch d := d.(type) {
	case *launch.Node:
		params, err := lowerParameters(d.Parameters)
		if err != nil {
			return directiveDoc{}, fmt.Errorf("node %q: %w", d.Name, err)
		}
		return directiveDoc{
			Kind:       "node",
			Name:       d.Name,
			Package:    d.Package,
			Executable: d.Executable,
			Output:     string(d.Output),
			Parameters: params,
			Arguments:  d.Arguments,
		}, nil
	case *launch.Include:
		return directiveDoc{
			Kind:   "include",
			Source: d.Source,
		}, nil
	default:
		return directiveDoc{}, fmt.Errorf("unknown directive type %T", d)
	}
}

// lowerParameters converts parameter values to native Go values.
func lowerParameters(params map[string]cty.Value) (map[string]any, error) {
	if len(params) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(params))
	for name, val := range params {
		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		out[name] = goVal
	}
	return out, nil
}

// ctyToGo lowers a cty value to the native Go value the encoders emit.
// Integral numbers become int64 so that ports and similar parameters render
// without a decimal point; all other numbers become float64.
func ctyToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.String):
		return val.AsString(), nil
	case ty.Equals(cty.Bool):
		return val.True(), nil
	case ty.Equals(cty.Number):
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		var out []any
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			goVal, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, goVal)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			goVal, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out[key.AsString()] = goVal
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %s", ty.FriendlyName())
	}
}
