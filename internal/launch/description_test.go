package launch

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNewDescription_CopiesDirectiveSlice(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	directives := []Directive{
		&Node{Package: "rviz2", Executable: "rviz2", Name: "rviz2"},
		&Include{Source: "/opt/share/joy_to_vehicle_cmd/launch/joy_to_vehicle_cmd.launch.hcl"},
	}
	desc := NewDescription(directives...)

	// --- Act ---
	// Mutating the caller's slice must not reorder the description.
	directives[0], directives[1] = directives[1], directives[0]
	got := desc.Directives()

	// --- Assert ---
	require.Equal(t, 2, desc.Len())
	node, ok := got[0].(*Node)
	require.True(t, ok)
	require.Equal(t, "rviz2", node.Name)
}

func TestDirectives_ReturnsACopy(t *testing.T) {
	t.Parallel()

	desc := NewDescription(&Node{Name: "a"}, &Node{Name: "b"})

	first := desc.Directives()
	first[0] = &Include{Source: "clobbered"}

	second := desc.Directives()
	node, ok := second[0].(*Node)
	require.True(t, ok)
	require.Equal(t, "a", node.Name)
}

func TestParameterNames_Sorted(t *testing.T) {
	t.Parallel()

	node := &Node{
		Parameters: map[string]cty.Value{
			"port":            cty.NumberIntVal(8080),
			"map_path":        cty.StringVal("/tmp/lanelet2_map.osm"),
			"origin_latitude": cty.NumberFloatVal(35.903555800615614),
		},
	}

	require.Equal(t, []string{"map_path", "origin_latitude", "port"}, node.ParameterNames())
}
