package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/golaunch/internal/launch"
	"github.com/vk/golaunch/internal/testutil"
)

func TestLoader_PreservesInterleavedBlockOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The relative order of node and include blocks is significant: the
	// runtime starts processes in declaration order.
	launchHCL := `
		node "first" {
			package    = "p"
			executable = "e"
		}
		include {
			source = "/launch/middle.launch.hcl"
		}
		node "last" {
			package    = "p"
			executable = "e"
		}
	`

	// --- Act ---
	desc, err := testutil.RunLaunchFileTest(t, launchHCL, nil)

	// --- Assert ---
	require.NoError(t, err)
	directives := desc.Directives()
	require.Len(t, directives, 3)

	first, ok := directives[0].(*launch.Node)
	require.True(t, ok)
	require.Equal(t, "first", first.Name)

	include, ok := directives[1].(*launch.Include)
	require.True(t, ok)
	require.Equal(t, "/launch/middle.launch.hcl", include.Source)

	last, ok := directives[2].(*launch.Node)
	require.True(t, ok)
	require.Equal(t, "last", last.Name)
}

func TestLoader_RelativeIncludeResolvedAgainstIncludingFile(t *testing.T) {
	t.Parallel()

	launchHCL := `
		include {
			source = "sub.launch.hcl"
		}
	`

	desc, err := testutil.RunLaunchFileTest(t, launchHCL, nil)

	require.NoError(t, err)
	include := desc.Directives()[0].(*launch.Include)
	// The harness writes the file at <root>/launch/main.launch.hcl, so the
	// sibling reference resolves into the same directory.
	require.Contains(t, include.Source, "launch")
	require.NotEqual(t, "sub.launch.hcl", include.Source)
}
