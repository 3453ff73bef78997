package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vk/golaunch/internal/hcl"
	"github.com/vk/golaunch/internal/index"
	"github.com/vk/golaunch/internal/launch"
)

// RunLaunchFileTest provides a simplified harness for testing the parsing
// of a single launch HCL string. Share files (relative to the prefix's
// share/ directory, e.g. "kashiwanoha_map/map/lanelet2_map.osm") are
// materialized so resource-resolution functions succeed.
func RunLaunchFileTest(t *testing.T, launchHCL string, shareFiles map[string]string) (*launch.Description, error) {
	t.Helper()

	files := map[string]string{
		"launch/main.launch.hcl": launchHCL,
	}
	for rel, content := range shareFiles {
		files[filepath.Join("install", "share", rel)] = content
	}
	root := WriteFiles(t, files)

	ix := index.New(filepath.Join(root, "install"))
	loader := hcl.NewLoader(ix)
	return loader.Load(context.Background(), filepath.Join(root, "launch", "main.launch.hcl"))
}
