// Package testutil provides shared harnesses for system and integration
// tests: temporary install-prefix trees, launch-file fixtures, and a
// full-app compose runner.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/golaunch/internal/app"
	"github.com/vk/golaunch/internal/hcl"
	"github.com/vk/golaunch/internal/registry"
)

// HarnessResult holds the outcomes of a full-app compose run.
type HarnessResult struct {
	Root string
	Out  string
	Logs string
	Err  error
	App  *app.App
}

// WriteFiles writes the given relative-path -> content map under a fresh
// temporary root and returns the root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// RunComposeTest provides a standardized harness for running the app end to
// end. Files are written under a temporary root; by convention the install
// prefix is the root's install/ directory (so share files live at
// "install/share/<pkg>/..."), and a relative .hcl launch reference is
// resolved against the root.
func RunComposeTest(t *testing.T, cfg app.Config, files map[string]string, providers ...registry.Provider) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)

	if cfg.PrefixPath == "" {
		cfg.PrefixPath = filepath.Join(root, "install")
	}
	if strings.HasSuffix(cfg.LaunchRef, ".hcl") && !filepath.IsAbs(cfg.LaunchRef) {
		cfg.LaunchRef = filepath.Join(root, cfg.LaunchRef)
	}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	ix := app.NewIndexForConfig(validated)
	loader := hcl.NewLoader(ix)
	testApp, outBuf, logBuf := app.SetupAppTest(t, validated, ix, loader, providers...)

	runErr := testApp.Run(context.Background())

	return &HarnessResult{
		Root: root,
		Out:  outBuf.String(),
		Logs: logBuf.String(),
		Err:  runErr,
		App:  testApp,
	}
}
