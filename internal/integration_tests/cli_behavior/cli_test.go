package integration_tests

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/golaunch/internal/cli"
)

func TestParse_PositionalLaunchRef(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := cli.Parse([]string{"cpp_mock_scenarios/manual_drive_kashiwanoha"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "cpp_mock_scenarios/manual_drive_kashiwanoha", cfg.LaunchRef)
	require.Equal(t, "yaml", cfg.Format)
	require.False(t, cfg.Flatten)
}

func TestParse_FlagOverridesAndShorthand(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := cli.Parse([]string{
		"-l", "scenario.launch.hcl",
		"-format", "json",
		"-flatten",
		"-o", "plan.json",
		"-prefix-path", "/opt/sim",
		"-log-level", "debug",
	}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "scenario.launch.hcl", cfg.LaunchRef)
	require.Equal(t, "json", cfg.Format)
	require.True(t, cfg.Flatten)
	require.Equal(t, "plan.json", cfg.OutputPath)
	require.Equal(t, "/opt/sim", cfg.PrefixPath)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_NoArgsPrintsUsageAndExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := cli.Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidEnumValuesReturnExitError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"-format", "xml", "ref/launch"}},
		{"bad log format", []string{"-log-format", "pretty", "ref/launch"}},
		{"bad log level", []string{"-log-level", "verbose", "ref/launch"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}

			_, _, err := cli.Parse(tc.args, out)

			require.Error(t, err)
			exitErr, ok := err.(*cli.ExitError)
			require.True(t, ok)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
