package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/golaunch/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("golaunch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
golaunch - A declarative launch-plan composer.

Usage:
  golaunch [options] [LAUNCH_REF]

Arguments:
  LAUNCH_REF
    Either a built-in launch description reference of the form
    "package/launch_name", or a path to a .launch.hcl file (or a
    directory containing them).

Options:
`)
		flagSet.PrintDefaults()
	}

	launchFlag := flagSet.String("launch", "", "Launch reference or path to a launch file.")
	lFlag := flagSet.String("l", "", "Launch reference or path to a launch file (shorthand).")
	formatFlag := flagSet.String("format", "yaml", "Plan output format. Options: 'yaml' or 'json'.")
	flattenFlag := flagSet.Bool("flatten", false, "Expand include directives into the plan.")
	outputFlag := flagSet.String("output", "", "Write the plan to a file instead of stdout.")
	oFlag := flagSet.String("o", "", "Write the plan to a file instead of stdout (shorthand).")
	prefixPathFlag := flagSet.String("prefix-path", "", "Colon-separated install prefixes. Overrides GOLAUNCH_PREFIX_PATH.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	ref := ""
	if *launchFlag != "" {
		ref = *launchFlag
	} else if *lFlag != "" {
		ref = *lFlag
	} else if flagSet.NArg() > 0 {
		ref = flagSet.Arg(0)
	}
	slog.Debug("Launch reference determined.", "ref", ref)

	if ref == "" {
		slog.Debug("No launch reference provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	outputPath := *outputFlag
	if outputPath == "" {
		outputPath = *oFlag
	}

	format := strings.ToLower(*formatFlag)
	if format != "yaml" && format != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'yaml' or 'json'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		LaunchRef:       ref,
		PrefixPath:      *prefixPathFlag,
		Format:          format,
		Flatten:         *flattenFlag,
		OutputPath:      outputPath,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
