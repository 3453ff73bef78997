package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/golaunch/internal/app"
	"github.com/vk/golaunch/internal/cli"
	"github.com/vk/golaunch/internal/hcl"
)

// main is the entrypoint for the golaunch application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The composed plan goes to outW; logs and errors go to errW.
func run(outW, errW io.Writer, args []string) (err error) {
	// The app panics on critical startup errors, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the package index and the concrete HCL loader to pass to
	// the app.
	ix := app.NewIndexForConfig(appConfig)
	loader := hcl.NewLoader(ix)
	launchApp := app.NewApp(outW, errW, appConfig, ix, loader)

	return launchApp.Run(context.Background())
}
