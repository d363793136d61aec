package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/vk/machinefile/internal/app"
	"github.com/vk/machinefile/internal/cli"
)

// errLine renders process-boundary errors in red on terminals.
var errLine = color.New(color.FgRed)

// main is the entrypoint for the machinefile application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			errLine.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		errLine.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The machine file goes to outW; help text, logs, and diagnostics
// go to logW.
func run(outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	machinefileApp := app.NewApp(outW, logW, appConfig)
	return machinefileApp.Run(context.Background())
}
