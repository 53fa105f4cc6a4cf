package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/machinegen/internal/app"
	"github.com/vk/machinegen/internal/cli"
)

// main is the entrypoint for the machinegen application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The generated document (dry run) and usage text go to outW, logs
// go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	machinegen := app.NewApp(outW, errW, appConfig)
	if err := machinegen.Run(ctx); err != nil {
		code := cli.ExitFailure
		if errors.Is(err, app.ErrConfig) {
			code = cli.ExitUsage
		}
		return &cli.ExitError{Code: code, Message: err.Error()}
	}
	return nil
}
