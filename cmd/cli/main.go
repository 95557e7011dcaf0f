package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/fablink/internal/archfile"
	"github.com/vk/fablink/internal/cli"
	"github.com/vk/fablink/internal/ctxlog"
	"github.com/vk/fablink/internal/linker"
)

// main is the entrypoint for the fablink tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(outW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(os.Stderr, inv.Options.SlogLevel(), inv.Options.LogFormat)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	hier, records, err := archfile.NewLoader().Load(ctx, inv.ArchPath)
	if err != nil {
		return err
	}

	l := linker.New(hier, records, linker.Options{
		ErrorPolicy: linker.ErrorPolicy(inv.Options.ErrorPolicy),
	})
	res, linkErr := l.Run(ctx)

	fmt.Fprintf(outW, "Linked %d physical modes, %d block pairs, %d port pairs in %s\n",
		res.ModeBindings, res.BlockPairs, res.PortPairs, res.Elapsed)
	if res.CheckPassed {
		fmt.Fprintln(outW, "Physical mode annotation check passed.")
	} else {
		fmt.Fprintf(outW, "Physical mode annotation check failed with %d errors.\n", res.CheckErrors)
	}

	if linkErr != nil {
		return linkErr
	}
	if res.InferErrors > 0 {
		return fmt.Errorf("%d blocks have no resolvable physical mode", res.InferErrors)
	}
	return nil
}
