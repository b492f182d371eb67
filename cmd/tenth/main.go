// cmd/tenth/main.go
//
// This is the entry point for the tenth converter.
//
// Flow:
// 1. Load config.yaml (if any) and apply command-line overrides
// 2. Open the activity logbook
// 3. Launch the full-screen TUI, the --plain console, or run `tenth convert`

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/kingrea/tenth-to-inch/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// cobra already printed the error
	if err := cli.DefaultCommands().NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
