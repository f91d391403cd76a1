package cmd

import (
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Rorical/arraykit/internal/app"
	"github.com/Rorical/arraykit/internal/config"
	"github.com/Rorical/arraykit/internal/core"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the menu session in a full-screen terminal view",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := withLogger(cmd.Context(), tuiLogWriter(os.Stderr))

		application := app.NewApplication(ctx, cfg, core.WithSource(core.NewSeededSource(seed)))
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

// tuiLogWriter drops logs when f is a terminal, where they would garble
// the alt screen. Redirected stderr still receives them.
func tuiLogWriter(f *os.File) io.Writer {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return io.Discard
	}
	return f
}
