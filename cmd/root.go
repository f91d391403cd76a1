package cmd

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/arraykit/internal/config"
	"github.com/Rorical/arraykit/internal/core"
	"github.com/Rorical/arraykit/internal/ctxlog"
	"github.com/Rorical/arraykit/internal/input"
)

var (
	seed    uint64
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "arraykit",
	Short: "Build and edit an integer array from a text menu",
	Long: `arraykit creates an integer array, either random or typed in, and lets you
append to it, query its largest and smallest value, remove a value or delete it.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := withLogger(cmd.Context(), cmd.ErrOrStderr())
		if err := runConsole(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg); err != nil {
			log.Fatalf("Session error: %v", err)
		}
	},
}

// runConsole runs one menu session. Running out of input ends the session
// the same way answering "no" does.
func runConsole(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config) error {
	session := core.NewSession(in, out,
		core.WithBounds(cfg.Bounds()),
		core.WithSource(core.NewSeededSource(seed)),
	)

	err := session.Run(ctx)
	if errors.Is(err, input.ErrClosed) {
		ctxlog.FromContext(ctx).Debug("input ended before exit was chosen")
		return nil
	}
	return err
}

func withLogger(ctx context.Context, w io.Writer) context.Context {
	var handler slog.Handler = slog.DiscardHandler
	if verbose {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return ctxlog.WithLogger(ctx, slog.New(handler))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for random arrays (0 picks a random seed)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log session transitions to stderr")

	// Add subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}
