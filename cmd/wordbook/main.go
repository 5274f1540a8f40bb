package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/client"
)

type rootOptions struct {
	serverURL string
	output    OutputFormat
	retries   uint
	debugMode bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{
		output: OutputFormatText,
	}
	rootCommand := &cobra.Command{
		Use:           "wordbook",
		Short:         "Store and look up word definitions on a wordbook server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(opts.debugMode)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&opts.serverURL, "server", client.DefaultBaseURL, "wordbook server URL")
	flags.Var(&opts.output, "output", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	flags.UintVar(&opts.retries, "retries", client.DefaultMaxRetryAttempts, "Retries for failed requests")
	flags.BoolVar(&opts.debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newDefineCommand(opts),
		newLookupCommand(opts),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})),
	)
}
