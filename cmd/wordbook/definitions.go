package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/client"
)

func newDefineCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "define <word> <definition>...",
		Short: "Store a definition for a new word",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			definition := strings.Join(args[1:], " ")

			apiClient := client.NewClient(opts.serverURL, opts.retries)
			defer func() {
				_ = apiClient.Close()
			}()

			message, err := apiClient.Define(cmd.Context(), word, definition)
			if errors.Is(err, client.ErrDuplicate) {
				return fmt.Errorf("%q is already defined", word)
			}
			if err != nil {
				return fmt.Errorf("client.Define > %w", err)
			}
			return newPrinter(opts.output, cmd.OutOrStdout()).printRecorded(word, message)
		},
	}
}

func newLookupCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show the definition of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			apiClient := client.NewClient(opts.serverURL, opts.retries)
			defer func() {
				_ = apiClient.Close()
			}()

			entry, err := apiClient.Lookup(cmd.Context(), word)
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("%q is not defined", word)
			}
			if err != nil {
				return fmt.Errorf("client.Lookup > %w", err)
			}
			return newPrinter(opts.output, cmd.OutOrStdout()).printEntry(entry)
		},
	}
}
