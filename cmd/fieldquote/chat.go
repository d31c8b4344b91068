package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldquote/fieldquote/internal/cli"
	"github.com/fieldquote/fieldquote/internal/presentation/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Build a quote interactively in the terminal",
	Long:  `Runs a FieldQuote conversation in the terminal. The engine stays stateless; the CLI carries the phase and context between turns the same way an HTTP client would.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		eng, err := buildEngine(cmd, logger)
		if err != nil {
			fmt.Printf("Error initializing fieldquote: %v\n", err)
			os.Exit(1)
		}

		tui.PrintBanner()

		if err := cli.Chat(cmd.Context(), eng, os.Stdin, os.Stdout); err != nil {
			fmt.Printf("Chat session error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
