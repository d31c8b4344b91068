package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List the tradecraft documents the engine knows about",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		eng, err := buildEngine(cmd, logger)
		if err != nil {
			fmt.Printf("Error initializing fieldquote: %v\n", err)
			os.Exit(1)
		}

		jobs, err := eng.Trades().List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing trades: %v\n", err)
			os.Exit(1)
		}

		for _, job := range jobs {
			doc, err := eng.Trades().Get(cmd.Context(), job)
			if err != nil {
				fmt.Printf("  %s (unreadable: %v)\n", job, err)
				continue
			}
			fmt.Printf("%s\n", doc.Title)
			fmt.Printf("  job type:  %s\n", doc.JobType)
			fmt.Printf("  trade:     %s\n", doc.Trade)
			fmt.Printf("  questions: %d\n", len(doc.Questions))
			fmt.Printf("  checklist: %d categories\n", len(doc.Checklist))
		}
	},
}

func init() {
	rootCmd.AddCommand(tradesCmd)
}
