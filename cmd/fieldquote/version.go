package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldquote/fieldquote"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the FieldQuote version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fieldquote %s\n", fieldquote.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
