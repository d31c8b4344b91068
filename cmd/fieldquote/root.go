package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldquote/fieldquote"
	"github.com/fieldquote/fieldquote/internal/logging"
	"github.com/fieldquote/fieldquote/pkg/adapters/file"
	"github.com/fieldquote/fieldquote/pkg/adapters/memory"
	redisCatalog "github.com/fieldquote/fieldquote/pkg/adapters/redis"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "fieldquote",
	Short: "FieldQuote is a guided quote-building chat engine for trade contractors",
	Long:  `FieldQuote walks a contractor through building a quote turn by turn: job type, scoping questions, materials, products, labor, markup, review.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("trades-dir", "", "Directory of tradecraft YAML documents (default: built-in demo trades)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for the product catalog (default: built-in demo catalog)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	levelName, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}
	return logging.New(level)
}

// buildStores resolves the tradecraft store and catalog from flags.
func buildStores(cmd *cobra.Command, logger *slog.Logger) (ports.TradecraftStore, ports.CatalogSearcher, error) {
	var trades ports.TradecraftStore
	if dir, _ := cmd.Flags().GetString("trades-dir"); dir != "" {
		store, err := file.New(dir)
		if err != nil {
			return nil, nil, err
		}
		trades = store
	} else {
		trades = memory.NewSeededTradecraftStore()
	}

	var catalog ports.CatalogSearcher
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		catalog = redisCatalog.New(addr, "", 0)
		logger.Info("using redis catalog", "addr", addr)
	} else {
		catalog = memory.NewSeededCatalog()
	}

	return trades, catalog, nil
}

func buildEngine(cmd *cobra.Command, logger *slog.Logger, opts ...fieldquote.Option) (*fieldquote.Engine, error) {
	trades, catalog, err := buildStores(cmd, logger)
	if err != nil {
		return nil, err
	}
	opts = append([]fieldquote.Option{
		fieldquote.WithTrades(trades),
		fieldquote.WithCatalog(catalog),
		fieldquote.WithLogger(logger),
	}, opts...)
	return fieldquote.New(opts...), nil
}
