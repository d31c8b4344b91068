package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/fieldquote/fieldquote"
	"github.com/fieldquote/fieldquote/pkg/adapters/httpapi"
	"github.com/fieldquote/fieldquote/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the FieldQuote engine in stateless server mode, exposing the chat endpoint over HTTP. Conversation state lives with the caller; the server keeps nothing between turns.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		logger := newLogger(cmd)

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		hooks := observability.Combine(
			metrics.Hooks(),
			observability.NewLoggingHooks(logger),
		)

		eng, err := buildEngine(cmd, logger, fieldquote.WithHooks(hooks))
		if err != nil {
			fmt.Printf("Error initializing fieldquote: %v\n", err)
			os.Exit(1)
		}

		handler := httpapi.NewHandler(eng, eng.Trades(), logger)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting FieldQuote server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("FieldQuote server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
