package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/routerjig/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve jigs and templates over HTTP",
	Long: `Start an HTTP server rendering jigs and templates on request.

Endpoints:
  GET /health/live
  GET /api/v1/jig?shape=narrow&steps=8&format=svg
  GET /api/v1/template?angles=180&fence=true&format=pdf
  GET /api/v1/presets

Query parameters take the same names as the jig and template flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// request logs are always on for the server
		srv := server.New(log.New(os.Stderr, "", log.LstdFlags))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			errc <- srv.Listen(serveAddr)
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
			logger.Printf("shutting down")
			return srv.Shutdown()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}
