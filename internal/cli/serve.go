package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonlens/internal/config"
	"github.com/rshade/carbonlens/internal/logging"
	"github.com/rshade/carbonlens/internal/server"
)

// NewServeCmd creates the "serve" command.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the footprint HTTP API",
		Long: `Serve footprint calculations over HTTP:

  GET  /healthz
  POST /v1/footprint         JSON footprint, suggestions and equivalencies
  POST /v1/footprint/chart   PNG bar chart
  POST /v1/footprint/report  PDF report

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = config.GetGlobalConfig().Server.Address
			}
			if debug, _ := cmd.Flags().GetBool("debug"); !debug {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: config server.address)")

	return cmd
}

func runServer(ctx context.Context, addr string) error {
	log := logging.FromContext(ctx)
	return server.New(addr, newEngine(), logging.ComponentLogger(*log, "server")).Run(ctx)
}
