package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/zbd-node-docs/internal/app"
	"github.com/nfrund/zbd-node-docs/internal/config"
	"github.com/nfrund/zbd-node-docs/internal/logging"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the documentation server",
	Long: `Run the documentation server using the same environment configuration
as cmd/server. --addr and --catalog override APP_ADDR and CATALOG_PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			os.Setenv("APP_ADDR", serveAddr)
		}
		if catalogPath != "" {
			os.Setenv("CATALOG_PATH", catalogPath)
		}
		cfg, err := config.New()
		if err != nil {
			return err
		}
		logging.New(cfg.LogFormat, cfg.LogLevel)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.Serve(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, e.g. :8080")
	rootCmd.AddCommand(serveCmd)
}
