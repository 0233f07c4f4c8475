package cmd

import (
	"log/slog"
	"os"

	"github.com/nfrund/zbd-node-docs/internal/app"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "docs-cli",
	Short: "ZBD Node.js SDK documentation tool",
	Long: `docs-cli serves, exports and inspects the @zbd/node SDK documentation site.

Available commands:
  serve       Run the documentation server
  export      Write the site as static files
  methods     Inspect the SDK method catalog
  catalog     Validate or dump catalog files

Use "docs-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logging.NewWithWriter(os.Stderr, "text", logLevel))
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "JSON catalog file to use instead of the built-in methods")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

// loadCatalog resolves the catalog selected by --catalog.
func loadCatalog() (*catalog.Catalog, error) {
	return app.LoadCatalog(afero.NewOsFs(), catalogPath)
}
