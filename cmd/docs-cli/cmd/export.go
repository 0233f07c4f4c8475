package cmd

import (
	"fmt"

	"github.com/nfrund/zbd-node-docs/internal/export"
	"github.com/nfrund/zbd-node-docs/internal/rendering"
	"github.com/nfrund/zbd-node-docs/internal/storage"
	"github.com/nfrund/zbd-node-docs/web"
	"github.com/spf13/cobra"
)

var (
	exportOut        string
	exportPlayground string
	exportClean      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long: `Render the documentation page and write it, with methods.json, the static
assets and a manifest, to a directory that any static host can serve.

Examples:
  docs-cli export --out dist
  docs-cli export --out dist --catalog methods.json --clean=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		store, err := storage.NewDirStore(exportOut)
		if err != nil {
			return err
		}

		x := export.New(store, rendering.NewUniversalRenderer(), web.Static())
		m, err := x.Export(cmd.Context(), cat, export.Options{
			PlaygroundURL: exportPlayground,
			Clean:         exportClean,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s (build %s, catalog %s)\n",
			len(m.Files)+1, exportOut, m.BuildID, m.CatalogVersion)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	exportCmd.Flags().StringVar(&exportPlayground, "playground-url", "https://nextjs.zbd.dev", "live Dev Playground URL")
	exportCmd.Flags().BoolVar(&exportClean, "clean", true, "empty the output directory first")
	rootCmd.AddCommand(exportCmd)
}
