package cmd

import (
	"fmt"

	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate or dump catalog files",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file for errors",
	Long: `Check a JSON catalog file the way the server does at startup and on reload.
Unknown entity labels are reported as warnings; missing fields, bad URLs and
duplicate method names are errors.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d methods, version %s\n", args[0], cat.Len(), cat.Version())
		return nil
	},
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Write the built-in catalog as a starting point for an override file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		if err := catalog.WriteFile(afero.NewOsFs(), args[0], cat); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d methods to %s\n", cat.Len(), args[0])
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd, catalogDumpCmd)
	rootCmd.AddCommand(catalogCmd)
}
