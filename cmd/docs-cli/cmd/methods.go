package cmd

import (
	"github.com/nfrund/zbd-node-docs/cmd/docs-cli/internal/display"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	methodsFormat string
	methodsEntity string
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "Inspect the SDK method catalog",
}

var methodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List SDK methods in page order",
	Long: `List the methods shown in the API Reference table, in the order they appear.

Examples:
  docs-cli methods list
  docs-cli methods list --entity charge
  docs-cli methods list --entity "Lightning Address" --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		methods := cat.Methods()
		if methodsEntity != "" {
			e, err := catalog.ParseEntity(methodsEntity)
			if err != nil {
				return err
			}
			methods = cat.Filter(e)
		}
		return display.Methods(cmd.OutOrStdout(), methodsFormat, cat.Version(), methods)
	},
}

var methodsColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show the badge color of every entity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return display.Colors(cmd.OutOrStdout(), methodsFormat)
	},
}

func init() {
	methodsCmd.PersistentFlags().StringVarP(&methodsFormat, "format", "f", display.FormatTable, "output format (table, json)")
	methodsListCmd.Flags().StringVarP(&methodsEntity, "entity", "e", "", "only methods of this entity (label or slug)")

	methodsCmd.AddCommand(methodsListCmd, methodsColorsCmd)
	rootCmd.AddCommand(methodsCmd)
}
