package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chordsign/contractgen/pkg/schemaimport"
)

var importComponent string

var importSchemaCmd = &cobra.Command{
	Use:   "import-schema <openapi.yaml>",
	Short: "Derive template fields from an OpenAPI component schema",
	Long: `Import-schema reads an OpenAPI 3 document and converts the named
component schema's properties into a template field list, printed as YAML
ready to paste into a template definition.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read schema document: %w", err)
		}

		fields, err := schemaimport.FromDocument(cmd.Context(), raw, importComponent)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(map[string]any{"fields": fields})
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	importSchemaCmd.Flags().StringVarP(&importComponent, "component", "c", "", "component schema name (required)")
	_ = importSchemaCmd.MarkFlagRequired("component")
	rootCmd.AddCommand(importSchemaCmd)
}
