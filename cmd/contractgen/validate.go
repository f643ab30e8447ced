package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	contractgen "github.com/chordsign/contractgen"
)

var validateCmd = &cobra.Command{
	Use:   "validate <template-id> <form.json>",
	Short: "Validate form data against a template's field rules",
	Long: `Validate checks a form-data document against the named template and
prints one line per failing field. Use "-" to read the form data from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		form, err := readFormData(args[1])
		if err != nil {
			return err
		}

		result := contractgen.ValidateFormData(def, form)
		if result.Valid {
			fmt.Println("valid")
			return nil
		}

		fields := make([]string, 0, len(result.Errors))
		for field := range result.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Printf("%s: %s\n", field, result.Errors[field])
		}
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
