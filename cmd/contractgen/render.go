package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	contractgen "github.com/chordsign/contractgen"
)

var (
	renderFormat string
	renderOutput string
	renderNoCSS  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <template-id> <form.json>",
	Short: "Render a filled contract to HTML or plain text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderFormat != "html" && renderFormat != "text" {
			return fmt.Errorf("unknown format %q (want html or text)", renderFormat)
		}

		def, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		form, err := readFormData(args[1])
		if err != nil {
			return err
		}

		result := contractgen.ValidateFormData(def, form)
		if !result.Valid {
			fields := make([]string, 0, len(result.Errors))
			for field := range result.Errors {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, result.Errors[field])
			}
			return fmt.Errorf("form data failed validation")
		}

		doc := contractgen.RenderTemplateContent(def, form)

		var out string
		switch renderFormat {
		case "html":
			out, err = contractgen.GenerateHTML(doc.Title, doc.Sections, !renderNoCSS)
			if err != nil {
				return err
			}
		case "text":
			out = contractgen.GenerateText(doc.Title, doc.Sections)
		}

		if renderOutput == "" || renderOutput == "-" {
			fmt.Print(out)
			return nil
		}
		if err := os.WriteFile(renderOutput, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "output format (html or text)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to file instead of stdout")
	renderCmd.Flags().BoolVar(&renderNoCSS, "no-styles", false, "omit the embedded stylesheet from HTML output")
	rootCmd.AddCommand(renderCmd)
}
