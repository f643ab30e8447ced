package main

import (
	"fmt"

	"github.com/spf13/cobra"

	contractgen "github.com/chordsign/contractgen"
)

var varsCmd = &cobra.Command{
	Use:   "vars <template-id>",
	Short: "List the placeholder variables a template references",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		for _, name := range contractgen.ExtractVariables(def.Content) {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
}
