package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available contract templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := allTemplates()
		if err != nil {
			return err
		}
		for _, def := range defs {
			active := ""
			if !def.IsActive {
				active = " (inactive)"
			}
			fmt.Printf("%-22s v%-3d %s%s\n", def.ID, def.Version, def.Name, active)
		}
		return nil
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint [template-id]",
	Short: "Check template definitions for authoring defects",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := allTemplates()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			def, err := lookupTemplate(args[0])
			if err != nil {
				return err
			}
			defs = []model.TemplateDefinition{def}
		}

		clean := true
		for _, def := range defs {
			for _, issue := range templates.Lint(def) {
				clean = false
				fmt.Printf("%s: %s\n", def.ID, issue.Message)
			}
		}
		if !clean {
			os.Exit(1)
		}
		fmt.Println("all templates clean")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(lintCmd)
}

// allTemplates merges the built-in archetypes with any definitions found in
// the configured templates directory. Directory definitions win on id
// collisions so local edits can shadow a built-in.
func allTemplates() ([]model.TemplateDefinition, error) {
	defs := templates.All()

	dir := viper.GetString("templates")
	if dir == "" {
		return defs, nil
	}

	extra, err := templates.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		byID[def.ID] = i
	}
	for _, def := range extra {
		if i, ok := byID[def.ID]; ok {
			defs[i] = def
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func lookupTemplate(id string) (model.TemplateDefinition, error) {
	defs, err := allTemplates()
	if err != nil {
		return model.TemplateDefinition{}, err
	}
	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return model.TemplateDefinition{}, fmt.Errorf("unknown template %q (try: contractgen templates)", id)
}
