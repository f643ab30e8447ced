package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	contractgen "github.com/chordsign/contractgen"
	"github.com/chordsign/contractgen/pkg/model"
)

// errFillAborted marks a Ctrl-C during the interactive session.
var errFillAborted = errors.New("fill aborted")

var fillOutput string

var fillCmd = &cobra.Command{
	Use:   "fill <template-id>",
	Short: "Fill a template interactively and write the form data as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}

		form, err := promptForm(def)
		if err != nil {
			if errors.Is(err, errFillAborted) {
				fmt.Fprintln(os.Stderr, "aborted")
				os.Exit(130)
			}
			return err
		}

		result := contractgen.ValidateFormData(def, form)
		if !result.Valid {
			for field, msg := range result.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
			return fmt.Errorf("form data failed validation")
		}

		out, err := json.MarshalIndent(form, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')

		if fillOutput == "" || fillOutput == "-" {
			_, err = os.Stdout.Write(out)
			return err
		}
		return os.WriteFile(fillOutput, out, 0o644)
	},
}

func init() {
	fillCmd.Flags().StringVarP(&fillOutput, "output", "o", "", "write form data JSON to file instead of stdout")
	rootCmd.AddCommand(fillCmd)
}

// promptForm asks one question per base field, then offers each optional
// clause as a yes/no toggle and asks its fields only when accepted.
func promptForm(def model.TemplateDefinition) (model.FormData, error) {
	form := model.FormData{Fields: map[string]any{}}

	for _, field := range def.Fields {
		if err := promptField(&form, field); err != nil {
			return model.FormData{}, err
		}
	}

	for _, clause := range def.OptionalClauses {
		enabled, err := promptConfirm(clause.Name, clause.Description, clause.DefaultEnabled)
		if err != nil {
			return model.FormData{}, err
		}
		if !enabled {
			continue
		}
		form.EnabledClauses = append(form.EnabledClauses, clause.ID)
		for _, field := range clause.Fields {
			if err := promptField(&form, field); err != nil {
				return model.FormData{}, err
			}
		}
	}
	return form, nil
}

func promptField(form *model.FormData, field model.TemplateField) error {
	message := field.Label
	if field.Required {
		message += " (required)"
	}
	defaultText := ""
	if s, ok := field.DefaultValue.(string); ok {
		defaultText = s
	}

	switch field.Type {
	case model.FieldTypeSelect:
		options := make([]string, 0, len(field.Options))
		values := make(map[string]string, len(field.Options))
		for _, opt := range field.Options {
			options = append(options, opt.Label)
			values[opt.Label] = opt.Value
		}
		prompt := &survey.Select{Message: message, Options: options}
		var out string
		if err := survey.AskOne(prompt, &out); err != nil {
			return translateSurveyErr(err)
		}
		form.Fields[field.ID] = values[out]

	case model.FieldTypeTextarea:
		prompt := &survey.Multiline{Message: message, Default: defaultText}
		var out string
		if err := survey.AskOne(prompt, &out); err != nil {
			return translateSurveyErr(err)
		}
		if out != "" {
			form.Fields[field.ID] = out
		}

	case model.FieldTypeNumber, model.FieldTypeCurrency:
		prompt := &survey.Input{Message: message, Default: defaultText}
		var out string
		if err := survey.AskOne(prompt, &out, survey.WithValidator(numericValidator)); err != nil {
			return translateSurveyErr(err)
		}
		if out == "" {
			return nil
		}
		n, err := strconv.ParseFloat(out, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", field.ID, err)
		}
		form.Fields[field.ID] = n

	default:
		prompt := &survey.Input{Message: message, Default: defaultText}
		var out string
		if err := survey.AskOne(prompt, &out); err != nil {
			return translateSurveyErr(err)
		}
		if out != "" {
			form.Fields[field.ID] = out
		}
	}
	return nil
}

func promptConfirm(name, help string, def bool) (bool, error) {
	prompt := &survey.Confirm{
		Message: "Include clause: " + name,
		Help:    help,
		Default: def,
	}
	var out bool
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func numericValidator(ans any) error {
	s, ok := ans.(string)
	if !ok || s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errFillAborted
	}
	return err
}
