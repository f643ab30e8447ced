package templates

import (
	"fmt"
	"regexp"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/placeholder"
)

// Issue is one authoring defect found in a template definition.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Lint checks the authoring-time invariants the engine assumes but does not
// guard at render time: placeholder tokens are valid identifiers, field ids
// are unique across the base template and its clauses, optional sections
// reference a declared clause, select fields carry options, patterns compile,
// and every declared field is actually referenced by the content. A clean
// definition yields an empty slice.
func Lint(def model.TemplateDefinition) []Issue {
	var issues []Issue

	if def.ID == "" {
		issues = append(issues, Issue{Message: "template id is empty"})
	}
	if len(def.Content.Sections) == 0 {
		issues = append(issues, Issue{Message: "template has no sections"})
	}

	clauseIDs := make(map[string]struct{}, len(def.OptionalClauses))
	for _, clause := range def.OptionalClauses {
		if _, dup := clauseIDs[clause.ID]; dup {
			issues = append(issues, Issue{Message: fmt.Sprintf("duplicate clause id %q", clause.ID)})
		}
		clauseIDs[clause.ID] = struct{}{}
	}

	fieldIDs := make(map[string]struct{})
	checkFields := func(fields []model.TemplateField, owner string) {
		for _, field := range fields {
			issues = append(issues, lintField(field, owner)...)
			if _, dup := fieldIDs[field.ID]; dup {
				issues = append(issues, Issue{
					Field:   field.ID,
					Message: fmt.Sprintf("field id %q declared more than once", field.ID),
				})
			}
			fieldIDs[field.ID] = struct{}{}
		}
	}
	checkFields(def.Fields, "")
	for _, clause := range def.OptionalClauses {
		checkFields(clause.Fields, clause.ID)
	}

	for _, section := range def.Content.Sections {
		if !section.IsOptional {
			if section.ClauseID != "" {
				issues = append(issues, Issue{Message: fmt.Sprintf(
					"section %q names clause %q but is not optional", section.ID, section.ClauseID)})
			}
			continue
		}
		if _, ok := clauseIDs[section.ClauseID]; !ok {
			issues = append(issues, Issue{Message: fmt.Sprintf(
				"optional section %q references unknown clause %q", section.ID, section.ClauseID)})
		}
	}

	referenced := make(map[string]struct{})
	for _, name := range placeholder.ExtractVariables(def.Content) {
		referenced[name] = struct{}{}
	}
	for id := range fieldIDs {
		if _, ok := referenced[id]; !ok {
			issues = append(issues, Issue{
				Field:   id,
				Message: fmt.Sprintf("field %q never appears in the template content", id),
			})
		}
	}
	for name := range referenced {
		if _, ok := fieldIDs[name]; !ok {
			issues = append(issues, Issue{
				Field:   name,
				Message: fmt.Sprintf("placeholder {{%s}} has no declared field", name),
			})
		}
	}

	return issues
}

func lintField(field model.TemplateField, clauseID string) []Issue {
	var issues []Issue

	where := ""
	if clauseID != "" {
		where = fmt.Sprintf(" (clause %q)", clauseID)
	}

	if !placeholder.ValidIdentifier(field.ID) {
		issues = append(issues, Issue{
			Field:   field.ID,
			Message: fmt.Sprintf("field id %q is not a valid placeholder token%s", field.ID, where),
		})
	}
	if field.Type == model.FieldTypeSelect && len(field.Options) == 0 {
		issues = append(issues, Issue{
			Field:   field.ID,
			Message: fmt.Sprintf("select field %q has no options%s", field.ID, where),
		})
	}
	if field.Type != model.FieldTypeSelect && len(field.Options) > 0 {
		issues = append(issues, Issue{
			Field:   field.ID,
			Message: fmt.Sprintf("field %q carries options but is not a select%s", field.ID, where),
		})
	}
	if field.Validation != nil && field.Validation.Pattern != "" {
		if _, err := regexp.Compile(field.Validation.Pattern); err != nil {
			issues = append(issues, Issue{
				Field:   field.ID,
				Message: fmt.Sprintf("field %q pattern does not compile: %v", field.ID, err),
			})
		}
	}
	return issues
}
