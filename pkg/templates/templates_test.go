package templates_test

import (
	"strings"
	"testing"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/templates"
)

func TestBuiltinsAreLintClean(t *testing.T) {
	defs := templates.All()
	if len(defs) != 5 {
		t.Fatalf("expected 5 built-in archetypes, got %d", len(defs))
	}
	for _, def := range defs {
		for _, issue := range templates.Lint(def) {
			t.Errorf("%s: %s", def.ID, issue.Message)
		}
	}
}

func TestAllOrderedAndActive(t *testing.T) {
	defs := templates.All()
	for i := 1; i < len(defs); i++ {
		if defs[i-1].SortOrder > defs[i].SortOrder {
			t.Fatalf("expected archetypes ordered by SortOrder, got %q before %q",
				defs[i-1].ID, defs[i].ID)
		}
	}
	for _, def := range defs {
		if !def.IsActive {
			t.Fatalf("expected built-in %q to be active", def.ID)
		}
		if def.Version < 1 {
			t.Fatalf("expected built-in %q to carry a version, got %d", def.ID, def.Version)
		}
	}
}

func TestByID(t *testing.T) {
	def, ok := templates.ByID("artist-collaboration")
	if !ok {
		t.Fatal("expected artist-collaboration archetype")
	}
	if def.Name != "Artist Collaboration Agreement" {
		t.Fatalf("unexpected template name %q", def.Name)
	}

	if _, ok := templates.ByID("no-such-template"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestShouldReplace(t *testing.T) {
	def := model.TemplateDefinition{Version: 2}
	if !templates.ShouldReplace(1, def) {
		t.Fatal("expected older stored version to be replaced")
	}
	if templates.ShouldReplace(2, def) {
		t.Fatal("expected equal version to be kept")
	}
	if templates.ShouldReplace(3, def) {
		t.Fatal("expected newer stored version to be kept")
	}
}

func TestLintReportsDefects(t *testing.T) {
	def := model.TemplateDefinition{
		ID: "broken",
		Fields: []model.TemplateField{
			{ID: "artist name", Label: "Artist", Type: model.FieldTypeText},
			{ID: "genre", Label: "Genre", Type: model.FieldTypeSelect},
			{ID: "unused", Label: "Unused", Type: model.FieldTypeText},
			{ID: "code", Label: "Code", Type: model.FieldTypeText,
				Validation: &model.FieldValidation{Pattern: "([unclosed"}},
		},
		Content: model.TemplateContent{
			Title: "{{artist name}}",
			Sections: []model.TemplateSection{
				{ID: "a", Heading: "A", Content: "{{genre}} {{code}} {{undeclared}}",
					IsOptional: true, ClauseID: "missing_clause"},
			},
		},
	}

	issues := templates.Lint(def)
	wants := []string{
		`field id "artist name" is not a valid placeholder token`,
		`select field "genre" has no options`,
		`field "unused" never appears in the template content`,
		`field "code" pattern does not compile`,
		`optional section "a" references unknown clause "missing_clause"`,
		`placeholder {{undeclared}} has no declared field`,
	}
	for _, want := range wants {
		found := false
		for _, issue := range issues {
			if strings.Contains(issue.Message, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected an issue containing %q, got %v", want, issues)
		}
	}
}
