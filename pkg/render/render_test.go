package render_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/render"
	"github.com/chordsign/contractgen/pkg/templates"
)

func collaborationForm() model.FormData {
	return model.FormData{Fields: map[string]any{
		"party_a_name":        "Nadia Reyes",
		"party_a_role":        "producer",
		"party_b_name":        "Tom Okafor",
		"party_b_role":        "vocalist",
		"project_title":       "Midnight Sessions EP",
		"project_description": "A four-track EP recorded across two weekend sessions.",
		"start_date":          "2024-03-15",
		"party_a_split":       float64(50),
		"party_b_split":       float64(50),
		"governing_law":       "England and Wales",
	}}
}

func TestDocumentMandatorySectionsOnly(t *testing.T) {
	def := templates.ArtistCollaboration()
	doc := render.Document(def, collaborationForm())

	if len(doc.Sections) != 6 {
		t.Fatalf("expected 6 mandatory sections, got %d", len(doc.Sections))
	}
	for _, section := range doc.Sections {
		if section.Heading == "5. EXCLUSIVITY" {
			t.Fatal("expected exclusivity section to be excluded")
		}
	}
	if doc.Title != "Artist Collaboration Agreement: Midnight Sessions EP" {
		t.Fatalf("expected substituted title, got %q", doc.Title)
	}
}

func TestDocumentEnabledClausesInDeclaredOrder(t *testing.T) {
	def := templates.ArtistCollaboration()
	form := collaborationForm()
	form.EnabledClauses = []string{"termination", "credit_requirements"}
	form.Fields["credit_text"] = "Produced by Nadia Reyes & Tom Okafor"
	form.Fields["termination_notice_days"] = float64(30)

	doc := render.Document(def, form)
	if len(doc.Sections) != 8 {
		t.Fatalf("expected 8 sections with two clauses enabled, got %d", len(doc.Sections))
	}

	var headings []string
	for _, section := range doc.Sections {
		headings = append(headings, section.Heading)
	}
	want := []string{
		"1. PARTIES", "2. PROJECT SCOPE", "3. REVENUE SHARING", "4. INTELLECTUAL PROPERTY",
		"6. CREDIT REQUIREMENTS", "7. TERMINATION", "8. GENERAL PROVISIONS", "9. SIGNATURES",
	}
	if diff := cmp.Diff(want, headings); diff != "" {
		t.Fatalf("unexpected section order (-want +got):\n%s", diff)
	}
}

func TestDocumentAllClausesEnabled(t *testing.T) {
	def := templates.ArtistCollaboration()
	form := collaborationForm()
	form.EnabledClauses = []string{"exclusivity", "credit_requirements", "termination"}
	form.Fields["exclusivity_months"] = float64(12)
	form.Fields["exclusivity_scope"] = "Electronic music releases in the UK."
	form.Fields["credit_text"] = "Produced by Nadia Reyes & Tom Okafor"
	form.Fields["termination_notice_days"] = float64(30)

	doc := render.Document(def, form)
	if len(doc.Sections) != 9 {
		t.Fatalf("expected all 9 sections, got %d", len(doc.Sections))
	}
	if got := doc.Sections[4].Heading; got != "5. EXCLUSIVITY" {
		t.Fatalf("expected exclusivity section fifth, got %q", got)
	}
	if !strings.Contains(doc.Sections[4].Content, "For a period of 12 months") {
		t.Fatalf("expected substituted exclusivity term, got %q", doc.Sections[4].Content)
	}
}

func TestDocumentSubstitutesFormattedValues(t *testing.T) {
	def := templates.ArtistCollaboration()
	doc := render.Document(def, collaborationForm())

	revenue := doc.Sections[2]
	if revenue.Heading != "3. REVENUE SHARING" {
		t.Fatalf("expected revenue section third, got %q", revenue.Heading)
	}
	if !strings.Contains(revenue.Content, "Party A: 50% of net revenue") {
		t.Fatalf("expected plain number split, got %q", revenue.Content)
	}
	if !strings.Contains(revenue.Content, "Party B: 50% of net revenue") {
		t.Fatalf("expected both splits substituted, got %q", revenue.Content)
	}

	parties := doc.Sections[0]
	if !strings.Contains(parties.Content, "entered into on 15 March 2024") {
		t.Fatalf("expected formatted date, got %q", parties.Content)
	}
}

func TestDocumentKeepsUnresolvedTokens(t *testing.T) {
	def := templates.ArtistCollaboration()
	form := collaborationForm()
	delete(form.Fields, "party_a_name")

	doc := render.Document(def, form)
	if !strings.Contains(doc.Sections[0].Content, "{{party_a_name}}") {
		t.Fatalf("expected missing value to leave token verbatim, got %q", doc.Sections[0].Content)
	}
}

func TestDocumentUnknownClauseIDIgnored(t *testing.T) {
	def := templates.ArtistCollaboration()
	form := collaborationForm()
	form.EnabledClauses = []string{"no_such_clause"}

	doc := render.Document(def, form)
	if len(doc.Sections) != 6 {
		t.Fatalf("expected unknown clause ids to enable nothing, got %d sections", len(doc.Sections))
	}
}
