package placeholder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/placeholder"
)

func TestSubstitute(t *testing.T) {
	values := map[string]any{
		"artist_name": "Nadia Reyes",
		"venue":       "The Roundhouse",
	}

	got := placeholder.Substitute("{{artist_name}} performs at {{venue}}.", values, nil)
	want := "Nadia Reyes performs at The Roundhouse."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSubstituteLeavesMissingTokensVerbatim(t *testing.T) {
	got := placeholder.Substitute("Fee: {{fee_amount}}, payable to {{artist_name}}.",
		map[string]any{"artist_name": "Nadia Reyes"}, nil)
	want := "Fee: {{fee_amount}}, payable to Nadia Reyes."
	if got != want {
		t.Fatalf("expected missing token kept verbatim, got %q", got)
	}

	got = placeholder.Substitute("{{x}}", map[string]any{"x": nil}, nil)
	if got != "{{x}}" {
		t.Fatalf("expected nil value treated as absent, got %q", got)
	}
}

func TestSubstituteIdempotentWithCompleteBag(t *testing.T) {
	values := map[string]any{
		"artist_name": "Nadia Reyes",
		"fee_amount":  float64(2500),
	}

	once := placeholder.Substitute("{{artist_name}} is owed {{fee_amount}}.", values, nil)
	twice := placeholder.Substitute(once, values, nil)
	if once != twice {
		t.Fatalf("expected substitution to be idempotent, got %q then %q", once, twice)
	}
}

func TestSubstituteDoesNotRescanValues(t *testing.T) {
	values := map[string]any{
		"a": "{{b}}",
		"b": "should not appear",
	}
	got := placeholder.Substitute("{{a}}", values, nil)
	if got != "{{b}}" {
		t.Fatalf("expected substituted value to not be re-scanned, got %q", got)
	}
}

func TestSubstituteUsesDeclaredTypes(t *testing.T) {
	values := map[string]any{"advance": float64(1500000)}
	types := map[string]model.FieldType{"advance": model.FieldTypeCurrency}

	got := placeholder.Substitute("Advance: {{advance}}", values, types)
	if got != "Advance: £1,500,000.00" {
		t.Fatalf("expected declared currency type to drive formatting, got %q", got)
	}
}

func TestSubstituteNameHeuristicWithoutTypes(t *testing.T) {
	values := map[string]any{
		"fee_amount": float64(2500),
		"headcount":  float64(4),
	}

	got := placeholder.Substitute("{{fee_amount}} for {{headcount}} performers", values, nil)
	want := "£2,500.00 for 4 performers"
	if got != want {
		t.Fatalf("expected name heuristic only for money-like names, got %q", got)
	}
}

func TestSubstituteIgnoresMalformedTokens(t *testing.T) {
	values := map[string]any{"artist name": "x", "artist": "y"}

	in := "{{artist name}} {artist} {{artist}"
	if got := placeholder.Substitute(in, values, nil); got != in {
		t.Fatalf("expected malformed tokens untouched, got %q", got)
	}
}

func TestExtractVariablesOrderAndDedup(t *testing.T) {
	content := model.TemplateContent{
		Title: "Agreement: {{project_title}}",
		Sections: []model.TemplateSection{
			{Heading: "1. PARTIES ({{party_a_name}})", Content: "{{party_a_name}} and {{party_b_name}}"},
			{Heading: "2. FEES", Content: "{{fee_amount}} due to {{party_a_name}}"},
		},
	}

	got := placeholder.ExtractVariables(content)
	want := []string{"project_title", "party_a_name", "party_b_name", "fee_amount"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected variable list (-want +got):\n%s", diff)
	}
}

func TestExtractVariablesEmptyContent(t *testing.T) {
	got := placeholder.ExtractVariables(model.TemplateContent{
		Title:    "Plain Title",
		Sections: []model.TemplateSection{{Heading: "A", Content: "no tokens here"}},
	})
	if diff := cmp.Diff([]string{}, got); diff != "" {
		t.Fatalf("expected empty non-nil list (-want +got):\n%s", diff)
	}
}

func TestValidIdentifier(t *testing.T) {
	for _, name := range []string{"artist_name", "party_a_split", "X9", "a"} {
		if !placeholder.ValidIdentifier(name) {
			t.Fatalf("expected %q to be valid", name)
		}
	}
	for _, name := range []string{"", "artist name", "fee-amount", "naïve"} {
		if placeholder.ValidIdentifier(name) {
			t.Fatalf("expected %q to be invalid", name)
		}
	}
}
