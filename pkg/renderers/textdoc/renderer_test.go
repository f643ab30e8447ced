package textdoc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/render"
	"github.com/chordsign/contractgen/pkg/renderers/textdoc"
)

func TestGenerate(t *testing.T) {
	out := textdoc.Generate("Performance Agreement", []model.RenderedSection{
		{Heading: "1. PARTIES", Content: "Between Nadia Reyes and Tom Okafor."},
		{Heading: "2. FEES", Content: "£2,500.00 payable on completion."},
	})

	if !strings.HasPrefix(out, "PERFORMANCE AGREEMENT\n=====================\n") {
		t.Fatalf("expected uppercased underlined title, got %.60q", out)
	}
	for _, want := range []string{
		"\n1. PARTIES\n\nBetween Nadia Reyes and Tom Okafor.\n",
		"\n2. FEES\n\n£2,500.00 payable on completion.\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got %q", want, out)
		}
	}
	if strings.Contains(out, "<") {
		t.Fatal("expected no markup in plain-text output")
	}
}

func TestGenerateUnderlineMatchesRuneCount(t *testing.T) {
	out := textdoc.Generate("Tournée Agreement", nil)
	lines := strings.SplitN(out, "\n", 3)
	if len(lines) < 2 {
		t.Fatalf("expected title and underline lines, got %q", out)
	}
	title := []rune(lines[0])
	underline := []rune(lines[1])
	if len(title) != len(underline) {
		t.Fatalf("expected underline length %d to match title length %d", len(underline), len(title))
	}
}

func TestRendererMetadata(t *testing.T) {
	r := textdoc.New()
	if got := r.Name(); got != "textdoc" {
		t.Fatalf("expected renderer name textdoc, got %q", got)
	}
	if got := r.ContentType(); got != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}

	out, err := r.Render(context.Background(), model.RenderedDocument{
		Title:    "Agreement",
		Sections: []model.RenderedSection{{Heading: "A", Content: "body"}},
	}, render.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(out), "AGREEMENT\n") {
		t.Fatalf("expected uppercased title, got %.30q", out)
	}
}
