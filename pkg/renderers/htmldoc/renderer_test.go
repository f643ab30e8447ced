package htmldoc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/render"
	"github.com/chordsign/contractgen/pkg/renderers/htmldoc"
)

var sampleSections = []model.RenderedSection{
	{Heading: "1. PARTIES", Content: "Between Nadia Reyes and Tom Okafor.\n\nBoth parties agree."},
	{Heading: "2. FEES", Content: "£2,500.00 payable on completion."},
}

func TestGenerateProducesCompleteDocument(t *testing.T) {
	out, err := htmldoc.Generate("Performance Agreement", sampleSections, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("expected doctype prefix, got %.40q", out)
	}
	for _, want := range []string{
		"<title>Performance Agreement</title>",
		"<h1>Performance Agreement</h1>",
		"<h2>1. PARTIES</h2>",
		"<h2>2. FEES</h2>",
		"£2,500.00 payable on completion.",
		"<style>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestGenerateStyleToggle(t *testing.T) {
	out, err := htmldoc.Generate("Agreement", sampleSections, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<style>") {
		t.Fatal("expected no stylesheet when styles are disabled")
	}
	if !strings.Contains(out, "<h1>Agreement</h1>") {
		t.Fatal("expected document content to survive without styles")
	}
}

func TestGenerateSectionsInOrder(t *testing.T) {
	out, err := htmldoc.Generate("Agreement", sampleSections, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := strings.Index(out, "1. PARTIES")
	second := strings.Index(out, "2. FEES")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected sections emitted in order, got positions %d and %d", first, second)
	}
}

func TestGenerateParagraphSplitting(t *testing.T) {
	sections := []model.RenderedSection{
		{Heading: "NOTICES", Content: "First paragraph.\n\nSecond paragraph.\nSame paragraph, new line."},
	}
	out, err := htmldoc.Generate("Agreement", sections, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<p>First paragraph.</p>") {
		t.Fatal("expected blank lines to split paragraphs")
	}
	if !strings.Contains(out, "<p>Second paragraph.<br />Same paragraph, new line.</p>") {
		t.Fatal("expected single newlines to become line breaks")
	}
}

func TestGenerateStripsSubmittedMarkup(t *testing.T) {
	sections := []model.RenderedSection{
		{Heading: "PARTIES", Content: `Agreed with <script>alert("x")</script><b>Nadia</b>.`},
	}
	out, err := htmldoc.Generate(`<i>Agreement</i>`, sections, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, banned := range []string{"<script>", "<b>", "<i>"} {
		if strings.Contains(out, banned) {
			t.Fatalf("expected submitted markup stripped, found %q", banned)
		}
	}
	if !strings.Contains(out, "<h1>Agreement</h1>") {
		t.Fatal("expected text content of stripped elements to survive")
	}
}

func TestRendererMetadata(t *testing.T) {
	r, err := htmldoc.New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Name(); got != "htmldoc" {
		t.Fatalf("expected renderer name htmldoc, got %q", got)
	}
	if got := r.ContentType(); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}

	out, err := r.Render(context.Background(), model.RenderedDocument{
		Title:    "Agreement",
		Sections: sampleSections,
	}, render.Options{IncludeStyles: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "contract-section") {
		t.Fatal("expected section markup in renderer output")
	}
}
