// Package render assembles a template and its submitted form data into the
// final document model: clause-filtered sections, in declared order, with
// every {{placeholder}} substituted. Rendering performs no validation; a form
// with missing required values renders with literal {{...}} tokens left in
// place, which downstream consumers treat as a render-quality signal.
package render

import (
	"context"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/placeholder"
)

// Document builds the rendered document for a template fill-in. Sections are
// kept when they are unconditional or when their owning clause is enabled;
// declared order is preserved because it carries the document structure
// (numbered headings and the like).
func Document(def model.TemplateDefinition, form model.FormData) model.RenderedDocument {
	types := def.FieldTypes()

	doc := model.RenderedDocument{
		Title:    placeholder.Substitute(def.Content.Title, form.Fields, types),
		Sections: []model.RenderedSection{},
	}

	for _, section := range included(def.Content.Sections, form) {
		doc.Sections = append(doc.Sections, model.RenderedSection{
			Heading: placeholder.Substitute(section.Heading, form.Fields, types),
			Content: placeholder.Substitute(section.Content, form.Fields, types),
		})
	}
	return doc
}

// included filters the ordered section list down to the sections that should
// render for this form.
func included(sections []model.TemplateSection, form model.FormData) []model.TemplateSection {
	out := make([]model.TemplateSection, 0, len(sections))
	for _, section := range sections {
		if section.IsOptional && !form.ClauseEnabled(section.ClauseID) {
			continue
		}
		out = append(out, section)
	}
	return out
}

// Renderer converts a RenderedDocument into a byte representation (HTML,
// plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.RenderedDocument, opts Options) ([]byte, error)
}

// Options carries per-render settings shared across output generators.
type Options struct {
	// IncludeStyles controls whether the HTML generator emits its baked-in
	// stylesheet block. False yields unstyled semantic markup for embedding.
	IncludeStyles bool
}
