// Package textdoc renders an assembled contract document as plain text:
// uppercased title, then each section heading and body in order, with no
// markup of any kind.
package textdoc

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/render"
)

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the plain-text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "textdoc"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc model.RenderedDocument, _ render.Options) ([]byte, error) {
	return []byte(Generate(doc.Title, doc.Sections)), nil
}

// Generate builds the plain-text document from a title and ordered section
// list.
func Generate(title string, sections []model.RenderedSection) string {
	var b strings.Builder

	upper := strings.ToUpper(strings.TrimSpace(title))
	b.WriteString(upper + "\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(upper)) + "\n")

	for _, section := range sections {
		b.WriteString("\n" + strings.TrimSpace(section.Heading) + "\n\n")
		b.WriteString(strings.TrimSpace(section.Content) + "\n")
	}

	return b.String()
}
