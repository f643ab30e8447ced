// Package htmldoc turns an assembled contract document into a complete
// standalone HTML page: doctype, head, the title as a top-level heading, and
// each section in order. Section text is sanitized before emission so
// user-submitted values cannot smuggle markup into the document.
package htmldoc

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/render"
	rendertemplate "github.com/chordsign/contractgen/pkg/render/template"
	gotemplate "github.com/chordsign/contractgen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate page-chrome bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads page chrome from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML document renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmldoc renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "htmldoc"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc model.RenderedDocument, opts render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("htmldoc renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/document.tmpl", map[string]any{
		"title":    sanitizeText(doc.Title),
		"sections": sectionsMarkup(doc.Sections),
		"styles":   opts.IncludeStyles,
	})
	if err != nil {
		return nil, fmt.Errorf("htmldoc renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// sectionsMarkup builds the section blocks in Go rather than in the template
// so paragraph splitting and sanitization stay testable without an engine.
func sectionsMarkup(sections []model.RenderedSection) string {
	var b strings.Builder
	for _, section := range sections {
		b.WriteString(`<section class="contract-section">` + "\n")
		b.WriteString("<h2>" + sanitizeText(section.Heading) + "</h2>\n")
		b.WriteString(`<div class="section-body">` + "\n")
		for _, para := range strings.Split(section.Content, "\n\n") {
			if strings.TrimSpace(para) == "" {
				continue
			}
			lines := strings.Split(para, "\n")
			for i := range lines {
				lines[i] = sanitizeText(lines[i])
			}
			b.WriteString("<p>" + strings.Join(lines, "<br />") + "</p>\n")
		}
		b.WriteString("</div>\n</section>\n")
	}
	return b.String()
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// Generate renders a standalone HTML document from a title and ordered
// section list using the built-in page chrome. It is the convenience entry
// point matching the core contract; construct a Renderer directly to swap the
// chrome.
func Generate(title string, sections []model.RenderedSection, includeStyles bool) (string, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = New()
	})
	if defaultErr != nil {
		return "", defaultErr
	}

	out, err := defaultRenderer.Render(context.Background(), model.RenderedDocument{
		Title:    title,
		Sections: sections,
	}, render.Options{IncludeStyles: includeStyles})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
