// Package contractgen renders and validates music-industry contracts from
// declarative templates: field and clause declarations plus section content
// with {{placeholder}} tokens, filled in by user-submitted form data. The
// root package re-exports the core call shapes; the engine itself lives in
// the pkg tree.
package contractgen

import (
	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/placeholder"
	"github.com/chordsign/contractgen/pkg/render"
	"github.com/chordsign/contractgen/pkg/renderers/htmldoc"
	"github.com/chordsign/contractgen/pkg/renderers/textdoc"
	"github.com/chordsign/contractgen/pkg/templates"
	"github.com/chordsign/contractgen/pkg/validate"
)

// Core data model aliases, exported at the root for convenience.
type TemplateField = model.TemplateField
type OptionalClause = model.OptionalClause
type TemplateSection = model.TemplateSection
type TemplateContent = model.TemplateContent
type TemplateDefinition = model.TemplateDefinition
type FormData = model.FormData
type RenderedSection = model.RenderedSection
type RenderedDocument = model.RenderedDocument

// ValidationResult is the outcome of ValidateFormData.
type ValidationResult = validate.Result

// ContractDocument bundles the persisted artifacts of one generated
// contract.
type ContractDocument struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
	Text  string `json:"text"`
}

// ExtractVariables returns the distinct placeholder names a template's
// content references, in order of first appearance.
func ExtractVariables(content TemplateContent) []string {
	return placeholder.ExtractVariables(content)
}

// ValidateFormData checks submitted form data against a template's field and
// clause declarations. It always returns a result; deciding whether to block
// submission is the caller's concern.
func ValidateFormData(def TemplateDefinition, form FormData) ValidationResult {
	return validate.Form(def, form)
}

// RenderTemplateContent assembles the clause-filtered, fully substituted
// document for a template fill-in. Callers are expected to validate first;
// unresolved {{...}} tokens in the output signal missing data.
func RenderTemplateContent(def TemplateDefinition, form FormData) RenderedDocument {
	return render.Document(def, form)
}

// GenerateHTML renders a standalone HTML contract document. includeStyles
// controls the baked-in stylesheet block.
func GenerateHTML(title string, sections []RenderedSection, includeStyles bool) (string, error) {
	return htmldoc.Generate(title, sections, includeStyles)
}

// GenerateText renders the plain-text form of a contract document.
func GenerateText(title string, sections []RenderedSection) string {
	return textdoc.Generate(title, sections)
}

// GenerateContract is the one-shot path: validate, assemble, and produce
// both output formats. When validation fails, the zero document and the
// failing result are returned and nothing is rendered.
func GenerateContract(def TemplateDefinition, form FormData) (ContractDocument, ValidationResult, error) {
	result := validate.Form(def, form)
	if !result.Valid {
		return ContractDocument{}, result, nil
	}

	doc := render.Document(def, form)
	html, err := htmldoc.Generate(doc.Title, doc.Sections, true)
	if err != nil {
		return ContractDocument{}, result, err
	}

	return ContractDocument{
		Title: doc.Title,
		HTML:  html,
		Text:  textdoc.Generate(doc.Title, doc.Sections),
	}, result, nil
}

// BuiltinTemplates returns the built-in contract archetypes.
func BuiltinTemplates() []TemplateDefinition {
	return templates.All()
}
