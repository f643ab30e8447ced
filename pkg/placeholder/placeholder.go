// Package placeholder implements the {{identifier}} mini-language used by
// template content: substitution of formatted values into text, and
// extraction of the variable names a template references.
package placeholder

import (
	"regexp"

	"github.com/chordsign/contractgen/pkg/format"
	"github.com/chordsign/contractgen/pkg/model"
)

// token matches one placeholder occurrence. Identifiers are restricted to
// alphanumerics and underscores.
var token = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// Substitute replaces every {{identifier}} occurrence in text with the
// formatted value from the bag. Occurrences whose identifier is absent from
// the bag, or whose value is nil, stay verbatim in the output; callers use
// the surviving tokens to detect incomplete data. A substituted value is
// never re-scanned, so values containing braces cannot trigger further
// substitution.
//
// types carries the declared field type per identifier and drives the display
// format. It may be nil: untyped identifiers fall back to the currency name
// heuristic for numeric values (see format.CurrencyName).
func Substitute(text string, values map[string]any, types map[string]model.FieldType) string {
	if text == "" || len(values) == 0 {
		return text
	}

	return token.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		value, ok := values[name]
		if !ok || value == nil {
			return match
		}
		return format.Value(value, fieldTypeFor(name, value, types))
	})
}

// ExtractVariables scans a template's title, then every section heading, then
// every section body, in that order, and returns each distinct identifier
// once in order of first appearance. Content with no placeholders yields an
// empty list.
func ExtractVariables(content model.TemplateContent) []string {
	seen := make(map[string]struct{})
	var names []string

	collect := func(text string) {
		for _, match := range token.FindAllStringSubmatch(text, -1) {
			name := match[1]
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	collect(content.Title)
	for _, section := range content.Sections {
		collect(section.Heading)
	}
	for _, section := range content.Sections {
		collect(section.Content)
	}

	if names == nil {
		return []string{}
	}
	return names
}

// ValidIdentifier reports whether name is usable as a placeholder token.
func ValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

func fieldTypeFor(name string, value any, types map[string]model.FieldType) model.FieldType {
	if t, ok := types[name]; ok {
		return t
	}
	// No declaration available: keep the historical name heuristic so value
	// bags rendered outside a full template still format money sensibly.
	switch value.(type) {
	case float64, float32, int, int32, int64:
		if format.CurrencyName(name) {
			return model.FieldTypeCurrency
		}
	}
	return model.FieldTypeText
}
