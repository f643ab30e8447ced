// Package schemaimport derives template field declarations from an OpenAPI
// schema, so contract templates can be authored against an existing API
// object instead of typing every field out by hand. Only flat object schemas
// map cleanly; nested objects and arrays are rejected rather than guessed at.
package schemaimport

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/chordsign/contractgen/pkg/model"
)

// currencyFormat is the schema format that marks a numeric property as a
// monetary amount.
const currencyFormat = "currency"

// FromDocument loads an OpenAPI document and converts the named component
// schema into template fields.
func FromDocument(ctx context.Context, raw []byte, component string) ([]model.TemplateField, error) {
	if len(raw) == 0 {
		return nil, errors.New("schema import: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema import: load document: %w", err)
	}

	if spec.Components == nil {
		return nil, fmt.Errorf("schema import: document has no components")
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema import: component schema %q not found", component)
	}

	return Fields(ref.Value)
}

// Fields converts a flat object schema into template field declarations:
// property names become field ids, the required set drives Required, and
// length/pattern/bound constraints carry over into the field validation.
func Fields(schema *openapi3.Schema) ([]model.TemplateField, error) {
	if schema == nil {
		return nil, errors.New("schema import: schema is nil")
	}
	if schema.Type != nil && !schema.Type.Is(openapi3.TypeObject) {
		return nil, fmt.Errorf("schema import: expected an object schema, got %v", schema.Type)
	}
	if len(schema.Properties) == 0 {
		return nil, errors.New("schema import: object schema has no properties")
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]model.TemplateField, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, err := propertyField(name, ref.Value)
		if err != nil {
			return nil, err
		}
		_, field.Required = required[name]
		fields = append(fields, field)
	}
	return fields, nil
}

func propertyField(name string, prop *openapi3.Schema) (model.TemplateField, error) {
	field := model.TemplateField{
		ID:           name,
		Label:        labelFor(name, prop),
		DefaultValue: prop.Default,
	}

	fieldType, err := fieldTypeFor(name, prop)
	if err != nil {
		return field, err
	}
	field.Type = fieldType

	if fieldType == model.FieldTypeSelect {
		for _, raw := range prop.Enum {
			value := fmt.Sprint(raw)
			field.Options = append(field.Options, model.SelectOption{Value: value, Label: value})
		}
	}

	field.Validation = validationFor(prop, fieldType)
	return field, nil
}

func fieldTypeFor(name string, prop *openapi3.Schema) (model.FieldType, error) {
	switch {
	case prop.Type == nil:
		return model.FieldTypeText, nil
	case prop.Type.Is(openapi3.TypeString):
		if len(prop.Enum) > 0 {
			return model.FieldTypeSelect, nil
		}
		switch prop.Format {
		case "date", "date-time":
			return model.FieldTypeDate, nil
		case "email":
			return model.FieldTypeEmail, nil
		default:
			return model.FieldTypeText, nil
		}
	case prop.Type.Is(openapi3.TypeNumber), prop.Type.Is(openapi3.TypeInteger):
		if prop.Format == currencyFormat {
			return model.FieldTypeCurrency, nil
		}
		return model.FieldTypeNumber, nil
	default:
		return "", fmt.Errorf("schema import: property %q has unsupported type %v", name, prop.Type)
	}
}

func validationFor(prop *openapi3.Schema, fieldType model.FieldType) *model.FieldValidation {
	v := &model.FieldValidation{}
	found := false

	switch fieldType {
	case model.FieldTypeNumber, model.FieldTypeCurrency:
		if prop.Min != nil {
			v.Min, found = prop.Min, true
		}
		if prop.Max != nil {
			v.Max, found = prop.Max, true
		}
	default:
		if prop.MinLength > 0 {
			minLen := int(prop.MinLength)
			v.MinLength, found = &minLen, true
		}
		if prop.MaxLength != nil {
			maxLen := int(*prop.MaxLength)
			v.MaxLength, found = &maxLen, true
		}
		if prop.Pattern != "" {
			v.Pattern, found = prop.Pattern, true
		}
	}

	if !found {
		return nil
	}
	return v
}

func labelFor(name string, prop *openapi3.Schema) string {
	if prop.Title != "" {
		return prop.Title
	}
	words := strings.ReplaceAll(strings.ReplaceAll(name, "_", " "), "-", " ")
	if words == "" {
		return name
	}
	return strings.ToUpper(words[:1]) + words[1:]
}
