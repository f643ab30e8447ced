package model

// FieldType is the enum of input kinds a template field can declare.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeDate     FieldType = "date"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCurrency FieldType = "currency"
	FieldTypeSelect   FieldType = "select"
	FieldTypeEmail    FieldType = "email"
)

// SelectOption is one choice offered by a select field.
type SelectOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FieldValidation carries the declarative constraints attached to a field.
// Length and pattern constraints apply to text-like types; Min/Max apply to
// number and currency fields. Pointer fields distinguish "unset" from zero.
type FieldValidation struct {
	MinLength      *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength      *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern        string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	PatternMessage string   `json:"patternMessage,omitempty" yaml:"patternMessage,omitempty"`
	Min            *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max            *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// TemplateField declares one input slot. ID doubles as the placeholder token
// referenced by {{id}} in section content, so it must stay within
// alphanumerics and underscores.
type TemplateField struct {
	ID           string           `json:"id" yaml:"id"`
	Label        string           `json:"label" yaml:"label"`
	Type         FieldType        `json:"type" yaml:"type"`
	Required     bool             `json:"required" yaml:"required"`
	DefaultValue any              `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Options      []SelectOption   `json:"options,omitempty" yaml:"options,omitempty"`
	Validation   *FieldValidation `json:"validation,omitempty" yaml:"validation,omitempty"`
	Group        string           `json:"group,omitempty" yaml:"group,omitempty"`
}

// OptionalClause is a togglable provision: its sections render and its fields
// validate only while the clause is enabled.
type OptionalClause struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Description    string          `json:"description,omitempty" yaml:"description,omitempty"`
	DefaultEnabled bool            `json:"defaultEnabled" yaml:"defaultEnabled"`
	Fields         []TemplateField `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// TemplateSection is one document block. Optional sections must name the
// clause that gates them.
type TemplateSection struct {
	ID         string `json:"id" yaml:"id"`
	Heading    string `json:"heading" yaml:"heading"`
	Content    string `json:"content" yaml:"content"`
	IsOptional bool   `json:"isOptional,omitempty" yaml:"isOptional,omitempty"`
	ClauseID   string `json:"clauseId,omitempty" yaml:"clauseId,omitempty"`
}

// TemplateContent is the document body of a template. Title and section text
// may contain {{placeholder}} tokens.
type TemplateContent struct {
	Title    string            `json:"title" yaml:"title"`
	Sections []TemplateSection `json:"sections" yaml:"sections"`
}

// TemplateDefinition is the full static declaration of a contract archetype.
// Definitions are immutable once authored; Version gates re-seeding so stored
// copies are only replaced by a newer definition.
type TemplateDefinition struct {
	ID              string           `json:"id" yaml:"id"`
	Name            string           `json:"name" yaml:"name"`
	Description     string           `json:"description,omitempty" yaml:"description,omitempty"`
	Category        string           `json:"category,omitempty" yaml:"category,omitempty"`
	Fields          []TemplateField  `json:"fields" yaml:"fields"`
	OptionalClauses []OptionalClause `json:"optionalClauses,omitempty" yaml:"optionalClauses,omitempty"`
	Content         TemplateContent  `json:"content" yaml:"content"`
	Version         int              `json:"version" yaml:"version"`
	SortOrder       int              `json:"sortOrder,omitempty" yaml:"sortOrder,omitempty"`
	IsActive        bool             `json:"isActive" yaml:"isActive"`
}

// FormData is the runtime bag a user submits for one fill-in session: field
// values keyed by field id plus the set of enabled clause ids.
type FormData struct {
	Fields         map[string]any `json:"fields" yaml:"fields"`
	EnabledClauses []string       `json:"enabledClauses,omitempty" yaml:"enabledClauses,omitempty"`
}

// ClauseEnabled reports whether the given clause id is in the enabled set.
func (f FormData) ClauseEnabled(id string) bool {
	for _, c := range f.EnabledClauses {
		if c == id {
			return true
		}
	}
	return false
}

// RenderedSection is one block of the assembled document after substitution.
type RenderedSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// RenderedDocument is the assembled output of the section renderer, consumed
// by the HTML and plain-text generators. It is derived data, not a stored
// entity.
type RenderedDocument struct {
	Title    string            `json:"title"`
	Sections []RenderedSection `json:"sections"`
}

// Clause returns the clause with the given id, when declared.
func (t TemplateDefinition) Clause(id string) (OptionalClause, bool) {
	for _, clause := range t.OptionalClauses {
		if clause.ID == id {
			return clause, true
		}
	}
	return OptionalClause{}, false
}

// FieldTypes maps every declared field id (base template and all clauses) to
// its declared type. Renderers use this to pick the display format for a
// substituted value.
func (t TemplateDefinition) FieldTypes() map[string]FieldType {
	out := make(map[string]FieldType, len(t.Fields))
	for _, field := range t.Fields {
		out[field.ID] = field.Type
	}
	for _, clause := range t.OptionalClauses {
		for _, field := range clause.Fields {
			out[field.ID] = field.Type
		}
	}
	return out
}
