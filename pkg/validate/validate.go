// Package validate checks submitted form data against a template's declared
// fields and clauses. Validation is a query, not a control-flow signal: the
// engine always returns a Result and never reports bad input as an error.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/chordsign/contractgen/pkg/model"
)

// Result captures a validation outcome. Errors holds at most one message per
// field id; the first failing rule wins, with required-ness taking priority
// over range and pattern checks.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// Form validates every base-template field, plus the fields of each enabled
// clause. Fields belonging to a disabled clause are never checked, so
// toggling a clause off makes its interior fields fully optional.
func Form(def model.TemplateDefinition, form model.FormData) Result {
	errors := make(map[string]string)

	for _, field := range def.Fields {
		if msg := checkField(field, form.Fields[field.ID], ""); msg != "" {
			errors[field.ID] = msg
		}
	}

	for _, clause := range def.OptionalClauses {
		if !form.ClauseEnabled(clause.ID) {
			continue
		}
		for _, field := range clause.Fields {
			if msg := checkField(field, form.Fields[field.ID], clause.Name); msg != "" {
				errors[field.ID] = msg
			}
		}
	}

	if len(errors) == 0 {
		return Result{Valid: true, Errors: map[string]string{}}
	}
	return Result{Valid: false, Errors: errors}
}

// checkField runs the rule chain for one field and returns the first failing
// message, or "" when the value passes. clauseName is non-empty for
// clause-scoped fields and shapes the required message so the caller can tell
// clause errors apart from base-template errors.
func checkField(field model.TemplateField, value any, clauseName string) string {
	if !present(value) {
		if !field.Required {
			return ""
		}
		if clauseName != "" {
			return fmt.Sprintf("%s is required when %s is enabled", field.Label, clauseName)
		}
		return fmt.Sprintf("%s is required", field.Label)
	}

	rules := field.Validation
	if rules == nil {
		return ""
	}

	switch field.Type {
	case model.FieldTypeNumber, model.FieldTypeCurrency:
		return checkBounds(field, value, rules)
	default:
		return checkText(field, value, rules)
	}
}

func checkText(field model.TemplateField, value any, rules *model.FieldValidation) string {
	text, ok := value.(string)
	if !ok {
		text = fmt.Sprint(value)
	}

	// Length bounds count characters, not bytes; names with diacritics must
	// not trip a byte-based measure.
	length := utf8.RuneCountInString(text)
	if rules.MinLength != nil && length < *rules.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", field.Label, *rules.MinLength)
	}
	if rules.MaxLength != nil && length > *rules.MaxLength {
		return fmt.Sprintf("%s must be at most %d characters", field.Label, *rules.MaxLength)
	}
	if rules.Pattern != "" {
		re := compiledPattern(rules.Pattern)
		// An uncompilable pattern is an authoring defect; the lint pass
		// reports it, runtime validation skips it.
		if re != nil && !re.MatchString(text) {
			if rules.PatternMessage != "" {
				return rules.PatternMessage
			}
			return fmt.Sprintf("%s has an invalid format", field.Label)
		}
	}
	return ""
}

var (
	patternMu    sync.RWMutex
	patternCache = map[string]*regexp.Regexp{}
)

// compiledPattern returns the compiled form of a declared pattern, caching
// per pattern text so repeated validations of the same definition do not
// recompile. Uncompilable patterns cache as nil.
func compiledPattern(pattern string) *regexp.Regexp {
	patternMu.RLock()
	re, ok := patternCache[pattern]
	patternMu.RUnlock()
	if ok {
		return re
	}

	re, _ = regexp.Compile(pattern)

	patternMu.Lock()
	patternCache[pattern] = re
	patternMu.Unlock()
	return re
}

func checkBounds(field model.TemplateField, value any, rules *model.FieldValidation) string {
	number, ok := toFloat(value)
	if !ok {
		return fmt.Sprintf("%s must be a number", field.Label)
	}

	if rules.Min != nil && number < *rules.Min {
		return fmt.Sprintf("%s must be at least %s", field.Label, trimFloat(*rules.Min))
	}
	if rules.Max != nil && number > *rules.Max {
		return fmt.Sprintf("%s must be at most %s", field.Label, trimFloat(*rules.Max))
	}
	return ""
}

// present reports whether a submitted value counts as set. Missing keys, nil,
// and empty strings are all treated as unset.
func present(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return s != ""
	}
	return true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
