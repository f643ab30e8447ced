// Package model defines the declarative template data model shared by the
// validation, rendering, and storage layers. A TemplateDefinition is pure
// data: the field list, the optional clauses, and the section content with
// {{placeholder}} tokens. There is no behavioural variation between contract
// archetypes, only data variation, so the five built-in archetypes in
// pkg/templates are plain values of these types consumed by one shared
// engine. The concrete types live in internal/model and are re-exported here.
package model
