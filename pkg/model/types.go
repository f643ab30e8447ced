package model

import internalmodel "github.com/chordsign/contractgen/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeTextarea = internalmodel.FieldTypeTextarea
	FieldTypeDate     = internalmodel.FieldTypeDate
	FieldTypeNumber   = internalmodel.FieldTypeNumber
	FieldTypeCurrency = internalmodel.FieldTypeCurrency
	FieldTypeSelect   = internalmodel.FieldTypeSelect
	FieldTypeEmail    = internalmodel.FieldTypeEmail
)

type SelectOption = internalmodel.SelectOption
type FieldValidation = internalmodel.FieldValidation
type TemplateField = internalmodel.TemplateField
type OptionalClause = internalmodel.OptionalClause
type TemplateSection = internalmodel.TemplateSection
type TemplateContent = internalmodel.TemplateContent
type TemplateDefinition = internalmodel.TemplateDefinition
type FormData = internalmodel.FormData
type RenderedSection = internalmodel.RenderedSection
type RenderedDocument = internalmodel.RenderedDocument
