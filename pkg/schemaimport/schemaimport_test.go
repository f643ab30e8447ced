package schemaimport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/schemaimport"
)

const bookingDocument = `
openapi: 3.0.3
info:
  title: Booking API
  version: 1.0.0
paths: {}
components:
  schemas:
    Booking:
      type: object
      required: [artist_name, performance_fee]
      properties:
        artist_name:
          type: string
          minLength: 2
          maxLength: 80
        performance_fee:
          type: number
          format: currency
          minimum: 0
        performance_date:
          type: string
          format: date
        contact_email:
          type: string
          format: email
        set_length:
          type: integer
          minimum: 15
          maximum: 180
        genre:
          type: string
          title: Musical genre
          enum: [rock, jazz, electronic]
`

func TestFromDocument(t *testing.T) {
	fields, err := schemaimport.FromDocument(context.Background(), []byte(bookingDocument), "Booking")
	require.NoError(t, err)
	require.Len(t, fields, 6)

	byID := map[string]model.TemplateField{}
	for _, field := range fields {
		byID[field.ID] = field
	}

	artist := byID["artist_name"]
	assert.Equal(t, model.FieldTypeText, artist.Type)
	assert.True(t, artist.Required)
	assert.Equal(t, "Artist name", artist.Label)
	require.NotNil(t, artist.Validation)
	assert.Equal(t, 2, *artist.Validation.MinLength)
	assert.Equal(t, 80, *artist.Validation.MaxLength)

	fee := byID["performance_fee"]
	assert.Equal(t, model.FieldTypeCurrency, fee.Type)
	assert.True(t, fee.Required)
	require.NotNil(t, fee.Validation)
	assert.Equal(t, float64(0), *fee.Validation.Min)

	assert.Equal(t, model.FieldTypeDate, byID["performance_date"].Type)
	assert.False(t, byID["performance_date"].Required)
	assert.Equal(t, model.FieldTypeEmail, byID["contact_email"].Type)

	setLength := byID["set_length"]
	assert.Equal(t, model.FieldTypeNumber, setLength.Type)
	require.NotNil(t, setLength.Validation)
	assert.Equal(t, float64(15), *setLength.Validation.Min)
	assert.Equal(t, float64(180), *setLength.Validation.Max)

	genre := byID["genre"]
	assert.Equal(t, model.FieldTypeSelect, genre.Type)
	assert.Equal(t, "Musical genre", genre.Label)
	require.Len(t, genre.Options, 3)
	assert.Equal(t, "rock", genre.Options[0].Value)
}

func TestFromDocumentSortsFields(t *testing.T) {
	fields, err := schemaimport.FromDocument(context.Background(), []byte(bookingDocument), "Booking")
	require.NoError(t, err)

	var ids []string
	for _, field := range fields {
		ids = append(ids, field.ID)
	}
	assert.Equal(t, []string{
		"artist_name", "contact_email", "genre",
		"performance_date", "performance_fee", "set_length",
	}, ids)
}

func TestFromDocumentUnknownComponent(t *testing.T) {
	_, err := schemaimport.FromDocument(context.Background(), []byte(bookingDocument), "Invoice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `component schema "Invoice" not found`)
}

func TestFromDocumentEmptyPayload(t *testing.T) {
	_, err := schemaimport.FromDocument(context.Background(), nil, "Booking")
	require.Error(t, err)
}

func TestFieldsRejectsNonObjectSchemas(t *testing.T) {
	const doc = `
openapi: 3.0.3
info:
  title: t
  version: 1.0.0
paths: {}
components:
  schemas:
    Names:
      type: array
      items:
        type: string
`
	_, err := schemaimport.FromDocument(context.Background(), []byte(doc), "Names")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected an object schema")
}
