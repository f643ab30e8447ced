package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFormData(t *testing.T) {
	path := writeTemp(t, `{
		"fields": {"artist_name": "Nadia Reyes", "split": 50},
		"enabledClauses": ["termination"]
	}`)

	form, err := readFormData(path)
	require.NoError(t, err)
	assert.Equal(t, "Nadia Reyes", form.Fields["artist_name"])
	assert.Equal(t, float64(50), form.Fields["split"])
	assert.True(t, form.ClauseEnabled("termination"))
}

func TestReadFormDataDefaultsFields(t *testing.T) {
	path := writeTemp(t, `{"enabledClauses": []}`)

	form, err := readFormData(path)
	require.NoError(t, err)
	assert.NotNil(t, form.Fields)
	assert.Empty(t, form.Fields)
}

func TestReadFormDataRejectsUnknownKeys(t *testing.T) {
	path := writeTemp(t, `{"fields": {}, "extras": true}`)

	_, err := readFormData(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode form data")
}

func TestReadFormDataMissingFile(t *testing.T) {
	_, err := readFormData(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
