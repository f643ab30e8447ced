package templates

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chordsign/contractgen/pkg/model"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML template
// definition it finds. Duplicate template ids across files are rejected.
// When fsys is nil or holds no definition files, the result is empty.
func LoadFS(fsys fs.FS) ([]model.TemplateDefinition, error) {
	var defs []model.TemplateDefinition
	if fsys == nil {
		return defs, nil
	}

	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("template loader: read %s: %w", path, err)
		}

		def, err := parseDefinition(data, path)
		if err != nil {
			return err
		}

		if def.ID == "" {
			return fmt.Errorf("template loader: file %s defines a template without an id", path)
		}
		if origin, exists := seen[def.ID]; exists {
			return fmt.Errorf("template loader: duplicate template %q (files %s and %s)", def.ID, origin, path)
		}
		seen[def.ID] = path

		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return defs, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func parseDefinition(data []byte, path string) (model.TemplateDefinition, error) {
	var def model.TemplateDefinition
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &def); err != nil {
			return def, fmt.Errorf("template loader: parse %s: %w", path, err)
		}
		return def, nil
	}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("template loader: parse %s: %w", path, err)
	}
	return def, nil
}
