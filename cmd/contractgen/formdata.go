package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/chordsign/contractgen/pkg/model"
)

// readFormData decodes a form-data document from path, or from stdin when
// path is "-". The document is JSON of the shape:
//
//	{"fields": {"artist_name": "..."}, "enabledClauses": ["exclusivity"]}
func readFormData(path string) (model.FormData, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return model.FormData{}, fmt.Errorf("open form data: %w", err)
		}
		defer f.Close()
		r = f
	}

	var form model.FormData
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		return model.FormData{}, fmt.Errorf("decode form data: %w", err)
	}
	if form.Fields == nil {
		form.Fields = map[string]any{}
	}
	return form, nil
}
