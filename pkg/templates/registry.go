package templates

import (
	"sort"

	"github.com/chordsign/contractgen/pkg/model"
)

// All returns the built-in archetypes ordered by SortOrder. The slice is
// freshly allocated on every call so callers can reorder it freely.
func All() []model.TemplateDefinition {
	defs := []model.TemplateDefinition{
		ArtistCollaboration(),
		MusicLicensing(),
		Touring(),
		SampleClearance(),
		WorkForHire(),
	}
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].SortOrder < defs[j].SortOrder
	})
	return defs
}

// ByID returns the built-in archetype with the given id.
func ByID(id string) (model.TemplateDefinition, bool) {
	for _, def := range All() {
		if def.ID == id {
			return def, true
		}
	}
	return model.TemplateDefinition{}, false
}

// ShouldReplace reports whether a stored copy of a template should be
// replaced by def during seeding. Definitions are versioned for
// forward-compatible updates: re-seeding only overwrites when the stored
// version is older.
func ShouldReplace(storedVersion int, def model.TemplateDefinition) bool {
	return storedVersion < def.Version
}

func intp(v int) *int {
	return &v
}

func floatp(v float64) *float64 {
	return &v
}
