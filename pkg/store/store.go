// Package store defines the persistence seams the engine is consumed
// through: templates, drafts, and finished contracts, each a simple get/put
// store keyed by id. The core never touches storage itself; the surrounding
// application fetches a definition before rendering and persists the rendered
// output afterwards.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/chordsign/contractgen/pkg/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// Draft is an in-progress template fill-in. Drafts are explicit versioned
// records: Version increments on every save and UpdatedAt records the save
// time, so autosave conflicts resolve last-write-wins visibly instead of
// silently.
type Draft struct {
	ID         string         `json:"id"`
	TemplateID string         `json:"templateId"`
	Form       model.FormData `json:"form"`
	Version    int            `json:"version"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Contract is a finished, rendered contract. The rendered HTML and text are
// what persist; the form data that produced them is discarded after render.
type Contract struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"templateId"`
	Title      string    `json:"title"`
	HTML       string    `json:"html"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TemplateStore persists template definitions keyed by template id.
type TemplateStore interface {
	GetTemplate(ctx context.Context, id string) (model.TemplateDefinition, error)
	PutTemplate(ctx context.Context, def model.TemplateDefinition) error
	ListTemplates(ctx context.Context) ([]model.TemplateDefinition, error)
}

// DraftStore persists in-progress fill-ins keyed by draft id.
type DraftStore interface {
	GetDraft(ctx context.Context, id string) (Draft, error)
	PutDraft(ctx context.Context, draft Draft) error
	DeleteDraft(ctx context.Context, id string) error
}

// ContractStore persists rendered contracts keyed by contract id.
type ContractStore interface {
	GetContract(ctx context.Context, id string) (Contract, error)
	PutContract(ctx context.Context, contract Contract) error
	ListContracts(ctx context.Context) ([]Contract, error)
}

// Seed writes each definition into the template store, replacing a stored
// copy only when the incoming version is newer. shouldReplace decides the
// comparison so callers can reuse the registry's versioning rule.
func Seed(ctx context.Context, s TemplateStore, defs []model.TemplateDefinition, shouldReplace func(storedVersion int, def model.TemplateDefinition) bool) error {
	for _, def := range defs {
		stored, err := s.GetTemplate(ctx, def.ID)
		switch {
		case errors.Is(err, ErrNotFound):
			// fall through to write
		case err != nil:
			return err
		default:
			if shouldReplace != nil && !shouldReplace(stored.Version, def) {
				continue
			}
		}
		if err := s.PutTemplate(ctx, def); err != nil {
			return err
		}
	}
	return nil
}
