package store

import (
	"context"
	"sort"
	"sync"

	"github.com/chordsign/contractgen/pkg/model"
)

// Memory is an in-process implementation of the three stores, safe for
// concurrent use. It backs tests and the CLI's no-database mode.
type Memory struct {
	mu        sync.RWMutex
	templates map[string]model.TemplateDefinition
	drafts    map[string]Draft
	contracts map[string]Contract
}

var (
	_ TemplateStore = (*Memory)(nil)
	_ DraftStore    = (*Memory)(nil)
	_ ContractStore = (*Memory)(nil)
)

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		templates: make(map[string]model.TemplateDefinition),
		drafts:    make(map[string]Draft),
		contracts: make(map[string]Contract),
	}
}

func (m *Memory) GetTemplate(_ context.Context, id string) (model.TemplateDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	def, ok := m.templates[id]
	if !ok {
		return model.TemplateDefinition{}, ErrNotFound
	}
	return def, nil
}

func (m *Memory) PutTemplate(_ context.Context, def model.TemplateDefinition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[def.ID] = def
	return nil
}

func (m *Memory) ListTemplates(_ context.Context) ([]model.TemplateDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.TemplateDefinition, 0, len(m.templates))
	for _, def := range m.templates {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) GetDraft(_ context.Context, id string) (Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	draft, ok := m.drafts[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return draft, nil
}

func (m *Memory) PutDraft(_ context.Context, draft Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[draft.ID] = draft
	return nil
}

func (m *Memory) DeleteDraft(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drafts[id]; !ok {
		return ErrNotFound
	}
	delete(m.drafts, id)
	return nil
}

func (m *Memory) GetContract(_ context.Context, id string) (Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	contract, ok := m.contracts[id]
	if !ok {
		return Contract{}, ErrNotFound
	}
	return contract, nil
}

func (m *Memory) PutContract(_ context.Context, contract Contract) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contracts[contract.ID] = contract
	return nil
}

func (m *Memory) ListContracts(_ context.Context) ([]Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Contract, 0, len(m.contracts))
	for _, contract := range m.contracts {
		out = append(out, contract)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
