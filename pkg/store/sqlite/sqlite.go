// Package sqlite persists templates, drafts, and contracts in a single
// SQLite database. Definitions and form data are stored as JSON documents
// beside the columns queries need, which keeps the schema stable while the
// data model evolves.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/chordsign/contractgen/pkg/model"
	"github.com/chordsign/contractgen/pkg/store"
)

// Store implements store.TemplateStore, store.DraftStore, and
// store.ContractStore over one SQLite database file.
type Store struct {
	db *sql.DB
}

var (
	_ store.TemplateStore = (*Store)(nil)
	_ store.DraftStore    = (*Store)(nil)
	_ store.ContractStore = (*Store)(nil)
)

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT,
			version INTEGER NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_active INTEGER NOT NULL DEFAULT 1,
			definition TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS drafts (
			id TEXT PRIMARY KEY,
			template_id TEXT NOT NULL,
			form TEXT NOT NULL,
			version INTEGER NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contracts (
			id TEXT PRIMARY KEY,
			template_id TEXT NOT NULL,
			title TEXT NOT NULL,
			html TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GetTemplate(ctx context.Context, id string) (model.TemplateDefinition, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT definition FROM templates WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TemplateDefinition{}, store.ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("templateID", id).Error("Failed to load template")
		return model.TemplateDefinition{}, fmt.Errorf("get template %q: %w", id, err)
	}

	var def model.TemplateDefinition
	if err := json.Unmarshal([]byte(raw), &def); err != nil {
		return model.TemplateDefinition{}, fmt.Errorf("decode template %q: %w", id, err)
	}
	return def, nil
}

func (s *Store) PutTemplate(ctx context.Context, def model.TemplateDefinition) error {
	raw, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode template %q: %w", def.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, category, version, sort_order, is_active, definition)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			version = excluded.version,
			sort_order = excluded.sort_order,
			is_active = excluded.is_active,
			definition = excluded.definition`,
		def.ID, def.Name, def.Category, def.Version, def.SortOrder, boolInt(def.IsActive), string(raw))
	if err != nil {
		logrus.WithError(err).WithField("templateID", def.ID).Error("Failed to store template")
		return fmt.Errorf("put template %q: %w", def.ID, err)
	}

	logrus.WithField("templateID", def.ID).Debug("Template stored")
	return nil
}

func (s *Store) ListTemplates(ctx context.Context) ([]model.TemplateDefinition, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT definition FROM templates ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var defs []model.TemplateDefinition
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("list templates: %w", err)
		}
		var def model.TemplateDefinition
		if err := json.Unmarshal([]byte(raw), &def); err != nil {
			return nil, fmt.Errorf("decode template: %w", err)
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

func (s *Store) GetDraft(ctx context.Context, id string) (store.Draft, error) {
	var (
		draft     store.Draft
		form      string
		updatedAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, template_id, form, version, updated_at FROM drafts WHERE id = ?`, id).
		Scan(&draft.ID, &draft.TemplateID, &form, &draft.Version, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Draft{}, store.ErrNotFound
	}
	if err != nil {
		return store.Draft{}, fmt.Errorf("get draft %q: %w", id, err)
	}

	if err := json.Unmarshal([]byte(form), &draft.Form); err != nil {
		return store.Draft{}, fmt.Errorf("decode draft %q: %w", id, err)
	}
	if draft.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return store.Draft{}, fmt.Errorf("decode draft %q: %w", id, err)
	}
	return draft, nil
}

func (s *Store) PutDraft(ctx context.Context, draft store.Draft) error {
	form, err := json.Marshal(draft.Form)
	if err != nil {
		return fmt.Errorf("encode draft %q: %w", draft.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, template_id, form, version, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			template_id = excluded.template_id,
			form = excluded.form,
			version = excluded.version,
			updated_at = excluded.updated_at`,
		draft.ID, draft.TemplateID, string(form), draft.Version,
		draft.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		logrus.WithError(err).WithField("draftID", draft.ID).Error("Failed to store draft")
		return fmt.Errorf("put draft %q: %w", draft.ID, err)
	}
	return nil
}

func (s *Store) DeleteDraft(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete draft %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete draft %q: %w", id, err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) GetContract(ctx context.Context, id string) (store.Contract, error) {
	var (
		contract  store.Contract
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, template_id, title, html, text, created_at FROM contracts WHERE id = ?`, id).
		Scan(&contract.ID, &contract.TemplateID, &contract.Title, &contract.HTML, &contract.Text, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Contract{}, store.ErrNotFound
	}
	if err != nil {
		return store.Contract{}, fmt.Errorf("get contract %q: %w", id, err)
	}

	if contract.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return store.Contract{}, fmt.Errorf("decode contract %q: %w", id, err)
	}
	return contract, nil
}

func (s *Store) PutContract(ctx context.Context, contract store.Contract) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contracts (id, template_id, title, html, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			template_id = excluded.template_id,
			title = excluded.title,
			html = excluded.html,
			text = excluded.text,
			created_at = excluded.created_at`,
		contract.ID, contract.TemplateID, contract.Title, contract.HTML, contract.Text,
		contract.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		logrus.WithError(err).WithField("contractID", contract.ID).Error("Failed to store contract")
		return fmt.Errorf("put contract %q: %w", contract.ID, err)
	}

	logrus.WithField("contractID", contract.ID).Info("Contract stored")
	return nil
}

func (s *Store) ListContracts(ctx context.Context) ([]store.Contract, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, template_id, title, html, text, created_at FROM contracts ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []store.Contract
	for rows.Next() {
		var (
			contract  store.Contract
			createdAt string
		)
		if err := rows.Scan(&contract.ID, &contract.TemplateID, &contract.Title, &contract.HTML,
			&contract.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("list contracts: %w", err)
		}
		if contract.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("decode contract %q: %w", contract.ID, err)
		}
		contracts = append(contracts, contract)
	}
	return contracts, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
