package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/espdhub/qualimport/internal/espd"
)

// WriteDocument stores every record of one imported document in a
// single transaction. Re-importing the same document id replaces its
// records.
func (s *Store) WriteDocument(ctx context.Context, documentID string, records []espd.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id) VALUES (?)
		ON CONFLICT(id) DO NOTHING
	`, documentID)
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	for _, rec := range records {
		if err := writeRecord(ctx, tx, documentID, rec); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// WriteRecord stores a single criterion record, creating its document
// row if needed. Re-writing the same (document, criterion) pair
// replaces the stored record.
func (s *Store) WriteRecord(ctx context.Context, documentID string, rec espd.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id) VALUES (?)
		ON CONFLICT(id) DO NOTHING
	`, documentID)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return writeRecord(ctx, s.db, documentID, rec)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func writeRecord(ctx context.Context, db execer, documentID string, rec espd.Record) error {
	meta := rec.Meta()

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", meta.CriterionID, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO criteria (document_id, criterion_id, type_code, name, answered, record)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_id, criterion_id) DO UPDATE SET
			type_code = excluded.type_code,
			name = excluded.name,
			answered = excluded.answered,
			record = excluded.record
	`,
		documentID,
		meta.CriterionID,
		meta.TypeCode,
		meta.Name,
		meta.Answered,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("write record %q: %w", meta.CriterionID, err)
	}
	return nil
}
