package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record or document does not
// exist in the store.
var ErrNotFound = errors.New("not found")

// StoredRecord is one archived criterion record as read back from the
// store. Record holds the full JSON serialization of the typed record.
type StoredRecord struct {
	DocumentID  string          `json:"document_id"`
	CriterionID string          `json:"criterion_id"`
	TypeCode    string          `json:"type_code"`
	Name        string          `json:"name"`
	Answered    bool            `json:"answered"`
	Record      json.RawMessage `json:"record"`
}

// ReadRecord returns one archived record. Returns ErrNotFound if the
// (document, criterion) pair has not been stored.
func (s *Store) ReadRecord(ctx context.Context, documentID, criterionID string) (StoredRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT document_id, criterion_id, type_code, name, answered, record
		FROM criteria
		WHERE document_id = ? AND criterion_id = ?
	`, documentID, criterionID)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredRecord{}, fmt.Errorf("record %s/%s: %w", documentID, criterionID, ErrNotFound)
	}
	if err != nil {
		return StoredRecord{}, fmt.Errorf("read record: %w", err)
	}
	return rec, nil
}

// ListRecords returns every archived record of a document, ordered by
// criterion id for deterministic output. Returns an empty slice (not
// nil) for a document with no records.
func (s *Store) ListRecords(ctx context.Context, documentID string) ([]StoredRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id, criterion_id, type_code, name, answered, record
		FROM criteria
		WHERE document_id = ?
		ORDER BY criterion_id ASC
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []StoredRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// ListDocuments returns the ids of all stored documents, oldest first.
func (s *Store) ListDocuments(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM documents ORDER BY imported_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan document id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return ids, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (StoredRecord, error) {
	var rec StoredRecord
	var payload string
	err := row.Scan(&rec.DocumentID, &rec.CriterionID, &rec.TypeCode, &rec.Name, &rec.Answered, &payload)
	if err != nil {
		return StoredRecord{}, err
	}
	rec.Record = json.RawMessage(payload)
	return rec, nil
}
