package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espdhub/qualimport/internal/espd"
	"github.com/espdhub/qualimport/internal/value"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRecord(t *testing.T, criterionID string) espd.Record {
	t.Helper()
	rec := &espd.Suitability{}
	meta := rec.Meta()
	meta.CriterionID = criterionID
	meta.Name = "Enrolment in a trade register"
	meta.TypeCode = espd.TypeSuitability
	meta.Answered = true
	require.NoError(t, rec.SetField("answer", value.Bool(true)))
	require.NoError(t, rec.SetField("description", value.Text("registered since 2009")))
	return rec
}

func TestOpenAppliesPragmas(t *testing.T) {
	st := openTestStore(t)

	assert.NoError(t, st.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, st.verifyPragma("foreign_keys", "1"))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	st1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st1.Close())

	st2, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, st2.Close())
}

func TestWriteAndReadRecord(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.WriteRecord(ctx, "doc-1", sampleRecord(t, "c-1")))

	got, err := st.ReadRecord(ctx, "doc-1", "c-1")
	require.NoError(t, err)

	assert.Equal(t, "doc-1", got.DocumentID)
	assert.Equal(t, "c-1", got.CriterionID)
	assert.Equal(t, espd.TypeSuitability, got.TypeCode)
	assert.True(t, got.Answered)

	var decoded struct {
		Answer      *bool   `json:"answer"`
		Description *string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(got.Record, &decoded))
	require.NotNil(t, decoded.Answer)
	assert.True(t, *decoded.Answer)
	require.NotNil(t, decoded.Description)
	assert.Equal(t, "registered since 2009", *decoded.Description)
}

func TestWriteRecordReplacesExisting(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.WriteRecord(ctx, "doc-1", sampleRecord(t, "c-1")))

	updated := sampleRecord(t, "c-1")
	updated.Meta().Name = "Renamed criterion"
	require.NoError(t, st.WriteRecord(ctx, "doc-1", updated))

	got, err := st.ReadRecord(ctx, "doc-1", "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed criterion", got.Name)

	records, err := st.ListRecords(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, records, 1, "rewrite replaces, never duplicates")
}

func TestReadRecordNotFound(t *testing.T) {
	st := openTestStore(t)

	_, err := st.ReadRecord(context.Background(), "doc-1", "c-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteDocumentTransactional(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	records := []espd.Record{
		sampleRecord(t, "c-2"),
		sampleRecord(t, "c-1"),
	}
	require.NoError(t, st.WriteDocument(ctx, "doc-1", records))

	got, err := st.ListRecords(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c-1", got[0].CriterionID, "listing is ordered by criterion id")
	assert.Equal(t, "c-2", got[1].CriterionID)

	docs, err := st.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1"}, docs)
}

func TestListRecordsEmptyDocument(t *testing.T) {
	st := openTestStore(t)

	records, err := st.ListRecords(context.Background(), "doc-unknown")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
