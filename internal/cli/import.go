package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/espdhub/qualimport/internal/espd"
	"github.com/espdhub/qualimport/internal/importer"
	"github.com/espdhub/qualimport/internal/store"
)

// ImportResult holds the outcome of an import run.
type ImportResult struct {
	DocumentID string        `json:"document_id"`
	Criteria   int           `json:"criteria"`
	Answered   int           `json:"answered"`
	Records    []espd.Record `json:"records"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string
	var documentID string

	cmd := &cobra.Command{
		Use:   "import <response-file>",
		Short: "Import a qualification response document",
		Long: `Import a YAML-encoded qualification response document and convert
every criterion into its typed record.

Unmapped or malformed legacy data degrades gracefully: affected fields
are skipped with a warning (visible with --verbose). Only a criterion
type code the engine does not know aborts the import.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], dbPath, documentID, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "archive records into this SQLite database")
	cmd.Flags().StringVar(&documentID, "document-id", "", "override the document id (default: id from the file, or a fresh UUID)")

	return cmd
}

func runImport(opts *RootOptions, path, dbPath, documentID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := loadRegistry(opts, formatter)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		msg := fmt.Sprintf("response file not found: %s", path)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	defer f.Close()

	doc, err := importer.DecodeDocument(f)
	if err != nil {
		_ = formatter.Error(ErrCodeDocumentInvalid, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid response document", err)
	}

	switch {
	case documentID != "":
		doc.ID = documentID
	case doc.ID == "":
		doc.ID = uuid.NewString()
	}

	formatter.VerboseLog("Importing %d criteria from %s as document %s", len(doc.Criteria), path, doc.ID)

	imp := importer.New(reg, slog.Default())
	records, err := imp.BuildDocument(doc)
	if err != nil {
		var ute *importer.UnsupportedTypeError
		if errors.As(err, &ute) {
			_ = formatter.Error(ErrCodeUnsupportedType, ute.Error(), map[string]string{
				"type_code":    ute.TypeCode,
				"criterion_id": ute.CriterionID,
			})
			return WrapExitError(ExitFailure, "import failed", err)
		}
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "import failed", err)
	}

	if dbPath != "" {
		if err := archiveRecords(cmd, dbPath, doc.ID, records); err != nil {
			_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "archive failed", err)
		}
		formatter.VerboseLog("Archived %d records to %s", len(records), dbPath)
	}

	answered := 0
	for _, rec := range records {
		if rec.Exists() {
			answered++
		}
	}
	result := ImportResult{
		DocumentID: doc.ID,
		Criteria:   len(records),
		Answered:   answered,
		Records:    records,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Imported %d criteria (%d answered) as document %s\n",
		result.Criteria, result.Answered, result.DocumentID)
	for _, rec := range records {
		meta := rec.Meta()
		mark := " "
		if rec.Exists() {
			mark = "✓"
		}
		fmt.Fprintf(formatter.Writer, "  %s %-45s %s\n", mark, meta.TypeCode, meta.Name)
	}
	return nil
}

func archiveRecords(cmd *cobra.Command, dbPath, documentID string, records []espd.Record) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.WriteDocument(cmd.Context(), documentID, records)
}
