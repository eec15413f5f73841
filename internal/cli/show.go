package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/espdhub/qualimport/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "show <document-id> [criterion-id]",
		Short: "Show archived criterion records",
		Long: `Show the records archived for an imported document, or a single
criterion record when a criterion id is given.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			criterionID := ""
			if len(args) == 2 {
				criterionID = args[1]
			}
			return runShow(rootOpts, dbPath, args[0], criterionID, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to read from (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runShow(opts *RootOptions, dbPath, documentID, criterionID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer st.Close()

	if criterionID != "" {
		rec, err := st.ReadRecord(cmd.Context(), documentID, criterionID)
		if errors.Is(err, store.ErrNotFound) {
			msg := fmt.Sprintf("no record for criterion %s in document %s", criterionID, documentID)
			_ = formatter.Error(ErrCodeNotFound, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		if err != nil {
			_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "read record", err)
		}

		if formatter.Format == "json" {
			return formatter.Success(rec)
		}
		printStoredRecord(formatter, rec)
		return nil
	}

	records, err := st.ListRecords(cmd.Context(), documentID)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list records", err)
	}
	if len(records) == 0 {
		msg := fmt.Sprintf("no records for document %s", documentID)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	if formatter.Format == "json" {
		return formatter.Success(records)
	}

	fmt.Fprintf(formatter.Writer, "Document %s: %d records\n", documentID, len(records))
	for _, rec := range records {
		printStoredRecord(formatter, rec)
	}
	return nil
}

func printStoredRecord(formatter *OutputFormatter, rec store.StoredRecord) {
	mark := " "
	if rec.Answered {
		mark = "✓"
	}
	fmt.Fprintf(formatter.Writer, "  %s %-45s %s (%s)\n", mark, rec.TypeCode, rec.Name, rec.CriterionID)
	if formatter.Verbose {
		fmt.Fprintf(formatter.Writer, "    %s\n", rec.Record)
	}
}
