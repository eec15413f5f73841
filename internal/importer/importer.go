// Package importer converts criterion answer trees into typed criterion
// records. It dispatches on the criterion type code, walks the
// requirement-group tree depth first, and writes parsed values onto the
// selected record variant through the definition registry's field
// mappings. All per-field faults degrade gracefully; only an unknown
// type code aborts a build.
package importer

import (
	"log/slog"

	"github.com/espdhub/qualimport/internal/espd"
	"github.com/espdhub/qualimport/internal/registry"
)

// Importer builds criterion records from answer trees. Safe for
// concurrent use: each Build call owns its own traversal state and the
// registry is read-only.
type Importer struct {
	reg *registry.Registry
	log *slog.Logger
}

// New creates an Importer over the given definition registry. A nil
// logger falls back to slog.Default.
func New(reg *registry.Registry, log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	return &Importer{reg: reg, log: log.With("component", "importer")}
}

// Build converts one criterion's answer tree into its typed record.
//
// A criterion with no groups was not answered: the record comes back
// with Exists() false and only the identifying metadata populated. A
// type code outside the dispatch table returns an UnsupportedTypeError
// and no record.
func (imp *Importer) Build(c Criterion) (espd.Record, error) {
	rec := newRecord(c.TypeCode)
	if rec == nil {
		return nil, &UnsupportedTypeError{
			TypeCode:    c.TypeCode,
			Name:        c.Name,
			CriterionID: c.ID,
		}
	}

	meta := rec.Meta()
	meta.CriterionID = c.ID
	meta.Name = c.Name
	meta.TypeCode = c.TypeCode
	meta.LegislationRef = c.LegislationRef

	if len(c.Groups) == 0 {
		imp.log.Debug("criterion not answered", "criterion_id", c.ID, "type_code", c.TypeCode)
		return rec, nil
	}

	meta.Answered = true

	w := newWalker(imp.reg, imp.log.With("criterion_id", c.ID))
	w.apply(rec, c.Groups)

	return rec, nil
}

// BuildDocument converts every criterion of a response document,
// preserving document order. The first unsupported type code aborts the
// whole document.
func (imp *Importer) BuildDocument(doc Document) ([]espd.Record, error) {
	records := make([]espd.Record, 0, len(doc.Criteria))
	for _, c := range doc.Criteria {
		rec, err := imp.Build(c)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// newRecord maps a criterion type code to a fresh instance of its
// record variant. Codes sharing a variant differ only in semantics, not
// in captured structure. Returns nil for codes outside the table.
func newRecord(typeCode string) espd.Record {
	switch typeCode {
	case espd.TypeCriminalConvictions:
		return &espd.CriminalConvictions{}
	case espd.TypePaymentOfTaxes, espd.TypePaymentOfSocialSecurity:
		return &espd.Taxes{}
	case espd.TypeEnvironmentalLaw, espd.TypeSocialLaw, espd.TypeLabourLaw:
		return &espd.Law{}
	case espd.TypeBankruptcyInsolvency:
		return &espd.Bankruptcy{}
	case espd.TypeMisconduct, espd.TypeDistortingMarket:
		return &espd.MisconductDistortion{}
	case espd.TypeConflictOfInterest:
		return &espd.ConflictInterest{}
	case espd.TypeNationalExclusionGrounds:
		return &espd.PurelyNationalGrounds{}
	case espd.TypeAllCriteriaSatisfied:
		return &espd.SatisfiesAll{}
	case espd.TypeSuitability:
		return &espd.Suitability{}
	case espd.TypeEconomicFinancialStanding:
		return &espd.EconomicFinancialStanding{}
	case espd.TypeTechnicalProfessionalAbility:
		return &espd.TechnicalProfessional{}
	case espd.TypeQualityAssurance:
		return &espd.QualityAssurance{}
	case espd.TypeDataOnEconomicOperator, espd.TypeReductionOfCandidates:
		return &espd.AwardCriterion{}
	}
	return nil
}
