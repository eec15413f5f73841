package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espdhub/qualimport/internal/espd"
	"github.com/espdhub/qualimport/internal/importer"
	"github.com/espdhub/qualimport/internal/testutil"
)

func TestBuildUnansweredForEveryTypeCode(t *testing.T) {
	imp := importer.New(testutil.FixtureRegistry(t), nil)

	for _, code := range espd.AllTypeCodes {
		rec, err := imp.Build(importer.Criterion{
			ID:       "c-" + code,
			Name:     "criterion",
			TypeCode: code,
		})
		require.NoError(t, err, "type code %s", code)
		assert.False(t, rec.Exists(), "type code %s: no groups means not answered", code)
		assert.Equal(t, code, rec.Meta().TypeCode)
	}
}

func TestBuildAnsweredForEveryTypeCode(t *testing.T) {
	imp := importer.New(testutil.FixtureRegistry(t), nil)

	tree := []importer.GroupNode{
		testutil.Group(testutil.GroupMain, nil, testutil.Req(testutil.ReqAnswer, "true")),
	}

	for _, code := range espd.AllTypeCodes {
		rec, err := imp.Build(importer.Criterion{
			ID:       "c-" + code,
			Name:     "criterion",
			TypeCode: code,
			Groups:   tree,
		})
		require.NoError(t, err, "type code %s", code)
		assert.True(t, rec.Exists(), "type code %s: a non-empty tree means answered", code)
	}
}

func TestBuildSharedVariants(t *testing.T) {
	imp := importer.New(testutil.FixtureRegistry(t), nil)

	tests := []struct {
		codes []string
		want  espd.Record
	}{
		{[]string{espd.TypePaymentOfTaxes, espd.TypePaymentOfSocialSecurity}, &espd.Taxes{}},
		{[]string{espd.TypeEnvironmentalLaw, espd.TypeSocialLaw, espd.TypeLabourLaw}, &espd.Law{}},
		{[]string{espd.TypeMisconduct, espd.TypeDistortingMarket}, &espd.MisconductDistortion{}},
		{[]string{espd.TypeDataOnEconomicOperator, espd.TypeReductionOfCandidates}, &espd.AwardCriterion{}},
	}

	for _, tt := range tests {
		for _, code := range tt.codes {
			rec, err := imp.Build(importer.Criterion{ID: "c", TypeCode: code})
			require.NoError(t, err)
			assert.IsType(t, tt.want, rec, "type code %s", code)
		}
	}
}

func TestBuildUnsupportedTypeCode(t *testing.T) {
	imp := importer.New(testutil.FixtureRegistry(t), nil)

	rec, err := imp.Build(importer.Criterion{
		ID:       "c-1",
		Name:     "Mystery criterion",
		TypeCode: "UNKNOWN_CODE",
		Groups: []importer.GroupNode{
			testutil.Group(testutil.GroupMain, nil, testutil.Req(testutil.ReqAnswer, "true")),
		},
	})
	require.Error(t, err)
	assert.Nil(t, rec, "no partial record on a fatal dispatch failure")

	var ute *importer.UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "UNKNOWN_CODE", ute.TypeCode)
	assert.Equal(t, "Mystery criterion", ute.Name)
	assert.Equal(t, "c-1", ute.CriterionID)
	assert.True(t, importer.IsUnsupportedType(err))

	msg := err.Error()
	assert.True(t, strings.Contains(msg, "UNKNOWN_CODE") && strings.Contains(msg, "c-1"),
		"error names the offending code and criterion: %s", msg)
}

func TestBuildPurelyNationalGroundsUnanswered(t *testing.T) {
	imp := importer.New(testutil.FixtureRegistry(t), nil)

	rec, err := imp.Build(importer.Criterion{
		ID:             "63adb07d-db1b-4ef0-a14e-a99785cf8cf6",
		Name:           "Purely national exclusion grounds",
		TypeCode:       espd.TypeNationalExclusionGrounds,
		LegislationRef: "57(4)",
	})
	require.NoError(t, err)

	assert.False(t, rec.Exists())
	meta := rec.Meta()
	assert.Equal(t, "63adb07d-db1b-4ef0-a14e-a99785cf8cf6", meta.CriterionID)
	assert.Equal(t, "Purely national exclusion grounds", meta.Name)
	assert.Equal(t, "57(4)", meta.LegislationRef)
}

func TestBuildPopulatesFixedFields(t *testing.T) {
	imp := importer.New(testutil.FixtureRegistry(t), nil)

	rec, err := imp.Build(importer.Criterion{
		ID:       "c-1",
		TypeCode: espd.TypeCriminalConvictions,
		Groups: []importer.GroupNode{
			testutil.Group(testutil.GroupMain, nil,
				testutil.Req(testutil.ReqAnswer, "true"),
				testutil.Req(testutil.ReqDate, "2014-11-04"),
			),
		},
	})
	require.NoError(t, err)

	cc, ok := rec.(*espd.CriminalConvictions)
	require.True(t, ok)
	require.NotNil(t, cc.Answer)
	assert.True(t, *cc.Answer)
	require.NotNil(t, cc.DateOfConviction)
	assert.Equal(t, "2014-11-04", cc.DateOfConviction.String())
}

func TestBuildDocumentPreservesOrder(t *testing.T) {
	imp := importer.New(testutil.FixtureRegistry(t), nil)

	doc := importer.Document{
		ID: "doc-1",
		Criteria: []importer.Criterion{
			{ID: "c-1", TypeCode: espd.TypeCriminalConvictions},
			{ID: "c-2", TypeCode: espd.TypeSuitability},
		},
	}

	records, err := imp.BuildDocument(doc)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c-1", records[0].Meta().CriterionID)
	assert.Equal(t, "c-2", records[1].Meta().CriterionID)
}

func TestBuildDocumentAbortsOnUnsupportedType(t *testing.T) {
	imp := importer.New(testutil.FixtureRegistry(t), nil)

	doc := importer.Document{
		Criteria: []importer.Criterion{
			{ID: "c-1", TypeCode: espd.TypeCriminalConvictions},
			{ID: "c-2", TypeCode: "NOT_A_CODE"},
		},
	}

	records, err := imp.BuildDocument(doc)
	assert.Nil(t, records)
	assert.True(t, importer.IsUnsupportedType(err))
}

func TestDecodeDocument(t *testing.T) {
	src := `
id: doc-42
criteria:
  - id: c-1
    name: Payment of taxes
    type_code: EXCLUSION.PAYMENT_OF_TAXES
    legislation_ref: 57(2)
    groups:
      - id: group-main
        requirements:
          - id: req-answer
            responses: ["false"]
`
	doc, err := importer.DecodeDocument(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "doc-42", doc.ID)
	require.Len(t, doc.Criteria, 1)
	c := doc.Criteria[0]
	assert.Equal(t, "EXCLUSION.PAYMENT_OF_TAXES", c.TypeCode)
	require.Len(t, c.Groups, 1)
	require.Len(t, c.Groups[0].Requirements, 1)

	raw, ok := c.Groups[0].Requirements[0].Response()
	require.True(t, ok)
	assert.Equal(t, "false", raw)
}

func TestDecodeDocumentRejectsUnknownFields(t *testing.T) {
	_, err := importer.DecodeDocument(strings.NewReader("id: x\nbogus: y\n"))
	assert.Error(t, err)
}
