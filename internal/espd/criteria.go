package espd

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/espdhub/qualimport/internal/value"
)

// CriminalConvictions covers participation in a criminal organisation,
// corruption, fraud, terrorism, money laundering, and child labour
// grounds. One variant serves all of them; they share the same shape.
type CriminalConvictions struct {
	Base

	Answer           *bool       `json:"answer,omitempty"`
	DateOfConviction *value.Date `json:"date_of_conviction,omitempty"`
	Reason           *string     `json:"reason,omitempty"`
	Convicted        *string     `json:"convicted,omitempty"`
	PeriodLength     *string     `json:"period_length,omitempty"`

	SelfCleaning            SelfCleaning            `json:"self_cleaning,omitzero"`
	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`
}

var criminalConvictionsFields = fieldTable[CriminalConvictions]{
	"answer":           func(c *CriminalConvictions, v value.Value) error { return setBool(&c.Answer, v) },
	"dateOfConviction": func(c *CriminalConvictions, v value.Value) error { return setDate(&c.DateOfConviction, v) },
	"reason":           func(c *CriminalConvictions, v value.Value) error { return setText(&c.Reason, v) },
	"convicted":        func(c *CriminalConvictions, v value.Value) error { return setText(&c.Convicted, v) },
	"periodLength":     func(c *CriminalConvictions, v value.Value) error { return setText(&c.PeriodLength, v) },

	"selfCleaning.answer":      func(c *CriminalConvictions, v value.Value) error { return setBool(&c.SelfCleaning.Answer, v) },
	"selfCleaning.description": func(c *CriminalConvictions, v value.Value) error { return setText(&c.SelfCleaning.Description, v) },

	"availableElectronically.answer": func(c *CriminalConvictions, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *CriminalConvictions, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *CriminalConvictions, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *CriminalConvictions, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *CriminalConvictions) SetField(name string, v value.Value) error {
	return applyField(criminalConvictionsFields, c, name, v)
}

// Taxes covers payment of taxes and payment of social security
// contributions, which share one builder.
type Taxes struct {
	Base

	Answer                          *bool        `json:"answer,omitempty"`
	Country                         *string      `json:"country,omitempty"`
	Amount                          *apd.Decimal `json:"amount,omitempty"`
	Currency                        *string      `json:"currency,omitempty"`
	BreachOtherThanJudicialDecision *bool        `json:"breach_other_than_judicial_decision,omitempty"`
	MeansDescription                *string      `json:"means_description,omitempty"`
	DecisionFinalAndBinding         *bool        `json:"decision_final_and_binding,omitempty"`
	DateOfConviction                *value.Date  `json:"date_of_conviction,omitempty"`
	PeriodLength                    *string      `json:"period_length,omitempty"`
	EOFulfilledObligations          *bool        `json:"eo_fulfilled_obligations,omitempty"`
	ObligationsDescription          *string      `json:"obligations_description,omitempty"`

	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`
}

var taxesFields = fieldTable[Taxes]{
	"answer":                          func(c *Taxes, v value.Value) error { return setBool(&c.Answer, v) },
	"country":                         func(c *Taxes, v value.Value) error { return setText(&c.Country, v) },
	"amount":                          func(c *Taxes, v value.Value) error { return setDecimal(&c.Amount, v) },
	"currency":                        func(c *Taxes, v value.Value) error { return setText(&c.Currency, v) },
	"breachOtherThanJudicialDecision": func(c *Taxes, v value.Value) error { return setBool(&c.BreachOtherThanJudicialDecision, v) },
	"meansDescription":                func(c *Taxes, v value.Value) error { return setText(&c.MeansDescription, v) },
	"decisionFinalAndBinding":         func(c *Taxes, v value.Value) error { return setBool(&c.DecisionFinalAndBinding, v) },
	"dateOfConviction":                func(c *Taxes, v value.Value) error { return setDate(&c.DateOfConviction, v) },
	"periodLength":                    func(c *Taxes, v value.Value) error { return setText(&c.PeriodLength, v) },
	"eoFulfilledObligations":          func(c *Taxes, v value.Value) error { return setBool(&c.EOFulfilledObligations, v) },
	"obligationsDescription":          func(c *Taxes, v value.Value) error { return setText(&c.ObligationsDescription, v) },

	"availableElectronically.answer": func(c *Taxes, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *Taxes, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *Taxes, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *Taxes, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *Taxes) SetField(name string, v value.Value) error {
	return applyField(taxesFields, c, name, v)
}

// Law covers breaches of environmental, social, and labour law
// obligations, which share one builder.
type Law struct {
	Base

	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`

	SelfCleaning SelfCleaning `json:"self_cleaning,omitzero"`
}

var lawFields = fieldTable[Law]{
	"answer":      func(c *Law, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *Law, v value.Value) error { return setText(&c.Description, v) },

	"selfCleaning.answer":      func(c *Law, v value.Value) error { return setBool(&c.SelfCleaning.Answer, v) },
	"selfCleaning.description": func(c *Law, v value.Value) error { return setText(&c.SelfCleaning.Description, v) },
}

// SetField implements Target.
func (c *Law) SetField(name string, v value.Value) error {
	return applyField(lawFields, c, name, v)
}

// Bankruptcy covers bankruptcy, insolvency, and analogous situations.
type Bankruptcy struct {
	Base

	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`
	Reason      *string `json:"reason,omitempty"`

	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`
}

var bankruptcyFields = fieldTable[Bankruptcy]{
	"answer":      func(c *Bankruptcy, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *Bankruptcy, v value.Value) error { return setText(&c.Description, v) },
	"reason":      func(c *Bankruptcy, v value.Value) error { return setText(&c.Reason, v) },

	"availableElectronically.answer": func(c *Bankruptcy, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *Bankruptcy, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *Bankruptcy, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *Bankruptcy, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *Bankruptcy) SetField(name string, v value.Value) error {
	return applyField(bankruptcyFields, c, name, v)
}

// MisconductDistortion covers grave professional misconduct and
// agreements aimed at distorting competition, which share one builder.
type MisconductDistortion struct {
	Base

	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`

	SelfCleaning            SelfCleaning            `json:"self_cleaning,omitzero"`
	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`
}

var misconductDistortionFields = fieldTable[MisconductDistortion]{
	"answer":      func(c *MisconductDistortion, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *MisconductDistortion, v value.Value) error { return setText(&c.Description, v) },

	"selfCleaning.answer":      func(c *MisconductDistortion, v value.Value) error { return setBool(&c.SelfCleaning.Answer, v) },
	"selfCleaning.description": func(c *MisconductDistortion, v value.Value) error { return setText(&c.SelfCleaning.Description, v) },

	"availableElectronically.answer": func(c *MisconductDistortion, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *MisconductDistortion, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *MisconductDistortion, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *MisconductDistortion, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *MisconductDistortion) SetField(name string, v value.Value) error {
	return applyField(misconductDistortionFields, c, name, v)
}

// ConflictInterest covers conflicts of interest and prior involvement
// in the preparation of the procurement procedure.
type ConflictInterest struct {
	Base

	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`

	SelfCleaning            SelfCleaning            `json:"self_cleaning,omitzero"`
	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`
}

var conflictInterestFields = fieldTable[ConflictInterest]{
	"answer":      func(c *ConflictInterest, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *ConflictInterest, v value.Value) error { return setText(&c.Description, v) },

	"selfCleaning.answer":      func(c *ConflictInterest, v value.Value) error { return setBool(&c.SelfCleaning.Answer, v) },
	"selfCleaning.description": func(c *ConflictInterest, v value.Value) error { return setText(&c.SelfCleaning.Description, v) },

	"availableElectronically.answer": func(c *ConflictInterest, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *ConflictInterest, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *ConflictInterest, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *ConflictInterest, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *ConflictInterest) SetField(name string, v value.Value) error {
	return applyField(conflictInterestFields, c, name, v)
}

// PurelyNationalGrounds covers exclusion grounds that exist only in the
// national legislation of the contracting authority's member state.
type PurelyNationalGrounds struct {
	Base

	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`

	SelfCleaning            SelfCleaning            `json:"self_cleaning,omitzero"`
	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`
}

var purelyNationalGroundsFields = fieldTable[PurelyNationalGrounds]{
	"answer":      func(c *PurelyNationalGrounds, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *PurelyNationalGrounds, v value.Value) error { return setText(&c.Description, v) },

	"selfCleaning.answer":      func(c *PurelyNationalGrounds, v value.Value) error { return setBool(&c.SelfCleaning.Answer, v) },
	"selfCleaning.description": func(c *PurelyNationalGrounds, v value.Value) error { return setText(&c.SelfCleaning.Description, v) },

	"availableElectronically.answer": func(c *PurelyNationalGrounds, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *PurelyNationalGrounds, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *PurelyNationalGrounds, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *PurelyNationalGrounds, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *PurelyNationalGrounds) SetField(name string, v value.Value) error {
	return applyField(purelyNationalGroundsFields, c, name, v)
}

// SatisfiesAll is the global "it satisfies all the required selection
// criteria" answer.
type SatisfiesAll struct {
	Base

	Answer *bool `json:"answer,omitempty"`
}

var satisfiesAllFields = fieldTable[SatisfiesAll]{
	"answer": func(c *SatisfiesAll, v value.Value) error { return setBool(&c.Answer, v) },
}

// SetField implements Target.
func (c *SatisfiesAll) SetField(name string, v value.Value) error {
	return applyField(satisfiesAllFields, c, name, v)
}

// Suitability covers enrolment in professional or trade registers.
type Suitability struct {
	Base

	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`

	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`
}

var suitabilityFields = fieldTable[Suitability]{
	"answer":      func(c *Suitability, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *Suitability, v value.Value) error { return setText(&c.Description, v) },

	"availableElectronically.answer": func(c *Suitability, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *Suitability, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *Suitability, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *Suitability, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *Suitability) SetField(name string, v value.Value) error {
	return applyField(suitabilityFields, c, name, v)
}

// EconomicFinancialStanding covers turnover, financial ratio, and
// insurance criteria. Yearly turnover occurrences arrive through the
// unbounded groups; the numbered fixed fields remain for documents
// produced by pre-2016.12 schema revisions.
type EconomicFinancialStanding struct {
	Base

	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`

	Year1 *int64 `json:"year1,omitempty"`
	Year2 *int64 `json:"year2,omitempty"`
	Year3 *int64 `json:"year3,omitempty"`
	Year4 *int64 `json:"year4,omitempty"`
	Year5 *int64 `json:"year5,omitempty"`

	Amount1   *apd.Decimal `json:"amount1,omitempty"`
	Currency1 *string      `json:"currency1,omitempty"`
	Amount2   *apd.Decimal `json:"amount2,omitempty"`
	Currency2 *string      `json:"currency2,omitempty"`
	Amount3   *apd.Decimal `json:"amount3,omitempty"`
	Currency3 *string      `json:"currency3,omitempty"`
	Amount4   *apd.Decimal `json:"amount4,omitempty"`
	Currency4 *string      `json:"currency4,omitempty"`
	Amount5   *apd.Decimal `json:"amount5,omitempty"`
	Currency5 *string      `json:"currency5,omitempty"`

	Description1 *string `json:"description1,omitempty"`
	Description2 *string `json:"description2,omitempty"`
	Description3 *string `json:"description3,omitempty"`
	Description4 *string `json:"description4,omitempty"`
	Description5 *string `json:"description5,omitempty"`

	NumberOfYears           *int64       `json:"number_of_years,omitempty"`
	AverageTurnover         *apd.Decimal `json:"average_turnover,omitempty"`
	AverageTurnoverCurrency *string      `json:"average_turnover_currency,omitempty"`

	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`

	UnboundedGroups
}

var economicFinancialStandingFields = fieldTable[EconomicFinancialStanding]{
	"answer":      func(c *EconomicFinancialStanding, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Description, v) },

	"year1": func(c *EconomicFinancialStanding, v value.Value) error { return setInt(&c.Year1, v) },
	"year2": func(c *EconomicFinancialStanding, v value.Value) error { return setInt(&c.Year2, v) },
	"year3": func(c *EconomicFinancialStanding, v value.Value) error { return setInt(&c.Year3, v) },
	"year4": func(c *EconomicFinancialStanding, v value.Value) error { return setInt(&c.Year4, v) },
	"year5": func(c *EconomicFinancialStanding, v value.Value) error { return setInt(&c.Year5, v) },

	"amount1":   func(c *EconomicFinancialStanding, v value.Value) error { return setDecimal(&c.Amount1, v) },
	"currency1": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Currency1, v) },
	"amount2":   func(c *EconomicFinancialStanding, v value.Value) error { return setDecimal(&c.Amount2, v) },
	"currency2": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Currency2, v) },
	"amount3":   func(c *EconomicFinancialStanding, v value.Value) error { return setDecimal(&c.Amount3, v) },
	"currency3": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Currency3, v) },
	"amount4":   func(c *EconomicFinancialStanding, v value.Value) error { return setDecimal(&c.Amount4, v) },
	"currency4": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Currency4, v) },
	"amount5":   func(c *EconomicFinancialStanding, v value.Value) error { return setDecimal(&c.Amount5, v) },
	"currency5": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Currency5, v) },

	"description1": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Description1, v) },
	"description2": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Description2, v) },
	"description3": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Description3, v) },
	"description4": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Description4, v) },
	"description5": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.Description5, v) },

	"numberOfYears":           func(c *EconomicFinancialStanding, v value.Value) error { return setInt(&c.NumberOfYears, v) },
	"averageTurnover":         func(c *EconomicFinancialStanding, v value.Value) error { return setDecimal(&c.AverageTurnover, v) },
	"averageTurnoverCurrency": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.AverageTurnoverCurrency, v) },

	"availableElectronically.answer": func(c *EconomicFinancialStanding, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *EconomicFinancialStanding, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *EconomicFinancialStanding) SetField(name string, v value.Value) error {
	return applyField(economicFinancialStandingFields, c, name, v)
}

// TechnicalProfessional covers technical and professional ability
// criteria. Contract references arrive through the unbounded groups.
type TechnicalProfessional struct {
	Base

	Answer      *bool        `json:"answer,omitempty"`
	Description *string      `json:"description,omitempty"`
	Specify     *string      `json:"specify,omitempty"`
	Percentage  *apd.Decimal `json:"percentage,omitempty"`

	Number1 *int64 `json:"number1,omitempty"`
	Number2 *int64 `json:"number2,omitempty"`
	Number3 *int64 `json:"number3,omitempty"`

	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`

	UnboundedGroups
}

var technicalProfessionalFields = fieldTable[TechnicalProfessional]{
	"answer":      func(c *TechnicalProfessional, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *TechnicalProfessional, v value.Value) error { return setText(&c.Description, v) },
	"specify":     func(c *TechnicalProfessional, v value.Value) error { return setText(&c.Specify, v) },
	"percentage":  func(c *TechnicalProfessional, v value.Value) error { return setDecimal(&c.Percentage, v) },

	"number1": func(c *TechnicalProfessional, v value.Value) error { return setInt(&c.Number1, v) },
	"number2": func(c *TechnicalProfessional, v value.Value) error { return setInt(&c.Number2, v) },
	"number3": func(c *TechnicalProfessional, v value.Value) error { return setInt(&c.Number3, v) },

	"availableElectronically.answer": func(c *TechnicalProfessional, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *TechnicalProfessional, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *TechnicalProfessional, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *TechnicalProfessional, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *TechnicalProfessional) SetField(name string, v value.Value) error {
	return applyField(technicalProfessionalFields, c, name, v)
}

// QualityAssurance covers quality assurance schemes and environmental
// management standards certificates.
type QualityAssurance struct {
	Base

	Answer      *bool   `json:"answer,omitempty"`
	Description *string `json:"description,omitempty"`

	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`
}

var qualityAssuranceFields = fieldTable[QualityAssurance]{
	"answer":      func(c *QualityAssurance, v value.Value) error { return setBool(&c.Answer, v) },
	"description": func(c *QualityAssurance, v value.Value) error { return setText(&c.Description, v) },

	"availableElectronically.answer": func(c *QualityAssurance, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *QualityAssurance, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *QualityAssurance, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *QualityAssurance, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *QualityAssurance) SetField(name string, v value.Value) error {
	return applyField(qualityAssuranceFields, c, name, v)
}

// AwardCriterion covers the data-on-economic-operator and reduction-of-
// candidates criteria. The numbered description fields are shared by
// several questions; that is safe because the questions come from
// different criteria and never collide within one record.
type AwardCriterion struct {
	Base

	Answer *bool `json:"answer,omitempty"`

	Description1 *string `json:"description1,omitempty"`
	Description2 *string `json:"description2,omitempty"`
	Description3 *string `json:"description3,omitempty"`
	Description4 *string `json:"description4,omitempty"`
	Description5 *string `json:"description5,omitempty"`

	BooleanValue1 *bool `json:"boolean_value1,omitempty"`
	BooleanValue2 *bool `json:"boolean_value2,omitempty"`
	BooleanValue3 *bool `json:"boolean_value3,omitempty"`

	Percentage *apd.Decimal `json:"percentage,omitempty"`

	AvailableElectronically AvailableElectronically `json:"available_electronically,omitzero"`

	UnboundedGroups
}

var awardCriterionFields = fieldTable[AwardCriterion]{
	"answer": func(c *AwardCriterion, v value.Value) error { return setBool(&c.Answer, v) },

	"description1": func(c *AwardCriterion, v value.Value) error { return setText(&c.Description1, v) },
	"description2": func(c *AwardCriterion, v value.Value) error { return setText(&c.Description2, v) },
	"description3": func(c *AwardCriterion, v value.Value) error { return setText(&c.Description3, v) },
	"description4": func(c *AwardCriterion, v value.Value) error { return setText(&c.Description4, v) },
	"description5": func(c *AwardCriterion, v value.Value) error { return setText(&c.Description5, v) },

	"booleanValue1": func(c *AwardCriterion, v value.Value) error { return setBool(&c.BooleanValue1, v) },
	"booleanValue2": func(c *AwardCriterion, v value.Value) error { return setBool(&c.BooleanValue2, v) },
	"booleanValue3": func(c *AwardCriterion, v value.Value) error { return setBool(&c.BooleanValue3, v) },

	"percentage": func(c *AwardCriterion, v value.Value) error { return setDecimal(&c.Percentage, v) },

	"availableElectronically.answer": func(c *AwardCriterion, v value.Value) error { return setBool(&c.AvailableElectronically.Answer, v) },
	"availableElectronically.url":    func(c *AwardCriterion, v value.Value) error { return setText(&c.AvailableElectronically.URL, v) },
	"availableElectronically.code":   func(c *AwardCriterion, v value.Value) error { return setText(&c.AvailableElectronically.Code, v) },
	"availableElectronically.issuer": func(c *AwardCriterion, v value.Value) error { return setText(&c.AvailableElectronically.Issuer, v) },
}

// SetField implements Target.
func (c *AwardCriterion) SetField(name string, v value.Value) error {
	return applyField(awardCriterionFields, c, name, v)
}
