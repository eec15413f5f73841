package espd

// Criterion type codes form a closed set grouped into exclusion grounds,
// selection grounds, and other/award criteria. Several codes share a
// record variant: for the purposes of data capture they differ only in
// semantics, not structure.
const (
	TypeCriminalConvictions          = "EXCLUSION.CRIMINAL_CONVICTIONS"
	TypePaymentOfTaxes               = "EXCLUSION.PAYMENT_OF_TAXES"
	TypePaymentOfSocialSecurity      = "EXCLUSION.PAYMENT_OF_SOCIAL_SECURITY"
	TypeEnvironmentalLaw             = "EXCLUSION.ENVIRONMENTAL_LAW"
	TypeSocialLaw                    = "EXCLUSION.SOCIAL_LAW"
	TypeLabourLaw                    = "EXCLUSION.LABOUR_LAW"
	TypeBankruptcyInsolvency         = "EXCLUSION.BANKRUPTCY_INSOLVENCY"
	TypeMisconduct                   = "EXCLUSION.MISCONDUCT"
	TypeDistortingMarket             = "EXCLUSION.DISTORTING_MARKET"
	TypeConflictOfInterest           = "EXCLUSION.CONFLICT_OF_INTEREST"
	TypeNationalExclusionGrounds     = "EXCLUSION.OTHER"
	TypeAllCriteriaSatisfied         = "SELECTION.ALL_CRITERIA_SATISFIED"
	TypeSuitability                  = "SELECTION.SUITABILITY"
	TypeEconomicFinancialStanding    = "SELECTION.ECONOMIC_FINANCIAL_STANDING"
	TypeTechnicalProfessionalAbility = "SELECTION.TECHNICAL_PROFESSIONAL_ABILITY"
	TypeQualityAssurance             = "SELECTION.QUALITY_ASSURANCE"
	TypeDataOnEconomicOperator       = "OTHER.DATA_ON_ECONOMIC_OPERATOR"
	TypeReductionOfCandidates        = "OTHER.REDUCTION_OF_CANDIDATES"
)

// AllTypeCodes lists every supported criterion type code, in dispatch
// order. Used by definition tooling and tests.
var AllTypeCodes = []string{
	TypeCriminalConvictions,
	TypePaymentOfTaxes,
	TypePaymentOfSocialSecurity,
	TypeEnvironmentalLaw,
	TypeSocialLaw,
	TypeLabourLaw,
	TypeBankruptcyInsolvency,
	TypeMisconduct,
	TypeDistortingMarket,
	TypeConflictOfInterest,
	TypeNationalExclusionGrounds,
	TypeAllCriteriaSatisfied,
	TypeSuitability,
	TypeEconomicFinancialStanding,
	TypeTechnicalProfessionalAbility,
	TypeQualityAssurance,
	TypeDataOnEconomicOperator,
	TypeReductionOfCandidates,
}
