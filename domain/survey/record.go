package survey

// Value is an optional numeric survey score in [0,10]. Invalid means
// the respondent left the question blank or the cell was unparseable.
type Value struct {
	Float float64
	Valid bool
}

// NewValue creates a present score value
func NewValue(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Missing creates an absent score value
func Missing() Value {
	return Value{}
}

// Record is a single survey respondent
type Record struct {
	// Categorical answers
	TopOfMindBrand   string
	StoppedUsing     string
	PrimaryNetwork   string
	ChoiceFactors    string // comma-separated multi-select
	Tenure           string
	MostLiked        string
	MostDisliked     string
	DesiredServices  string // comma-separated multi-select
	ImprovementAreas string // comma-separated multi-select
	ExcelAreas       string // comma-separated multi-select

	// Numeric satisfaction scores, 0-10 or missing
	Overall       Value
	Service       Value
	Communication Value
	Pricing       Value

	// Demographics
	Age        string
	Location   string
	Employment string
	Income     string
}

// Score returns the numeric value for a score column
func (r Record) Score(column string) Value {
	switch column {
	case ColScoreOverall:
		return r.Overall
	case ColScoreService:
		return r.Service
	case ColScoreComms:
		return r.Communication
	case ColScorePricing:
		return r.Pricing
	}
	return Missing()
}

// Field returns the raw text for a categorical column
func (r Record) Field(column string) string {
	switch column {
	case ColTopOfMindBrand:
		return r.TopOfMindBrand
	case ColStoppedUsing:
		return r.StoppedUsing
	case ColPrimaryNetwork:
		return r.PrimaryNetwork
	case ColChoiceFactors:
		return r.ChoiceFactors
	case ColTenure:
		return r.Tenure
	case ColMostLiked:
		return r.MostLiked
	case ColMostDisliked:
		return r.MostDisliked
	case ColDesiredServices:
		return r.DesiredServices
	case ColImprovementAreas:
		return r.ImprovementAreas
	case ColExcelAreas:
		return r.ExcelAreas
	case ColAge:
		return r.Age
	case ColLocation:
		return r.Location
	case ColEmployment:
		return r.Employment
	case ColIncome:
		return r.Income
	}
	return ""
}
