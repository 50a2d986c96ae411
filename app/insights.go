package app

import (
	"strings"

	"gonum.org/v1/gonum/stat"

	"netcompare/domain/network"
	"netcompare/domain/survey"
)

// MarketOverview is the headline view over the filtered survey set
type MarketOverview struct {
	TotalResponses  int                     `json:"total_responses"`
	AvgSatisfaction network.Score           `json:"avg_satisfaction"`
	MarketLeader    string                  `json:"market_leader"`
	MarketShare     []TokenCount            `json:"market_share"`
	BrandAwareness  []TokenCount            `json:"brand_awareness"`
	Churn           map[network.Network]int `json:"churn"`
	Loyalty         []TokenCount            `json:"loyalty"`
	Ages            []TokenCount            `json:"ages"`
	Incomes         []TokenCount            `json:"incomes"`
	Employment      []TokenCount            `json:"employment"`
}

// CustomerVoice is the free-text breakdown for one network
type CustomerVoice struct {
	Network       network.Network `json:"network"`
	Users         int             `json:"users"`
	Complaints    []TokenCount    `json:"complaints"`
	Desires       []TokenCount    `json:"desires"`
	Liked         []TokenCount    `json:"liked"`
	Improvements  []TokenCount    `json:"improvements"`
	ChoiceFactors []TokenCount    `json:"choice_factors"`
}

// ScoreCorrelation is the Pearson correlation between two satisfaction
// dimensions over rows where both are present.
type ScoreCorrelation struct {
	ColumnX     string  `json:"column_x"`
	ColumnY     string  `json:"column_y"`
	Correlation float64 `json:"correlation"`
	N           int     `json:"n"`
}

// Insights computes the market-analysis views: share, churn, loyalty,
// demographics and score correlations. Like the aggregator it is a
// pure view over the filtered records.
type Insights struct{}

// NewInsights creates an insights computer
func NewInsights() *Insights {
	return &Insights{}
}

// Overview builds the market overview under the active filters
func (in *Insights) Overview(ds *survey.Dataset, filters survey.FilterSet) MarketOverview {
	records := filters.Apply(ds.Records())

	share := TallyValues(records, survey.ColPrimaryNetwork)

	churn := make(map[network.Network]int)
	for _, net := range network.All() {
		churn[net] = churnCount(records, net)
	}

	return MarketOverview{
		TotalResponses:  len(records),
		AvgSatisfaction: meanScore(records, survey.ColScoreOverall),
		MarketLeader:    topOf(share),
		MarketShare:     share,
		BrandAwareness:  TallyValues(records, survey.ColTopOfMindBrand),
		Churn:           churn,
		Loyalty:         TallyValues(records, survey.ColTenure),
		Ages:            TallyValues(records, survey.ColAge),
		Incomes:         TallyValues(records, survey.ColIncome),
		Employment:      TallyValues(records, survey.ColEmployment),
	}
}

// Voice builds the free-text breakdown for one network
func (in *Insights) Voice(ds *survey.Dataset, net network.Network, filters survey.FilterSet) CustomerVoice {
	var subset []survey.Record
	for _, rec := range filters.Apply(ds.Records()) {
		if rec.PrimaryNetwork == net.String() {
			subset = append(subset, rec)
		}
	}

	return CustomerVoice{
		Network:       net,
		Users:         len(subset),
		Complaints:    TopN(TallyValues(subset, survey.ColMostDisliked), 8),
		Desires:       TopN(TallyTokens(subset, survey.ColDesiredServices), 8),
		Liked:         TopN(TallyValues(subset, survey.ColMostLiked), 5),
		Improvements:  TopN(TallyTokens(subset, survey.ColImprovementAreas), 5),
		ChoiceFactors: TopN(TallyTokens(subset, survey.ColChoiceFactors), 5),
	}
}

// Correlations computes pairwise Pearson correlations between the four
// satisfaction dimensions. Each pair uses only the rows where both
// values are present; pairs with fewer than two complete rows are
// skipped.
func (in *Insights) Correlations(ds *survey.Dataset, filters survey.FilterSet) []ScoreCorrelation {
	records := filters.Apply(ds.Records())
	columns := survey.ScoreColumns()

	var out []ScoreCorrelation
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			xs, ys := pairwiseComplete(records, columns[i], columns[j])
			if len(xs) < 2 {
				continue
			}
			out = append(out, ScoreCorrelation{
				ColumnX:     columns[i],
				ColumnY:     columns[j],
				Correlation: stat.Correlation(xs, ys, nil),
				N:           len(xs),
			})
		}
	}
	return out
}

func pairwiseComplete(records []survey.Record, colX, colY string) ([]float64, []float64) {
	var xs, ys []float64
	for _, rec := range records {
		x := rec.Score(colX)
		y := rec.Score(colY)
		if x.Valid && y.Valid {
			xs = append(xs, x.Float)
			ys = append(ys, y.Float)
		}
	}
	return xs, ys
}

// churnCount counts respondents who report having stopped using the
// network. The answer is free text and may list several networks, so
// membership is by substring containment.
func churnCount(records []survey.Record, net network.Network) int {
	count := 0
	for _, rec := range records {
		if strings.Contains(rec.StoppedUsing, net.String()) {
			count++
		}
	}
	return count
}
