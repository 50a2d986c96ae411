package app

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"netcompare/domain/network"
	"netcompare/domain/survey"
)

// Aggregator computes per-network descriptive statistics over the
// survey dataset. It is a pure view over the filtered records: no
// state, no side effects, recomputed on every filter change.
type Aggregator struct{}

// NewAggregator creates an aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// ComputeProfile builds the profile for one network under the active
// filter set. The user count equals the number of records matching the
// network after filtering; means ignore missing values and report N/A
// when nothing remains.
func (a *Aggregator) ComputeProfile(ds *survey.Dataset, net network.Network, filters survey.FilterSet) network.Profile {
	subset := a.networkSubset(ds, net, filters)

	return network.Profile{
		Network:         net,
		Users:           len(subset),
		Overall:         meanScore(subset, survey.ColScoreOverall),
		Service:         meanScore(subset, survey.ColScoreService),
		Communication:   meanScore(subset, survey.ColScoreComms),
		Pricing:         meanScore(subset, survey.ColScorePricing),
		TopStrength:     topOf(TallyTokens(subset, survey.ColExcelAreas)),
		TopWeakness:     topOf(TallyValues(subset, survey.ColMostDisliked)),
		TopDesire:       topOf(TallyTokens(subset, survey.ColDesiredServices)),
		TopChoiceFactor: topOf(TallyTokens(subset, survey.ColChoiceFactors)),
	}
}

// ComputeAll builds profiles for the three networks in fixed order
func (a *Aggregator) ComputeAll(ds *survey.Dataset, filters survey.FilterSet) []network.Profile {
	profiles := make([]network.Profile, 0, len(network.All()))
	for _, net := range network.All() {
		profiles = append(profiles, a.ComputeProfile(ds, net, filters))
	}
	return profiles
}

func (a *Aggregator) networkSubset(ds *survey.Dataset, net network.Network, filters survey.FilterSet) []survey.Record {
	var subset []survey.Record
	for _, rec := range filters.Apply(ds.Records()) {
		if rec.PrimaryNetwork == net.String() {
			subset = append(subset, rec)
		}
	}
	return subset
}

// meanScore computes the arithmetic mean of a score column over the
// non-missing values. An empty or all-missing column yields the zero
// Score, which renders as N/A.
func meanScore(records []survey.Record, column string) network.Score {
	var values []float64
	for _, rec := range records {
		if v := rec.Score(column); v.Valid {
			values = append(values, v.Float)
		}
	}
	if len(values) == 0 {
		return network.Score{}
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return network.Score{}
	}
	return network.Score{Mean: mean, N: len(values)}
}

// TokenCount is one tallied answer with its vote count
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// TallyTokens counts votes in a comma-separated multi-select column.
// Each token is one vote: a row answering "A, B" contributes to both A
// and B. Results are ordered by count descending, then token ascending,
// so ties resolve the same way every run.
func TallyTokens(records []survey.Record, column string) []TokenCount {
	counts := make(map[string]int)
	for _, rec := range records {
		raw := rec.Field(column)
		if raw == "" {
			continue
		}
		for _, token := range strings.Split(raw, ",") {
			token = strings.TrimSpace(token)
			if token != "" {
				counts[token]++
			}
		}
	}
	return sortedCounts(counts)
}

// TallyValues counts literal answers in a single-value column
func TallyValues(records []survey.Record, column string) []TokenCount {
	counts := make(map[string]int)
	for _, rec := range records {
		if v := rec.Field(column); v != "" {
			counts[v]++
		}
	}
	return sortedCounts(counts)
}

// TopN returns the first n entries of a tally
func TopN(counts []TokenCount, n int) []TokenCount {
	if len(counts) <= n {
		return counts
	}
	return counts[:n]
}

func sortedCounts(counts map[string]int) []TokenCount {
	out := make([]TokenCount, 0, len(counts))
	for token, count := range counts {
		out = append(out, TokenCount{Token: token, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Token < out[j].Token
	})
	return out
}

// topOf returns the most frequent entry, or N/A for an empty tally
func topOf(counts []TokenCount) string {
	if len(counts) == 0 {
		return "N/A"
	}
	return counts[0].Token
}
