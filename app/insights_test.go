package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netcompare/domain/network"
	"netcompare/domain/survey"
)

func TestOverviewMarketShare(t *testing.T) {
	in := NewInsights()
	ds := testDataset()

	overview := in.Overview(ds, survey.FilterSet{})
	assert.Equal(t, 4, overview.TotalResponses)
	assert.Equal(t, "Orange", overview.MarketLeader)
	require.NotEmpty(t, overview.MarketShare)
	assert.Equal(t, TokenCount{Token: "Orange", Count: 3}, overview.MarketShare[0])
	assert.Equal(t, TokenCount{Token: "Mascom", Count: 1}, overview.MarketShare[1])
}

func TestOverviewAvgSatisfactionIgnoresMissing(t *testing.T) {
	in := NewInsights()

	// Scores across all networks are [7, missing, 9, 8]
	overview := in.Overview(testDataset(), survey.FilterSet{})
	assert.True(t, overview.AvgSatisfaction.Valid())
	assert.InDelta(t, 8.0, overview.AvgSatisfaction.Mean, 1e-9)
	assert.Equal(t, 3, overview.AvgSatisfaction.N)
}

func TestOverviewChurnBySubstring(t *testing.T) {
	in := NewInsights()
	records := []survey.Record{
		{PrimaryNetwork: "Orange", StoppedUsing: "Mascom, BTC"},
		{PrimaryNetwork: "Mascom", StoppedUsing: "BTC"},
		{PrimaryNetwork: "BTC", StoppedUsing: "None"},
	}
	ds := survey.NewDataset(records, "test.csv")

	overview := in.Overview(ds, survey.FilterSet{})
	assert.Equal(t, 0, overview.Churn[network.Orange])
	assert.Equal(t, 1, overview.Churn[network.Mascom])
	assert.Equal(t, 2, overview.Churn[network.BTC])
}

func TestOverviewRespectsFilters(t *testing.T) {
	in := NewInsights()

	overview := in.Overview(testDataset(), survey.FilterSet{Locations: []string{"Francistown"}})
	assert.Equal(t, 1, overview.TotalResponses)
	assert.Equal(t, "Orange", overview.MarketLeader)
}

func TestVoiceOnlyCountsOneNetwork(t *testing.T) {
	in := NewInsights()

	voice := in.Voice(testDataset(), network.Orange, survey.FilterSet{})
	assert.Equal(t, network.Orange, voice.Network)
	assert.Equal(t, 3, voice.Users)
	require.NotEmpty(t, voice.Complaints)
	assert.Equal(t, TokenCount{Token: "Expensive data", Count: 2}, voice.Complaints[0])

	// The Mascom row has no free text, so its voice is empty but valid
	empty := in.Voice(testDataset(), network.Mascom, survey.FilterSet{})
	assert.Equal(t, 1, empty.Users)
	assert.Empty(t, empty.Complaints)
}

func TestCorrelationsPairwiseComplete(t *testing.T) {
	in := NewInsights()
	records := []survey.Record{
		{Overall: survey.NewValue(2), Service: survey.NewValue(2)},
		{Overall: survey.NewValue(5), Service: survey.NewValue(5)},
		{Overall: survey.NewValue(9), Service: survey.NewValue(9)},
		{Overall: survey.NewValue(4), Service: survey.Missing()},
	}
	ds := survey.NewDataset(records, "test.csv")

	correlations := in.Correlations(ds, survey.FilterSet{})
	require.Len(t, correlations, 1)
	assert.Equal(t, survey.ColScoreOverall, correlations[0].ColumnX)
	assert.Equal(t, survey.ColScoreService, correlations[0].ColumnY)
	// Row with the missing service score is excluded from the pair
	assert.Equal(t, 3, correlations[0].N)
	assert.InDelta(t, 1.0, correlations[0].Correlation, 1e-9)
}

func TestCorrelationsSkipSparsePairs(t *testing.T) {
	in := NewInsights()
	records := []survey.Record{
		{Overall: survey.NewValue(7)},
		{Service: survey.NewValue(6)},
	}
	ds := survey.NewDataset(records, "test.csv")

	assert.Empty(t, in.Correlations(ds, survey.FilterSet{}))
}
