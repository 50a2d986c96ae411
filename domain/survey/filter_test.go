package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []Record {
	return []Record{
		{PrimaryNetwork: "Orange", Age: "18-24", Income: "P1000-P3000", Location: "Gaborone"},
		{PrimaryNetwork: "Mascom", Age: "25-34", Income: "P1000-P3000", Location: "Francistown"},
		{PrimaryNetwork: "BTC", Age: "18-24", Income: "Below P1000", Location: "Gaborone"},
		{PrimaryNetwork: "Orange", Age: "35-44", Income: "Above P10000", Location: "Maun"},
	}
}

func TestFilterSetZeroMatchesAll(t *testing.T) {
	records := sampleRecords()
	var f FilterSet

	assert.True(t, f.IsZero())
	assert.Len(t, f.Apply(records), len(records))
}

func TestFilterSetSingleFacet(t *testing.T) {
	records := sampleRecords()
	f := FilterSet{Ages: []string{"18-24"}}

	got := f.Apply(records)
	assert.Len(t, got, 2)
	for _, rec := range got {
		assert.Equal(t, "18-24", rec.Age)
	}
}

func TestFilterSetFacetsAreConjunctive(t *testing.T) {
	records := sampleRecords()
	f := FilterSet{
		Ages:      []string{"18-24"},
		Locations: []string{"Gaborone"},
		Incomes:   []string{"Below P1000"},
	}

	got := f.Apply(records)
	assert.Len(t, got, 1)
	assert.Equal(t, "BTC", got[0].PrimaryNetwork)
}

func TestFilterSetNoMatches(t *testing.T) {
	f := FilterSet{Locations: []string{"Kasane"}}
	assert.Empty(t, f.Apply(sampleRecords()))
}

func TestDatasetFacetValues(t *testing.T) {
	ds := NewDataset(sampleRecords(), "test.csv")

	assert.Equal(t, []string{"18-24", "25-34", "35-44"}, ds.Ages())
	assert.Equal(t, []string{"Francistown", "Gaborone", "Maun"}, ds.Locations())
	assert.Equal(t, 4, ds.Len())
}

func TestRecordFieldAndScore(t *testing.T) {
	rec := Record{
		PrimaryNetwork: "Orange",
		MostDisliked:   "Expensive data",
		Overall:        NewValue(7),
	}

	assert.Equal(t, "Orange", rec.Field(ColPrimaryNetwork))
	assert.Equal(t, "Expensive data", rec.Field(ColMostDisliked))
	assert.Equal(t, NewValue(7), rec.Score(ColScoreOverall))
	assert.False(t, rec.Score(ColScoreService).Valid)
	assert.Equal(t, "", rec.Field("unknown_column"))
}
