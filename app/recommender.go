package app

import (
	"netcompare/domain/network"
	"netcompare/domain/survey"
)

// decisionRow is one outcome of the recommendation table
type decisionRow struct {
	network network.Network
	reason  string
}

// decisionTable maps a parsed priority to its fixed outcome. The table
// is flat: no scoring, no ordering between rows beyond parse order.
var decisionTable = map[network.Priority]decisionRow{
	network.PriorityBestPrice:       {network.Mascom, "Most affordable data packages according to our user reviews"},
	network.PriorityFastestInternet: {network.Orange, "Highest ratings for internet speed and reliability"},
	network.PriorityOverallQuality:  {network.BTC, "Highest overall customer satisfaction"},
	network.PriorityBestService:     {network.BTC, "Best customer service ratings"},
}

// Recommender maps quiz answers to one of the three networks and
// attaches the aggregator's profile for the pick.
type Recommender struct {
	aggregator *Aggregator
}

// NewRecommender creates a recommender backed by the given aggregator
func NewRecommender(aggregator *Aggregator) *Recommender {
	return &Recommender{aggregator: aggregator}
}

// Recommend picks a network for the given priority label under the
// active filters. It never fails: unmatched labels use the default
// row, and a network with no surviving data simply carries N/A fields
// in its profile.
func (r *Recommender) Recommend(ds *survey.Dataset, priorityLabel string, filters survey.FilterSet) network.Recommendation {
	priority := network.ParsePriority(priorityLabel)
	row, ok := decisionTable[priority]
	if !ok {
		row = decisionTable[network.PriorityBestService]
	}

	return network.Recommendation{
		Network: row.network,
		Reason:  row.reason,
		Profile: r.aggregator.ComputeProfile(ds, row.network, filters),
		Matched: priority,
	}
}
