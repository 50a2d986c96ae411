package app

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"netcompare/domain/crm"
	"netcompare/ports"
)

// DashboardService assembles the business dashboard from the hosted
// store's lead and click tables.
type DashboardService struct {
	store ports.LeadStore
}

// NewDashboardService creates a dashboard service. store may be nil
// when the integration is disabled.
func NewDashboardService(store ports.LeadStore) *DashboardService {
	return &DashboardService{store: store}
}

// Summary fetches leads and clicks concurrently and reduces them to
// the count-based summary. A store failure surfaces as an error here;
// the caller renders a zero summary with a warning rather than an
// error page.
func (d *DashboardService) Summary(ctx context.Context) (crm.DashboardSummary, error) {
	if d.store == nil {
		return Summarize(nil, nil), nil
	}

	var leads []crm.Lead
	var clicks []crm.Click

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = d.store.ListLeads(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		clicks, err = d.store.ListClicks(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return crm.DashboardSummary{}, err
	}

	return Summarize(leads, clicks), nil
}

// Summarize reduces lead and click collections to the dashboard
// summary. Pure; zero leads yields a 0 conversion rate, never a
// division fault.
func Summarize(leads []crm.Lead, clicks []crm.Click) crm.DashboardSummary {
	converted := 0
	networkCounts := make(map[string]int)
	for _, lead := range leads {
		if lead.Status == crm.StatusConverted {
			converted++
		}
		if lead.RecommendedNetwork != "" {
			networkCounts[lead.RecommendedNetwork]++
		}
	}

	denominator := len(leads)
	if denominator < 1 {
		denominator = 1
	}

	return crm.DashboardSummary{
		TotalLeads:     len(leads),
		TotalClicks:    len(clicks),
		ConversionRate: float64(converted) / float64(denominator) * 100,
		PopularNetwork: modeOf(networkCounts),
	}
}

// modeOf returns the most frequent key, ties broken by name so output
// is stable across runs. "N/A" when empty.
func modeOf(counts map[string]int) string {
	if len(counts) == 0 {
		return "N/A"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys[0]
}
