package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netcompare/app"
	"netcompare/domain/crm"
	"netcompare/domain/network"
	"netcompare/domain/survey"
)

// comparisonView is the data for the main comparison page
type comparisonView struct {
	Profiles  []network.Profile
	Overview  app.MarketOverview
	Filters   survey.FilterSet
	Ages      []string
	Incomes   []string
	Locations []string
	Source    string
}

func (s *Server) handleIndex(c *gin.Context) {
	filters := filtersFromQuery(c)

	s.renderTemplate(c, "index.html", comparisonView{
		Profiles:  s.aggregator.ComputeAll(s.dataset, filters),
		Overview:  s.insights.Overview(s.dataset, filters),
		Filters:   filters,
		Ages:      s.dataset.Ages(),
		Incomes:   s.dataset.Incomes(),
		Locations: s.dataset.Locations(),
		Source:    s.dataset.Source(),
	})
}

// insightsView is the data for the customer-insights page
type insightsView struct {
	Overview     app.MarketOverview
	Voices       []app.CustomerVoice
	Correlations []app.ScoreCorrelation
	Filters      survey.FilterSet
	Ages         []string
	Incomes      []string
	Locations    []string
}

func (s *Server) handleInsights(c *gin.Context) {
	filters := filtersFromQuery(c)

	voices := make([]app.CustomerVoice, 0, len(network.All()))
	for _, net := range network.All() {
		voices = append(voices, s.insights.Voice(s.dataset, net, filters))
	}

	s.renderTemplate(c, "insights.html", insightsView{
		Overview:     s.insights.Overview(s.dataset, filters),
		Voices:       voices,
		Correlations: s.insights.Correlations(s.dataset, filters),
		Filters:      filters,
		Ages:         s.dataset.Ages(),
		Incomes:      s.dataset.Incomes(),
		Locations:    s.dataset.Locations(),
	})
}

// dashboardView is the data for the business dashboard page
type dashboardView struct {
	Summary crm.DashboardSummary
	Warning string
	Pending []crm.Lead
}

// handleDashboard renders the business dashboard. A store outage shows
// a zero-valued summary with a warning banner rather than an error
// page.
func (s *Server) handleDashboard(c *gin.Context) {
	view := dashboardView{}

	summary, err := s.dashboard.Summary(c.Request.Context())
	if err != nil {
		view.Summary = app.Summarize(nil, nil)
		view.Warning = "Live metrics are unavailable right now; showing zeroes."
	} else {
		view.Summary = summary
	}

	if pending, err := s.leads.PendingLeads(c.Request.Context()); err == nil {
		view.Pending = pending
	}

	s.renderTemplate(c, "dashboard.html", view)
}

// handleExportComparison streams the comparison table under the
// current filters as an XLSX workbook.
func (s *Server) handleExportComparison(c *gin.Context) {
	profiles := s.aggregator.ComputeAll(s.dataset, filtersFromQuery(c))

	f, err := buildComparisonWorkbook(profiles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="network_comparison.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
