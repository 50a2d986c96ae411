package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"netcompare/app"
	"netcompare/domain/survey"
	"netcompare/ports"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// Server is the comparison dashboard web application
type Server struct {
	router    *gin.Engine
	templates *template.Template

	dataset     *survey.Dataset
	aggregator  *app.Aggregator
	recommender *app.Recommender
	insights    *app.Insights
	composer    *app.EmailComposer
	leads       *app.LeadService
	dashboard   *app.DashboardService
}

// NewServer creates the web server. store may be nil when the hosted
// store integration is disabled; lead capture then degrades to
// draft-only with a warning.
func NewServer(dataset *survey.Dataset, store ports.LeadStore) (*Server, error) {
	composer := app.NewEmailComposer()
	aggregator := app.NewAggregator()

	s := &Server{
		router:      gin.Default(),
		dataset:     dataset,
		aggregator:  aggregator,
		recommender: app.NewRecommender(aggregator),
		insights:    app.NewInsights(),
		composer:    composer,
		leads:       app.NewLeadService(store, composer),
		dashboard:   app.NewDashboardService(store),
	}

	funcMap := template.FuncMap{
		"json": func(v interface{}) (template.JS, error) {
			b, err := json.Marshal(v)
			return template.JS(b), err
		},
		"mul": func(a, b float64) float64 { return a * b },
		"div": func(a, b float64) float64 {
			if b == 0 {
				return 0
			}
			return a / b
		},
		"add": func(a, b int) int { return a + b },
		"pct": func(part, total int) string {
			if total == 0 {
				return "0.0"
			}
			return fmt.Sprintf("%.1f", float64(part)/float64(total)*100)
		},
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(sessionMiddleware())
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/insights", s.handleInsights)
	s.router.GET("/dashboard", s.handleDashboard)
	s.router.GET("/export/comparison.xlsx", s.handleExportComparison)

	s.router.POST("/api/quiz", s.handleQuiz)
	s.router.GET("/api/profile/:network", s.handleProfile)
	s.router.POST("/api/leads", s.handleCreateLead)
	s.router.GET("/api/leads/pending", s.handlePendingLeads)
	s.router.PATCH("/api/leads/:id/status", s.handleLeadStatus)
	s.router.POST("/api/clicks", s.handleTrackClick)
	s.router.POST("/api/reviews", s.handleSubmitReview)
	s.router.GET("/api/emails/:network/preview", s.handleEmailPreview)
}

// Start runs the web server until it fails
func (s *Server) Start(addr string) error {
	log.Printf("Starting network comparison UI on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the configured handler, used by tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("[Render] template %s: %v", name, err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// filtersFromQuery reads the repeatable facet params shared by every
// data endpoint. Absent params leave the facet unrestricted.
func filtersFromQuery(c *gin.Context) survey.FilterSet {
	return survey.FilterSet{
		Ages:      c.QueryArray("age"),
		Incomes:   c.QueryArray("income"),
		Locations: c.QueryArray("location"),
	}
}
