package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"netcompare/app"
	"netcompare/domain/network"
	"netcompare/domain/survey"
	"netcompare/ports"
)

// App is the headless JSON API over the same services as the web UI,
// intended for programmatic consumers.
type App struct {
	router      *chi.Mux
	dataset     *survey.Dataset
	aggregator  *app.Aggregator
	recommender *app.Recommender
	insights    *app.Insights
	dashboard   *app.DashboardService
}

// Config holds API application configuration
type Config struct {
	Port string
}

// NewApp creates the API application. store may be nil when the hosted
// store integration is disabled.
func NewApp(dataset *survey.Dataset, store ports.LeadStore) *App {
	aggregator := app.NewAggregator()

	a := &App{
		router:      chi.NewRouter(),
		dataset:     dataset,
		aggregator:  aggregator,
		recommender: app.NewRecommender(aggregator),
		insights:    app.NewInsights(),
		dashboard:   app.NewDashboardService(store),
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/api/profiles", a.handleProfiles)
	a.router.Get("/api/profiles/{network}", a.handleProfile)
	a.router.Post("/api/recommendations", a.handleRecommendation)
	a.router.Get("/api/insights/overview", a.handleOverview)
	a.router.Get("/api/insights/voice/{network}", a.handleVoice)
	a.router.Get("/api/insights/correlations", a.handleCorrelations)
	a.router.Get("/api/dashboard/summary", a.handleSummary)
	a.router.Get("/healthz", a.handleHealth)
}

// Start runs the API server on the configured port
func (a *App) Start(config Config) error {
	return http.ListenAndServe(":"+config.Port, a.router)
}

// Router exposes the configured handler, used by tests
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "encoding error", http.StatusInternalServerError)
	}
}

func (a *App) respondError(w http.ResponseWriter, status int, message string) {
	a.respondJSON(w, status, map[string]string{"error": message})
}

func filtersFromRequest(r *http.Request) survey.FilterSet {
	q := r.URL.Query()
	return survey.FilterSet{
		Ages:      q["age"],
		Incomes:   q["income"],
		Locations: q["location"],
	}
}

func (a *App) handleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := a.aggregator.ComputeAll(a.dataset, filtersFromRequest(r))
	a.respondJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

func (a *App) handleProfile(w http.ResponseWriter, r *http.Request) {
	net, ok := network.Parse(chi.URLParam(r, "network"))
	if !ok {
		a.respondError(w, http.StatusNotFound, "unknown network")
		return
	}
	a.respondJSON(w, http.StatusOK, a.aggregator.ComputeProfile(a.dataset, net, filtersFromRequest(r)))
}

func (a *App) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Priority string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Priority == "" {
		a.respondError(w, http.StatusBadRequest, "priority is required")
		return
	}
	a.respondJSON(w, http.StatusOK, a.recommender.Recommend(a.dataset, req.Priority, filtersFromRequest(r)))
}

func (a *App) handleOverview(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, a.insights.Overview(a.dataset, filtersFromRequest(r)))
}

func (a *App) handleVoice(w http.ResponseWriter, r *http.Request) {
	net, ok := network.Parse(chi.URLParam(r, "network"))
	if !ok {
		a.respondError(w, http.StatusNotFound, "unknown network")
		return
	}
	a.respondJSON(w, http.StatusOK, a.insights.Voice(a.dataset, net, filtersFromRequest(r)))
}

func (a *App) handleCorrelations(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"correlations": a.insights.Correlations(a.dataset, filtersFromRequest(r)),
	})
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.dashboard.Summary(r.Context())
	if err != nil {
		a.respondError(w, http.StatusBadGateway, "records service unavailable")
		return
	}
	a.respondJSON(w, http.StatusOK, summary)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"responses": a.dataset.Len(),
	})
}
