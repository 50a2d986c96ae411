package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"netcompare/domain/core"
	"netcompare/domain/crm"
	"netcompare/domain/network"
)

// quizRequest carries the quiz answers. Priority is the display label
// from the quiz options and may include emoji decoration.
type quizRequest struct {
	Priority  string `json:"priority" binding:"required"`
	UsageType string `json:"usage_type"`
	Location  string `json:"location"`
}

func (s *Server) handleQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "priority is required"})
		return
	}

	rec := s.recommender.Recommend(s.dataset, req.Priority, filtersFromQuery(c))
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleProfile(c *gin.Context) {
	net, ok := network.Parse(c.Param("network"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown network"})
		return
	}

	profile := s.aggregator.ComputeProfile(s.dataset, net, filtersFromQuery(c))
	c.JSON(http.StatusOK, profile)
}

// leadRequest is the capture form plus the quiz answers used to
// regenerate the recommendation server-side.
type leadRequest struct {
	Email     string `json:"email" binding:"required"`
	Name      string `json:"name"`
	Priority  string `json:"priority" binding:"required"`
	UsageType string `json:"usage_type"`
	Location  string `json:"location"`
}

func (s *Server) handleCreateLead(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and priority are required"})
		return
	}

	rec := s.recommender.Recommend(s.dataset, req.Priority, filtersFromQuery(c))
	lead, result := s.leads.CaptureLead(c.Request.Context(), crm.Lead{
		Email:     req.Email,
		Name:      req.Name,
		Priority:  req.Priority,
		UsageType: req.UsageType,
		Location:  req.Location,
	}, rec)

	c.JSON(http.StatusOK, gin.H{
		"lead":           lead,
		"recommendation": rec,
		"sync":           result,
	})
}

func (s *Server) handlePendingLeads(c *gin.Context) {
	pending, err := s.leads.PendingLeads(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "records service unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": pending, "count": len(pending)})
}

type statusRequest struct {
	Status crm.LeadStatus `json:"status" binding:"required"`
}

func (s *Server) handleLeadStatus(c *gin.Context) {
	id, err := core.ParseRecordID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record ID"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	c.JSON(http.StatusOK, s.leads.MarkLeadStatus(c.Request.Context(), id, req.Status))
}

type clickRequest struct {
	Network string `json:"network" binding:"required"`
	Action  string `json:"action"`
}

func (s *Server) handleTrackClick(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "network is required"})
		return
	}
	net, ok := network.Parse(req.Network)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown network"})
		return
	}
	if req.Action == "" {
		req.Action = "website_visit"
	}

	result := s.leads.TrackClick(c.Request.Context(), net, req.Action, sessionID(c))
	c.JSON(http.StatusOK, gin.H{"sync": result, "target": net.Website()})
}

type reviewRequest struct {
	Network   string `json:"network" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
	UserEmail string `json:"user_email"`
}

func (s *Server) handleSubmitReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "network and rating are required"})
		return
	}
	if _, ok := network.Parse(req.Network); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown network"})
		return
	}
	if req.Rating < 1 || req.Rating > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 10"})
		return
	}

	result := s.leads.SubmitReview(c.Request.Context(), crm.Review{
		Network:   req.Network,
		Rating:    req.Rating,
		Comment:   req.Comment,
		UserEmail: req.UserEmail,
	})
	c.JSON(http.StatusOK, gin.H{"sync": result})
}

// handleEmailPreview renders a sample follow-up draft for the network
// as HTML. Useful for checking the template before sending anything.
func (s *Server) handleEmailPreview(c *gin.Context) {
	net, ok := network.Parse(c.Param("network"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown network"})
		return
	}

	rec := network.Recommendation{
		Network: net,
		Reason:  "Sample preview",
		Profile: s.aggregator.ComputeProfile(s.dataset, net, filtersFromQuery(c)),
	}
	draft := s.composer.Compose(c.Query("name"), rec)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, string(renderMarkdown(draft)))
}

func renderMarkdown(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(p.Parse([]byte(md)), renderer)
}
