package crm

import (
	"netcompare/domain/core"
)

// LeadStatus tracks a captured lead through follow-up
type LeadStatus string

const (
	StatusNew       LeadStatus = "New"
	StatusContacted LeadStatus = "Contacted"
	StatusConverted LeadStatus = "Converted"
)

// Lead is a captured prospective customer. The field list mirrors the
// hosted store's LEADS table; records are sent verbatim and only read
// back for dashboard counting.
type Lead struct {
	ID                 core.RecordID  `json:"id,omitempty"`
	Email              string         `json:"email"`
	Name               string         `json:"name"`
	RecommendedNetwork string         `json:"recommended_network"`
	Priority           string         `json:"priority"`
	UsageType          string         `json:"usage_type"`
	Location           string         `json:"location"`
	Status             LeadStatus     `json:"status"`
	EmailDraft         string         `json:"email_draft,omitempty"`
	CreatedAt          core.Timestamp `json:"created_at,omitempty"`
}

// Fields returns the flat key-value form sent to the store
func (l Lead) Fields() map[string]interface{} {
	return map[string]interface{}{
		"Email":               l.Email,
		"Name":                l.Name,
		"Recommended_Network": l.RecommendedNetwork,
		"Priority":            l.Priority,
		"Usage_Type":          l.UsageType,
		"Location":            l.Location,
		"Status":              string(l.Status),
		"AI_Email_Draft":      l.EmailDraft,
	}
}

// Click records an affiliate click-through for commission attribution
type Click struct {
	ID        core.RecordID  `json:"id,omitempty"`
	Network   string         `json:"network"`
	Action    string         `json:"action"`
	SessionID core.SessionID `json:"session_id"`
	Converted bool           `json:"converted"`
}

// Fields returns the flat key-value form sent to the store
func (c Click) Fields() map[string]interface{} {
	return map[string]interface{}{
		"Network":    c.Network,
		"Action":     c.Action,
		"Session_ID": c.SessionID.String(),
		"Converted":  c.Converted,
	}
}

// Review is a user-submitted network rating
type Review struct {
	ID        core.RecordID `json:"id,omitempty"`
	Network   string        `json:"network"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	UserEmail string        `json:"user_email"`
	Verified  bool          `json:"verified"`
}

// Fields returns the flat key-value form sent to the store
func (r Review) Fields() map[string]interface{} {
	return map[string]interface{}{
		"Network":    r.Network,
		"Rating":     r.Rating,
		"Comment":    r.Comment,
		"User_Email": r.UserEmail,
		"Verified":   r.Verified,
	}
}

// DashboardSummary is the count-based business view over captured
// leads and clicks.
type DashboardSummary struct {
	TotalLeads     int     `json:"total_leads"`
	TotalClicks    int     `json:"total_clicks"`
	ConversionRate float64 `json:"conversion_rate"`
	PopularNetwork string  `json:"popular_network"`
}
