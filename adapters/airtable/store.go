package airtable

import (
	"context"

	"netcompare/domain/core"
	"netcompare/domain/crm"
)

// pendingFormula selects new leads with a contact address, matching
// the follow-up email workflow.
const pendingFormula = "AND({Status}='New', {Email}!=BLANK())"

// CreateLead persists a new lead
func (c *Client) CreateLead(ctx context.Context, lead crm.Lead) (core.RecordID, error) {
	return c.CreateRecord(ctx, TableLeads, lead.Fields())
}

// TrackClick records an affiliate click-through
func (c *Client) TrackClick(ctx context.Context, click crm.Click) (core.RecordID, error) {
	return c.CreateRecord(ctx, TableClicks, click.Fields())
}

// AddReview stores a user-submitted review
func (c *Client) AddReview(ctx context.Context, review crm.Review) (core.RecordID, error) {
	return c.CreateRecord(ctx, TableReviews, review.Fields())
}

// PendingLeads returns leads awaiting a follow-up email
func (c *Client) PendingLeads(ctx context.Context) ([]crm.Lead, error) {
	records, err := c.ListRecords(ctx, TableLeads, pendingFormula)
	if err != nil {
		return nil, err
	}
	return leadsFromRecords(records), nil
}

// UpdateLeadStatus moves a lead through the follow-up pipeline
func (c *Client) UpdateLeadStatus(ctx context.Context, id core.RecordID, status crm.LeadStatus) error {
	return c.UpdateRecord(ctx, TableLeads, id, map[string]interface{}{
		"Status": string(status),
	})
}

// ListLeads returns every captured lead
func (c *Client) ListLeads(ctx context.Context) ([]crm.Lead, error) {
	records, err := c.ListRecords(ctx, TableLeads, "")
	if err != nil {
		return nil, err
	}
	return leadsFromRecords(records), nil
}

// ListClicks returns every tracked click
func (c *Client) ListClicks(ctx context.Context) ([]crm.Click, error) {
	records, err := c.ListRecords(ctx, TableClicks, "")
	if err != nil {
		return nil, err
	}

	clicks := make([]crm.Click, 0, len(records))
	for _, rec := range records {
		clicks = append(clicks, crm.Click{
			ID:        core.RecordID(rec.ID),
			Network:   stringField(rec.Fields, "Network"),
			Action:    stringField(rec.Fields, "Action"),
			SessionID: core.SessionID(stringField(rec.Fields, "Session_ID")),
			Converted: boolField(rec.Fields, "Converted"),
		})
	}
	return clicks, nil
}

func leadsFromRecords(records []record) []crm.Lead {
	leads := make([]crm.Lead, 0, len(records))
	for _, rec := range records {
		leads = append(leads, crm.Lead{
			ID:                 core.RecordID(rec.ID),
			Email:              stringField(rec.Fields, "Email"),
			Name:               stringField(rec.Fields, "Name"),
			RecommendedNetwork: stringField(rec.Fields, "Recommended_Network"),
			Priority:           stringField(rec.Fields, "Priority"),
			UsageType:          stringField(rec.Fields, "Usage_Type"),
			Location:           stringField(rec.Fields, "Location"),
			Status:             crm.LeadStatus(stringField(rec.Fields, "Status")),
			EmailDraft:         stringField(rec.Fields, "AI_Email_Draft"),
		})
	}
	return leads
}

func stringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func boolField(fields map[string]interface{}, key string) bool {
	if v, ok := fields[key].(bool); ok {
		return v
	}
	return false
}
