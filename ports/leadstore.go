package ports

import (
	"context"

	"netcompare/domain/core"
	"netcompare/domain/crm"
)

// LeadStore is the hosted record store behind lead capture, click
// tracking and reviews. Implementations are blocking; callers treat
// failures as warnings, never as flow-stopping errors.
type LeadStore interface {
	// CreateLead persists a new lead and returns the store-assigned ID
	CreateLead(ctx context.Context, lead crm.Lead) (core.RecordID, error)

	// TrackClick records an affiliate click-through
	TrackClick(ctx context.Context, click crm.Click) (core.RecordID, error)

	// AddReview stores a user-submitted review (unverified)
	AddReview(ctx context.Context, review crm.Review) (core.RecordID, error)

	// PendingLeads returns leads with status New and a non-blank email
	PendingLeads(ctx context.Context) ([]crm.Lead, error)

	// UpdateLeadStatus moves a lead through the follow-up pipeline
	UpdateLeadStatus(ctx context.Context, id core.RecordID, status crm.LeadStatus) error

	// ListLeads returns every captured lead for dashboard counting
	ListLeads(ctx context.Context) ([]crm.Lead, error)

	// ListClicks returns every tracked click for dashboard counting
	ListClicks(ctx context.Context) ([]crm.Click, error)
}
