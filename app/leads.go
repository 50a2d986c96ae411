package app

import (
	"context"

	"netcompare/domain/core"
	"netcompare/domain/crm"
	"netcompare/domain/network"
	"netcompare/internal"
	"netcompare/ports"
)

// SyncResult is the explicit outcome of a store call. The store is
// fire-and-forget: failures are reduced to a warning the caller may
// surface, and the user flow continues as if the record had been
// queued.
type SyncResult struct {
	Saved    bool          `json:"saved"`
	RecordID core.RecordID `json:"record_id,omitempty"`
	Warning  string        `json:"warning,omitempty"`
}

const storeWarning = "We couldn't reach our records service right now - your submission was not saved, but you can keep browsing."

// LeadService captures leads, clicks and reviews into the hosted
// store. A nil store means the integration is unconfigured; every
// capture then reports unsaved with a warning.
type LeadService struct {
	store    ports.LeadStore
	composer *EmailComposer
	logger   *internal.Logger
}

// NewLeadService creates a lead service. store may be nil when the
// integration is disabled.
func NewLeadService(store ports.LeadStore, composer *EmailComposer) *LeadService {
	return &LeadService{
		store:    store,
		composer: composer,
		logger:   internal.DefaultLogger,
	}
}

// CaptureLead stores a new lead with its follow-up email draft. The
// draft is generated before the store call so a store outage never
// loses it: the returned lead carries it either way.
func (s *LeadService) CaptureLead(ctx context.Context, lead crm.Lead, rec network.Recommendation) (crm.Lead, SyncResult) {
	lead.RecommendedNetwork = rec.Network.String()
	lead.Status = crm.StatusNew
	lead.EmailDraft = s.composer.Compose(lead.Name, rec)
	lead.CreatedAt = core.Now()

	if s.store == nil {
		return lead, s.disabled("lead capture")
	}

	id, err := s.store.CreateLead(ctx, lead)
	if err != nil {
		s.logger.Warn("[LeadService] lead capture failed for %s: %v", lead.Email, err)
		return lead, SyncResult{Warning: storeWarning}
	}
	lead.ID = id
	return lead, SyncResult{Saved: true, RecordID: id}
}

// TrackClick records an affiliate click-through
func (s *LeadService) TrackClick(ctx context.Context, net network.Network, action string, session core.SessionID) SyncResult {
	if s.store == nil {
		return s.disabled("click tracking")
	}

	id, err := s.store.TrackClick(ctx, crm.Click{
		Network:   net.String(),
		Action:    action,
		SessionID: session,
	})
	if err != nil {
		s.logger.Warn("[LeadService] click tracking failed for %s/%s: %v", net, action, err)
		return SyncResult{Warning: storeWarning}
	}
	return SyncResult{Saved: true, RecordID: id}
}

// SubmitReview stores a user review, unverified until moderated
func (s *LeadService) SubmitReview(ctx context.Context, review crm.Review) SyncResult {
	review.Verified = false

	if s.store == nil {
		return s.disabled("review submission")
	}

	id, err := s.store.AddReview(ctx, review)
	if err != nil {
		s.logger.Warn("[LeadService] review submission failed for %s: %v", review.Network, err)
		return SyncResult{Warning: storeWarning}
	}
	return SyncResult{Saved: true, RecordID: id}
}

// PendingLeads lists leads awaiting a follow-up email
func (s *LeadService) PendingLeads(ctx context.Context) ([]crm.Lead, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.PendingLeads(ctx)
}

// MarkLeadStatus moves a lead through the follow-up pipeline
func (s *LeadService) MarkLeadStatus(ctx context.Context, id core.RecordID, status crm.LeadStatus) SyncResult {
	if s.store == nil {
		return s.disabled("lead update")
	}

	if err := s.store.UpdateLeadStatus(ctx, id, status); err != nil {
		s.logger.Warn("[LeadService] status update failed for %s: %v", id, err)
		return SyncResult{Warning: storeWarning}
	}
	return SyncResult{Saved: true, RecordID: id}
}

func (s *LeadService) disabled(op string) SyncResult {
	s.logger.Debug("[LeadService] %s skipped: store not configured", op)
	return SyncResult{Warning: "Records service is not configured - nothing was saved."}
}
