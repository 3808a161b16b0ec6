package booking

import (
	"context"

	"glambook/models"
	"glambook/services/pricing"

	"golang.org/x/sync/errgroup"
)

// DualQuote holds both tiers' quotes for one selection.
type DualQuote struct {
	Lead *pricing.Quote
	Team *pricing.Quote
}

// For returns the quote for tier.
func (d *DualQuote) For(tier pricing.ArtistTier) *pricing.Quote {
	if tier == pricing.TierLead {
		return d.Lead
	}
	return d.Team
}

// Response composes the wire shape: both tiers plus a Team mirror at the
// top level.
func (d *DualQuote) Response() models.DualQuoteResponse {
	warnings := append([]string{}, d.Lead.Warnings...)
	for _, w := range d.Team.Warnings {
		if !contains(warnings, w) {
			warnings = append(warnings, w)
		}
	}
	if len(warnings) == 0 {
		warnings = nil
	}
	return models.DualQuoteResponse{
		QuoteResponse:    d.Team.Wire(),
		Lead:             d.Lead.Wire(),
		Team:             d.Team.Wire(),
		ServiceType:      string(d.Team.ServiceType),
		PriceBookVersion: d.Team.PriceBookVersion,
		Warnings:         warnings,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Quote prices sel for both artist tiers. The two calculations are
// independent and run concurrently.
func (s *DefaultBookingService) Quote(ctx context.Context, sel models.BookingSelection) (*DualQuote, error) {
	var dq DualQuote
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.Engine.Calculate(sel, pricing.TierLead)
		dq.Lead = q
		return err
	})
	g.Go(func() error {
		q, err := s.Engine.Calculate(sel, pricing.TierTeam)
		dq.Team = q
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dq, nil
}
