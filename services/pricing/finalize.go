package pricing

import (
	"fmt"

	"glambook/models"
)

// HSTRate is the Ontario harmonized sales tax applied to every subtotal.
const HSTRate = 0.13

const (
	bridalDepositPct    = 0.30
	nonBridalDepositPct = 0.50
)

// Quote is the priced result for one artist tier. Amounts keep full
// precision; rounding happens in Wire and when charging.
type Quote struct {
	ServiceType      ServiceType `json:"service_type"`
	Tier             ArtistTier  `json:"tier"`
	Subtotal         float64     `json:"subtotal"`
	Tax              float64     `json:"tax"`
	Total            float64     `json:"total"`
	Deposit          float64     `json:"deposit"`
	DepositPct       float64     `json:"deposit_pct"`
	Lines            []LineItem  `json:"lines"`
	Services         []string    `json:"services"`
	Warnings         []string    `json:"warnings,omitempty"`
	PriceBookVersion string      `json:"price_book_version"`
}

// DepositPercentage is the upfront fraction for a service type.
func DepositPercentage(st ServiceType) float64 {
	if st == ServiceNonBridal {
		return nonBridalDepositPct
	}
	return bridalDepositPct
}

// Finalize applies HST and the deposit to a strategy's output and appends
// the Subtotal, HST, Total and Deposit summary lines, in that order.
func Finalize(subtotal float64, lines []LineItem, st ServiceType) *Quote {
	tax := subtotal * HSTRate
	total := subtotal + tax
	pct := DepositPercentage(st)
	deposit := total * pct

	services := make([]string, 0, len(lines)+4)
	for _, l := range lines {
		services = append(services, l.Description)
	}
	services = append(services,
		"Subtotal: "+Money(subtotal),
		fmt.Sprintf("HST (%.0f%%): %s", HSTRate*100, Money(tax)),
		"Total: "+Money(total),
		fmt.Sprintf("Deposit (%.0f%%): %s", pct*100, Money(deposit)),
	)

	return &Quote{
		ServiceType: st,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       total,
		Deposit:     deposit,
		DepositPct:  pct,
		Lines:       lines,
		Services:    services,
	}
}

// Balance is what remains after the deposit.
func (q *Quote) Balance() float64 {
	return q.Total - q.Deposit
}

// Wire renders the single-tier response shape, rounded to cents.
func (q *Quote) Wire() models.QuoteResponse {
	return models.QuoteResponse{
		Subtotal: Round2(q.Subtotal),
		HST:      Round2(q.Tax),
		Total:    Round2(q.Total),
		Deposit:  Round2(q.Deposit),
		Services: q.Services,
	}
}
