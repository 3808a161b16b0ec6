package models

// QuoteResponse is the single-tier quote on the wire. The tax field is
// named hst for compatibility with existing clients.
type QuoteResponse struct {
	Subtotal float64  `json:"subtotal" bson:"subtotal"`
	HST      float64  `json:"hst" bson:"hst"`
	Total    float64  `json:"total" bson:"total"`
	Deposit  float64  `json:"deposit" bson:"deposit"`
	Services []string `json:"services" bson:"services"`
}

// DualQuoteResponse offers both tiers side by side. The embedded top-level
// fields mirror the Team quote for older clients.
type DualQuoteResponse struct {
	QuoteResponse
	Lead             QuoteResponse `json:"lead"`
	Team             QuoteResponse `json:"team"`
	ServiceType      string        `json:"service_type"`
	PriceBookVersion string        `json:"price_book_version"`
	Warnings         []string      `json:"warnings,omitempty"`
}
