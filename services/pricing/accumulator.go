package pricing

import (
	"fmt"
	"math"
)

// LineItem is one priced entry of a quote.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Accumulator keeps the running subtotal and the line items that explain it.
// Every charge goes through Add so the two cannot drift apart.
type Accumulator struct {
	subtotal float64
	lines    []LineItem
}

// Add charges amount under description. The description should already
// carry the formatted amount.
func (a *Accumulator) Add(amount float64, description string) {
	a.subtotal += amount
	a.lines = append(a.lines, LineItem{Description: description, Amount: amount})
}

// Finish returns the subtotal and a copy of the accumulated lines.
func (a *Accumulator) Finish() (float64, []LineItem) {
	lines := make([]LineItem, len(a.lines))
	copy(lines, a.lines)
	return a.subtotal, lines
}

// Money formats an amount the way every quote line shows it.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Round2 rounds to cents. Used only at display and payment time.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
