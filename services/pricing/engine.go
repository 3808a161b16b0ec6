package pricing

import (
	"glambook/models"

	"go.uber.org/zap"
)

// Engine prices bookings against one price book. It holds no per-call
// state and is safe for concurrent use.
type Engine struct {
	book   *PriceBook
	logger *zap.Logger
}

// NewEngine returns an engine for book. A nil book uses DefaultPriceBook and
// a nil logger discards output.
func NewEngine(book *PriceBook, logger *zap.Logger) *Engine {
	if book == nil {
		book = DefaultPriceBook
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{book: book, logger: logger}
}

// PriceBook returns the book the engine prices against.
func (e *Engine) PriceBook() *PriceBook {
	return e.book
}

// Calculate prices sel for one artist tier. The selection is not modified.
// An unknown service_type returns an error wrapping ErrInvalidServiceType.
func (e *Engine) Calculate(sel models.BookingSelection, tier ArtistTier) (*Quote, error) {
	st, err := ParseServiceType(sel.ServiceType)
	if err != nil {
		return nil, err
	}

	c := &chargeContext{
		sel:  &sel,
		tier: tier,
		book: e.book,
		acc:  &Accumulator{},
	}
	for _, rule := range strategies[st] {
		rule(c)
	}

	subtotal, lines := c.acc.Finish()
	q := Finalize(subtotal, lines, st)
	q.Tier = tier
	q.Warnings = c.warnings
	q.PriceBookVersion = e.book.Version

	for _, w := range c.warnings {
		e.logger.Warn("pricing: suspicious booking input",
			zap.String("service_type", string(st)),
			zap.String("tier", string(tier)),
			zap.String("detail", w),
		)
	}
	return q, nil
}

var defaultEngine = NewEngine(DefaultPriceBook, nil)

// Calculate prices sel with the default price book.
func Calculate(sel models.BookingSelection, tier ArtistTier) (*Quote, error) {
	return defaultEngine.Calculate(sel, tier)
}
