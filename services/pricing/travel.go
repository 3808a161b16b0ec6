package pricing

// TravelFee is the resolved surcharge for a booking. Applies is false for
// studio bookings, where no travel line is added.
type TravelFee struct {
	Amount  float64
	Label   string
	Applies bool
}

// ResolveTravelFee decides the travel surcharge for a booking.
func ResolveTravelFee(book *PriceBook, tier ArtistTier, mode ServiceMode, region, subRegion string) TravelFee {
	if mode == ModeStudio {
		return TravelFee{}
	}
	amount, label := book.TravelFee(tier, region, subRegion)
	return TravelFee{Amount: amount, Label: label, Applies: true}
}

// Description is the quote line for the fee.
func (t TravelFee) Description() string {
	if t.Label == "" {
		return "Travel Fee: " + Money(t.Amount)
	}
	return "Travel Fee (" + t.Label + "): " + Money(t.Amount)
}
