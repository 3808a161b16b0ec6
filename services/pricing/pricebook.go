package pricing

// Version identifies the price list served to clients and stamped on quotes.
const Version = "2025.1"

// RateTable maps a service label to its price for one tier.
type RateTable map[string]float64

// DistanceBand is one Outside GTA travel band.
type DistanceBand struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// TravelTable holds one tier's travel fees. Bands are ordered nearest first;
// the first band is the fallback for a missing or unknown sub-region.
type TravelTable struct {
	Metro   float64        `json:"metro"`
	Bands   []DistanceBand `json:"bands"`
	Default *float64       `json:"default,omitempty"`
}

// PriceBook is the single source of truth for every price the engine uses.
// It is never mutated after construction.
type PriceBook struct {
	Version           string                             `json:"version"`
	BrideServices     map[ArtistTier]RateTable           `json:"bride_services"`
	SemiBrideServices map[ArtistTier]RateTable           `json:"semi_bride_services"`
	TrialServices     map[ArtistTier]RateTable           `json:"trial_services"`
	NonBridal         map[ArtistTier]RateTable           `json:"non_bridal_services"`
	PartyServices     map[PartyKind]float64              `json:"party_services"`
	AddOns            map[AddOnContext]map[AddOn]float64 `json:"add_ons"`
	TravelFees        map[ArtistTier]TravelTable         `json:"travel_fees"`
	DefaultTravelFee  float64                            `json:"default_travel_fee"`
}

func amount(v float64) *float64 { return &v }

// DefaultPriceBook is the price list in force.
var DefaultPriceBook = &PriceBook{
	Version: Version,
	BrideServices: map[ArtistTier]RateTable{
		TierLead: {LabelBoth: 450, LabelHairOnly: 200, LabelMakeupOnly: 275},
		TierTeam: {LabelBoth: 360, LabelHairOnly: 160, LabelMakeupOnly: 220},
	},
	SemiBrideServices: map[ArtistTier]RateTable{
		TierLead: {LabelBoth: 400, LabelHairOnly: 180, LabelMakeupOnly: 250},
		TierTeam: {LabelBoth: 300, LabelHairOnly: 140, LabelMakeupOnly: 190},
	},
	TrialServices: map[ArtistTier]RateTable{
		TierLead: {LabelBoth: 250, LabelHairOnly: 120, LabelMakeupOnly: 150},
		TierTeam: {LabelBoth: 200, LabelHairOnly: 100, LabelMakeupOnly: 120},
	},
	NonBridal: map[ArtistTier]RateTable{
		TierLead: {LabelBoth: 250, LabelMakeupOnly: 150, LabelHairOnly: 130},
		TierTeam: {LabelBoth: 200, LabelMakeupOnly: 120, LabelHairOnly: 100},
	},
	PartyServices: map[PartyKind]float64{
		PartyBoth:       200,
		PartyMakeupOnly: 120,
		PartyHairOnly:   100,
	},
	AddOns: map[AddOnContext]map[AddOn]float64{
		ContextBridal: {
			AddOnJewelry:      50,
			AddOnExtensions:   30,
			AddOnSareeDraping: 50,
			AddOnHijabSetting: 30,
		},
		ContextParty: {
			AddOnDupatta:      20,
			AddOnExtensions:   20,
			AddOnSareeDraping: 35,
			AddOnHijabSetting: 15,
			AddOnAirbrush:     50,
		},
		ContextNonBridal: {
			AddOnJewelry:      20,
			AddOnExtensions:   20,
			AddOnAirbrush:     50,
			AddOnSareeDraping: 35,
			AddOnHijabSetting: 15,
		},
	},
	TravelFees: map[ArtistTier]TravelTable{
		TierLead: {
			Metro: 50,
			Bands: []DistanceBand{
				{Label: BandImmediate, Amount: 80},
				{Label: BandModerate, Amount: 120},
				{Label: BandFurther, Amount: 180},
			},
			Default: amount(80),
		},
		TierTeam: {
			Metro: 25,
			Bands: []DistanceBand{
				{Label: BandImmediate, Amount: 40},
				{Label: BandModerate, Amount: 80},
				{Label: BandFurther, Amount: 120},
			},
			Default: amount(40),
		},
	},
	DefaultTravelFee: 40,
}

func lookup(tables map[ArtistTier]RateTable, tier ArtistTier, label string) (float64, bool) {
	if label == "" {
		return 0, false
	}
	rate, ok := tables[tier][label]
	return rate, ok
}

// BridalBaseRate returns the bride-service price. The bool is false when the
// label is empty or not priced for the tier; the rate is then 0.
func (b *PriceBook) BridalBaseRate(tier ArtistTier, label string) (float64, bool) {
	return lookup(b.BrideServices, tier, label)
}

// SemiBridalBaseRate returns the semi-bridal service price.
func (b *PriceBook) SemiBridalBaseRate(tier ArtistTier, label string) (float64, bool) {
	return lookup(b.SemiBrideServices, tier, label)
}

// TrialRate returns the trial-session price.
func (b *PriceBook) TrialRate(tier ArtistTier, label string) (float64, bool) {
	return lookup(b.TrialServices, tier, label)
}

// NonBridalIndividualRate returns the per-person non-bridal price.
func (b *PriceBook) NonBridalIndividualRate(tier ArtistTier, label string) (float64, bool) {
	return lookup(b.NonBridal, tier, label)
}

// PartyUnitRate is the flat per-person party-member price, the same for both tiers.
func (b *PriceBook) PartyUnitRate(kind PartyKind) float64 {
	return b.PartyServices[kind]
}

// AddOnRate returns the unit price of an add-on in the given context.
func (b *PriceBook) AddOnRate(ctx AddOnContext, addOn AddOn) float64 {
	return b.AddOns[ctx][addOn]
}

// TravelFee resolves the travel surcharge and the label it is billed under.
//
// Toronto/GTA bills the tier's metro rate. Outside GTA bills the matching
// distance band, or the nearest band when subRegion is empty or unknown. Any
// other region bills the tier's default, then the book-wide default. A tier
// without its own table uses Team's.
func (b *PriceBook) TravelFee(tier ArtistTier, region, subRegion string) (float64, string) {
	table, ok := b.TravelFees[tier]
	if !ok {
		table, ok = b.TravelFees[TierTeam]
	}
	if !ok {
		return b.DefaultTravelFee, region
	}

	switch region {
	case RegionGTA:
		return table.Metro, RegionGTA
	case RegionOutsideGTA:
		for _, band := range table.Bands {
			if band.Label == subRegion {
				return band.Amount, band.Label
			}
		}
		if len(table.Bands) > 0 {
			return table.Bands[0].Amount, table.Bands[0].Label
		}
	}

	if table.Default != nil {
		return *table.Default, region
	}
	return b.DefaultTravelFee, region
}
