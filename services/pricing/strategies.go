package pricing

import (
	"fmt"

	"glambook/models"
)

// chargeContext is the state one strategy run works on. Only acc and
// warnings change during a run.
type chargeContext struct {
	sel      *models.BookingSelection
	tier     ArtistTier
	book     *PriceBook
	acc      *Accumulator
	warnings []string
}

func (c *chargeContext) warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// chargeRule adds zero or more lines for one part of a booking.
type chargeRule func(c *chargeContext)

// strategies lists, per service type, the rules applied in order.
var strategies = map[ServiceType][]chargeRule{
	ServiceBridal: {
		bridalBaseRule,
		trialRule,
		bridalAddOnsRule,
		partyMembersRule,
		travelRule,
	},
	ServiceSemiBridal: {
		semiBridalBaseRule,
		bridalAddOnsRule,
		partyMembersRule,
		travelRule,
	},
	ServiceNonBridal: {
		nonBridalServicesRule,
		nonBridalAddOnsRule,
		travelRule,
	},
}

// addBase charges a selected base service. An empty label is "not selected"
// and adds nothing; a label missing from the table adds nothing and warns.
func addBase(c *chargeContext, rate func(ArtistTier, string) (float64, bool), field, prefix, label string) {
	if label == "" {
		return
	}
	amount, ok := rate(c.tier, label)
	if !ok {
		c.warn("unknown %s %q priced at 0", field, label)
		return
	}
	c.acc.Add(amount, fmt.Sprintf("%s - %s: %s", prefix, label, Money(amount)))
}

func bridalBaseRule(c *chargeContext) {
	label := NormalizeServiceLabel(c.sel.BrideService)
	addBase(c, c.book.BridalBaseRate, "bride_service", "Bridal Service", label)
}

func semiBridalBaseRule(c *chargeContext) {
	label := NormalizeServiceLabel(c.sel.BrideService)
	addBase(c, c.book.SemiBridalBaseRate, "bride_service", "Semi-Bridal Service", label)
}

func trialRule(c *chargeContext) {
	if c.sel.NeedsTrial != yes {
		return
	}
	label := NormalizeServiceLabel(c.sel.TrialService)
	addBase(c, c.book.TrialRate, "trial_service", "Bridal Trial", label)
}

var bridalAddOnNames = map[AddOn]string{
	AddOnJewelry:      "Jewelry Setting",
	AddOnExtensions:   "Hair Extensions Installation",
	AddOnSareeDraping: "Saree Draping",
	AddOnHijabSetting: "Hijab Setting",
}

// bridalAddOnsRule charges each requested bride add-on once, at the flat rate.
func bridalAddOnsRule(c *chargeContext) {
	flags := []struct {
		addOn AddOn
		value string
	}{
		{AddOnJewelry, c.sel.NeedsJewelry},
		{AddOnExtensions, c.sel.NeedsExtensions},
		{AddOnSareeDraping, c.sel.NeedsSareeDraping},
		{AddOnHijabSetting, c.sel.NeedsHijabSetting},
	}
	for _, f := range flags {
		if f.value != yes {
			continue
		}
		amount := c.book.AddOnRate(ContextBridal, f.addOn)
		c.acc.Add(amount, fmt.Sprintf("%s: %s", bridalAddOnNames[f.addOn], Money(amount)))
	}
}

type countedCharge struct {
	name  string
	count int
	rate  float64
}

// addCounted charges count × rate as one line. Zero counts add no line.
func addCounted(c *chargeContext, charges []countedCharge) {
	for _, ch := range charges {
		if ch.count <= 0 {
			continue
		}
		amount := float64(ch.count) * ch.rate
		c.acc.Add(amount, fmt.Sprintf("%s (%d x %s): %s", ch.name, ch.count, Money(ch.rate), Money(amount)))
	}
}

// partyMembersRule prices the bride's party. Shared by Bridal and
// Semi-Bridal. Party rates do not depend on the artist tier.
func partyMembersRule(c *chargeContext) {
	if c.sel.HasPartyMembers != yes {
		return
	}
	s := c.sel
	b := c.book

	members := s.PartyBothCount.Int() + s.PartyMakeupCount.Int() + s.PartyHairCount.Int()
	addCounted(c, []countedCharge{
		{"Party Members - " + LabelBoth, s.PartyBothCount.Int(), b.PartyUnitRate(PartyBoth)},
		{"Party Members - " + LabelMakeupOnly, s.PartyMakeupCount.Int(), b.PartyUnitRate(PartyMakeupOnly)},
		{"Party Members - " + LabelHairOnly, s.PartyHairCount.Int(), b.PartyUnitRate(PartyHairOnly)},
	})

	addOns := []countedCharge{
		{"Party Dupatta Setting", s.PartyDupattaCount.Int(), b.AddOnRate(ContextParty, AddOnDupatta)},
		{"Party Hair Extensions", s.PartyExtensionsCount.Int(), b.AddOnRate(ContextParty, AddOnExtensions)},
		{"Party Saree Draping", s.PartySareeDrapingCount.Int(), b.AddOnRate(ContextParty, AddOnSareeDraping)},
		{"Party Hijab Setting", s.PartyHijabSettingCount.Int(), b.AddOnRate(ContextParty, AddOnHijabSetting)},
		{"Airbrush Makeup", s.AirbrushCount.Int(), b.AddOnRate(ContextParty, AddOnAirbrush)},
	}
	for _, a := range addOns {
		// priced at face value; the wizard caps these at the party size
		if a.count > members {
			c.warn("%s count %d exceeds party size %d", a.name, a.count, members)
		}
	}
	addCounted(c, addOns)
}

// nonBridalBothCount prefers the explicit count and falls back to the group
// size when everyone wants both services.
func nonBridalBothCount(s *models.BookingSelection) int {
	both := s.NonBridalBothCount.Int()
	if both == 0 && s.NonBridalEveryoneBoth == yes {
		both = s.NonBridalCount.Int()
	}
	return both
}

func nonBridalServicesRule(c *chargeContext) {
	s := c.sel
	rate := func(label string) float64 {
		r, ok := c.book.NonBridalIndividualRate(c.tier, label)
		if !ok {
			c.warn("no non-bridal rate for %q", label)
		}
		return r
	}
	addCounted(c, []countedCharge{
		{"Non-Bridal - " + LabelBoth, nonBridalBothCount(s), rate(LabelBoth)},
		{"Non-Bridal - " + LabelMakeupOnly, s.NonBridalMakeupCount.Int(), rate(LabelMakeupOnly)},
		{"Non-Bridal - " + LabelHairOnly, s.NonBridalHairCount.Int(), rate(LabelHairOnly)},
	})
}

func nonBridalAddOnsRule(c *chargeContext) {
	s := c.sel
	b := c.book
	addCounted(c, []countedCharge{
		{"Jewelry Setting", s.NonBridalJewelryCount.Int(), b.AddOnRate(ContextNonBridal, AddOnJewelry)},
		{"Hair Extensions", s.NonBridalExtensionsCount.Int(), b.AddOnRate(ContextNonBridal, AddOnExtensions)},
		{"Airbrush Makeup", s.NonBridalAirbrushCount.Int(), b.AddOnRate(ContextNonBridal, AddOnAirbrush)},
		{"Saree Draping", s.NonBridalSareeDrapingCount.Int(), b.AddOnRate(ContextNonBridal, AddOnSareeDraping)},
		{"Hijab Setting", s.NonBridalHijabSettingCount.Int(), b.AddOnRate(ContextNonBridal, AddOnHijabSetting)},
	})
}

func travelRule(c *chargeContext) {
	fee := ResolveTravelFee(c.book, c.tier, ServiceMode(c.sel.ServiceMode), c.sel.Region, c.sel.SubRegion)
	if !fee.Applies {
		return
	}
	c.acc.Add(fee.Amount, fee.Description())
}
