package pricing

import "strings"

// ArtistTier selects which price-book column applies.
type ArtistTier string

const (
	TierLead ArtistTier = "Lead"
	TierTeam ArtistTier = "Team"
)

// Tiers lists every tier in the order quotes are presented.
var Tiers = []ArtistTier{TierLead, TierTeam}

// ParseArtistTier maps the wire "artist" selector to a tier. Anything other
// than "Lead" or "Team" yields Team.
func ParseArtistTier(s string) ArtistTier {
	switch ArtistTier(strings.TrimSpace(s)) {
	case TierLead:
		return TierLead
	default:
		return TierTeam
	}
}

// ServiceType is the closed set of booking categories.
type ServiceType string

const (
	ServiceBridal     ServiceType = "Bridal"
	ServiceSemiBridal ServiceType = "Semi-Bridal"
	ServiceNonBridal  ServiceType = "Non-Bridal"
)

// ParseServiceType matches s exactly against the known service types.
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case ServiceBridal, ServiceSemiBridal, ServiceNonBridal:
		return ServiceType(s), nil
	default:
		return "", newInvalidServiceType(s)
	}
}

// ServiceMode decides whether the artist travels to the client.
type ServiceMode string

const (
	ModeStudio ServiceMode = "Studio Service"
	ModeMobile ServiceMode = "Mobile Makeup Artist"
)

// Region labels used by the travel fee table.
const (
	RegionGTA        = "Toronto/GTA"
	RegionOutsideGTA = "Outside GTA"
)

// Distance bands for the Outside GTA region.
const (
	BandImmediate = "Immediate Neighbors (15-30 Minutes)"
	BandModerate  = "Moderate Distance (30 Minutes to 1 Hour Drive)"
	BandFurther   = "Further Distance (1+ Hour Drive)"
)

// Service labels shared by the bride, semi-bride, trial and non-bridal tables.
const (
	LabelBoth       = "Both Hair & Makeup"
	LabelHairOnly   = "Hair Only"
	LabelMakeupOnly = "Makeup Only"

	// legacy value still sent by older wizard builds
	labelBridalAlias = "bridal"
)

// NormalizeServiceLabel rewrites legacy aliases to their canonical label.
func NormalizeServiceLabel(label string) string {
	if strings.EqualFold(strings.TrimSpace(label), labelBridalAlias) {
		return LabelBoth
	}
	return label
}

// PartyKind identifies a per-person party-member service.
type PartyKind string

const (
	PartyBoth       PartyKind = "both"
	PartyMakeupOnly PartyKind = "makeup_only"
	PartyHairOnly   PartyKind = "hair_only"
)

// AddOnContext selects which add-on table applies.
type AddOnContext string

const (
	ContextBridal    AddOnContext = "bridal"
	ContextParty     AddOnContext = "party"
	ContextNonBridal AddOnContext = "non_bridal"
)

// AddOn identifies an optional extra service.
type AddOn string

const (
	AddOnJewelry      AddOn = "jewelry"
	AddOnExtensions   AddOn = "extensions"
	AddOnSareeDraping AddOn = "saree_draping"
	AddOnHijabSetting AddOn = "hijab_setting"
	AddOnAirbrush     AddOn = "airbrush"
	AddOnDupatta      AddOn = "dupatta"
)

const yes = "Yes"
