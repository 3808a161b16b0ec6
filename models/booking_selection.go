package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Count is a party-member or add-on count entered on the wizard. It decodes
// from a JSON number or string through ParseCount.
type Count int

// ParseCount is the one place form input is coerced to a count. It reads
// the leading integer the way a browser's parseInt does, so "2.5" and
// "1e1" give 2 and 1. No digits or a negative value give 0.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = 0
			return nil
		}
		*c = Count(ParseCount(s))
		return nil
	}
	*c = Count(ParseCount(string(data)))
	return nil
}

// Int returns the count as an int.
func (c Count) Int() int {
	return int(c)
}

// BookingSelection is everything the wizard collected. Field names are the
// wire contract shared with the client.
type BookingSelection struct {
	ServiceType string `json:"service_type" bson:"service_type"`
	ServiceMode string `json:"service_mode" bson:"service_mode"`
	Region      string `json:"region" bson:"region"`
	SubRegion   string `json:"subRegion" bson:"sub_region"`

	BrideService string `json:"bride_service" bson:"bride_service"`
	NeedsTrial   string `json:"needs_trial" bson:"needs_trial"`
	TrialService string `json:"trial_service" bson:"trial_service"`

	NeedsJewelry      string `json:"needs_jewelry" bson:"needs_jewelry"`
	NeedsExtensions   string `json:"needs_extensions" bson:"needs_extensions"`
	NeedsSareeDraping string `json:"needs_saree_draping" bson:"needs_saree_draping"`
	NeedsHijabSetting string `json:"needs_hijab_setting" bson:"needs_hijab_setting"`

	HasPartyMembers        string `json:"has_party_members" bson:"has_party_members"`
	PartyBothCount         Count  `json:"party_both_count" bson:"party_both_count"`
	PartyMakeupCount       Count  `json:"party_makeup_count" bson:"party_makeup_count"`
	PartyHairCount         Count  `json:"party_hair_count" bson:"party_hair_count"`
	PartyDupattaCount      Count  `json:"party_dupatta_count" bson:"party_dupatta_count"`
	PartyExtensionsCount   Count  `json:"party_extensions_count" bson:"party_extensions_count"`
	PartySareeDrapingCount Count  `json:"party_saree_draping_count" bson:"party_saree_draping_count"`
	PartyHijabSettingCount Count  `json:"party_hijab_setting_count" bson:"party_hijab_setting_count"`
	AirbrushCount          Count  `json:"airbrush_count" bson:"airbrush_count"`

	NonBridalCount             Count  `json:"non_bridal_count" bson:"non_bridal_count"`
	NonBridalEveryoneBoth      string `json:"non_bridal_everyone_both" bson:"non_bridal_everyone_both"`
	NonBridalBothCount         Count  `json:"non_bridal_both_count" bson:"non_bridal_both_count"`
	NonBridalMakeupCount       Count  `json:"non_bridal_makeup_count" bson:"non_bridal_makeup_count"`
	NonBridalHairCount         Count  `json:"non_bridal_hair_count" bson:"non_bridal_hair_count"`
	NonBridalJewelryCount      Count  `json:"non_bridal_jewelry_count" bson:"non_bridal_jewelry_count"`
	NonBridalExtensionsCount   Count  `json:"non_bridal_extensions_count" bson:"non_bridal_extensions_count"`
	NonBridalAirbrushCount     Count  `json:"non_bridal_airbrush_count" bson:"non_bridal_airbrush_count"`
	NonBridalSareeDrapingCount Count  `json:"non_bridal_saree_draping_count" bson:"non_bridal_saree_draping_count"`
	NonBridalHijabSettingCount Count  `json:"non_bridal_hijab_setting_count" bson:"non_bridal_hijab_setting_count"`

	// Contact and event details, stored with the booking but never priced.
	FirstName    string `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	EventDate    string `json:"event_date,omitempty" bson:"event_date,omitempty"`
	ReadyTime    string `json:"ready_time,omitempty" bson:"ready_time,omitempty"`
	VenueAddress string `json:"venue_address,omitempty" bson:"venue_address,omitempty"`
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// QuoteRequest is the body of a quote or booking request: the selection
// plus the artist tier the client picked.
type QuoteRequest struct {
	BookingSelection
	Artist string `json:"artist"`
}
