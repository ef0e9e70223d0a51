package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// Venue is where trainings of one address type take place.
type Venue struct {
	Type AddressType
	// Location is the short one-line address.
	Location string
	// Full is the multi-line address card.
	Full string
	// CardLabel names the training format in user-facing cards.
	CardLabel string
	// OperatorLabel names the training format in operator summaries.
	OperatorLabel string
}

// Resolver maps address types to venue details.
type Resolver struct {
	venues map[AddressType]Venue
	city   string
}

func newResolver(venues []Venue, city string) (Resolver, error) {
	r := Resolver{venues: make(map[AddressType]Venue, len(venues)), city: strings.TrimSpace(city)}
	var errs []error
	for _, v := range venues {
		if v.Type == "" || strings.TrimSpace(v.Location) == "" {
			errs = append(errs, fmt.Errorf("venue %q: type and location are required", v.Type))
			continue
		}
		if _, dup := r.venues[v.Type]; dup {
			errs = append(errs, fmt.Errorf("venue %s: duplicate", v.Type))
			continue
		}
		if v.CardLabel == "" || v.OperatorLabel == "" {
			errs = append(errs, fmt.Errorf("venue %s: labels are required", v.Type))
		}
		r.venues[v.Type] = v
	}
	return r, errors.Join(errs...)
}

// Has reports whether the address type resolves.
func (r Resolver) Has(t AddressType) bool {
	_, ok := r.venues[t]
	return ok
}

// Venue returns the venue for t.
func (r Resolver) Venue(t AddressType) (Venue, bool) {
	v, ok := r.venues[t]
	return v, ok
}

// Location returns the short address for t, or "" when unknown.
func (r Resolver) Location(t AddressType) string {
	return r.venues[t].Location
}

// GeoURL returns a map search link for the venue of t.
func (r Resolver) GeoURL(t AddressType) string {
	loc := r.Location(t)
	if loc == "" {
		return ""
	}
	return MapsURL(loc, r.city)
}

// CardLabel returns the user-facing training format of t.
func (r Resolver) CardLabel(t AddressType) string {
	return r.venues[t].CardLabel
}

// OperatorLabel returns the operator-facing training format of t.
func (r Resolver) OperatorLabel(t AddressType) string {
	return r.venues[t].OperatorLabel
}

// FullAddress returns the multi-line address card of t.
func (r Resolver) FullAddress(t AddressType) string {
	v := r.venues[t]
	if v.Full != "" {
		return v.Full
	}
	return v.Location
}

// MapsURL builds a map search link for "<place>, <city>".
func MapsURL(place, city string) string {
	query := place
	if city != "" {
		query += ", " + city
	}
	return mapsSearchURL + url.QueryEscape(query)
}
