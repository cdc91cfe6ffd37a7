package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

// Zone is the delivery zone a destination CEP resolves to. Zones are listed in
// pricing order: every later zone is at least as expensive and as slow as the
// one before it.
type Zone string

const (
	ZoneMetro     Zone = "metropolitana"
	ZoneSoutheast Zone = "sudeste"
	ZoneSouth     Zone = "sul"
	ZoneNortheast Zone = "nordeste"
	ZoneDistant   Zone = "distante"
)

// ZoneOrder returns zones in ascending pricing order.
func ZoneOrder() []Zone {
	return []Zone{ZoneMetro, ZoneSoutheast, ZoneSouth, ZoneNortheast, ZoneDistant}
}

type ServiceTier string

const (
	TierStandard ServiceTier = "padrao"
	TierExpress  ServiceTier = "expresso"
)

func ServiceTiers() []ServiceTier {
	return []ServiceTier{TierStandard, TierExpress}
}

type BasketItem struct {
	ProductID string
	Quantity  int
}

// ProductDims are the per-unit physical attributes kept in the catalog.
type ProductDims struct {
	WeightKg float64
	LengthCm float64
	HeightCm float64
	WidthCm  float64
}

// Package is the single shippable box derived from a basket. All fields are
// clamped to the carrier minimums, so a Package is always quotable.
type Package struct {
	WeightKg float64
	LengthCm float64
	HeightCm float64
	WidthCm  float64
}

// LeadTime is an inclusive delivery window in business days.
type LeadTime struct {
	MinDays int
	MaxDays int
}

type Quote struct {
	Tier       ServiceTier
	PriceCents int64
	Lead       LeadTime
}

// QuoteResult is the engine's answer for a valid destination. Quotes always
// holds one entry per configured tier, even when every external call failed.
type QuoteResult struct {
	Zone         Zone
	Package      Package
	Quotes       []Quote
	FreeShipping bool
}

type Address struct {
	CEP          string
	Street       string
	Neighborhood string
	City         string
	State        string
}

type TrackingEvent struct {
	OccurredAt  time.Time
	Location    string
	Description string
}

var (
	ErrInvalidPostalCode = errors.New("postal code must contain exactly 8 digits")
	ErrAddressNotFound   = errors.New("address not found for postal code")
	ErrTrackingNotFound  = errors.New("tracking code not found")

	// Internal-only degradation signals. Both are absorbed before the HTTP
	// boundary: carrier failures fall back to the local pricing formula and
	// catalog failures fall back to default package attributes.
	ErrCarrierUnavailable = errors.New("carrier rate service unavailable")
	ErrCatalogLookup      = errors.New("catalog dimension lookup failed")
)

func (q *QuoteResult) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(q); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (q *QuoteResult) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(q)
}

func init() {
	gob.Register(QuoteResult{})
	gob.Register(Quote{})
	gob.Register(Package{})
}
