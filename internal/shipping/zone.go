package shipping

import (
	"strings"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
)

// zoneBands maps CEP prefix ranges to delivery zones, checked in order. The
// bands follow the official regional CEP allocation: SP capital and metro
// region first, then the rest of the Southeast, Northeast, North/Center-West
// and South. Codes below 01000-000 are unallocated and land in the last band.
var zoneBands = []struct {
	lo, hi int
	zone   entities.Zone
}{
	{1_000_000, 9_999_999, entities.ZoneMetro},
	{10_000_000, 39_999_999, entities.ZoneSoutheast},
	{40_000_000, 65_999_999, entities.ZoneNortheast},
	{80_000_000, 99_999_999, entities.ZoneSouth},
}

// ResolveZone maps a destination CEP to its delivery zone. Formatting
// characters are ignored; anything other than exactly 8 digits fails with
// entities.ErrInvalidPostalCode. The mapping is total and deterministic.
func ResolveZone(cep string) (entities.Zone, error) {
	digits, err := NormalizeCEP(cep)
	if err != nil {
		return "", err
	}

	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}

	for _, band := range zoneBands {
		if n >= band.lo && n <= band.hi {
			return band.zone, nil
		}
	}
	return entities.ZoneDistant, nil
}

// NormalizeCEP strips non-digit characters and validates the 8-digit shape.
func NormalizeCEP(cep string) (string, error) {
	var b strings.Builder
	b.Grow(8)
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() != 8 {
		return "", entities.ErrInvalidPostalCode
	}
	return b.String(), nil
}
