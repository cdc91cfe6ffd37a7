package shipping

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
)

// Configuration row names recognized by PricingTableFromSettings. Values are
// stored as strings in the configuracoes table; prices are in reais.
const (
	SettingFreeShipping      = "frete_gratis_valor"
	SettingExpressMultiplier = "frete_expresso_multiplicador"
	settingBasePrefix        = "frete_base_"
	settingPerKgPrefix       = "frete_kg_"
)

const (
	defaultFreeShippingCents = 19900
	defaultExpressMultiplier = 1.8

	// Weight already covered by the base price; only the excess is billed.
	includedWeightKg = 0.5
)

type zoneRate struct {
	baseCents  int64
	perKgCents int64
	lead       entities.LeadTime
}

var defaultStandardRates = map[entities.Zone]zoneRate{
	entities.ZoneMetro:     {baseCents: 1250, perKgCents: 250, lead: entities.LeadTime{MinDays: 2, MaxDays: 3}},
	entities.ZoneSoutheast: {baseCents: 1650, perKgCents: 320, lead: entities.LeadTime{MinDays: 3, MaxDays: 5}},
	entities.ZoneSouth:     {baseCents: 1950, perKgCents: 380, lead: entities.LeadTime{MinDays: 4, MaxDays: 6}},
	entities.ZoneNortheast: {baseCents: 2450, perKgCents: 450, lead: entities.LeadTime{MinDays: 6, MaxDays: 9}},
	entities.ZoneDistant:   {baseCents: 2950, perKgCents: 520, lead: entities.LeadTime{MinDays: 8, MaxDays: 12}},
}

var defaultExpressLeads = map[entities.Zone]entities.LeadTime{
	entities.ZoneMetro:     {MinDays: 1, MaxDays: 2},
	entities.ZoneSoutheast: {MinDays: 2, MaxDays: 3},
	entities.ZoneSouth:     {MinDays: 2, MaxDays: 4},
	entities.ZoneNortheast: {MinDays: 3, MaxDays: 5},
	entities.ZoneDistant:   {MinDays: 4, MaxDays: 7},
}

// PricingTable holds the zone/tier rate configuration used for fallback
// pricing and lead times. Defaults are compiled in; persisted settings rows
// override individual values.
type PricingTable struct {
	standard          map[entities.Zone]zoneRate
	expressLeads      map[entities.Zone]entities.LeadTime
	expressMultiplier float64
	freeShippingCents int64
}

func DefaultPricingTable() *PricingTable {
	return PricingTableFromSettings(nil)
}

// PricingTableFromSettings builds a table from defaults plus name/value
// overrides. Unparseable values keep the default; the table is always usable.
func PricingTableFromSettings(settings map[string]string) *PricingTable {
	t := &PricingTable{
		standard:          make(map[entities.Zone]zoneRate, len(defaultStandardRates)),
		expressLeads:      make(map[entities.Zone]entities.LeadTime, len(defaultExpressLeads)),
		expressMultiplier: defaultExpressMultiplier,
		freeShippingCents: defaultFreeShippingCents,
	}
	for zone, rate := range defaultStandardRates {
		t.standard[zone] = rate
	}
	for zone, lead := range defaultExpressLeads {
		t.expressLeads[zone] = lead
	}

	if cents, ok := parseReaisCents(settings[SettingFreeShipping]); ok {
		t.freeShippingCents = cents
	}
	if mult, err := strconv.ParseFloat(settings[SettingExpressMultiplier], 64); err == nil && mult > 1 {
		t.expressMultiplier = mult
	}
	for zone, rate := range t.standard {
		if cents, ok := parseReaisCents(settings[settingBasePrefix+string(zone)]); ok && cents > 0 {
			rate.baseCents = cents
		}
		if cents, ok := parseReaisCents(settings[settingPerKgPrefix+string(zone)]); ok && cents >= 0 {
			rate.perKgCents = cents
		}
		t.standard[zone] = rate
	}

	return t
}

func (t *PricingTable) FreeShippingThresholdCents() int64 {
	return t.freeShippingCents
}

// FallbackPrice is the locally computed price used when the carrier is
// unavailable: base plus the per-kg increment over the included half kilo,
// with the express tier priced as a multiple of the standard result.
func (t *PricingTable) FallbackPrice(zone entities.Zone, tier entities.ServiceTier, weightKg float64) int64 {
	rate := t.standard[zone]
	billable := weightKg - includedWeightKg
	if billable < 0 {
		billable = 0
	}
	cents := rate.baseCents + int64(math.Round(billable*float64(rate.perKgCents)))
	if tier == entities.TierExpress {
		cents = int64(math.Round(float64(cents) * t.expressMultiplier))
	}
	return cents
}

// Lead returns the static delivery window for a zone and tier.
func (t *PricingTable) Lead(zone entities.Zone, tier entities.ServiceTier) entities.LeadTime {
	if tier == entities.TierExpress {
		return t.expressLeads[zone]
	}
	return t.standard[zone].lead
}

// Validate checks the zone ordering invariant: base price and lead-time lower
// bound must not decrease along the declared zone order.
func (t *PricingTable) Validate() error {
	zones := entities.ZoneOrder()
	for i := 1; i < len(zones); i++ {
		prev, cur := t.standard[zones[i-1]], t.standard[zones[i]]
		if cur.baseCents < prev.baseCents {
			return fmt.Errorf("zone %s base price is lower than zone %s", zones[i], zones[i-1])
		}
		if cur.lead.MinDays < prev.lead.MinDays {
			return fmt.Errorf("zone %s lead time is shorter than zone %s", zones[i], zones[i-1])
		}
	}
	return nil
}

// parseReaisCents converts a decimal reais string ("199.90") to cents.
func parseReaisCents(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}
