package shipping_test

import (
	"testing"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
	"github.com/gmarcondes/papelaria-fulfillment/internal/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingTable_Defaults(t *testing.T) {
	table := shipping.DefaultPricingTable()

	require.NoError(t, table.Validate())
	assert.Equal(t, int64(19900), table.FreeShippingThresholdCents())
	assert.Equal(t, entities.LeadTime{MinDays: 2, MaxDays: 3}, table.Lead(entities.ZoneMetro, entities.TierStandard))
	assert.Equal(t, entities.LeadTime{MinDays: 1, MaxDays: 2}, table.Lead(entities.ZoneMetro, entities.TierExpress))
	assert.Equal(t, entities.LeadTime{MinDays: 8, MaxDays: 12}, table.Lead(entities.ZoneDistant, entities.TierStandard))
}

func TestPricingTable_FallbackPrice(t *testing.T) {
	table := shipping.DefaultPricingTable()

	testCases := []struct {
		name     string
		zone     entities.Zone
		tier     entities.ServiceTier
		weightKg float64
		want     int64
	}{
		{name: "metro at included weight pays base only", zone: entities.ZoneMetro, tier: entities.TierStandard, weightKg: 0.5, want: 1250},
		{name: "metro below included weight pays base only", zone: entities.ZoneMetro, tier: entities.TierStandard, weightKg: 0.3, want: 1250},
		{name: "metro one kilo", zone: entities.ZoneMetro, tier: entities.TierStandard, weightKg: 1.0, want: 1375},
		{name: "metro express multiplies standard", zone: entities.ZoneMetro, tier: entities.TierExpress, weightKg: 1.0, want: 2475},
		{name: "distant heavy package", zone: entities.ZoneDistant, tier: entities.TierStandard, weightKg: 2.5, want: 3990},
		{name: "northeast fractional weight rounds", zone: entities.ZoneNortheast, tier: entities.TierStandard, weightKg: 0.8, want: 2585},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.FallbackPrice(tc.zone, tc.tier, tc.weightKg))
		})
	}
}

func TestPricingTable_ExpressAlwaysCostsMore(t *testing.T) {
	table := shipping.DefaultPricingTable()
	for _, zone := range entities.ZoneOrder() {
		for _, weight := range []float64{0.3, 0.5, 1.0, 5.0, 30.0} {
			standard := table.FallbackPrice(zone, entities.TierStandard, weight)
			express := table.FallbackPrice(zone, entities.TierExpress, weight)
			assert.Greater(t, express, standard, "zone %s weight %v", zone, weight)
		}
	}
}

func TestPricingTable_ZoneOrderingInvariant(t *testing.T) {
	table := shipping.DefaultPricingTable()
	zones := entities.ZoneOrder()
	for i := 1; i < len(zones); i++ {
		prev := table.FallbackPrice(zones[i-1], entities.TierStandard, 1.0)
		cur := table.FallbackPrice(zones[i], entities.TierStandard, 1.0)
		assert.GreaterOrEqual(t, cur, prev, "zone %s cheaper than %s", zones[i], zones[i-1])

		prevLead := table.Lead(zones[i-1], entities.TierStandard)
		curLead := table.Lead(zones[i], entities.TierStandard)
		assert.GreaterOrEqual(t, curLead.MinDays, prevLead.MinDays)
	}
}

func TestPricingTableFromSettings(t *testing.T) {
	testCases := []struct {
		name     string
		settings map[string]string
		check    func(t *testing.T, table *shipping.PricingTable)
	}{
		{
			name: "free shipping threshold override in reais",
			settings: map[string]string{
				shipping.SettingFreeShipping: "249.90",
			},
			check: func(t *testing.T, table *shipping.PricingTable) {
				assert.Equal(t, int64(24990), table.FreeShippingThresholdCents())
			},
		},
		{
			name: "base and per-kg override for one zone",
			settings: map[string]string{
				"frete_base_metropolitana": "20.00",
				"frete_kg_metropolitana":   "3.00",
			},
			check: func(t *testing.T, table *shipping.PricingTable) {
				assert.Equal(t, int64(2150), table.FallbackPrice(entities.ZoneMetro, entities.TierStandard, 1.0))
				// Other zones keep their defaults.
				assert.Equal(t, int64(1810), table.FallbackPrice(entities.ZoneSoutheast, entities.TierStandard, 1.0))
			},
		},
		{
			name: "express multiplier override",
			settings: map[string]string{
				shipping.SettingExpressMultiplier: "2.0",
			},
			check: func(t *testing.T, table *shipping.PricingTable) {
				standard := table.FallbackPrice(entities.ZoneMetro, entities.TierStandard, 0.5)
				assert.Equal(t, standard*2, table.FallbackPrice(entities.ZoneMetro, entities.TierExpress, 0.5))
			},
		},
		{
			name: "unparseable values keep defaults",
			settings: map[string]string{
				shipping.SettingFreeShipping:      "gratis",
				shipping.SettingExpressMultiplier: "-1",
				"frete_base_metropolitana":        "",
			},
			check: func(t *testing.T, table *shipping.PricingTable) {
				assert.Equal(t, int64(19900), table.FreeShippingThresholdCents())
				assert.Equal(t, int64(1250), table.FallbackPrice(entities.ZoneMetro, entities.TierStandard, 0.5))
				assert.Equal(t, int64(2250), table.FallbackPrice(entities.ZoneMetro, entities.TierExpress, 0.5))
			},
		},
		{
			name: "multiplier at or below one is rejected",
			settings: map[string]string{
				shipping.SettingExpressMultiplier: "1.0",
			},
			check: func(t *testing.T, table *shipping.PricingTable) {
				standard := table.FallbackPrice(entities.ZoneMetro, entities.TierStandard, 0.5)
				assert.Greater(t, table.FallbackPrice(entities.ZoneMetro, entities.TierExpress, 0.5), standard)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := shipping.PricingTableFromSettings(tc.settings)
			require.NoError(t, table.Validate())
			tc.check(t, table)
		})
	}
}
