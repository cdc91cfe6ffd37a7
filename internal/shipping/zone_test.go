package shipping_test

import (
	"testing"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
	"github.com/gmarcondes/papelaria-fulfillment/internal/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveZone(t *testing.T) {
	testCases := []struct {
		name    string
		cep     string
		want    entities.Zone
		wantErr error
	}{
		{name: "sp capital lower bound", cep: "01000000", want: entities.ZoneMetro},
		{name: "sp metro upper bound", cep: "09999999", want: entities.ZoneMetro},
		{name: "formatted cep", cep: "04538-133", want: entities.ZoneMetro},
		{name: "southeast lower bound", cep: "10000000", want: entities.ZoneSoutheast},
		{name: "rio de janeiro", cep: "20040-020", want: entities.ZoneSoutheast},
		{name: "southeast upper bound", cep: "39999999", want: entities.ZoneSoutheast},
		{name: "salvador", cep: "40020-000", want: entities.ZoneNortheast},
		{name: "northeast upper bound", cep: "65999999", want: entities.ZoneNortheast},
		{name: "manaus falls outside all bands", cep: "69005-000", want: entities.ZoneDistant},
		{name: "brasilia falls outside all bands", cep: "70040-010", want: entities.ZoneDistant},
		{name: "curitiba", cep: "80010-000", want: entities.ZoneSouth},
		{name: "south upper bound", cep: "99999999", want: entities.ZoneSouth},
		{name: "unallocated low range", cep: "00999999", want: entities.ZoneDistant},
		{name: "too short", cep: "0100000", wantErr: entities.ErrInvalidPostalCode},
		{name: "too long", cep: "010000001", wantErr: entities.ErrInvalidPostalCode},
		{name: "letters only", cep: "abcdefgh", wantErr: entities.ErrInvalidPostalCode},
		{name: "empty", cep: "", wantErr: entities.ErrInvalidPostalCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := shipping.ResolveZone(tc.cep)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveZone_Deterministic(t *testing.T) {
	first, err := shipping.ResolveZone("04538133")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := shipping.ResolveZone("04538-133")
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestNormalizeCEP(t *testing.T) {
	got, err := shipping.NormalizeCEP("04538-133")
	require.NoError(t, err)
	assert.Equal(t, "04538133", got)

	_, err = shipping.NormalizeCEP("4538-133")
	assert.ErrorIs(t, err, entities.ErrInvalidPostalCode)
}
