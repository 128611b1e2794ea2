package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderProductsRoundTrip(t *testing.T) {
	items := []OrderProduct{
		{ProductName: "Widget", Quantity: "2"},
		{ProductName: "Gadget", Quantity: "10"},
	}

	encoded, err := EncodeOrderProducts(items)
	require.NoError(t, err)

	decoded := DecodeOrderProducts([]byte(encoded))
	assert.Equal(t, items, decoded)
}

func TestOrderProductsPreservesOrderAndDuplicates(t *testing.T) {
	// The same product on two lines stays on two lines, in order.
	items := []OrderProduct{
		{ProductName: "Widget", Quantity: "2"},
		{ProductName: "Widget", Quantity: "1"},
	}

	encoded, err := EncodeOrderProducts(items)
	require.NoError(t, err)

	decoded := DecodeOrderProducts([]byte(encoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Widget", decoded[0].ProductName)
	assert.Equal(t, StringOrNumber("2"), decoded[0].Quantity)
	assert.Equal(t, "Widget", decoded[1].ProductName)
	assert.Equal(t, StringOrNumber("1"), decoded[1].Quantity)
}

func TestOrderProductsQuantityIsFreeFormText(t *testing.T) {
	items := []OrderProduct{{ProductName: "Widget", Quantity: "a few"}}

	encoded, err := EncodeOrderProducts(items)
	require.NoError(t, err)

	decoded := DecodeOrderProducts([]byte(encoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, StringOrNumber("a few"), decoded[0].Quantity)
}

func TestOrderProductsNumericQuantityTolerated(t *testing.T) {
	// Older clients sent quantities as bare numbers.
	decoded := DecodeOrderProducts([]byte(`[{"productName":"Widget","quantity":3}]`))
	require.Len(t, decoded, 1)
	assert.Equal(t, StringOrNumber("3"), decoded[0].Quantity)
}

func TestOrderProductsMalformedYieldsEmpty(t *testing.T) {
	cases := map[string][]byte{
		"nil":        nil,
		"empty":      []byte(""),
		"garbage":    []byte("not-json"),
		"object":     []byte(`{"productName":"Widget"}`),
		"null":       []byte("null"),
		"bad-member": []byte(`[{"productName":"Widget","quantity":{"n":1}}]`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			decoded := DecodeOrderProducts(raw)
			assert.NotNil(t, decoded)
			assert.Empty(t, decoded)
		})
	}
}

func TestEncodeOrderProductsNilBecomesEmptyList(t *testing.T) {
	encoded, err := EncodeOrderProducts(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestLocationRoundTrip(t *testing.T) {
	loc := Location{Latitude: "12.9", Longitude: "77.6"}

	encoded, err := EncodeLocation(loc)
	require.NoError(t, err)

	assert.Equal(t, loc, DecodeLocation([]byte(encoded)))
}

func TestLocationNumericCoordinatesTolerated(t *testing.T) {
	decoded := DecodeLocation([]byte(`{"latitude":12.9,"longitude":77.6}`))
	assert.Equal(t, Location{Latitude: "12.9", Longitude: "77.6"}, decoded)
}

func TestLocationMalformedYieldsPlaceholder(t *testing.T) {
	cases := map[string][]byte{
		"nil":      nil,
		"empty":    []byte(""),
		"garbage":  []byte("{broken"),
		"array":    []byte(`[12.9,77.6]`),
		"partial":  []byte(`{"latitude":"12.9"}`),
		"emptyObj": []byte(`{}`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			// Never partial data: both coordinates degrade together.
			assert.Equal(t, UnknownLocation, DecodeLocation(raw))
		})
	}
}

func TestStringOrNumberUnmarshal(t *testing.T) {
	var s StringOrNumber

	require.NoError(t, s.UnmarshalJSON([]byte(`"2"`)))
	assert.Equal(t, StringOrNumber("2"), s)

	require.NoError(t, s.UnmarshalJSON([]byte(`7`)))
	assert.Equal(t, StringOrNumber("7"), s)

	require.NoError(t, s.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, StringOrNumber(""), s)

	assert.Error(t, s.UnmarshalJSON([]byte(`{"a":1}`)))
	assert.Error(t, s.UnmarshalJSON([]byte(`[1]`)))
}
