package models

import (
	"bytes"
	"encoding/json"
)

// The products and location columns on a purchase order hold JSON text.
// Encoding is strict; decoding is deliberately forgiving: a column that is
// NULL, empty, or unparseable degrades to a harmless default instead of
// failing the row, and each row decodes independently of the others.

// UnknownLocation is the placeholder returned whenever a stored location
// cannot be decoded. Both coordinates are substituted together, never one.
var UnknownLocation = Location{Latitude: "N/A", Longitude: "N/A"}

// StringOrNumber is a string that also accepts a bare JSON number when
// unmarshalling. Older clients sent quantities and coordinates as numbers;
// the stored form is always a string.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StringOrNumber(v)
		return nil
	}
	// Reject objects and arrays; accept the literal text of anything scalar.
	var v json.Number
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = StringOrNumber(v.String())
	return nil
}

// EncodeOrderProducts serializes an ordered product list for storage.
// List order is preserved exactly as supplied.
func EncodeOrderProducts(items []OrderProduct) (string, error) {
	if items == nil {
		items = []OrderProduct{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeOrderProducts parses a stored products column. A missing or
// malformed blob yields an empty list, never an error.
func DecodeOrderProducts(raw []byte) []OrderProduct {
	if len(raw) == 0 {
		return []OrderProduct{}
	}
	var items []OrderProduct
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []OrderProduct{}
	}
	return items
}

// EncodeLocation serializes a coordinate pair for storage.
func EncodeLocation(loc Location) (string, error) {
	data, err := json.Marshal(loc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeLocation parses a stored location column. A missing or malformed
// blob yields UnknownLocation, never partial coordinates.
func DecodeLocation(raw []byte) Location {
	if len(raw) == 0 {
		return UnknownLocation
	}
	var loc Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return UnknownLocation
	}
	if loc.Latitude == "" || loc.Longitude == "" {
		return UnknownLocation
	}
	return loc
}
