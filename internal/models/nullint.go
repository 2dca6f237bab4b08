package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// NullInt is a nullable integer decoded leniently from upstream JSON.
//
// Numbers and numeric strings decode to a valid value. null, missing fields,
// booleans, objects, non-numeric strings and non-finite numbers decode to an
// invalid (null) value without failing the surrounding document.
type NullInt struct {
	Int64 int64
	Valid bool
}

// NewNullInt returns a valid NullInt holding v.
func NewNullInt(v int64) NullInt {
	return NullInt{Int64: v, Valid: true}
}

// ValueOrZero returns the held value, or 0 when null.
func (n NullInt) ValueOrZero() int64 {
	if !n.Valid {
		return 0
	}
	return n.Int64
}

// MarshalJSON encodes null or the integer value.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, n.Int64, 10), nil
}

// UnmarshalJSON never returns an error: anything that is not a finite number
// becomes null.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	*n = ParseNullInt(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	return nil
}

// ParseNullInt converts a raw token into a NullInt. Fractions are truncated
// toward zero.
func ParseNullInt(raw string) NullInt {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return NullInt{}
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return NewNullInt(v)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return NullInt{}
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return NullInt{}
	}
	return NewNullInt(int64(f))
}
