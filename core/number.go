package core

import (
	"bytes"
	"strconv"
)

var jsonNull = []byte("null")

// Number is a nullable numeric JSON value. It accepts a JSON number, a
// numeric string or null; any other input marks the value as malformed
// instead of failing the decode, so the schema can report it as a field
// error.
type Number struct {
	Value     float64
	Valid     bool // a numeric value is present
	Set       bool // any input (including null) was present
	Malformed bool // input was present but not numeric
}

// NewNumber returns a valid Number holding val.
func NewNumber(val float64) Number {
	return Number{Value: val, Valid: true, Set: true}
}

// Float64 returns the held value, defaulting to 0 when no numeric value is present.
func (n Number) Float64() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		n.Malformed = true
		return nil
	}
	n.Value = val
	n.Valid = true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}
