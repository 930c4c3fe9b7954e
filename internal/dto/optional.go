package dto

import (
	"bytes"
	"encoding/json"
)

// OptionalFloat is a tri-state JSON field for partial updates. It
// distinguishes the three payload shapes a plain pointer collapses:
//
//	field omitted        -> Present=false            (leave stored value)
//	"field": null        -> Present=true, Valid=false (clear stored value)
//	"field": 88.5        -> Present=true, Valid=true  (set stored value)
//
// The distinction is load-bearing for measurement clearing: an explicit null
// on waist_cm must null the column, while omitting it must not.
type OptionalFloat struct {
	Present bool
	Valid   bool
	Value   float64
}

func (o *OptionalFloat) UnmarshalJSON(b []byte) error {
	o.Present = true
	if bytes.Equal(b, []byte("null")) {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the stored value as a nullable pointer: nil when the field was
// sent as an explicit null. Only meaningful when Present is true.
func (o OptionalFloat) Ptr() *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
