// Package model defines the data structures shared by the scan file converter.
package model

import "fmt"

// Variant is the broadcast technology a scan file describes.
type Variant int

// Supported variants, in document order.
const (
	Cable Variant = iota
	Satellite
	Terrestrial
	ATSC
)

// Variants lists every variant in the order their directories are scanned.
var Variants = []Variant{Cable, Satellite, Terrestrial, ATSC}

// Dir returns the subdirectory of the scan root holding files of this variant.
func (v Variant) Dir() string {
	switch v {
	case Cable:
		return "dvb-c"
	case Satellite:
		return "dvb-s"
	case Terrestrial:
		return "dvb-t"
	case ATSC:
		return "atsc"
	}

	return ""
}

// Letter is the leading type token of a descriptor line.
func (v Variant) Letter() string {
	switch v {
	case Cable:
		return "C"
	case Satellite:
		return "S"
	case Terrestrial:
		return "T"
	case ATSC:
		return "A"
	}

	return ""
}

// HasOrbitalPosition reports whether group names of this variant carry an
// orbital position suffix.
func (v Variant) HasOrbitalPosition() bool {
	return v == Satellite
}

func (v Variant) String() string {
	switch v {
	case Cable:
		return "cable"
	case Satellite:
		return "satellite"
	case Terrestrial:
		return "terrestrial"
	case ATSC:
		return "atsc"
	}

	return fmt.Sprintf("variant(%d)", int(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	for _, candidate := range Variants {
		if candidate.String() == string(text) {
			*v = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown variant %q", text)
}
