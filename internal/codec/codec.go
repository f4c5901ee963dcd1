// Package codec converts one preprocessed scan file line into a structured
// tuning descriptor and back. Each broadcast technology has its own grammar;
// a Descriptor carries the variant tag plus exactly one matching payload.
package codec

import (
	"errors"
	"fmt"

	m "scanconv.dev/pkg/scanconv/internal/model"
)

var (
	// ErrMalformed is returned by Decode for text that does not follow the
	// variant's grammar.
	ErrMalformed = errors.New("malformed descriptor")
	// ErrInconsistentDescriptor is returned by Encode when the payload does not
	// match the variant tag.
	ErrInconsistentDescriptor = errors.New("descriptor payload does not match its variant")
	// ErrUnknownVariant is returned for a variant without a grammar.
	ErrUnknownVariant = errors.New("unknown variant")
)

// Descriptor is a decoded tuning descriptor. Only the payload selected by
// Variant is set.
type Descriptor struct {
	Variant     m.Variant
	Cable       *CableParams
	Satellite   *SatelliteParams
	Terrestrial *TerrestrialParams
	ATSC        *ATSCParams
}

// Codec decodes and encodes descriptors. Encode(Decode(x)) is defined whenever
// Decode succeeds.
type Codec interface {
	Decode(variant m.Variant, text string) (Descriptor, error)
	Encode(d Descriptor) (string, error)
}

type lineCodec struct{}

// New returns the codec for the scan file line grammar.
func New() Codec {
	return lineCodec{}
}

func (lineCodec) Decode(variant m.Variant, text string) (Descriptor, error) {
	r := newTokenReader(text)
	r.expect(variant.Letter())

	d := Descriptor{Variant: variant}

	switch variant {
	case m.Cable:
		d.Cable = decodeCable(r)
	case m.Satellite:
		d.Satellite = decodeSatellite(r)
	case m.Terrestrial:
		d.Terrestrial = decodeTerrestrial(r)
	case m.ATSC:
		d.ATSC = decodeATSC(r)
	default:
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownVariant, variant)
	}

	if err := r.finish(); err != nil {
		return Descriptor{}, err
	}

	return d, nil
}

func (lineCodec) Encode(d Descriptor) (string, error) {
	w := newTokenWriter(d.Variant.Letter())

	switch d.Variant {
	case m.Cable:
		if d.Cable == nil {
			return "", fmt.Errorf("%w: %s", ErrInconsistentDescriptor, d.Variant)
		}

		d.Cable.encode(w)
	case m.Satellite:
		if d.Satellite == nil {
			return "", fmt.Errorf("%w: %s", ErrInconsistentDescriptor, d.Variant)
		}

		d.Satellite.encode(w)
	case m.Terrestrial:
		if d.Terrestrial == nil {
			return "", fmt.Errorf("%w: %s", ErrInconsistentDescriptor, d.Variant)
		}

		d.Terrestrial.encode(w)
	case m.ATSC:
		if d.ATSC == nil {
			return "", fmt.Errorf("%w: %s", ErrInconsistentDescriptor, d.Variant)
		}

		d.ATSC.encode(w)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownVariant, d.Variant)
	}

	return w.String(), nil
}
