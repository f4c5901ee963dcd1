package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidOrbitalPosition is returned when a satellite group name does not
// end in a position like "19.2E" or "30W".
var ErrInvalidOrbitalPosition = errors.New("invalid orbital position")

var decimalPattern = regexp.MustCompile(`^([0-9]+\.?[0-9]*|\.[0-9]+)$`)

// OrbitalPosition is a satellite longitude with its direction.
type OrbitalPosition struct {
	Degrees float64
	East    bool
}

func (p OrbitalPosition) String() string {
	direction := "W"
	if p.East {
		direction = "E"
	}

	return strconv.FormatFloat(p.Degrees, 'f', -1, 64) + direction
}

// UpperLastRune upper-cases the final character of name, which for satellite
// files is the orbital direction letter.
func UpperLastRune(name string) string {
	r, size := utf8.DecodeLastRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return name[:len(name)-size] + string(unicode.ToUpper(r))
}

// ParseOrbitalPosition reads the position from the text after the last '-'
// of a group name whose final character has already been upper-cased.
func ParseOrbitalPosition(groupName string) (OrbitalPosition, error) {
	token := groupName[strings.LastIndexByte(groupName, '-')+1:]

	var position OrbitalPosition

	switch {
	case strings.HasSuffix(token, "E"):
		position.East = true
	case strings.HasSuffix(token, "W"):
	default:
		return OrbitalPosition{}, fmt.Errorf("%w: %q has no E/W suffix", ErrInvalidOrbitalPosition, token)
	}

	number := token[:len(token)-1]
	if !decimalPattern.MatchString(number) {
		return OrbitalPosition{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidOrbitalPosition, number)
	}

	degrees, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return OrbitalPosition{}, fmt.Errorf("%w: %w", ErrInvalidOrbitalPosition, err)
	}

	position.Degrees = degrees

	return position, nil
}
