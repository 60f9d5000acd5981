// Package exposure maps camera aperture and ISO values to the display
// positions used by the setting cards.
//
// Values arrive as the strings shown on the cards: "f/2.8", "f/2.8-4",
// "100" or "100-400". Only the leading number of a range is used. Every
// function parses first and returns an error wrapping
// [ErrInvalidInputFormat] when the leading token is not a number, so a
// caller never receives a NaN percentage.
package exposure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInputFormat is returned when a value's leading token cannot be
// parsed as a number.
var ErrInvalidInputFormat = errors.New("invalid input format")

const (
	// MinAperture is the widest canonical stop; it maps to 100% progress.
	MinAperture = 1.8
	// MaxAperture is the narrowest canonical stop; it maps to 0% progress.
	MaxAperture = 8.0

	// MinISO maps to 0% progress.
	MinISO = 100
	// MaxISO maps to 100% progress.
	MaxISO = 800

	aperturePrefix = "f/"
	rangeSeparator = "-"
)

// stops are the canonical f-numbers, ascending.
var stops = [StopCount]float64{1.8, 2.8, 4, 5.6, 8}

// StopCount is the number of canonical aperture stops.
const StopCount = 5

// Stops returns the canonical aperture stops in ascending order.
func Stops() [StopCount]float64 {
	return stops
}

// Segment is the state of one canonical stop relative to a value.
type Segment string

const (
	SegmentActive Segment = "active"
	SegmentPast   Segment = "past"
	SegmentNone   Segment = ""
)

func (s Segment) String() string {
	return string(s)
}

// Segments holds one label per canonical stop, in stop order.
type Segments [StopCount]Segment

// Active returns the index of the active stop, or -1 when the value lies
// above every stop.
func (s Segments) Active() int {
	for i, seg := range s {
		if seg == SegmentActive {
			return i
		}
	}
	return -1
}

// ParseAperture returns the leading f-number of an aperture value.
func ParseAperture(value string) (float64, error) {
	token := leadingToken(strings.TrimPrefix(strings.TrimSpace(value), aperturePrefix))
	n, err := parseNumber(token)
	if err != nil {
		return 0, fmt.Errorf("aperture %q: %w", value, err)
	}
	return n, nil
}

// ParseISO returns the leading ISO value as an integer. The token must be
// decimal digits, optionally followed by a fraction that is dropped.
func ParseISO(value string) (int, error) {
	n, err := parseInteger(leadingToken(strings.TrimSpace(value)))
	if err != nil {
		return 0, fmt.Errorf("iso %q: %w", value, err)
	}
	return n, nil
}

// ApertureSegments classifies an aperture value against the canonical
// stops. The first stop not smaller than the value is active, the stops
// before it are past and the rest carry no state. A value above every stop
// leaves all segments empty.
func ApertureSegments(value string) (Segments, error) {
	n, err := ParseAperture(value)
	if err != nil {
		return Segments{}, err
	}

	current := -1
	for i, stop := range stops {
		if stop >= n {
			current = i
			break
		}
	}

	var out Segments
	for i := range out {
		switch {
		case i == current:
			out[i] = SegmentActive
		case i < current:
			out[i] = SegmentPast
		default:
			out[i] = SegmentNone
		}
	}
	return out, nil
}

// ApertureProgress maps an aperture value onto 0-100. Wider apertures
// (smaller f-numbers) score higher.
func ApertureProgress(value string) (float64, error) {
	n, err := ParseAperture(value)
	if err != nil {
		return 0, err
	}
	return clampPercent((MaxAperture - n) / (MaxAperture - MinAperture) * 100), nil
}

// ISOProgress maps an ISO value onto 0-100 across [MinISO, MaxISO].
func ISOProgress(value string) (float64, error) {
	n, err := ParseISO(value)
	if err != nil {
		return 0, err
	}
	return clampPercent(float64(n-MinISO) / float64(MaxISO-MinISO) * 100), nil
}

func leadingToken(value string) string {
	token, _, _ := strings.Cut(value, rangeSeparator)
	return strings.TrimSpace(token)
}

// parseNumber accepts plain decimals only ("2.8", "4"). Exponents, hex
// floats, signs and words such as "Inf" are rejected.
func parseNumber(token string) (float64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInputFormat)
	}
	whole, frac, hasFrac := strings.Cut(token, ".")
	if !isDigits(whole) || (hasFrac && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInputFormat, token)
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidInputFormat, token)
	}
	return n, nil
}

func parseInteger(token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInputFormat)
	}
	whole, frac, hasFrac := strings.Cut(token, ".")
	if !isDigits(whole) || (hasFrac && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInputFormat, token)
	}
	n, err := strconv.Atoi(whole)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidInputFormat, token)
	}
	return n, nil
}

func isDigits(s string) bool {
	return s != "" && strings.TrimLeft(s, "0123456789") == ""
}

func clampPercent(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}
