package generator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// MinLength is the shortest password that will be generated.
	MinLength = 4

	// MaxLength is the longest password that will be generated.
	MaxLength = math.MaxInt32

	// DefaultLength is used when no length is given.
	DefaultLength = 25
)

// Request describes one password generation.
type Request struct {
	Length         int
	MixedCase      bool
	IncludeNumbers bool
	IncludeSymbols bool
}

// DefaultRequest returns the settings used when no positional values are given.
func DefaultRequest() Request {
	return Request{
		Length:         DefaultLength,
		MixedCase:      true,
		IncludeNumbers: true,
		IncludeSymbols: true,
	}
}

// Validate reports ErrInvalidLength for lengths below MinLength and
// ErrLengthTooLarge for lengths above MaxLength.
func (r Request) Validate() error {
	if r.Length < MinLength {
		return ErrInvalidLength
	}

	if r.Length > MaxLength {
		return ErrLengthTooLarge
	}

	return nil
}

// ParseRequest fills a request from up to four ordered raw values:
// length, case sensitivity, numbers and symbols. Missing values keep the
// value from defaults, extra values are ignored.
// A non-numeric or fractional length yields ErrInvalidLength, a whole
// number above MaxLength yields ErrLengthTooLarge.
func ParseRequest(args []string, defaults Request) (Request, error) {
	req := defaults

	if len(args) > 0 {
		length, err := parseLength(args[0])
		if err != nil {
			return req, err
		}

		req.Length = length
	}

	if len(args) > 1 {
		req.MixedCase = parseFlag(args[1])
	}

	if len(args) > 2 {
		req.IncludeNumbers = parseFlag(args[2])
	}

	if len(args) > 3 {
		req.IncludeSymbols = parseFlag(args[3])
	}

	return req, req.Validate()
}

// parseLength accepts any whole number, "25" as well as "25.0".
// An empty value counts as zero.
func parseLength(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 1) {
		return 0, ErrLengthTooLarge
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, -1) || f != math.Trunc(f) {
		return 0, ErrInvalidLength
	}

	switch {
	case f > MaxLength: // includes +Inf
		return 0, ErrLengthTooLarge
	case f < MinLength:
		return 0, ErrInvalidLength
	}

	return int(f), nil
}

// parseFlag is on only when the value is numerically 1.
func parseFlag(raw string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)

	return err == nil && f == 1
}
