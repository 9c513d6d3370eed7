package generator

import "errors"

var (
	// ErrInvalidLength is returned when the requested length is not numeric or below MinLength.
	ErrInvalidLength = errors.New("A minimum length of 4 must be provided for the password.") //nolint:staticcheck,revive

	// ErrLengthTooLarge is returned when the requested length exceeds MaxLength.
	ErrLengthTooLarge = errors.New("A maximum length of 2147483647 can be provided for the password.") //nolint:staticcheck,revive
)
