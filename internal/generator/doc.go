// Package generator draws random passwords from a fixed, ordered alphabet.
// The random source is not cryptographically secure and the case mixing is
// tied to the drawn index, so the output is predictable given the seed.
package generator
