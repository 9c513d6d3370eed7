package generator

const (
	// Letters are always part of the alphabet.
	Letters = "abcdefghijklmnopqrstuvwxyz"
	// Digits starts at 1 and ends at 0.
	Digits = "1234567890"
	// Symbols is the fixed symbol pool.
	Symbols = "+=_*@-/[]{}()"
)

// Alphabet is the ordered pool of characters eligible for a draw.
// The position of a character matters: case mixing looks at the drawn index.
type Alphabet string

// NewAlphabet concatenates letters, then digits, then symbols.
func NewAlphabet(includeNumbers, includeSymbols bool) Alphabet {
	a := Letters

	if includeNumbers {
		a += Digits
	}

	if includeSymbols {
		a += Symbols
	}

	return Alphabet(a)
}

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a)
}

// At returns the character at draw index i.
func (a Alphabet) At(i int) string {
	return string(a[i])
}
