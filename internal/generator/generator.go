package generator

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source produces floating point values in [0,1).
type Source interface {
	Float64() float64
}

// NewSource returns a non-cryptographic source seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec
}

// RandomInt returns an integer in [min, max) drawn from src.
func RandomInt(src Source, min, max int) int {
	return int(math.Floor(src.Float64()*float64(max-min))) + min
}

// Generator draws passwords from a random source.
type Generator struct {
	src Source
}

// New creates a Generator. A nil source is replaced by a time seeded one.
func New(src Source) *Generator {
	if src == nil {
		src = NewSource(uint64(time.Now().UnixNano())) //nolint:gosec
	}

	return &Generator{src: src}
}

// Generate returns a password of exactly req.Length characters.
// When req.MixedCase is set, characters whose draw index is divisible
// by 3 are upper-cased.
func (g *Generator) Generate(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var (
		alphabet = NewAlphabet(req.IncludeNumbers, req.IncludeSymbols)
		upper    = cases.Upper(language.Und)
		sb       strings.Builder
	)

	sb.Grow(req.Length)

	for range req.Length {
		r := RandomInt(g.src, 0, alphabet.Len())
		c := alphabet.At(r)

		if req.MixedCase && r%3 == 0 {
			c = upper.String(c)
		}

		sb.WriteString(c)
	}

	return sb.String(), nil
}

// Generate draws a password using a time seeded source.
func Generate(req Request) (string, error) {
	return New(nil).Generate(req)
}
