package generator_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwdgen/pwdgen/internal/generator"
)

// seqSource replays a fixed list of values.
type seqSource struct {
	values []float64
	pos    int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++

	return v
}

// at returns a value that makes RandomInt pick index i out of n.
func at(i, n int) float64 {
	return (float64(i) + 0.5) / float64(n)
}

func TestNewAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		numbers bool
		symbols bool
		want    generator.Alphabet
	}{
		{"letters only", false, false, "abcdefghijklmnopqrstuvwxyz"},
		{"numbers", true, false, "abcdefghijklmnopqrstuvwxyz1234567890"},
		{"symbols", false, true, "abcdefghijklmnopqrstuvwxyz+=_*@-/[]{}()"},
		{"numbers and symbols", true, true, "abcdefghijklmnopqrstuvwxyz1234567890+=_*@-/[]{}()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generator.NewAlphabet(tt.numbers, tt.symbols))
		})
	}
}

func TestAlphabetLen(t *testing.T) {
	assert.Equal(t, 26, generator.NewAlphabet(false, false).Len())
	assert.Equal(t, 36, generator.NewAlphabet(true, false).Len())
	assert.Equal(t, 39, generator.NewAlphabet(false, true).Len())
	assert.Equal(t, 49, generator.NewAlphabet(true, true).Len())
}

func TestRandomInt(t *testing.T) {
	src := &seqSource{values: []float64{0, 0.5, 0.999999}}

	assert.Equal(t, 0, generator.RandomInt(src, 0, 26))
	assert.Equal(t, 13, generator.RandomInt(src, 0, 26))
	assert.Equal(t, 25, generator.RandomInt(src, 0, 26))
}

func TestRandomIntRange(t *testing.T) {
	src := generator.NewSource(42)

	for range 10000 {
		r := generator.RandomInt(src, 0, 49)
		require.GreaterOrEqual(t, r, 0)
		require.Less(t, r, 49)
	}
}

func TestGenerateFixedDraws(t *testing.T) {
	tests := []struct {
		name string
		req  generator.Request
		src  []float64
		want string
	}{
		{
			name: "mixed case upper-cases indexes divisible by 3",
			req:  generator.Request{Length: 4, MixedCase: true},
			src:  []float64{at(0, 26), at(13, 26), at(25, 26), at(3, 26)},
			want: "AnzD",
		},
		{
			name: "lower case only",
			req:  generator.Request{Length: 4},
			src:  []float64{at(0, 26), at(13, 26), at(25, 26), at(3, 26)},
			want: "anzd",
		},
		{
			name: "digits start at one and end at zero",
			req:  generator.Request{Length: 4, MixedCase: true, IncludeNumbers: true},
			src:  []float64{at(26, 36), at(35, 36), at(27, 36), at(24, 36)},
			want: "102Y",
		},
		{
			name: "symbols follow digits",
			req:  generator.Request{Length: 5, MixedCase: true, IncludeNumbers: true, IncludeSymbols: true},
			src:  []float64{at(36, 49), at(48, 49), at(42, 49), at(1, 49), at(6, 49)},
			want: "+)/bG",
		},
		{
			name: "symbols without digits",
			req:  generator.Request{Length: 4, IncludeSymbols: true},
			src:  []float64{at(26, 39), at(38, 39), at(30, 39), at(0, 39)},
			want: "+)@a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pwd, err := generator.New(&seqSource{values: tt.src}).Generate(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pwd)
		})
	}
}

func TestGenerateLengthAndAlphabet(t *testing.T) {
	for _, numbers := range []bool{false, true} {
		for _, symbols := range []bool{false, true} {
			alphabet := string(generator.NewAlphabet(numbers, symbols))

			for _, length := range []int{4, 10, 25, 200} {
				req := generator.Request{
					Length:         length,
					MixedCase:      true,
					IncludeNumbers: numbers,
					IncludeSymbols: symbols,
				}

				pwd, err := generator.Generate(req)
				require.NoError(t, err)
				require.Len(t, pwd, length)

				for _, c := range strings.ToLower(pwd) {
					assert.Contains(t, alphabet, string(c))
				}
			}
		}
	}
}

func TestGenerateNoUpperCaseWithoutMixedCase(t *testing.T) {
	g := generator.New(generator.NewSource(7))

	pwd, err := g.Generate(generator.Request{Length: 500, IncludeNumbers: true, IncludeSymbols: true})
	require.NoError(t, err)

	for _, c := range pwd {
		assert.False(t, unicode.IsUpper(c), "unexpected upper case %q in %q", c, pwd)
	}
}

func TestGenerateUpperCaseFollowsDrawIndex(t *testing.T) {
	const seed = 1234

	req := generator.Request{Length: 1000, MixedCase: true, IncludeNumbers: true, IncludeSymbols: true}

	pwd, err := generator.New(generator.NewSource(seed)).Generate(req)
	require.NoError(t, err)

	alphabet := generator.NewAlphabet(req.IncludeNumbers, req.IncludeSymbols)
	replay := generator.NewSource(seed)
	uppers := 0

	for i := range req.Length {
		r := generator.RandomInt(replay, 0, alphabet.Len())
		want := alphabet.At(r)

		if r%3 == 0 {
			want = strings.ToUpper(want)
		}

		require.Equal(t, want, string(pwd[i]), "position %d, draw index %d", i, r)

		if unicode.IsUpper(rune(pwd[i])) {
			uppers++

			assert.Zero(t, r%3)
		}
	}

	assert.Positive(t, uppers)
}

func TestGenerateSameSeedSamePassword(t *testing.T) {
	req := generator.DefaultRequest()

	a, err := generator.New(generator.NewSource(99)).Generate(req)
	require.NoError(t, err)

	b, err := generator.New(generator.NewSource(99)).Generate(req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateInvalidLength(t *testing.T) {
	for _, length := range []int{-1, 0, 1, 3} {
		pwd, err := generator.Generate(generator.Request{Length: length, MixedCase: true})
		require.ErrorIs(t, err, generator.ErrInvalidLength)
		assert.Empty(t, pwd)
	}

	assert.Equal(t, "A minimum length of 4 must be provided for the password.", generator.ErrInvalidLength.Error())
}

func TestScenarios(t *testing.T) {
	t.Run("4 0 0 0", func(t *testing.T) {
		req, err := generator.ParseRequest([]string{"4", "0", "0", "0"}, generator.DefaultRequest())
		require.NoError(t, err)
		assert.Equal(t, 26, generator.NewAlphabet(req.IncludeNumbers, req.IncludeSymbols).Len())

		pwd, err := generator.Generate(req)
		require.NoError(t, err)
		assert.Len(t, pwd, 4)
		assert.Equal(t, strings.ToLower(pwd), pwd)

		for _, c := range pwd {
			assert.Contains(t, generator.Letters, string(c))
		}
	})

	t.Run("10 1 1 1", func(t *testing.T) {
		req, err := generator.ParseRequest([]string{"10", "1", "1", "1"}, generator.DefaultRequest())
		require.NoError(t, err)
		assert.Equal(t, 49, generator.NewAlphabet(req.IncludeNumbers, req.IncludeSymbols).Len())

		pwd, err := generator.Generate(req)
		require.NoError(t, err)
		assert.Len(t, pwd, 10)
	})

	t.Run("3 1 1 1", func(t *testing.T) {
		_, err := generator.ParseRequest([]string{"3", "1", "1", "1"}, generator.DefaultRequest())
		require.ErrorIs(t, err, generator.ErrInvalidLength)
		assert.Equal(t, "A minimum length of 4 must be provided for the password.", err.Error())
	})
}
