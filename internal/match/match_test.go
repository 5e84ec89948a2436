package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"each", "each", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"eahc", "each", 2},
		{"Hello", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("arg", "arg"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("each", "eacg"), 1e-9)
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "each", NormalizeIdent("Each"))
	assert.Equal(t, "envvar", NormalizeIdent("env_var"))
	assert.Equal(t, "envvar", NormalizeIdent("Env-Var"))
}

func TestClosest(t *testing.T) {
	methods := []string{"executable", "arg", "args", "env", "Build"}

	assert.Equal(t, []string{"arg", "args"}, Closest("argz", methods, 0), "ties keep candidate order")
	assert.Equal(t, []string{"executable"}, Closest("executabel", methods, 1))
	assert.Nil(t, Closest("arg", methods, 0), "exact match needs no hint")
	assert.Nil(t, Closest("zzzzzz", methods, 0))
	assert.Equal(t, []string{"each"}, Closest("eahc", []string{"each"}, 0))
}
