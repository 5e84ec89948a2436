package typeexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	inner, ok := Match(MustParse("optional(string)"), WrapperOptional)
	assert.True(t, ok)
	assert.True(t, inner.Equal(Bare("string")))

	_, ok = Match(MustParse("optional(string)"), WrapperSequence)
	assert.False(t, ok)

	// Generic instantiation is not a wrapper application.
	_, ok = Match(MustParse("optional[string]"), WrapperOptional)
	assert.False(t, ok)

	// Qualified wrappers never match.
	_, ok = Match(MustParse("opt.optional(string)"), WrapperOptional)
	assert.False(t, ok)

	_, ok = Match(MustParse("string"), WrapperOptional)
	assert.False(t, ok)

	_, ok = Match(nil, WrapperOptional)
	assert.False(t, ok)
}

func TestMatchPath(t *testing.T) {
	inner, ok := MatchPath(MustParse("optional(sequence(int))"), WrapperOptional, WrapperSequence)
	assert.True(t, ok)
	assert.Equal(t, "int", inner.String())

	_, ok = MatchPath(MustParse("sequence(optional(int))"), WrapperOptional, WrapperSequence)
	assert.False(t, ok)
}

func TestExpr_Equal(t *testing.T) {
	a := Named("time", "Duration")
	b := Named("time", "Duration")
	b.PkgPath = "time"
	assert.True(t, a.Equal(b))

	c := Named("time", "Duration")
	c.PkgPath = "example.com/time"
	assert.False(t, b.Equal(c))

	assert.False(t, Sequence(Bare("int")).Equal(Optional(Bare("int"))))
	assert.True(t, (*Expr)(nil).Equal(nil))
}

func TestWalk(t *testing.T) {
	var names []string
	Walk(MustParse("optional(sequence(time.Time))"), func(e *Expr) {
		names = append(names, e.Name)
	})
	assert.Equal(t, []string{"optional", "sequence", "Time"}, names)
}
