package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	for _, tc := range []struct {
		give string
		want string
	}{
		{"B3/S23", "B3/S23"},
		{"s23/b36", "B36/S23"},
		{"B2/S", "B2/S"},
		{" B3678/S34678 ", "B3678/S34678"},
	} {
		r, err := ParseRule(tc.give)
		require.NoError(t, err, tc.give)
		assert.Equal(t, tc.want, r.String())
	}

	for _, bad := range []string{"", "B3", "B3/B3", "X3/S23", "B9/S23", "B3/S2a"} {
		_, err := ParseRule(bad)
		assert.ErrorIs(t, err, ErrBadRule, bad)
	}
}

func TestLookupRule(t *testing.T) {
	r, err := LookupRule("Conway")
	require.NoError(t, err)
	assert.Equal(t, Conway, r)

	r, err = LookupRule("B36/S23")
	require.NoError(t, err)
	assert.Equal(t, Rules()["highlife"], r)

	_, err = LookupRule("nope")
	assert.ErrorIs(t, err, ErrUnknownRule)

	assert.Contains(t, RuleNames(), "seeds")
}

func TestSetRuleAffectsFutureSteps(t *testing.T) {
	e, err := New(3, 3)
	require.NoError(t, err)
	e.SetRule(Rules()["seeds"])
	e.Paint(3, true)
	e.Paint(5, true)

	e.Step()

	// Under B2/S every live cell dies and cells with exactly two live
	// neighbours are born.
	assert.False(t, e.Alive(3))
	assert.False(t, e.Alive(5))
	assert.True(t, e.Alive(1))
	assert.True(t, e.Alive(4))
	assert.True(t, e.Alive(7))
	assert.False(t, e.Alive(0))
}
