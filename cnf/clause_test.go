package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClauseAddRemoveContains(t *testing.T) {
	c := NewClause()
	require.True(t, c.Add(1))
	require.False(t, c.Add(1), "re-adding an existing literal is a no-op")
	require.True(t, c.Contains(1))
	require.False(t, c.Contains(-1))

	require.True(t, c.Remove(1))
	require.False(t, c.Remove(1), "removing an absent literal returns false")
	require.False(t, c.Contains(1))
	require.True(t, c.IsEmpty())
}

func TestClauseAddZeroPanics(t *testing.T) {
	c := NewClause()
	assert.Panics(t, func() { c.Add(0) })
}

func TestClauseUnit(t *testing.T) {
	cases := []struct {
		name      string
		literals  []Literal
		wantUnit  Literal
		wantFound bool
	}{
		{"empty", nil, 0, false},
		{"unit", []Literal{5}, 5, true},
		{"two literals", []Literal{1, 2}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClause(tc.literals...)
			lit, ok := c.Unit()
			assert.Equal(t, tc.wantFound, ok)
			if ok {
				assert.Equal(t, tc.wantUnit, lit)
			}
		})
	}
}

func TestClauseIsTautology(t *testing.T) {
	assert.True(t, NewClause(1, -1).IsTautology())
	assert.True(t, NewClause(1, 2, -1).IsTautology())
	assert.False(t, NewClause(1, 2).IsTautology())
	assert.False(t, NewClause().IsTautology())
}

func TestClauseEqualityIsOrderIndependent(t *testing.T) {
	a := NewClause(-5, 4, 2)
	b := NewClause(2, 4, -5)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	c := NewClause(2, 4, 5)
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestClauseCloneIsIndependent(t *testing.T) {
	orig := NewClause(1, 2)
	clone := orig.Clone()
	clone.Remove(1)

	assert.True(t, orig.Contains(1), "mutating the clone must not affect the original")
	assert.False(t, clone.Contains(1))
}

func TestClauseLiteralsCanonicalOrder(t *testing.T) {
	c := NewClause(3, -1, 2)
	assert.Equal(t, []Literal{-1, 2, 3}, c.Literals())
}
