package sheet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreUpdateKeepsCategory(t *testing.T) {
	orig := NewScore(Eggs, 3)
	next := orig.Update(9)

	require.Equal(t, Eggs, next.Category())
	require.Equal(t, uint8(9), next.Value())
	require.Equal(t, uint8(3), orig.Value(), "receiver must not change")
	require.Equal(t, "Eggs", next.CategoryName())
}

func TestScoreSameCategoryIgnoresValue(t *testing.T) {
	require.True(t, NewScore(Birds, 1).SameCategory(NewScore(Birds, 200)))
	require.False(t, NewScore(Birds, 1).SameCategory(NewScore(TuckedCards, 1)))
}
