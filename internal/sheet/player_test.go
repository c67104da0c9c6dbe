package sheet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlayerStartsAtZero(t *testing.T) {
	p := NewPlayer(4, "Alice")

	require.Equal(t, 4, p.ID)
	require.Equal(t, "Alice", p.Name)
	require.Equal(t, uint16(0), p.TotalScore())

	seen := map[Category]int{}
	for i, s := range p.Scores() {
		require.Equal(t, Category(i), s.Category())
		require.Zero(t, s.Value())
		seen[s.Category()]++
	}
	require.Len(t, seen, CategoryCount)
	for c, n := range seen {
		require.Equal(t, 1, n, "category %s", c)
	}
}

func TestSetScoreReplacesOnlyMatchingCategory(t *testing.T) {
	p := NewPlayer(0, "Bob")
	p.SetScore(NewScore(Eggs, 7))
	p.SetScore(NewScore(TuckedCards, 2))
	before := p.Scores()

	p.SetScore(NewScore(Eggs, 11))
	after := p.Scores()

	for i := range after {
		if after[i].Category() == Eggs {
			require.Equal(t, uint8(11), after[i].Value())
			continue
		}
		require.Equal(t, before[i], after[i])
	}
}

func TestSetScoreUnknownCategoryIsNoop(t *testing.T) {
	p := NewPlayer(0, "Bob")
	before := p.Scores()
	p.SetScore(NewScore(Category(42), 9))
	require.Equal(t, before, p.Scores())
}

func TestTotalScoreSumsPayloads(t *testing.T) {
	cases := [][CategoryCount]uint8{
		{0, 0, 0, 0, 0, 0},
		{5, 0, 0, 0, 0, 0},
		{12, 9, 4, 6, 3, 8},
		{255, 255, 255, 255, 255, 255},
	}
	for _, values := range cases {
		p := NewPlayer(0, "x")
		var want uint16
		for i, c := range Categories() {
			p.SetScore(NewScore(c, values[i]))
			want += uint16(values[i])
		}
		require.Equal(t, want, p.TotalScore(), "values %v", values)
	}
	full := NewPlayer(0, "max")
	for _, c := range Categories() {
		full.SetScore(NewScore(c, 255))
	}
	require.Equal(t, uint16(1530), full.TotalScore())
}

func TestPlayerScoreLookup(t *testing.T) {
	p := NewPlayer(0, "Cara")
	p.SetScore(NewScore(StashedFood, 4))
	require.Equal(t, uint8(4), p.Score(StashedFood).Value())
	require.Equal(t, uint8(0), p.Score(Birds).Value())
}
