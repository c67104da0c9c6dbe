package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/wingscore/internal/sheet"
)

func roster(t *testing.T, totals ...map[sheet.Category]uint8) []sheet.Player {
	t.Helper()
	s := sheet.NewStore()
	for i, scores := range totals {
		s.Dispatch(sheet.PlayerNameChanged{Name: string(rune('A' + i))})
		s.Dispatch(sheet.AddPlayer{})
		for c, v := range scores {
			s.Dispatch(sheet.SetScore{PlayerIndex: i, Score: sheet.NewScore(c, v)})
		}
	}
	return s.Players()
}

func TestStandingsSharesRankOnTies(t *testing.T) {
	players := roster(t,
		map[sheet.Category]uint8{sheet.Birds: 10},
		map[sheet.Category]uint8{sheet.Birds: 20, sheet.Eggs: 5},
		map[sheet.Category]uint8{sheet.Eggs: 10},
		map[sheet.Category]uint8{sheet.TuckedCards: 1},
	)

	got := Standings(players)
	require.Len(t, got, 4)

	ids := []int{got[0].Player.ID, got[1].Player.ID, got[2].Player.ID, got[3].Player.ID}
	ranks := []int{got[0].Rank, got[1].Rank, got[2].Rank, got[3].Rank}
	assert.Equal(t, []int{1, 0, 2, 3}, ids)
	assert.Equal(t, []int{1, 2, 2, 4}, ranks)
}

func TestStandingsEmpty(t *testing.T) {
	require.Empty(t, Standings(nil))
}

func TestBuildCard(t *testing.T) {
	players := roster(t,
		map[sheet.Category]uint8{sheet.Birds: 30, sheet.BonusCards: 7},
		map[sheet.Category]uint8{sheet.Eggs: 50},
	)
	at := time.Date(2026, 3, 4, 19, 30, 15, 999, time.FixedZone("AEDT", 11*3600))

	card := Build("6f1c2e9a-0000-4000-8000-000000000000", players, at)

	require.Equal(t, []string{"Birds", "BonusCards", "RoundEndGoals", "Eggs", "StashedFood", "TuckedCards"}, card.Categories)
	require.Equal(t, time.Date(2026, 3, 4, 8, 30, 15, 0, time.UTC), card.ExportedAt)
	require.Len(t, card.Players, 2)

	a := card.Players[0]
	require.Equal(t, "A", a.Name)
	require.Equal(t, 37, a.Total)
	require.Equal(t, 2, a.Rank)
	require.Len(t, a.Scores, sheet.CategoryCount)
	require.Equal(t, ScoreEntry{Category: "BonusCards", Label: "Bonus Cards", Value: 7}, a.Scores[1])

	require.Equal(t, 1, card.Players[1].Rank)
	require.Equal(t, "wingscore-20260304-083015-6f1c2e9a.toml", FileName(card))
}

func TestEncodeProducesReadableTOML(t *testing.T) {
	players := roster(t, map[sheet.Category]uint8{sheet.StashedFood: 3})
	card := Build("game", players, time.Unix(0, 0))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, card))

	out := buf.String()
	for _, c := range sheet.Categories() {
		assert.Contains(t, out, c.Tag())
	}
	assert.Contains(t, out, "[[player]]")

	var decoded Card
	_, err := toml.Decode(out, &decoded)
	require.NoError(t, err)
	require.Equal(t, 3, decoded.Players[0].Total)
	require.Equal(t, "game", decoded.GameID)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	card := Build("abcdef0123", roster(t, nil), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	path, err := WriteFile(dir, card)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "wingscore-20260102-030405-abcdef01.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `game_id = "abcdef0123"`)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}
