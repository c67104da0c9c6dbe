// Package export writes finished score sheets as TOML score cards. Cards are
// never read back by the application.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jask/wingscore/internal/sheet"
)

// Card is the exported form of one game.
type Card struct {
	GameID     string       `toml:"game_id"`
	ExportedAt time.Time    `toml:"exported_at"`
	Categories []string     `toml:"categories"`
	Players    []PlayerCard `toml:"player"`
}

// PlayerCard is one player's column of the card.
type PlayerCard struct {
	ID     int          `toml:"id"`
	Name   string       `toml:"name"`
	Rank   int          `toml:"rank"`
	Total  int          `toml:"total"`
	Scores []ScoreEntry `toml:"score"`
}

type ScoreEntry struct {
	Category string `toml:"category"`
	Label    string `toml:"label"`
	Value    int    `toml:"value"`
}

// Standing places a player in the final order.
type Standing struct {
	Player sheet.Player
	Rank   int
}

// Standings orders players by total, highest first, breaking ties by id.
// Tied totals share a rank and the next rank skips ahead (1, 1, 3).
func Standings(players []sheet.Player) []Standing {
	out := make([]Standing, len(players))
	for i, p := range players {
		out[i] = Standing{Player: p}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].Player.TotalScore(), out[j].Player.TotalScore()
		if ti != tj {
			return ti > tj
		}
		return out[i].Player.ID < out[j].Player.ID
	})
	for i := range out {
		if i > 0 && out[i].Player.TotalScore() == out[i-1].Player.TotalScore() {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}

// Build assembles a card. Players keep roster order; rank is carried per entry.
func Build(gameID string, players []sheet.Player, at time.Time) Card {
	ranks := make(map[int]int, len(players))
	for _, s := range Standings(players) {
		ranks[s.Player.ID] = s.Rank
	}

	card := Card{GameID: gameID, ExportedAt: at.UTC().Truncate(time.Second)}
	for _, c := range sheet.Categories() {
		card.Categories = append(card.Categories, c.Tag())
	}
	for _, p := range players {
		pc := PlayerCard{
			ID:    p.ID,
			Name:  p.Name,
			Rank:  ranks[p.ID],
			Total: int(p.TotalScore()),
		}
		for _, s := range p.Scores() {
			pc.Scores = append(pc.Scores, ScoreEntry{
				Category: s.Category().Tag(),
				Label:    s.CategoryName(),
				Value:    int(s.Value()),
			})
		}
		card.Players = append(card.Players, pc)
	}
	return card
}

// Encode writes card as TOML.
func Encode(w io.Writer, card Card) error {
	if err := toml.NewEncoder(w).Encode(card); err != nil {
		return fmt.Errorf("encode card: %w", err)
	}
	return nil
}

// FileName is the name WriteFile uses for card.
func FileName(card Card) string {
	id := card.GameID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("wingscore-%s-%s.toml", card.ExportedAt.Format("20060102-150405"), id)
}

// WriteFile writes card into dir and returns the final path.
func WriteFile(dir string, card Card) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(card))
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := Encode(f, card); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("rename export file: %w", err)
	}
	return path, nil
}
