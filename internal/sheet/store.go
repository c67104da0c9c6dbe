package sheet

import "fmt"

// Store owns the roster. Dispatch is the only way to change it; callers read
// snapshots after each dispatch.
type Store struct {
	players     []Player
	pendingName *string
}

func NewStore() *Store {
	return &Store{}
}

// Dispatch applies msg. A SetScore for a player that does not exist panics:
// the caller handed out an index it never read from a snapshot.
func (s *Store) Dispatch(msg Msg) {
	switch m := msg.(type) {
	case PlayerNameChanged:
		name := m.Name
		s.pendingName = &name
	case AddPlayer:
		if s.pendingName == nil {
			return
		}
		name := *s.pendingName
		s.pendingName = nil
		s.players = append(s.players, NewPlayer(len(s.players), name))
	case SetScore:
		if m.PlayerIndex < 0 || m.PlayerIndex >= len(s.players) {
			panic(fmt.Sprintf("sheet: player index %d out of range [0,%d)", m.PlayerIndex, len(s.players)))
		}
		s.players[m.PlayerIndex].SetScore(m.Score)
	default:
		panic(fmt.Sprintf("sheet: unhandled message %T", msg))
	}
}

// Players returns the roster in insertion order.
func (s *Store) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

func (s *Store) Player(i int) (Player, bool) {
	if i < 0 || i >= len(s.players) {
		return Player{}, false
	}
	return s.players[i], true
}

func (s *Store) Len() int { return len(s.players) }

// PendingName returns the in-progress name, if any was typed since the last
// AddPlayer.
func (s *Store) PendingName() (string, bool) {
	if s.pendingName == nil {
		return "", false
	}
	return *s.pendingName, true
}
