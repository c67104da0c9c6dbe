package sheet

// Msg is an input to Store.Dispatch.
type Msg interface {
	isMsg()
}

// PlayerNameChanged records the text typed for the next player.
type PlayerNameChanged struct {
	Name string
}

// AddPlayer turns the pending name into a new player.
type AddPlayer struct{}

// SetScore replaces one score of the player at PlayerIndex.
type SetScore struct {
	PlayerIndex int
	Score       Score
}

func (PlayerNameChanged) isMsg() {}
func (AddPlayer) isMsg()         {}
func (SetScore) isMsg()          {}
