package sheet

// Player is one column of the score sheet.
type Player struct {
	ID     int
	Name   string
	scores [CategoryCount]Score
}

// NewPlayer returns a player with every category at zero.
func NewPlayer(id int, name string) Player {
	p := Player{ID: id, Name: name}
	for i, c := range Categories() {
		p.scores[i] = NewScore(c, 0)
	}
	return p
}

// SetScore replaces the entry sharing s's category. Scores of an unknown
// category match nothing and are dropped.
func (p *Player) SetScore(s Score) {
	for i := range p.scores {
		if p.scores[i].SameCategory(s) {
			p.scores[i] = s
			return
		}
	}
}

// Scores returns a copy of the player's scores in display order.
func (p Player) Scores() [CategoryCount]Score {
	return p.scores
}

// Score returns the entry for c.
func (p Player) Score(c Category) Score {
	for _, s := range p.scores {
		if s.category == c {
			return s
		}
	}
	return NewScore(c, 0)
}

// TotalScore sums every category. The widest possible sum is 255*6.
func (p Player) TotalScore() uint16 {
	var total uint16
	for _, s := range p.scores {
		total += uint16(s.value)
	}
	return total
}
