package sheet

// Score is one category's value. The category is fixed when the Score is
// built; Update hands back a new Score instead of changing the receiver.
type Score struct {
	category Category
	value    uint8
}

// NewScore builds a Score for category c.
func NewScore(c Category, v uint8) Score {
	return Score{category: c, value: v}
}

func (s Score) Category() Category { return s.category }

func (s Score) CategoryName() string { return s.category.Name() }

func (s Score) Value() uint8 { return s.value }

// Update returns a Score of the same category carrying v.
func (s Score) Update(v uint8) Score {
	return Score{category: s.category, value: v}
}

// SameCategory compares discriminants only.
func (s Score) SameCategory(other Score) bool {
	return s.category == other.category
}
