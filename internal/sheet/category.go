package sheet

import "fmt"

// Category identifies one scoring row on the sheet.
type Category uint8

const (
	Birds Category = iota
	BonusCards
	RoundEndGoals
	Eggs
	StashedFood
	TuckedCards
)

// CategoryCount is the number of scoring categories every player carries.
const CategoryCount = 6

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Birds, BonusCards, RoundEndGoals, Eggs, StashedFood, TuckedCards}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c <= TuckedCards
}

// Name returns the display label for c.
func (c Category) Name() string {
	switch c {
	case Birds:
		return "Birds"
	case BonusCards:
		return "Bonus Cards"
	case RoundEndGoals:
		return "Round End Goals"
	case Eggs:
		return "Eggs"
	case StashedFood:
		return "Stashed Food"
	case TuckedCards:
		return "Tucked Cards"
	}
	panic(fmt.Sprintf("sheet: unknown category %d", uint8(c)))
}

// Tag returns the identifier form of c, e.g. "BonusCards".
func (c Category) Tag() string {
	switch c {
	case Birds:
		return "Birds"
	case BonusCards:
		return "BonusCards"
	case RoundEndGoals:
		return "RoundEndGoals"
	case Eggs:
		return "Eggs"
	case StashedFood:
		return "StashedFood"
	case TuckedCards:
		return "TuckedCards"
	}
	panic(fmt.Sprintf("sheet: unknown category %d", uint8(c)))
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return c.Tag()
}

// ParseCategory resolves a tag produced by Tag.
func ParseCategory(tag string) (Category, bool) {
	for _, c := range Categories() {
		if c.Tag() == tag {
			return c, true
		}
	}
	return 0, false
}
