// Package glyph names the rapid-logging bullets and action states the
// planner teaches on its guide pages.
package glyph

// Glyph is a bullet or state with its terminal symbol and meaning.
type Glyph struct {
	Key     string
	Symbol  string
	Label   string
	Meaning string
}

// String returns the terminal symbol.
func (g Glyph) String() string {
	return g.Symbol
}

// Caption is the line printed next to the drawn symbol on the guide page.
func (g Glyph) Caption() string {
	if g.Meaning == "" {
		return g.Label
	}
	return g.Label + " (" + g.Meaning + ")"
}

// Bullet categorizes a rapid-logged entry.
type Bullet int

const (
	Note Bullet = iota
	Action
	Mood
	Event
)

// State is the status of an action.
type State int

const (
	Incomplete State = iota
	Complete
	Migrated
	Irrelevant
)

// DefaultBullets returns the four entry categories in guide order.
func DefaultBullets() []Glyph {
	return []Glyph{
		Note: {
			Key:     "-",
			Symbol:  "–",
			Label:   "Notes",
			Meaning: "things to remember",
		},
		Action: {
			Key:     ".",
			Symbol:  "•",
			Label:   "Actions",
			Meaning: "things to do",
		},
		Mood: {
			Key:     "=",
			Symbol:  "=",
			Label:   "Moods",
			Meaning: "things felt, emotionally or physically",
		},
		Event: {
			Key:     "o",
			Symbol:  "○",
			Label:   "Events",
			Meaning: "things we experience",
		},
	}
}

// DefaultStates returns the action states in guide order.
func DefaultStates() []Glyph {
	return []Glyph{
		Incomplete: {
			Key:    ".",
			Symbol: "•",
			Label:  "Incomplete",
		},
		Complete: {
			Key:    "x",
			Symbol: "×",
			Label:  "Complete",
		},
		Migrated: {
			Key:     ">",
			Symbol:  ">",
			Label:   "Migrated",
			Meaning: "moved",
		},
		Irrelevant: {
			Key:    "~",
			Symbol: "•̶",
			Label:  "Irrelevant",
		},
	}
}

// Glyph returns the description of b.
func (b Bullet) Glyph() Glyph {
	return DefaultBullets()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

// Glyph returns the description of s.
func (s State) Glyph() Glyph {
	return DefaultStates()[s]
}

func (s State) String() string {
	return s.Glyph().String()
}
