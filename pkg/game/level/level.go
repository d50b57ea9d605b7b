// Package level defines the fixed level sequence of the adventure and the
// story text that frames each level.
package level

// Level is one stage of the adventure
type Level int

const (
	None Level = iota
	Puzzle
	Memory
)

// String returns the level name
func (l Level) String() string {
	switch l {
	case Puzzle:
		return "puzzle"
	case Memory:
		return "memory"
	default:
		return "none"
	}
}

// Descriptor describes one level in the graph
type Descriptor struct {
	Level       Level
	TitleKey    string // Heading shown above the board
	IntroKey    string // Story text shown while playing
	CompleteKey string // Story text shown once the level is won
	HelpKey     string // Key help line
	Next        Level  // None when this is the last level
}

// Graph is the level graph: a linear path Puzzle → Memory
var Graph = map[Level]Descriptor{
	Puzzle: {
		Level:       Puzzle,
		TitleKey:    "LEVEL_PUZZLE",
		IntroKey:    "STORY_PUZZLE_INTRO",
		CompleteKey: "STORY_PUZZLE_COMPLETE",
		HelpKey:     "HELP_PUZZLE",
		Next:        Memory,
	},
	Memory: {
		Level:       Memory,
		TitleKey:    "LEVEL_MEMORY",
		IntroKey:    "STORY_MEMORY_INTRO",
		CompleteKey: "STORY_MEMORY_COMPLETE",
		HelpKey:     "HELP_MEMORY",
		Next:        None,
	},
}

// First returns the opening level
func First() Level {
	return Puzzle
}

// Describe returns the descriptor of l and whether it exists
func Describe(l Level) (Descriptor, bool) {
	d, ok := Graph[l]
	return d, ok
}

// Next returns the level after l, or None and false if l is final or unknown
func Next(l Level) (Level, bool) {
	d, ok := Graph[l]
	if !ok || d.Next == None {
		return None, false
	}
	return d.Next, true
}

// IsFinal reports whether l is the last level
func IsFinal(l Level) bool {
	_, ok := Next(l)
	_, exists := Graph[l]
	return exists && !ok
}
