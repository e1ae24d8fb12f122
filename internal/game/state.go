package game

// State is the top-level screen the game is showing.
type State int

const (
	StateMainMenu State = iota
	StateTutorial
	StatePlaying
	StatePaused
	StateCemetery
	StateGameOver
	StateVictory
	StateSettings
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main menu"
	case StateTutorial:
		return "tutorial"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateCemetery:
		return "cemetery"
	case StateGameOver:
		return "game over"
	case StateVictory:
		return "victory"
	case StateSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Tutorial is the first-run overlay. Completion is one-way and persisted
// with the save file.
type Tutorial struct {
	Step      int
	Completed bool
}

var tutorialSteps = []string{
	"Welcome! You're a ghost trick-or-treater. Use WASD/arrows to move.",
	"Collect candies (orange glows) by approaching and pressing SPACE. Goal: Get 15!",
	"Avoid ghosts! They deduct a heart on contact. You have 3 hearts total.",
	"Find Easter eggs for bonuses, like hidden stashes (press SPACE to interact).",
	"ESC for pause menu. Return to house (blue door) to finish level.",
}

// Advance moves to the next step and reports completion after the last one.
func (t *Tutorial) Advance() bool {
	if t.Completed {
		return true
	}
	t.Step++
	if t.Step >= len(tutorialSteps) {
		t.Completed = true
	}
	return t.Completed
}

// Text returns the current step's instruction.
func (t *Tutorial) Text() string {
	if t.Step < 0 || t.Step >= len(tutorialSteps) {
		return ""
	}
	return tutorialSteps[t.Step]
}
