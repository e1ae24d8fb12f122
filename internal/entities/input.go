package entities

// Input is the per-tick movement input sampled by the orchestration layer
// and passed explicitly into Player.Update. Axes combine for diagonals.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}
