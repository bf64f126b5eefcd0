package game

// Move is a single legal action by the active player.
type Move interface {
	IsStochastic() bool
}

type StateHash uint64

// Outcome is one resolution of a stochastic move together with its
// probability. Probabilities across a move's outcomes sum to 1.
type Outcome struct {
	Probability float64
	State       State
}

// State should be immutable - operations on State always return a new copy.
type State interface {
	Player() string
	LegalMoves() []Move
	// Play applies a deterministic move. Stochastic moves must be resolved
	// through Outcomes (or Resolve, which samples one outcome).
	Play(Move) State
	Outcomes(Move) []Outcome
	Hash() StateHash
	Winner() string
}

// Evaluate judges a non-terminal cutoff state and names the player ahead.
type Evaluate func(State) string
