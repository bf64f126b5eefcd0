package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"hearth/experiments/metrics"
	"hearth/game"
	"hearth/searcher"
)

// Agent chooses one move for the active player. committed is the real-game
// move log since the agent last acted; only tree-reusing agents need it.
type Agent interface {
	FindMove(state game.State, committed []searcher.Segment) (game.Move, metrics.SearchMetric, error)
}

// MCTSAgent plans with a retained search tree.
type MCTSAgent struct {
	mcts *searcher.MCTS
}

func NewMCTSAgent(mcts *searcher.MCTS) *MCTSAgent {
	return &MCTSAgent{mcts: mcts}
}

func (a *MCTSAgent) FindMove(state game.State, committed []searcher.Segment) (game.Move, metrics.SearchMetric, error) {
	return a.mcts.FindMove(state, committed)
}

// PolicyAgent drives a rollout policy as a standalone opponent.
type PolicyAgent struct {
	policy searcher.Policy
	rng    *rand.Rand
}

func NewPolicyAgent(policy searcher.Policy, seed uint64) *PolicyAgent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PolicyAgent{
		policy: policy,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (a *PolicyAgent) FindMove(state game.State, _ []searcher.Segment) (game.Move, metrics.SearchMetric, error) {
	move, err := a.policy.Act(state, a.rng)
	return move, metrics.SearchMetric{}, err
}
