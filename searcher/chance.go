package searcher

import (
	"golang.org/x/exp/rand"

	"hearth/game"
)

// outcome is one resolution of the chance node's move. The resolved state is
// kept so descents can resume from it without replaying the move.
type outcome struct {
	probability float64
	hash        game.StateHash
	state       game.State
	child       *decision
}

// chance is a node where the environment, not a player, resolves what
// happens: which card the draw turns up. Descent samples an outcome by its
// probability instead of comparing UCT scores.
type chance struct {
	parent   *decision
	player   string
	move     game.Move
	outcomes []outcome
	rewards  float64
	visits   float64
}

// newChance materializes every outcome child at once: the probabilities are
// known in advance from the deck, so there is nothing left to expand.
func newChance(parent *decision, state game.State, move game.Move) *chance {
	resolutions := state.Outcomes(move)
	if len(resolutions) == 0 {
		panic("stochastic move has no outcomes")
	}
	c := &chance{
		parent:   parent,
		player:   parent.player,
		move:     move,
		outcomes: make([]outcome, 0, len(resolutions)),
	}
	for _, res := range resolutions {
		c.outcomes = append(c.outcomes, outcome{
			probability: res.Probability,
			hash:        res.State.Hash(),
			state:       res.State,
			child:       newDecision(c, res.State),
		})
	}
	return c
}

func (c *chance) SelectOrExpand(state game.State, rng *rand.Rand) (Node, game.State, bool) {
	child, childState := c.sample(rng)
	// An unvisited outcome ends the descent so the playout starts there.
	return child, childState, child.visits > 0
}

// sample draws an outcome child according to its probability.
func (c *chance) sample(rng *rand.Rand) (*decision, game.State) {
	r := rng.Float64()
	acc := 0.0
	for i, out := range c.outcomes {
		acc += out.probability
		if r < acc || i == len(c.outcomes)-1 {
			return out.child, out.state
		}
	}
	panic("outcome probabilities do not cover the sample")
}

// selects matches a committed real-world resolution to its outcome child.
func (c *chance) selects(hash game.StateHash) *decision {
	for _, out := range c.outcomes {
		if out.hash == hash {
			return out.child
		}
	}
	return nil
}

func (c *chance) Backup(winner string) Node {
	c.visits++
	if winner == c.player {
		c.rewards += Win
	}
	return c.parent
}

func (c *chance) WinsFor(player string) float64 {
	if player == c.player {
		return c.rewards
	}
	return c.visits - c.rewards
}

func (c *chance) Visits() float64 {
	return c.visits
}

func (c *chance) score(player string, normalizer float64) float64 {
	return ucb1(c.WinsFor(player), c.visits, normalizer)
}

func (c *chance) size() (int, int) {
	nodes, height := 1, 0
	for _, out := range c.outcomes {
		n, h := out.child.size()
		nodes += n
		height = max(height, h+1)
	}
	return nodes, height
}
