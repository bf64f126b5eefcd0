package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"hearth/game"
)

// decision is a node where one player chooses among legal moves. children[i]
// is the result of moves[i]; moves beyond len(children) are untried.
type decision struct {
	parent   Node
	player   string
	hash     game.StateHash
	moves    []game.Move
	children []Node
	rewards  float64
	visits   float64
}

func newDecision(parent Node, state game.State) *decision {
	return &decision{
		parent: parent,
		player: state.Player(),
		hash:   state.Hash(),
		moves:  state.LegalMoves(),
	}
}

func (d *decision) SelectOrExpand(state game.State, rng *rand.Rand) (Node, game.State, bool) {
	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.children) < len(d.moves) { // Expandable node
		child, childState := d.addChild(state, rng)
		return child, childState, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	if _, ok := child.(*chance); ok {
		// The chance level resolves itself by sampling; hand it the
		// pre-move state untouched.
		return child, state, true
	}
	return child, state.Play(d.moves[ith]), true
}

// addChild expands the next untried move. A stochastic move grows a chance
// node with all its outcomes; the playout then starts from the sampled
// outcome's decision node.
func (d *decision) addChild(state game.State, rng *rand.Rand) (Node, game.State) {
	move := d.moves[len(d.children)]
	if !move.IsStochastic() {
		childState := state.Play(move)
		child := newDecision(d, childState)
		d.children = append(d.children, child)
		return child, childState
	}
	child := newChance(d, state, move)
	d.children = append(d.children, child)
	outcome, outcomeState := child.sample(rng)
	return outcome, outcomeState
}

// pickChild returns the index of the max-UCT child from this node's acting
// player's perspective. Ties go to the first-encountered child.
func (d *decision) pickChild() int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	normalizer := cSquared * math.Log(d.visits)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(d.player, normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) childByMove(move game.Move) Node {
	for i := range d.children {
		if d.moves[i] == move {
			return d.children[i]
		}
	}
	return nil
}

func (d *decision) Backup(winner string) Node {
	d.visits++
	if winner == d.player {
		d.rewards += Win
	}
	return d.parent
}

func (d *decision) WinsFor(player string) float64 {
	if player == d.player {
		return d.rewards
	}
	return d.visits - d.rewards
}

func (d *decision) Visits() float64 {
	return d.visits
}

func (d *decision) score(player string, normalizer float64) float64 {
	return ucb1(d.WinsFor(player), d.visits, normalizer)
}

// bestMove applies Max-Child: the explored move with the highest raw win
// count for this node's player, regardless of win rate.
func (d *decision) bestMove() (game.Move, error) {
	if len(d.moves) == 0 {
		return nil, ErrNoLegalMoves
	}
	if len(d.children) == 0 {
		panic("node has moves but no children")
	}

	bestIndex := 0
	maxWins := math.Inf(-1)
	for i, child := range d.children {
		if wins := child.WinsFor(d.player); wins > maxWins {
			maxWins = wins
			bestIndex = i
		}
	}
	return d.moves[bestIndex], nil
}

// policy reports each explored move's share of root visits.
func (d *decision) policy() map[game.Move]float64 {
	if d.visits == 0 {
		return nil
	}
	out := make(map[game.Move]float64, len(d.children))
	for i, child := range d.children {
		out[d.moves[i]] = child.Visits() / d.visits
	}
	return out
}

func (d *decision) size() (int, int) {
	nodes, height := 1, 0
	for _, child := range d.children {
		n, h := child.size()
		nodes += n
		height = max(height, h+1)
	}
	return nodes, height
}
