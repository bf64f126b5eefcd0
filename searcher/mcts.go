package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hearth/experiments/metrics"
	"hearth/game"
)

// DefaultCutoff bounds rollout length on degenerate states; fatigue ends
// real games long before this.
const DefaultCutoff = 500

type Option func(m *MCTS)

// Segment is one committed real-game move: the move itself plus the hash of
// the state it produced, which disambiguates stochastic resolutions.
type Segment struct {
	Move      game.Move
	StateHash game.StateHash
}

// MCTS runs sequential Monte Carlo tree search over the duel and keeps its
// tree between moves, so the subtree below each committed move carries its
// statistics into the next search.
type MCTS struct {
	episodes int
	cutoff   int
	policy   Policy
	evaluate game.Evaluate
	rng      *rand.Rand
	root     *decision
	metrics  metrics.Collector
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithRolloutPolicy sets the policy playing the opponent's rollout moves.
func WithRolloutPolicy(policy Policy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.policy = policy
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		cutoff:   DefaultCutoff,
		policy:   RandomPolicy{},
		evaluate: game.EvaluateHealth,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 {
		panic("must specify a playout budget")
	}
	return m
}

// FindMove searches from state and returns the Max-Child move. committed is
// the real-game move log since the previous call (own move first, then the
// opponent's): FindMove descends the retained tree along it, so earlier
// search effort compounds instead of restarting every turn. Returns
// ErrNoLegalMoves when the state is already terminal.
func (m *MCTS) FindMove(state game.State, committed []Segment) (game.Move, metrics.SearchMetric, error) {
	m.findRoot(committed, state)

	m.metrics.Start(m.episodes, m.cutoff)
	for i := 0; i < m.episodes; i++ {
		m.simulate(state)
		m.metrics.AddEpisode()
	}
	m.metrics.SetTreeSize(m.root.size())
	metric := m.metrics.Complete()

	move, err := m.root.bestMove()
	return move, metric, err
}

// Policy exposes the root's visit distribution after the last search.
func (m *MCTS) Policy() map[game.Move]float64 {
	if m.root == nil {
		return nil
	}
	return m.root.policy()
}

// findRoot promotes the tree node reached by the committed moves to root,
// or starts a fresh tree when that line was never expanded. Detaching the
// parent link releases every sibling subtree.
func (m *MCTS) findRoot(path []Segment, state game.State) {
	root := traverse(m.root, path)
	if root == nil || root.hash != state.Hash() {
		m.root = newDecision(nil, state)
		m.metrics.SetTreeReused(false)
		return
	}
	root.parent = nil
	m.root = root
	m.metrics.SetTreeReused(true)
}

func traverse(root *decision, path []Segment) *decision {
	if root == nil {
		return nil
	}

	node := root
	for _, segment := range path {
		child := node.childByMove(segment.Move)
		if child == nil { // Move was never expanded
			return nil
		}

		switch child := child.(type) {
		case *decision:
			if child.hash != segment.StateHash {
				log.Warn().Msgf("retained node hash %d does not match committed state hash %d",
					child.hash, segment.StateHash)
				return nil
			}
			node = child
		case *chance:
			grandChild := child.selects(segment.StateHash)
			if grandChild == nil {
				return nil
			}
			node = grandChild
		default:
			panic("unexpected node type")
		}
	}
	return node
}

// simulate runs one playout: select and expand down the tree, roll out to a
// verdict, and back the verdict up the path.
func (m *MCTS) simulate(state game.State) {
	leaf, leafState := m.selectThenExpand(state)
	winner := m.rollout(leafState)
	backup(leaf, winner)
}

func (m *MCTS) selectThenExpand(state game.State) (Node, game.State) {
	var node Node = m.root
	nodeState := state
	for {
		child, childState, selected := node.SelectOrExpand(nodeState, m.rng)
		if child == node || !selected {
			// Terminal stagnation or a freshly expanded leaf
			return child, childState
		}
		node, nodeState = child, childState
	}
}

// rollout plays the state out without touching the tree: the root player
// moves uniformly at random, the opponent follows the rollout policy. Capped
// playouts resolve by the evaluation heuristic instead of a verdict.
func (m *MCTS) rollout(state game.State) string {
	for depth := 0; depth < m.cutoff; depth++ {
		if winner := state.Winner(); winner != "" {
			m.metrics.AddFullPlayout()
			return winner
		}

		var move game.Move
		var err error
		if state.Player() == m.root.player {
			move, err = RandomPolicy{}.Act(state, m.rng)
		} else {
			move, err = m.policy.Act(state, m.rng)
		}
		if err != nil {
			panic(err) // Non-terminal states always have EndTurn
		}
		state = game.Resolve(state, move, m.rng)
	}

	m.metrics.AddCappedPlayout()
	return m.evaluate(state)
}

func backup(leaf Node, winner string) {
	node := leaf
	for node != nil {
		node = node.Backup(winner)
	}
}
