package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"hearth/game"
)

func stochasticParentAndState() (*decision, mockState) {
	parent := &decision{player: "player1"}
	state := mockState{
		player: "player1",
		outs: []game.Outcome{
			{Probability: 0.25, State: mockState{player: "player2", hash: 11}},
			{Probability: 0.75, State: mockState{player: "player2", hash: 12}},
		},
	}
	return parent, state
}

func TestNewChance(t *testing.T) {
	t.Run("materializing every outcome at creation", func(t *testing.T) {
		parent, state := stochasticParentAndState()

		node := newChance(parent, state, mockMove{id: 0, stochastic: true})

		require.Equal(t, 2, len(node.outcomes), "Should create one child per outcome")
		total := 0.0
		for _, out := range node.outcomes {
			require.NotNil(t, out.child, "Every outcome should have a decision child")
			require.Equal(t, node, out.child.parent, "Outcome children should point back")
			total += out.probability
		}
		require.InDelta(t, 1.0, total, 1e-9, "Outcome probabilities should sum to 1")
		require.Equal(t, parent.player, node.player,
			"A chance node keeps the perspective of the player who moved")
	})

	t.Run("panicking on a move with no outcomes", func(t *testing.T) {
		parent := &decision{player: "player1"}

		require.Panics(t, func() {
			newChance(parent, mockState{}, mockMove{id: 0, stochastic: true})
		}, "A stochastic move must expand to outcomes")
	})
}

func TestChanceSelectOrExpand(t *testing.T) {
	t.Run("sampling an outcome by probability, not UCT", func(t *testing.T) {
		parent, state := stochasticParentAndState()
		node := newChance(parent, state, mockMove{id: 0, stochastic: true})
		// Tilt the first outcome's stats so UCT would always pick it
		node.outcomes[0].child.visits = 1
		node.outcomes[0].child.rewards = 1

		counts := map[game.StateHash]int{}
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 1000; i++ {
			_, gotState, _ := node.SelectOrExpand(state, rng)
			counts[gotState.Hash()]++
		}

		require.Greater(t, counts[12], counts[11],
			"The 0.75 outcome should be sampled more often than the 0.25 one")
		require.InDelta(t, 750, counts[12], 100,
			"Sampling should follow the outcome distribution")
	})

	t.Run("reporting an unvisited outcome as an expansion", func(t *testing.T) {
		parent, state := stochasticParentAndState()
		node := newChance(parent, state, mockMove{id: 0, stochastic: true})

		_, _, gotSelected := node.SelectOrExpand(state, rand.New(rand.NewSource(1)))

		require.False(t, gotSelected,
			"The playout should start at a never-visited outcome")
	})

	t.Run("reproducing the draw under the same seed", func(t *testing.T) {
		parent, state := stochasticParentAndState()
		node := newChance(parent, state, mockMove{id: 0, stochastic: true})

		first, _ := node.sample(rand.New(rand.NewSource(42)))
		second, _ := node.sample(rand.New(rand.NewSource(42)))

		require.Same(t, first, second, "Equal seeds should sample the same outcome")
	})
}

func TestChanceSelects(t *testing.T) {
	t.Run("matching a committed resolution by state hash", func(t *testing.T) {
		parent, state := stochasticParentAndState()
		node := newChance(parent, state, mockMove{id: 0, stochastic: true})

		got := node.selects(12)

		require.NotNil(t, got, "Should find the outcome child")
		require.Equal(t, game.StateHash(12), got.hash, "Should match by outcome hash")
	})

	t.Run("reporting an unknown resolution", func(t *testing.T) {
		parent, state := stochasticParentAndState()
		node := newChance(parent, state, mockMove{id: 0, stochastic: true})

		require.Nil(t, node.selects(99), "An unknown hash has no child")
	})
}

func TestChanceBackup(t *testing.T) {
	t.Run("accumulating stats like a decision node", func(t *testing.T) {
		parent, state := stochasticParentAndState()
		node := newChance(parent, state, mockMove{id: 0, stochastic: true})

		got := node.Backup("player1")
		node.Backup("player2")

		require.Equal(t, parent, got, "Should return the parent node")
		require.Equal(t, 1.0, node.rewards, "Should count the player1 win only")
		require.Equal(t, 2.0, node.visits, "Should count both passes")
	})
}
