package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hearth/searcher"
	"hearth/searcher/agent"
)

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing a policy duel to a verdict", func(t *testing.T) {
		agents := [2]agent.Agent{
			agent.NewPolicyAgent(searcher.AggressivePolicy{}, 11),
			agent.NewPolicyAgent(searcher.RandomPolicy{}, 12),
		}
		e := NewLocalEngine(agents, 13)

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, winner, "Fatigue guarantees a verdict")
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, winner, e.State.Winner())
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.NotEmpty(t, moveMetrics)
		require.Equal(t, 1, moveMetrics[0].Step)
		require.Equal(t, gameMetric.StartingPlayer, moveMetrics[0].Player)
	})

	t.Run("reproducing a duel from its seed", func(t *testing.T) {
		duel := func() (string, int) {
			agents := [2]agent.Agent{
				agent.NewPolicyAgent(searcher.RandomPolicy{}, 21),
				agent.NewPolicyAgent(searcher.RandomPolicy{}, 22),
			}
			winner, gameMetric, _, err := NewLocalEngine(agents, 23).Run()
			require.NoError(t, err)
			return winner, gameMetric.TotalMoves
		}

		winnerA, movesA := duel()
		winnerB, movesB := duel()

		require.Equal(t, winnerA, winnerB)
		require.Equal(t, movesA, movesB)
	})

	t.Run("retaining the search tree across a duel", func(t *testing.T) {
		mcts := searcher.NewMCTS(
			searcher.WithEpisodes(30),
			searcher.WithCutoff(20),
			searcher.WithSeed(31),
			searcher.WithMetrics(),
		)
		agents := [2]agent.Agent{
			agent.NewMCTSAgent(mcts),
			agent.NewPolicyAgent(searcher.RandomPolicy{}, 32),
		}
		e := NewLocalEngine(agents, 33)

		winner, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, winner)
		reused := false
		for _, m := range moveMetrics {
			if m.SearchMetric.TreeReused {
				reused = true
			}
		}
		require.True(t, reused, "The searcher should descend into its retained tree")
	})
}
