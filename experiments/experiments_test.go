package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hearth/experiments/metrics"
	"hearth/searcher/agent"
)

func TestLoadConfig(t *testing.T) {
	t.Run("parsing a suite file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "suite.yaml")
		suite := `
name: smoke
games: 2
seed: 7
agents:
  - id: 0
    kind: mcts
    episodes: 50
    cutoff: 20
    rollout: aggressive
  - id: 1
    kind: random
matchups:
  - [0, 1]
`
		require.NoError(t, os.WriteFile(path, []byte(suite), 0o644))

		config, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "smoke", config.Name)
		require.Equal(t, 2, config.Games)
		require.Equal(t, uint64(7), config.Seed)
		require.Equal(t, metrics.AgentConfig{
			ID: 0, Kind: "mcts", Episodes: 50, Cutoff: 20, Rollout: "aggressive",
		}, config.Agents[0])
		require.Equal(t, [][2]int{{0, 1}}, config.Matchups)
	})

	t.Run("reporting a missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestBuildAgent(t *testing.T) {
	t.Run("building each agent kind", func(t *testing.T) {
		mcts, err := BuildAgent(metrics.AgentConfig{Kind: "mcts", Episodes: 10}, 1)
		require.NoError(t, err)
		require.IsType(t, &agent.MCTSAgent{}, mcts)

		random, err := BuildAgent(metrics.AgentConfig{Kind: "random"}, 1)
		require.NoError(t, err)
		require.IsType(t, &agent.PolicyAgent{}, random)
	})

	t.Run("rejecting an unknown kind", func(t *testing.T) {
		_, err := BuildAgent(metrics.AgentConfig{Kind: "oracle"}, 1)
		require.Error(t, err)
	})

	t.Run("rejecting an unknown rollout policy", func(t *testing.T) {
		_, err := BuildAgent(metrics.AgentConfig{Kind: "mcts", Rollout: "oracle"}, 1)
		require.Error(t, err)
	})
}

func TestGameSeed(t *testing.T) {
	require.Equal(t, uint64(0), gameSeed(0, 3, 5), "Unseeded suites stay unseeded")
	require.NotEqual(t, gameSeed(9, 0, 1), gameSeed(9, 0, 2), "Games get distinct seeds")
	require.NotEqual(t, gameSeed(9, 0, 1), gameSeed(9, 1, 1), "Matchups get distinct seeds")
}
