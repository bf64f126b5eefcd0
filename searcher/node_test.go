package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"hearth/game"
)

type mockMove struct {
	id         int
	stochastic bool
}

func (m mockMove) IsStochastic() bool {
	return m.stochastic
}

type mockState struct {
	player string
	moves  []game.Move
	winner string
	hash   game.StateHash
	outs   []game.Outcome
	played []game.Move
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	if m.winner != "" {
		return nil
	}
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	next := m
	next.played = append(append([]game.Move{}, m.played...), move)
	next.hash = m.hash*31 + game.StateHash(move.(mockMove).id+1)
	return next
}

func (m mockState) Outcomes(move game.Move) []game.Outcome {
	return m.outs
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() string {
	return m.winner
}

func TestUCB1(t *testing.T) {
	t.Run("computing the UCT value", func(t *testing.T) {
		normalizer := cSquared * math.Log(100)
		got := ucb1(5, 10, normalizer)

		expected := 5.0/10 + math.Sqrt(normalizer/10)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("scoring an unvisited node as +Inf", func(t *testing.T) {
		got := ucb1(0, 0, cSquared*math.Log(100))

		require.True(t, math.IsInf(got, 1),
			"An unvisited node should always be preferred")
	})

	t.Run("preferring the higher win rate at equal visits", func(t *testing.T) {
		normalizer := cSquared * math.Log(50)

		better := ucb1(8, 10, normalizer)
		worse := ucb1(5, 10, normalizer)

		require.Greater(t, better, worse,
			"Equal visit counts should rank children by win rate")
	})

	t.Run("exploration bonus decreases with child visits", func(t *testing.T) {
		normalizer := cSquared * math.Log(100)

		score1 := ucb1(5, 10, normalizer)
		score2 := ucb1(10, 20, normalizer)

		require.Greater(t, score1, score2,
			"Same win rate with more visits should score lower")
	})
}
