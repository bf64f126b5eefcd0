package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hearth/experiments/metrics"
	"hearth/game"
	"hearth/searcher"
	"hearth/searcher/agent"
)

// MaxMoves aborts games that stall; fatigue ends real games well within it.
const MaxMoves = 1000

// Engine hosts a local synchronous duel: it owns the real state, asks each
// agent for moves, resolves stochastic outcomes, and feeds every agent the
// committed move log it needs for subtree retention.
type Engine struct {
	State  *game.GameState
	agents [2]agent.Agent
	rng    *rand.Rand
}

// NewLocalEngine deals a fresh game. agents[0] plays first. The seed fixes
// the deal and every real-world stochastic resolution.
func NewLocalEngine(agents [2]agent.Agent, seed uint64) *Engine {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	return &Engine{
		State:  game.NewGame(rng),
		agents: agents,
		rng:    rng,
	}
}

// Run plays the duel to its verdict and returns the winner with the game's
// instrumentation records.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	// Moves each agent has not yet been told about
	var pending [2][]searcher.Segment

	step := 0
	for e.State.Winner() == "" && step < MaxMoves {
		idx := e.playerIndex(e.State.Player())

		move, searchMetric, err := e.agents[idx].FindMove(e.State, pending[idx])
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("agent %d failed to move: %w", idx, err)
		}
		pending[idx] = nil

		next := game.Resolve(e.State, move, e.rng).(*game.GameState)
		segment := searcher.Segment{Move: move, StateHash: next.Hash()}
		for i := range pending {
			pending[i] = append(pending[i], segment)
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       e.State.Player(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s: %s", step, e.State.Player(), move)

		e.State = next
	}

	winner := e.State.Winner()
	if winner == "" {
		log.Warn().Msgf("game aborted after %d moves without a winner", MaxMoves)
	}

	gameMetric.Winner = winner
	gameMetric.TotalMoves = step
	gameMetric.Duration = time.Since(gameMetric.StartTime)
	return winner, gameMetric, moveMetrics, nil
}

func (e *Engine) playerIndex(player string) int {
	for i := range e.State.Players {
		if e.State.Players[i].Name == player {
			return i
		}
	}
	panic("active player is not seated at this game")
}
