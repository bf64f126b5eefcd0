package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"hearth/game"
)

// Rewards estimate the chance of winning for a node's acting player.
const (
	Win  = 1.0
	Loss = 0.0
)

// Exploration constant: cSquared = 2*Cp^2 with Cp = 1/sqrt(2), so the UCT
// bonus is Cp*sqrt(2*ln(N)/n) = sqrt(cSquared*ln(N)/n).
const cSquared = 1.0

type Node interface {
	// SelectOrExpand descends one level: it selects an explored child, or
	// expands a new one (selected=false), or stagnates on a terminal node
	// (child == receiver). childState is the state at the returned child.
	SelectOrExpand(state game.State, rng *rand.Rand) (child Node, childState game.State, selected bool)
	// Backup records the playout outcome and returns the parent, nil at the
	// root.
	Backup(winner string) Node
	// WinsFor reports accumulated wins from the given player's perspective.
	WinsFor(player string) float64
	Visits() float64
	// size reports the subtree's node count and height, for instrumentation.
	size() (nodes, height int)

	score(player string, normalizer float64) float64
}

// ucb1 computes wins/visits + sqrt(normalizer/visits), with unvisited nodes
// scoring +Inf so every child is tried once before any is revisited.
func ucb1(wins float64, visits float64, normalizer float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return wins/visits + math.Sqrt(normalizer/visits)
}
