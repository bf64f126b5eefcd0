package searcher

import (
	"errors"

	"golang.org/x/exp/rand"

	"hearth/game"
)

// ErrNoLegalMoves is the invariant violation of being asked to act on a
// state with no legal moves; EndTurn is legal on every non-terminal state.
var ErrNoLegalMoves = errors.New("no legal moves available")

// Policy decides a single move without tree bookkeeping. Policies drive
// opponent turns inside rollouts and double as standalone opponents.
type Policy interface {
	Name() string
	Act(state game.State, rng *rand.Rand) (game.Move, error)
}

// RandomPolicy plays uniformly at random.
type RandomPolicy struct{}

func (RandomPolicy) Name() string { return "random" }

func (RandomPolicy) Act(state game.State, rng *rand.Rand) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}
	return moves[rng.Intn(len(moves))], nil
}

// AggressivePolicy goes face: attack the enemy hero when any minion can,
// else attack a minion, else play randomly.
type AggressivePolicy struct{}

func (AggressivePolicy) Name() string { return "aggressive" }

func (AggressivePolicy) Act(state game.State, rng *rand.Rand) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}
	if move := firstAttack(moves, game.TargetHero); move != nil {
		return move, nil
	}
	if move := firstAttack(moves, game.TargetMinion); move != nil {
		return move, nil
	}
	return moves[rng.Intn(len(moves))], nil
}

// ControllingPolicy trades on board: attack an enemy minion when possible,
// else play randomly.
type ControllingPolicy struct{}

func (ControllingPolicy) Name() string { return "controlling" }

func (ControllingPolicy) Act(state game.State, rng *rand.Rand) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}
	if move := firstAttack(moves, game.TargetMinion); move != nil {
		return move, nil
	}
	return moves[rng.Intn(len(moves))], nil
}

// firstAttack returns the first enumerated attack on the given target kind,
// keeping rule firing deterministic.
func firstAttack(moves []game.Move, kind game.TargetKind) game.Move {
	for _, move := range moves {
		if attack, ok := move.(game.AttackMove); ok && attack.Target.Kind == kind {
			return attack
		}
	}
	return nil
}

// PolicyByName resolves a policy from its configuration name.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", RandomPolicy{}.Name():
		return RandomPolicy{}, nil
	case AggressivePolicy{}.Name():
		return AggressivePolicy{}, nil
	case ControllingPolicy{}.Name():
		return ControllingPolicy{}, nil
	}
	return nil, errors.New("unknown policy: " + name)
}
