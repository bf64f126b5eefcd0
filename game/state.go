package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	Player1 = "player1"
	Player2 = "player2"

	StartingHealth = 20
	MaxManaLevel   = 10
	MaxBoardSize   = 7
)

// Opening hand sizes for the first and second player. The first player also
// draws at the start of their first turn.
var openingHands = [2]int{3, 4}

// Minion is a card in play with its current stats.
type Minion struct {
	Card      CardID
	Attack    int
	Health    int
	CanAttack bool
}

type PlayerState struct {
	Name    string
	Health  int
	MaxMana int
	Mana    int // mana left this turn
	Turn    int // own turns started so far
	Fatigue int // damage of the next empty-deck draw
	Hand    []CardID
	Deck    Deck
	Board   []Minion
}

// GameState is a point-in-time snapshot of the match. Its methods never
// mutate the receiver: Play and Outcomes operate on deep copies.
type GameState struct {
	Players [2]PlayerState
	Active  int
	Won     string
}

// NewGame deals opening hands and starts the first player's turn (including
// their first draw). The rng resolves the deal only; the returned state is
// fully observable.
func NewGame(rng *rand.Rand) *GameState {
	gs := &GameState{}
	names := [2]string{Player1, Player2}
	for i := range gs.Players {
		p := &gs.Players[i]
		p.Name = names[i]
		p.Health = StartingHealth
		p.Deck = NewStandardDeck()
		for n := 0; n < openingHands[i]; n++ {
			card, ok := p.Deck.Sample(rng)
			if !ok {
				panic("standard deck exhausted during the opening deal")
			}
			p.Deck = p.Deck.Remove(card)
			p.Hand = append(p.Hand, card)
		}
	}
	first, ok := gs.Players[0].Deck.Sample(rng)
	if !ok {
		panic("standard deck exhausted during the opening deal")
	}
	gs.Active = 1 // startTurn hands the game to the first player
	gs.startTurn(first, true)
	return gs
}

func (gs *GameState) clone() *GameState {
	c := *gs
	for i := range c.Players {
		p := &c.Players[i]
		p.Hand = append([]CardID(nil), p.Hand...)
		p.Board = append([]Minion(nil), p.Board...)
	}
	return &c
}

func (gs *GameState) active() *PlayerState   { return &gs.Players[gs.Active] }
func (gs *GameState) opponent() *PlayerState { return &gs.Players[1-gs.Active] }

func (gs *GameState) Player() string {
	return gs.active().Name
}

func (gs *GameState) Winner() string {
	return gs.Won
}

// LegalMoves enumerates attacks, affordable card plays and EndTurn, in a
// fixed order so that search tie-breaks are reproducible. Nil once the game
// is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.Won != "" {
		return nil
	}

	var moves []Move
	active := gs.active()
	opponent := gs.opponent()

	for i, minion := range active.Board {
		if !minion.CanAttack {
			continue
		}
		moves = append(moves, AttackMove{Attacker: i, Target: Target{Kind: TargetHero}})
		for t := range opponent.Board {
			moves = append(moves, AttackMove{Attacker: i, Target: Target{Kind: TargetMinion, Slot: t}})
		}
	}

	for _, id := range distinct(active.Hand) {
		card := CardByID(id)
		if card.Cost > active.Mana {
			continue
		}
		switch {
		case card.Kind == MinionKind:
			if len(active.Board) < MaxBoardSize {
				moves = append(moves, PlayCardMove{Card: id})
			}
		case card.Effect == DamageTarget:
			moves = append(moves, PlayCardMove{Card: id, Target: Target{Kind: TargetHero}})
			for t := range opponent.Board {
				moves = append(moves, PlayCardMove{Card: id, Target: Target{Kind: TargetMinion, Slot: t}})
			}
		case card.Effect == SetStats:
			for t := range opponent.Board {
				moves = append(moves, PlayCardMove{Card: id, Target: Target{Kind: TargetMinion, Slot: t}})
			}
		default: // HealHero, DamageEnemies
			moves = append(moves, PlayCardMove{Card: id})
		}
	}

	moves = append(moves, EndTurnMove{Draw: opponent.Deck.Size() > 0})
	return moves
}

// distinct keeps the first occurrence of each card ID, preserving hand order.
func distinct(hand []CardID) []CardID {
	var seen [NumCards]bool
	ids := make([]CardID, 0, len(hand))
	for _, id := range hand {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// Play applies a deterministic move and returns the successor state. Illegal
// moves and unresolved stochastic moves are invariant violations.
func (gs *GameState) Play(move Move) State {
	if gs.Won != "" {
		panic("playing a move on a finished game")
	}
	next := gs.clone()
	switch m := move.(type) {
	case AttackMove:
		next.attack(m)
	case PlayCardMove:
		next.playCard(m)
	case EndTurnMove:
		if m.IsStochastic() {
			panic("stochastic end of turn must be resolved through Outcomes")
		}
		next.startTurn(0, false)
	default:
		panic(fmt.Sprintf("unknown move type %T", move))
	}
	return next
}

// Outcomes expands a stochastic move into every resolution with its
// probability: one successor per distinct drawable card.
func (gs *GameState) Outcomes(move Move) []Outcome {
	m, ok := move.(EndTurnMove)
	if !ok || !m.IsStochastic() {
		return nil
	}
	draws := gs.opponent().Deck.Draws()
	outcomes := make([]Outcome, 0, len(draws))
	for _, draw := range draws {
		next := gs.clone()
		next.startTurn(draw.Card, true)
		outcomes = append(outcomes, Outcome{Probability: draw.Probability, State: next})
	}
	return outcomes
}

// Resolve applies any move, sampling the real outcome of a stochastic one.
func Resolve(s State, move Move, rng *rand.Rand) State {
	if !move.IsStochastic() {
		return s.Play(move)
	}
	outcomes := s.Outcomes(move)
	r := rng.Float64()
	acc := 0.0
	for i, out := range outcomes {
		acc += out.Probability
		if r < acc || i == len(outcomes)-1 {
			return out.State
		}
	}
	panic("stochastic move has no outcomes")
}

// startTurn hands the turn to the opponent and runs their turn setup: ready
// the ending player's minions, refill mana, and draw (or take fatigue).
func (gs *GameState) startTurn(drawn CardID, hasDraw bool) {
	board := gs.active().Board
	for i := range board {
		board[i].CanAttack = true
	}

	gs.Active = 1 - gs.Active
	p := gs.active()
	p.Turn++
	p.MaxMana = max(p.MaxMana, min(p.Turn, MaxManaLevel))
	p.Mana = p.MaxMana

	if hasDraw {
		p.Deck = p.Deck.Remove(drawn)
		p.Hand = append(p.Hand, drawn)
		return
	}
	p.Fatigue++
	gs.damageHero(p, p.Fatigue)
}

func (gs *GameState) attack(m AttackMove) {
	active := gs.active()
	opponent := gs.opponent()
	if m.Attacker >= len(active.Board) || !active.Board[m.Attacker].CanAttack {
		panic("attacker cannot attack")
	}
	attacker := &active.Board[m.Attacker]
	attacker.CanAttack = false

	if m.Target.Kind == TargetHero {
		gs.damageHero(opponent, attacker.Attack)
		return
	}
	if m.Target.Slot >= len(opponent.Board) {
		panic("attack target is not on the board")
	}
	victim := &opponent.Board[m.Target.Slot]
	victim.Health -= attacker.Attack
	attacker.Health -= victim.Attack
	active.Board = removeDead(active.Board)
	opponent.Board = removeDead(opponent.Board)
}

func (gs *GameState) playCard(m PlayCardMove) {
	active := gs.active()
	opponent := gs.opponent()
	card := CardByID(m.Card)
	if card.Cost > active.Mana {
		panic("not enough mana to play the card")
	}
	if !discard(active, m.Card) {
		panic("playing a card that is not in hand")
	}
	active.Mana -= card.Cost

	if card.Kind == MinionKind {
		if len(active.Board) >= MaxBoardSize {
			panic("board is full")
		}
		active.Board = append(active.Board, Minion{
			Card:      m.Card,
			Attack:    card.Attack,
			Health:    card.Health,
			CanAttack: card.Charge,
		})
		return
	}

	switch card.Effect {
	case DamageTarget:
		if m.Target.Kind == TargetHero {
			gs.damageHero(opponent, card.Amount)
			return
		}
		opponent.Board[m.Target.Slot].Health -= card.Amount
		opponent.Board = removeDead(opponent.Board)
	case DamageEnemies:
		for i := range opponent.Board {
			opponent.Board[i].Health -= card.Amount
		}
		opponent.Board = removeDead(opponent.Board)
	case HealHero:
		active.Health = min(active.Health+card.Amount, StartingHealth)
	case SetStats:
		minion := &opponent.Board[m.Target.Slot]
		minion.Attack = card.Amount
		minion.Health = card.Amount
	default:
		panic("spell without an effect")
	}
}

func (gs *GameState) damageHero(p *PlayerState, amount int) {
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		gs.Won = gs.Players[0].Name
		if p.Name == gs.Players[0].Name {
			gs.Won = gs.Players[1].Name
		}
	}
}

func discard(p *PlayerState, id CardID) bool {
	for i, held := range p.Hand {
		if held == id {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

func removeDead(board []Minion) []Minion {
	alive := board[:0]
	for _, m := range board {
		if m.Health > 0 {
			alive = append(alive, m)
		}
	}
	return alive
}

func (gs *GameState) String() string {
	a, o := gs.active(), gs.opponent()
	return fmt.Sprintf("%s to act: %dhp %d/%d mana %d hand %d board | %s: %dhp %d board",
		a.Name, a.Health, a.Mana, a.MaxMana, len(a.Hand), len(a.Board),
		o.Name, o.Health, len(o.Board))
}

var _ State = (*GameState)(nil)
