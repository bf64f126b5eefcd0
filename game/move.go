package game

import "fmt"

type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetHero
	TargetMinion
)

// Target points at the opposing hero or a slot on the opposing board.
type Target struct {
	Kind TargetKind
	Slot int
}

// PlayCardMove plays a card from the active player's hand.
type PlayCardMove struct {
	Card   CardID
	Target Target
}

func (m PlayCardMove) IsStochastic() bool { return false }

func (m PlayCardMove) String() string {
	card := CardByID(m.Card)
	switch m.Target.Kind {
	case TargetHero:
		return fmt.Sprintf("play %s at enemy hero", card.Name)
	case TargetMinion:
		return fmt.Sprintf("play %s at enemy minion %d", card.Name, m.Target.Slot)
	}
	return fmt.Sprintf("play %s", card.Name)
}

// AttackMove attacks with the minion in the given board slot.
type AttackMove struct {
	Attacker int
	Target   Target
}

func (m AttackMove) IsStochastic() bool { return false }

func (m AttackMove) String() string {
	if m.Target.Kind == TargetHero {
		return fmt.Sprintf("attack enemy hero with minion %d", m.Attacker)
	}
	return fmt.Sprintf("attack enemy minion %d with minion %d", m.Target.Slot, m.Attacker)
}

// EndTurnMove passes the turn. Draw records whether the opponent's deck still
// holds cards: their start-of-turn draw is then a stochastic outcome.
type EndTurnMove struct {
	Draw bool
}

func (m EndTurnMove) IsStochastic() bool { return m.Draw }

func (m EndTurnMove) String() string { return "end turn" }
