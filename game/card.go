package game

type CardID uint8

type CardKind int

const (
	MinionKind CardKind = iota
	SpellKind
)

type EffectKind int

const (
	NoEffect      EffectKind = iota
	DamageTarget             // deal Amount damage to one enemy target
	DamageEnemies            // deal Amount damage to every enemy minion
	HealHero                 // restore Amount health to the casting hero
	SetStats                 // set an enemy minion's attack and health to Amount
)

type Card struct {
	ID     CardID
	Name   string
	Kind   CardKind
	Cost   int
	Attack int
	Health int
	Charge bool
	Effect EffectKind
	Amount int
}

// The static card catalog. Decks carry DeckCopies of each entry.
var catalog = [...]Card{
	{ID: 0, Name: "Hungry Naga", Kind: MinionKind, Cost: 1, Attack: 1, Health: 1},
	{ID: 1, Name: "Aberration", Kind: MinionKind, Cost: 1, Attack: 1, Health: 1, Charge: true},
	{ID: 2, Name: "Mechanical Parrot", Kind: MinionKind, Cost: 1, Attack: 3, Health: 6},
	{ID: 3, Name: "Humongous Razorleaf", Kind: MinionKind, Cost: 3, Attack: 4, Health: 8},
	{ID: 4, Name: "Stormwind Knight", Kind: MinionKind, Cost: 4, Attack: 2, Health: 5, Charge: true},
	{ID: 5, Name: "Animated Statue", Kind: MinionKind, Cost: 6, Attack: 10, Health: 10},
	{ID: 6, Name: "Healing Touch", Kind: SpellKind, Cost: 3, Effect: HealHero, Amount: 8},
	{ID: 7, Name: "Fireball", Kind: SpellKind, Cost: 4, Effect: DamageTarget, Amount: 6},
	{ID: 8, Name: "Polymorph", Kind: SpellKind, Cost: 4, Effect: SetStats, Amount: 1},
	{ID: 9, Name: "Flamestrike", Kind: SpellKind, Cost: 7, Effect: DamageEnemies, Amount: 4},
}

const NumCards = len(catalog)

func CardByID(id CardID) Card {
	return catalog[id]
}
