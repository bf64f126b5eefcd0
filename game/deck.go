package game

import (
	"golang.org/x/exp/rand"
)

// DeckCopies is the number of copies of each catalog card in a fresh deck.
const DeckCopies = 2

// Deck is the multiset of cards a player has not yet drawn. Value semantics:
// copying a GameState copies its decks.
type Deck struct {
	counts [NumCards]uint8
	total  int
}

func NewStandardDeck() Deck {
	var d Deck
	for i := range d.counts {
		d.counts[i] = DeckCopies
	}
	d.total = NumCards * DeckCopies
	return d
}

func (d Deck) Size() int {
	return d.total
}

type Draw struct {
	Card        CardID
	Probability float64
}

// Draws lists every distinct drawable card with its probability, in card-ID
// order. Probability of a card = copies remaining / cards remaining.
func (d Deck) Draws() []Draw {
	if d.total == 0 {
		return nil
	}
	draws := make([]Draw, 0, NumCards)
	for id, count := range d.counts {
		if count == 0 {
			continue
		}
		draws = append(draws, Draw{
			Card:        CardID(id),
			Probability: float64(count) / float64(d.total),
		})
	}
	return draws
}

// Remove takes one copy of the card out of the deck.
func (d Deck) Remove(id CardID) Deck {
	if d.counts[id] == 0 {
		panic("removing a card that is not in the deck")
	}
	d.counts[id]--
	d.total--
	return d
}

// Sample draws a uniformly random card, reporting ok=false on an empty deck.
func (d Deck) Sample(rng *rand.Rand) (CardID, bool) {
	if d.total == 0 {
		return 0, false
	}
	n := rng.Intn(d.total)
	for id, count := range d.counts {
		n -= int(count)
		if n < 0 {
			return CardID(id), true
		}
	}
	panic("deck counts do not add up to total")
}
