package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestDeck(t *testing.T) {
	t.Run("building the standard deck", func(t *testing.T) {
		d := NewStandardDeck()

		require.Equal(t, NumCards*DeckCopies, d.Size())
		draws := d.Draws()
		require.Equal(t, NumCards, len(draws), "Every card is drawable")
		for _, draw := range draws {
			require.InDelta(t, 1.0/float64(NumCards), draw.Probability, 1e-9,
				"A fresh deck draws each card with equal probability")
		}
	})

	t.Run("shifting probabilities after removals", func(t *testing.T) {
		d := NewStandardDeck()
		d = d.Remove(0)
		d = d.Remove(0)

		require.Equal(t, NumCards*DeckCopies-2, d.Size())
		draws := d.Draws()
		require.Equal(t, NumCards-1, len(draws), "An exhausted card stops being drawable")
		require.NotEqual(t, CardID(0), draws[0].Card)
		total := 0.0
		for _, draw := range draws {
			total += draw.Probability
		}
		require.InDelta(t, 1.0, total, 1e-9)
	})

	t.Run("copying on removal", func(t *testing.T) {
		d := NewStandardDeck()
		d.Remove(0)

		require.Equal(t, NumCards*DeckCopies, d.Size(), "Remove returns a new deck")
	})

	t.Run("rejecting removal of an absent card", func(t *testing.T) {
		d := deckWith(Deck{}, 1, 1)

		require.Panics(t, func() {
			d.Remove(0)
		})
	})

	t.Run("sampling only remaining cards", func(t *testing.T) {
		d := deckWith(Deck{}, 3, 2)
		rng := rand.New(rand.NewSource(7))

		for i := 0; i < 10; i++ {
			id, ok := d.Sample(rng)
			require.True(t, ok)
			require.Equal(t, CardID(3), id, "Only one card remains in the deck")
		}
	})

	t.Run("reporting an empty deck", func(t *testing.T) {
		var d Deck

		require.Nil(t, d.Draws())
		_, ok := d.Sample(rand.New(rand.NewSource(1)))
		require.False(t, ok)
	})
}
