package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Hash folds every state field that affects play into an FNV-1a digest.
// Hands hash as multisets: holding the same cards in a different order is
// the same state.
func (gs *GameState) Hash() StateHash {
	h := fnv.New64a()
	buf := make([]byte, 0, 256)

	buf = append(buf, byte(gs.Active))
	buf = appendString(buf, gs.Won)

	for i := range gs.Players {
		p := &gs.Players[i]
		buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Health))
		buf = append(buf, byte(p.MaxMana), byte(p.Mana))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Turn))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Fatigue))

		var held [NumCards]uint8
		for _, id := range p.Hand {
			held[id]++
		}
		buf = append(buf, held[:]...)
		buf = append(buf, p.Deck.counts[:]...)

		buf = append(buf, byte(len(p.Board)))
		for _, m := range p.Board {
			buf = append(buf, byte(m.Card))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(m.Attack))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(m.Health))
			if m.CanAttack {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}

	h.Write(buf)
	return StateHash(h.Sum64())
}

func appendString(buf []byte, s string) []byte {
	buf = append(buf, byte(len(s)))
	return append(buf, s...)
}
