package game

// EvaluateHealth judges a cutoff state by remaining hero health: the higher
// hero wins the capped playout. Ties fall back to total board attack, then
// to the player about to act.
func EvaluateHealth(s State) string {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}

	p1, p2 := &gs.Players[0], &gs.Players[1]
	if p1.Health != p2.Health {
		if p1.Health > p2.Health {
			return p1.Name
		}
		return p2.Name
	}

	a1, a2 := boardAttack(p1), boardAttack(p2)
	if a1 != a2 {
		if a1 > a2 {
			return p1.Name
		}
		return p2.Name
	}

	return gs.Player()
}

func boardAttack(p *PlayerState) int {
	total := 0
	for _, m := range p.Board {
		total += m.Attack
	}
	return total
}
