package schedule

// Gauntlet pairs entrant 0 with every other entrant once, in index order.
type Gauntlet struct {
	entrants int
	opponent int
}

func (g *Gauntlet) Initialize(n int) {
	g.entrants = n
	g.opponent = 0
}

func (g *Gauntlet) NextEncounter() (int, int) {
	g.opponent++
	return 0, g.opponent
}

func (g *Gauntlet) TotalEncounters() int {
	return max(g.entrants-1, 0)
}
