package schedule

// RoundRobin pairs every entrant with every other entrant once, using the
// circle method: seat i meets the seat opposite it, then every seat but the
// first moves one place around the circle. Odd fields get a phantom seat
// whose encounters are skipped.
type RoundRobin struct {
	entrants int

	circle []int
	next   int
}

func (rr *RoundRobin) Initialize(n int) {
	rr.entrants = n
	rr.circle = make([]int, n+n%2)
	for i := range rr.circle {
		rr.circle[i] = i
	}

	rr.next = 0
}

func (rr *RoundRobin) NextEncounter() (int, int) {
	for {
		if rr.next >= len(rr.circle)/2 {
			rr.next = 0
			rr.rotate()
		}

		player1 := rr.circle[rr.next]
		player2 := rr.circle[len(rr.circle)-1-rr.next]
		rr.next++

		if player1 < rr.entrants && player2 < rr.entrants {
			return player1, player2
		}
	}
}

func (rr *RoundRobin) rotate() {
	last := rr.circle[len(rr.circle)-1]
	copy(rr.circle[2:], rr.circle[1:len(rr.circle)-1])
	rr.circle[1] = last
}

func (rr *RoundRobin) TotalEncounters() int {
	if rr.entrants < 2 {
		return 0
	}

	return rr.entrants * (rr.entrants - 1) / 2
}
