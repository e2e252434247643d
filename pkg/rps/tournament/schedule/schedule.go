package schedule

import (
	"fmt"
)

const (
	RoundRobinName = "round-robin"
	GauntletName   = "gauntlet"
)

func New(name string) (Scheduler, error) {
	switch name {
	case RoundRobinName, "":
		return &RoundRobin{}, nil
	case GauntletName:
		return &Gauntlet{}, nil
	default:
		return nil, fmt.Errorf("new schedule: invalid scheduler %s", name)
	}
}

// Scheduler enumerates the encounters between n entrants, identified by
// their index in [0, n). Initialize must be called before NextEncounter,
// which may be called exactly TotalEncounters times.
type Scheduler interface {
	Initialize(int)
	NextEncounter() (int, int)
	TotalEncounters() int
}

// Pairs drains a freshly initialized scheduler into a slice.
func Pairs(s Scheduler, n int) [][2]int {
	s.Initialize(n)

	pairs := make([][2]int, 0, s.TotalEncounters())
	for i := 0; i < s.TotalEncounters(); i++ {
		p1, p2 := s.NextEncounter()
		pairs = append(pairs, [2]int{p1, p2})
	}

	return pairs
}
