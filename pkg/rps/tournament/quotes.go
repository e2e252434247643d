package tournament

import (
	"math/rand/v2"
)

type Quote struct {
	Text, Author string
}

var quotes = []Quote{
	{"All warfare is based on deception.", "Sun Tzu"},
	{"The supreme art of war is to subdue the enemy without fighting.", "Sun Tzu"},
	{"In the midst of chaos, there is also opportunity.", "Sun Tzu"},
	{"Fortune favors the bold.", "Virgil"},
	{"The die is cast.", "Julius Caesar"},
	{"Chance favors only the prepared mind.", "Louis Pasteur"},
	{"It is not enough to win; everyone else must lose.", "Gore Vidal"},
	{"The best laid schemes of mice and men go often awry.", "Robert Burns"},
	{"He who fights and runs away may live to fight another day.", "Demosthenes"},
	{"Know thy self, know thy enemy.", "Sun Tzu"},
	{"A game is a series of interesting choices.", "Sid Meier"},
	{"We do not stop playing because we grow old.", "George Bernard Shaw"},
}

// Quote picks a quote for the current state of the tournament. The choice
// depends only on the draw seed and the number of completed matches.
func (game *Game) Quote() Quote {
	r := rand.New(rand.NewPCG(game.seed, uint64(game.PlayedCount())))
	return quotes[r.IntN(len(quotes))]
}
