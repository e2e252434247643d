// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tournament

import (
	"fmt"
	"slices"

	"laptudirm.com/x/rps/pkg/internal/util"
)

// Played is a completed match together with its sunk priority.
type Played struct {
	Match
	Priority int64
}

// NextMatch returns the pending match that should be played next.
func (game *Game) NextMatch() (Match, bool) {
	top, found := game.queue.Peek()
	if !found || top.Priority <= 0 {
		return Match{}, false
	}

	return game.match(top.Key), true
}

// NextMatches returns up to n pending matches, best first.
func (game *Game) NextMatches(n int) []Match {
	var next []Match
	for _, entry := range game.queue.Sorted() {
		if len(next) >= n || entry.Priority <= 0 {
			break
		}

		next = append(next, game.match(entry.Key))
	}

	return next
}

// PlayedMatches returns every completed match in descending priority
// order, which runs from the earliest to the latest completion.
func (game *Game) PlayedMatches() []Played {
	var played []Played
	for _, entry := range game.queue.Sorted() {
		if entry.Priority < 0 {
			played = append(played, Played{Match: game.match(entry.Key), Priority: entry.Priority})
		}
	}

	return played
}

func (game *Game) PlayedCount() int {
	count := 0
	for _, entry := range game.queue.Sorted() {
		if entry.Priority < 0 {
			count++
		}
	}

	return count
}

func (game *Game) RemainingCount() int {
	return game.matches.Len() - game.PlayedCount()
}

// Leaderboard returns the players ordered by score, highest first, with
// ties broken by ascending id.
func (game *Game) Leaderboard() []Player {
	return game.players.Leaderboard()
}

func (game *Game) Player(id uint16) (Player, error) {
	return game.players.Get(id)
}

func (game *Game) PlayerName(id uint16) (string, error) {
	return game.players.Name(id)
}

// FindPlayer looks a player up by exact name.
func (game *Game) FindPlayer(name string) (Player, bool) {
	return game.players.Find(name)
}

// Players returns every player in id order.
func (game *Game) Players() []Player {
	return game.players.All()
}

// PlayersByName returns every player in natural name order, so that
// "Player 2" sorts before "Player 10".
func (game *Game) PlayersByName() []Player {
	players := game.players.All()
	slices.SortStableFunc(players, func(a, b Player) int {
		return util.NaturalCompare(a.Name, b.Name)
	})

	return players
}

func (game *Game) Match(key Key) (Match, error) {
	return game.matches.Get(key)
}

// Matches returns every scheduled match in scheduling order.
func (game *Game) Matches() []Match {
	return game.matches.All()
}

// Between returns the matches between two players ordered by round.
func (game *Game) Between(a, b uint16) []Match {
	var between []Match
	for _, match := range game.matches.All() {
		if match.Involves(a) && match.Involves(b) && a != b {
			between = append(between, match)
		}
	}

	slices.SortStableFunc(between, func(x, y Match) int {
		return int(x.Round) - int(y.Round)
	})

	return between
}

func (game *Game) Priority(key Key) (int64, error) {
	priority, found := game.queue.Priority(key)
	if !found {
		return 0, fmt.Errorf("priority %s: %w", key, ErrNotFound)
	}

	return priority, nil
}

// match fetches a match the queue knows about.
func (game *Game) match(key Key) Match {
	match, err := game.matches.Get(key)
	game.mustSucceed(err)
	return match
}
