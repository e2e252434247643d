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
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/pkg/rps/move"
	"laptudirm.com/x/rps/pkg/rps/tournament/schedule"
)

// Ceiling is subtracted from a pending match's raw score to get its
// priority. It is larger than any raw score reachable with 16-bit rounds
// and scores, so pending priorities are always positive.
const Ceiling int64 = 100_000_000

// RoundWeight makes the round number dominate pending priorities, so
// earlier rounds always surface first.
const RoundWeight int64 = 1000

// Game is a single tournament session: the player and match registries,
// the priority queue kept in lock-step with the matches, and the settings
// the schedule is built from. A Game is not safe for concurrent use.
type Game struct {
	id uuid.UUID

	players *Players
	matches *Matches
	queue   *Queue

	rounds  uint16
	variant move.Variant

	// seed only drives quote selection.
	seed uint64
}

// New returns an empty single round classic tournament.
func New() *Game {
	return NewWithSeed(rand.Uint64())
}

func NewWithSeed(seed uint64) *Game {
	return &Game{
		id: uuid.New(),

		players: NewPlayers(),
		matches: NewMatches(),
		queue:   NewQueue(),

		rounds:  1,
		variant: move.Classic,
		seed:    seed,
	}
}

// Reset empties the tournament and restores the default settings. The
// draw seed is kept.
func (game *Game) Reset() {
	game.players = NewPlayers()
	game.matches = NewMatches()
	game.queue.Clear()
	game.rounds = 1
	game.variant = move.Classic

	logrus.WithField("tournament", game.id).Debug("tournament: reset")
}

// ID identifies the tournament across saves. Reset keeps it.
func (game *Game) ID() uuid.UUID { return game.id }

func (game *Game) Variant() move.Variant { return game.variant }
func (game *Game) Rounds() uint16        { return game.rounds }
func (game *Game) Seed() uint64          { return game.seed }

// SetVariant switches the move alphabet. It is only allowed before any
// result has been recorded.
func (game *Game) SetVariant(variant move.Variant) error {
	if game.matches.AnyPlayed() {
		return fmt.Errorf("set variant %s: matches already played: %w", variant, ErrInvalidState)
	}

	game.variant = variant
	game.settle()

	logrus.WithField("variant", variant).Debug("tournament: variant changed")
	return nil
}

// SetRounds grows the tournament to n rounds, scheduling one match per
// player pair for every new round. Values not above the current round
// count leave the tournament unchanged; use RemoveRound to shrink it.
func (game *Game) SetRounds(n uint16) error {
	if n < 1 {
		return fmt.Errorf("set rounds %d: %w", n, ErrInvalidState)
	}

	if n <= game.rounds {
		return nil
	}

	ids := game.players.IDs()

	var keys []Key
	for _, pair := range pairs(schedule.RoundRobinName, len(ids)) {
		first, second := ids[min(pair[0], pair[1])], ids[max(pair[0], pair[1])]
		for round := game.rounds + 1; round <= n && round > game.rounds; round++ {
			keys = append(keys, pairing(first, second, round))
		}
	}

	if err := game.schedule(keys); err != nil {
		return err
	}

	game.rounds = n
	game.settle()

	logrus.WithFields(logrus.Fields{
		"rounds":  n,
		"matches": len(keys),
	}).Debug("tournament: rounds added")
	return nil
}

func (game *Game) AddRound() error {
	if game.rounds == math.MaxUint16 {
		return fmt.Errorf("add round: %w", ErrInvalidState)
	}

	return game.SetRounds(game.rounds + 1)
}

// RemoveRound drops the highest round. It refuses if that is the only
// round or if any of its matches has a result.
func (game *Game) RemoveRound() error {
	if game.rounds == 1 {
		return fmt.Errorf("remove round: cannot remove the only round: %w", ErrInvalidState)
	}

	keys := game.matches.Round(game.rounds)
	for _, key := range keys {
		if match, _ := game.matches.Get(key); match.Played() {
			return fmt.Errorf("remove round %d: %s: %w", game.rounds, key, ErrAlreadyPlayed)
		}
	}

	for _, key := range keys {
		game.mustSucceed(game.matches.Unschedule(key))
		game.mustSucceed(game.queue.Remove(key))
	}

	game.rounds--
	game.settle()

	logrus.WithField("rounds", game.rounds).Debug("tournament: round removed")
	return nil
}

// AddPlayer registers a new player and schedules a match against every
// existing player in every round.
func (game *Game) AddPlayer(name string) (Player, error) {
	if game.players.Contains(name) {
		return Player{}, fmt.Errorf("add player %q: %w", name, ErrDuplicateName)
	}

	id, err := game.players.NextID()
	if err != nil {
		return Player{}, err
	}

	// the newcomer is entrant 0 and meets everyone else once per round
	entrants := append([]uint16{id}, game.players.IDs()...)

	var keys []Key
	for _, pair := range pairs(schedule.GauntletName, len(entrants)) {
		existing := entrants[pair[1]]
		for round := uint16(1); round <= game.rounds; round++ {
			keys = append(keys, pairing(existing, id, round))
		}
	}

	if err := game.checkUnscheduled(keys); err != nil {
		return Player{}, err
	}

	player, err := game.players.Add(name)
	if err != nil {
		return Player{}, err
	}

	game.mustSucceed(game.schedule(keys))
	game.settle()

	logrus.WithFields(logrus.Fields{
		"id":      player.ID,
		"name":    player.Name,
		"matches": len(keys),
	}).Debug("tournament: player added")
	return player, nil
}

// AddResult records the moves of a scheduled match. Recording over an
// existing result fails with ErrAlreadyPlayed; remove it first.
func (game *Game) AddResult(key Key, move1, move2 move.Move) error {
	if err := game.matches.Record(key, game.variant, move1, move2); err != nil {
		return err
	}

	game.settle()

	logrus.WithFields(logrus.Fields{
		"match": key,
		"move1": move1,
		"move2": move2,
	}).Debug("tournament: result added")
	return nil
}

// RemoveResult clears the result of a match and rebuilds every score from
// the remaining results.
func (game *Game) RemoveResult(key Key) error {
	if err := game.matches.Clear(key); err != nil {
		return err
	}

	// back to pending so the next pass ranks it again
	game.mustSucceed(game.queue.Set(key, 0))
	game.settle()

	logrus.WithField("match", key).Debug("tournament: result removed")
	return nil
}

// RemoveLatest removes the result of the last entry of PlayedMatches, the
// most deeply sunk match. After earlier results have been removed this can
// be an older result than the most recent one, since later matches sink
// less far. It reports false if nothing was played.
func (game *Game) RemoveLatest() (Key, bool) {
	played := game.PlayedMatches()
	if len(played) == 0 {
		return Key{}, false
	}

	key := played[len(played)-1].Key
	game.mustSucceed(game.RemoveResult(key))
	return key, true
}

// pairing orients a match between two players for a round. The player
// who joined first is player1 in odd rounds and player2 in even ones.
func pairing(first, second uint16, round uint16) Key {
	if round%2 == 1 {
		return Key{Player1: first, Player2: second, Round: round}
	}

	return Key{Player1: second, Player2: first, Round: round}
}

// pairs enumerates the encounters between n entrants with the named
// scheduler.
func pairs(scheduler string, n int) [][2]int {
	s, err := schedule.New(scheduler)
	if err != nil {
		panic(fmt.Sprintf("tournament: %v", err))
	}

	return schedule.Pairs(s, n)
}

func (game *Game) checkUnscheduled(keys []Key) error {
	seen := make(map[Key]bool, len(keys))
	for _, key := range keys {
		if seen[key] || game.matches.Contains(key) {
			return fmt.Errorf("schedule %s: %w", key, ErrDuplicateMatch)
		}

		seen[key] = true
	}

	return nil
}

// schedule inserts all keys into the registry and the queue, or none.
func (game *Game) schedule(keys []Key) error {
	if err := game.checkUnscheduled(keys); err != nil {
		return err
	}

	for _, key := range keys {
		game.mustSucceed(game.matches.Schedule(key))
		game.mustSucceed(game.queue.Push(key, 0))
	}

	return nil
}

// settle brings scores and priorities up to date after a mutation.
func (game *Game) settle() {
	game.recompute()
	game.updatePriorities()
}

// recompute rebuilds every player's score and counters from the recorded
// results. It is the only place scores are written.
func (game *Game) recompute() {
	game.players.resetScores()

	for _, match := range game.matches.All() {
		if !match.Played() {
			continue
		}

		score1, score2 := match.Scores(game.variant)
		game.players.credit(match.Player1, score1, match.Outcome)
		game.players.credit(match.Player2, score2, match.Outcome.Reverse())
	}
}

// updatePriorities ranks every pending match and sinks newly completed
// ones below zero. Entries that are already negative are left alone, so
// completed matches keep the order they were sunk in.
func (game *Game) updatePriorities() {
	if game.players.Len() == 0 {
		return
	}

	var played int64
	for _, player := range game.players.All() {
		played += int64(player.Played)
	}

	completed := played/2 + 1
	capacity := int64(game.rounds) * int64(game.players.Len()-1)
	ceiling := int64(game.variant.MaxValue())

	potential := func(player Player) int64 {
		return (capacity - int64(player.Played)) * ceiling
	}

	for _, match := range game.matches.All() {
		priority, found := game.queue.Priority(match.Key)
		if !found {
			panic(fmt.Sprintf("tournament: match %s missing from queue", match.Key))
		}

		if priority < 0 {
			continue
		}

		if match.Played() {
			game.mustSucceed(game.queue.Set(match.Key, -completed))
			continue
		}

		player1 := game.players.list[match.Player1]
		player2 := game.players.list[match.Player2]

		raw := int64(player1.Score) - potential(*player1) +
			int64(player2.Score) - potential(*player2) +
			int64(match.Round)*RoundWeight

		game.mustSucceed(game.queue.Set(match.Key, Ceiling-raw))
	}
}

// mustSucceed panics on errors that can only come from the registries and
// the queue falling out of sync.
func (game *Game) mustSucceed(err error) {
	if err != nil {
		panic(fmt.Sprintf("tournament: registry desynchronized: %v", err))
	}
}
