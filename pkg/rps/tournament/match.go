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

	"laptudirm.com/x/rps/pkg/rps/move"
)

// Key identifies a scheduled match. Player1 and Player2 are player ids.
type Key struct {
	Player1, Player2 uint16
	Round            uint16
}

func (key Key) String() string {
	return fmt.Sprintf("%d-%d#%d", key.Player1, key.Player2, key.Round)
}

// Involves reports whether the player takes part in the match.
func (key Key) Involves(id uint16) bool {
	return key.Player1 == id || key.Player2 == id
}

type Match struct {
	Key

	Move1, Move2 move.Move

	// Outcome is from Player1's point of view and only meaningful once
	// the match has been played.
	Outcome move.Outcome
}

func (match Match) Played() bool {
	return match.Move1.IsSet() && match.Move2.IsSet()
}

// Scores returns the points each side earned in the match, or zero for
// both if it has not been played.
func (match Match) Scores(variant move.Variant) (uint16, uint16) {
	if !match.Played() {
		return 0, 0
	}

	return variant.Score(match.Move1, match.Move2)
}

// Winner returns the id of the winning player, or 0 for a draw or an
// unplayed match.
func (match Match) Winner() uint16 {
	if !match.Played() {
		return 0
	}

	switch match.Outcome {
	case move.Win:
		return match.Player1
	case move.Lose:
		return match.Player2
	default:
		return 0
	}
}

// Matches is the match registry. Iteration follows scheduling order.
type Matches struct {
	list map[Key]*Match
	keys []Key
}

func NewMatches() *Matches {
	return &Matches{list: make(map[Key]*Match)}
}

func (matches *Matches) Len() int {
	return len(matches.keys)
}

func (matches *Matches) Contains(key Key) bool {
	_, found := matches.list[key]
	return found
}

func (matches *Matches) Schedule(key Key) error {
	if matches.Contains(key) {
		return fmt.Errorf("schedule %s: %w", key, ErrDuplicateMatch)
	}

	matches.list[key] = &Match{Key: key}
	matches.keys = append(matches.keys, key)
	return nil
}

func (matches *Matches) Unschedule(key Key) error {
	if !matches.Contains(key) {
		return fmt.Errorf("unschedule %s: %w", key, ErrNotFound)
	}

	delete(matches.list, key)
	matches.keys = slices.DeleteFunc(matches.keys, func(k Key) bool {
		return k == key
	})
	return nil
}

func (matches *Matches) Get(key Key) (Match, error) {
	match, found := matches.list[key]
	if !found {
		return Match{}, fmt.Errorf("match %s: %w", key, ErrNotFound)
	}

	return *match, nil
}

// Record stores the moves of a match and derives its outcome. A match that
// already has a result must be cleared before it can be recorded again.
func (matches *Matches) Record(key Key, variant move.Variant, move1, move2 move.Move) error {
	match, found := matches.list[key]
	if !found {
		return fmt.Errorf("record %s: %w", key, ErrNotFound)
	}

	if match.Played() {
		return fmt.Errorf("record %s: %w", key, ErrAlreadyPlayed)
	}

	for _, m := range [2]move.Move{move1, move2} {
		if !variant.Contains(m) {
			return fmt.Errorf("record %s: %s in %s: %w", key, m, variant, ErrInvalidMove)
		}
	}

	match.Move1, match.Move2 = move1, move2
	match.Outcome = variant.Result(move1, move2)
	return nil
}

func (matches *Matches) Clear(key Key) error {
	match, found := matches.list[key]
	if !found {
		return fmt.Errorf("clear %s: %w", key, ErrNotFound)
	}

	match.Move1, match.Move2 = move.Unset, move.Unset
	match.Outcome = move.Draw
	return nil
}

// All returns snapshots of every match in scheduling order.
func (matches *Matches) All() []Match {
	all := make([]Match, 0, len(matches.keys))
	for _, key := range matches.keys {
		all = append(all, *matches.list[key])
	}

	return all
}

// Round returns the keys of every match scheduled in the given round.
func (matches *Matches) Round(round uint16) []Key {
	var keys []Key
	for _, key := range matches.keys {
		if key.Round == round {
			keys = append(keys, key)
		}
	}

	return keys
}

func (matches *Matches) AnyPlayed() bool {
	for _, match := range matches.list {
		if match.Played() {
			return true
		}
	}

	return false
}
