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
	"slices"

	"laptudirm.com/x/rps/pkg/rps/move"
)

type Player struct {
	ID   uint16
	Name string

	Score  uint16
	Played uint16

	Wins, Draws, Losses uint16
}

// Players is the player registry, ordered by id. Ids are handed out as
// max(existing)+1 starting at 1, so insertion order is id order.
type Players struct {
	list map[uint16]*Player
	ids  []uint16
}

func NewPlayers() *Players {
	return &Players{list: make(map[uint16]*Player)}
}

func (players *Players) Len() int {
	return len(players.ids)
}

// NextID returns the id the next added player will receive.
func (players *Players) NextID() (uint16, error) {
	if len(players.ids) == 0 {
		return 1, nil
	}

	last := players.ids[len(players.ids)-1]
	if last == math.MaxUint16 {
		return 0, fmt.Errorf("%w: player ids exhausted", ErrInvalidState)
	}

	return last + 1, nil
}

func (players *Players) Contains(name string) bool {
	_, found := players.Find(name)
	return found
}

// Find looks a player up by exact name.
func (players *Players) Find(name string) (Player, bool) {
	for _, id := range players.ids {
		if player := players.list[id]; player.Name == name {
			return *player, true
		}
	}

	return Player{}, false
}

func (players *Players) Add(name string) (Player, error) {
	if name == "" {
		return Player{}, fmt.Errorf("%w: empty player name", ErrInvalidState)
	}

	if players.Contains(name) {
		return Player{}, fmt.Errorf("add player %q: %w", name, ErrDuplicateName)
	}

	id, err := players.NextID()
	if err != nil {
		return Player{}, err
	}

	player := &Player{ID: id, Name: name}
	players.list[id] = player
	players.ids = append(players.ids, id)
	return *player, nil
}

func (players *Players) Get(id uint16) (Player, error) {
	player, found := players.list[id]
	if !found {
		return Player{}, fmt.Errorf("player %d: %w", id, ErrNotFound)
	}

	return *player, nil
}

func (players *Players) Name(id uint16) (string, error) {
	player, err := players.Get(id)
	return player.Name, err
}

// IDs returns every player id in ascending order.
func (players *Players) IDs() []uint16 {
	return slices.Clone(players.ids)
}

// All returns snapshots of every player in id order.
func (players *Players) All() []Player {
	all := make([]Player, 0, len(players.ids))
	for _, id := range players.ids {
		all = append(all, *players.list[id])
	}

	return all
}

// Leaderboard returns every player ordered by score, highest first. Equal
// scores keep id order.
func (players *Players) Leaderboard() []Player {
	board := players.All()
	slices.SortStableFunc(board, func(a, b Player) int {
		return int(b.Score) - int(a.Score)
	})

	return board
}

func (players *Players) resetScores() {
	for _, player := range players.list {
		player.Score, player.Played = 0, 0
		player.Wins, player.Draws, player.Losses = 0, 0, 0
	}
}

func (players *Players) credit(id uint16, score uint16, outcome move.Outcome) {
	player := players.list[id]
	player.Played++
	player.Score += score

	switch outcome {
	case move.Win:
		player.Wins++
	case move.Draw:
		player.Draws++
	case move.Lose:
		player.Losses++
	}
}
