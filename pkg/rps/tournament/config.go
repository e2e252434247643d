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
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/rps/pkg/rps/move"
)

type Config struct {
	// Tournament id, generated when missing.
	ID string `yaml:"id,omitempty"`

	// The move set used by the tournament: classic or extended.
	Variant string `yaml:"variant"`

	// Number of times every pair of players meets.
	Rounds int `yaml:"rounds"`

	// Seed for the quote of the day. Random when unset.
	Seed *uint64 `yaml:"seed,omitempty"`

	// Players in registration order.
	Players []string `yaml:"players"`
}

func LoadConfig(path string) (Config, error) {
	var config Config

	file, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	return config, nil
}

func (config Config) Dump(path string) error {
	file, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, file, 0644)
}

// NewTournament builds a game from a config, registering its players in
// order.
func NewTournament(config Config) (*Game, error) {
	variant, err := move.ParseVariant(config.Variant)
	if err != nil {
		return nil, err
	}

	if config.Rounds < 0 || config.Rounds > math.MaxUint16 {
		return nil, fmt.Errorf("new tournament: invalid round count %d: %w", config.Rounds, ErrInvalidState)
	}

	game := New()
	if config.Seed != nil {
		game = NewWithSeed(*config.Seed)
	}

	if config.ID != "" {
		id, err := uuid.Parse(config.ID)
		if err != nil {
			return nil, fmt.Errorf("new tournament: invalid id %q: %w", config.ID, err)
		}

		game.id = id
	}

	if err := game.SetVariant(variant); err != nil {
		return nil, err
	}

	if config.Rounds > 0 {
		if err := game.SetRounds(uint16(config.Rounds)); err != nil {
			return nil, err
		}
	}

	for _, name := range config.Players {
		if _, err := game.AddPlayer(name); err != nil {
			return nil, fmt.Errorf("new tournament: %w", err)
		}
	}

	return game, nil
}

// Config returns the settings and roster needed to rebuild the game. Results
// are not part of it.
func (game *Game) Config() Config {
	seed := game.seed
	config := Config{
		ID:      game.id.String(),
		Variant: game.variant.Name(),
		Rounds:  int(game.rounds),
		Seed:    &seed,
	}

	for _, player := range game.players.All() {
		config.Players = append(config.Players, player.Name)
	}

	return config
}
