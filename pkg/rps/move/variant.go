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

package move

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant is a move alphabet together with its win relation. The alphabet
// size must be odd so every move beats exactly half of the others.
type Variant struct {
	name  string
	moves []Move
}

var (
	Classic  = Variant{name: "classic", moves: []Move{Rock, Paper, Scissors}}
	Extended = Variant{name: "extended", moves: []Move{Rock, Paper, Scissors, Spock, Lizard}}
)

// Variants lists the supported variants in order of size.
var Variants = []Variant{Classic, Extended}

func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic", "rps", "3", "":
		return Classic, nil
	case "extended", "rpsls", "5":
		return Extended, nil
	default:
		return Variant{}, fmt.Errorf("parse variant: unknown variant %q", name)
	}
}

func (v Variant) Name() string { return v.name }
func (v Variant) Size() int    { return len(v.moves) }

func (v Variant) String() string {
	return v.name
}

// Moves returns a copy of the variant's alphabet in ordinal order.
func (v Variant) Moves() []Move {
	return append([]Move(nil), v.moves...)
}

func (v Variant) Contains(m Move) bool {
	return m.IsSet() && m.Ordinal() < len(v.moves)
}

// MaxValue is the highest point value of any move in the variant.
func (v Variant) MaxValue() uint16 {
	return uint16(len(v.moves))
}

// Result returns the outcome of a against b. With d the forward distance
// from a to b around the alphabet, odd distances lose and even ones win.
func (v Variant) Result(a, b Move) Outcome {
	k := len(v.moves)
	d := ((b.Ordinal()-a.Ordinal())%k + k) % k

	switch {
	case d == 0:
		return Draw
	case d%2 == 1:
		return Lose
	default:
		return Win
	}
}

// Beats returns the moves that m defeats.
func (v Variant) Beats(m Move) []Move {
	return v.filter(m, Win)
}

// BeatenBy returns the moves that defeat m.
func (v Variant) BeatenBy(m Move) []Move {
	return v.filter(m, Lose)
}

func (v Variant) filter(m Move, outcome Outcome) []Move {
	var moves []Move
	for _, other := range v.moves {
		if v.Result(m, other) == outcome {
			moves = append(moves, other)
		}
	}

	return moves
}

// Score returns the points scored by each side of a match where the first
// player threw a and the second threw b.
func (v Variant) Score(a, b Move) (uint16, uint16) {
	bonus := v.Result(a, b).Bonus()
	return a.Value() + bonus, b.Value() + (6 - bonus)
}

// ParseMove parses a move name, 1-based number, local alias or an
// unambiguous prefix into a move of the variant.
func (v Variant) ParseMove(str string) (Move, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "" {
		return Unset, fmt.Errorf("parse move: empty move")
	}

	if n, err := strconv.Atoi(str); err == nil {
		if n < 1 || n > len(v.moves) {
			return Unset, fmt.Errorf("parse move: %d out of range 1-%d", n, len(v.moves))
		}

		return v.moves[n-1], nil
	}

	if m, found := aliases[str]; found && v.Contains(m) {
		return m, nil
	}

	var candidates []Move
	for _, m := range v.moves {
		name := strings.ToLower(m.String())
		if name == str {
			return m, nil
		}

		if strings.HasPrefix(name, str) {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		return Unset, fmt.Errorf("parse move: %q is not a %s move", str, v.name)
	case 1:
		return candidates[0], nil
	default:
		return Unset, fmt.Errorf("parse move: %q is ambiguous in %s", str, v.name)
	}
}
