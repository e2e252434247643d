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

// Move is a single hand played in a match. The zero value is Unset, which
// marks a match side that has not been played yet.
type Move uint8

const (
	Unset Move = iota
	Rock
	Paper
	Scissors
	Spock
	Lizard
)

var names = [...]string{
	Unset:    "Unset",
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
	Spock:    "Spock",
	Lizard:   "Lizard",
}

// Finnish names, as written on the league's score sheets
var aliases = map[string]Move{
	"kivi":   Rock,
	"paperi": Paper,
	"sakset": Scissors,
}

var symbols = [...]string{
	Unset:    "?",
	Rock:     "🪨",
	Paper:    "📜",
	Scissors: "✂️",
	Spock:    "🖖",
	Lizard:   "🦎",
}

// Ordinal returns the position of the move in its alphabet, or -1 for Unset.
func (m Move) Ordinal() int {
	return int(m) - 1
}

// Value returns the points a player scores for throwing m.
func (m Move) Value() uint16 {
	return uint16(m)
}

func (m Move) IsSet() bool {
	return m != Unset
}

func (m Move) String() string {
	if int(m) < len(names) {
		return names[m]
	}

	return "Invalid"
}

func (m Move) Symbol() string {
	if int(m) < len(symbols) {
		return symbols[m]
	}

	return "?"
}
