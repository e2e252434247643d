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

// Outcome is the result of a match from the point of view of one side.
type Outcome int

const (
	Win  Outcome = +1
	Draw Outcome = 0
	Lose Outcome = -1
)

// Bonus returns the points awarded for the outcome on top of the move value.
func (outcome Outcome) Bonus() uint16 {
	switch outcome {
	case Win:
		return 6
	case Draw:
		return 3
	default:
		return 0
	}
}

// Reverse returns the same outcome seen from the opponent's side.
func (outcome Outcome) Reverse() Outcome {
	return -outcome
}

func (outcome Outcome) String() string {
	switch outcome {
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	case Lose:
		return "Lose"
	default:
		return "?"
	}
}
