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

package data

import "github.com/MakeNowJust/heredoc/v2"

type VariantInfo struct {
	Title string

	// Rules is shown by `rps rules` above the generated beats table.
	Rules string
}

var Variants = map[string]VariantInfo{
	"classic": {
		Title: "Rock Paper Scissors",
		Rules: heredoc.Doc(`
			Everybody plays everybody once per round.

			Points from the result:
			  Win:  6 points
			  Draw: 3 points
			  Loss: 0 points

			Points from the hand played:
			  Scissors: 3 points
			  Paper:    2 points
			  Rock:     1 point

		`),
	},

	"extended": {
		Title: "Rock Paper Scissors Spock Lizard",
		Rules: heredoc.Doc(`
			Everybody plays everybody once per round.

			Points from the result:
			  Win:  6 points
			  Draw: 3 points
			  Loss: 0 points

			Points from the hand played:
			  Lizard:   5 points
			  Spock:    4 points
			  Scissors: 3 points
			  Paper:    2 points
			  Rock:     1 point

		`),
	},
}
