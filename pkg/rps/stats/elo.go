// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package stats

import (
	"fmt"
	"math"
)

// Record is a player's win/draw/loss tally.
type Record struct {
	Wins, Draws, Losses int
}

func (record Record) Games() int {
	return record.Wins + record.Draws + record.Losses
}

// Score returns the fraction of the available points won, counting a draw
// as half a win. It is 0.5 for an empty record.
func (record Record) Score() float64 {
	n := record.Games()
	if n == 0 {
		return 0.5
	}

	return (float64(record.Wins) + float64(record.Draws)/2) / float64(n)
}

// Elo returns the likely elo of the player along with its p < 0.05 lower
// and upper bound, called muMin, mu and muMax respectively. A perfect
// score is +Inf and a zero score is -Inf, as is any bound past them.
func (record Record) Elo() (muMin float64, mu float64, muMax float64) {
	n := float64(record.Games())
	if n == 0 {
		return 0, 0, 0
	}

	w := float64(record.Wins) / n   // measured win probability
	d := float64(record.Draws) / n  // measured draw probability
	l := float64(record.Losses) / n // measured loss probability

	// empirical mean of random variable
	mu = record.Score()

	// standard deviation of the random variable
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(n)

	muMax = mu + phiInv(0.975)*sigma // upper bound
	muMin = mu + phiInv(0.025)*sigma // lower bound

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// ErrorMargin returns the half width of the elo confidence interval. It is
// +Inf when either bound is unbounded.
func (record Record) ErrorMargin() float64 {
	lower, elo, upper := record.Elo()
	if math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return math.Inf(+1)
	}

	return math.Max(upper-elo, elo-lower)
}

// FormatElo renders an elo difference with its sign, or +inf / -inf.
func FormatElo(elo float64) string {
	switch {
	case math.IsInf(elo, +1):
		return "+inf"
	case math.IsInf(elo, -1):
		return "-inf"
	default:
		return fmt.Sprintf("%+.0f", elo)
	}
}

// FormatMargin renders an error margin, or inf if it is unbounded.
func FormatMargin(margin float64) string {
	if math.IsInf(margin, 0) {
		return "inf"
	}

	return fmt.Sprintf("%.0f", margin)
}

// scoreToElo converts an expected score into an elo difference. Scores of
// 0 and 1 map to -Inf and +Inf.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0:
		return math.Inf(-1)
	case x >= 1:
		return math.Inf(+1)

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
