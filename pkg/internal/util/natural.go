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

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// NaturalCompare compares two strings in natural order, so "Player 2"
// sorts before "Player 10". Text chunks compare case-insensitively. The
// result follows the cmp.Compare convention.
func NaturalCompare(a, b string) int {
	chunks_a := chunkify(a)
	chunks_b := chunkify(b)

	for i := 0; i < len(chunks_a) && i < len(chunks_b); i++ {
		aInt, aErr := strconv.Atoi(chunks_a[i])
		bInt, bErr := strconv.Atoi(chunks_b[i])

		// If both chunks are numeric, compare them as integers
		if aErr == nil && bErr == nil {
			if aInt != bInt {
				return sign(aInt - bInt)
			}

			continue
		}

		if c := strings.Compare(strings.ToLower(chunks_a[i]), strings.ToLower(chunks_b[i])); c != 0 {
			return c
		}
	}

	// one is a prefix of the other: shorter first, then plain byte order
	if c := sign(len(chunks_a) - len(chunks_b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return +1
	default:
		return 0
	}
}
