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
	"errors"
	"fmt"
)

var (
	ErrDuplicateName  = errors.New("tournament: duplicate player name")
	ErrDuplicateMatch = errors.New("tournament: duplicate match")
	ErrNotFound       = errors.New("tournament: not found")
	ErrInvalidState   = errors.New("tournament: invalid state")

	// ErrAlreadyPlayed and ErrInvalidMove are both kinds of ErrInvalidState.
	ErrAlreadyPlayed = fmt.Errorf("%w: match already played", ErrInvalidState)
	ErrInvalidMove   = fmt.Errorf("%w: move not in variant", ErrInvalidState)
)
