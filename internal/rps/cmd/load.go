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

package cmd

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/pkg/common"
	"laptudirm.com/x/rps/pkg/rps/tournament"
)

// loadTournament builds a game from the tournament file named by args, the
// environment or the default location, or an empty game if there is none.
func loadTournament(args []string) (*tournament.Game, string, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	path := common.ResolveTournamentFile(arg)
	if path == "" {
		logrus.Debug("no tournament file found, starting empty")
		return tournament.New(), "", nil
	}

	config, err := tournament.LoadConfig(path)
	if err != nil {
		return nil, path, err
	}

	game, err := tournament.NewTournament(config)
	if err != nil {
		return nil, path, err
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"id":      game.ID(),
		"players": len(config.Players),
		"rounds":  game.Rounds(),
	}).Debug("loaded tournament")

	return game, path, nil
}
