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
	"fmt"
	"strconv"

	"laptudirm.com/x/rps/pkg/rps/move"
	"laptudirm.com/x/rps/pkg/rps/tournament"
)

type command struct {
	name    string
	aliases []string
	usage   string
	short   string
	run     func(session *Session, args []string) error
}

var (
	commands     []command
	commandIndex = map[string]command{}
)

func init() {
	commands = []command{
		{name: "add", usage: "<name>...", short: "register players", run: (*Session).add},
		{name: "next", usage: "[n]", short: "show the next n matches to play", run: (*Session).next},
		{name: "result", usage: "<player> <player> <move> <move> [round]", short: "record a match result", run: (*Session).result},
		{name: "play", usage: "<move> <move>", short: "record the result of the next match", run: (*Session).play},
		{name: "undo", short: "remove the last result in the played list", run: (*Session).undo},
		{name: "remove", usage: "<player> <player> [round]", short: "remove a match result", run: (*Session).remove},
		{name: "standings", aliases: []string{"table"}, short: "show the leaderboard", run: (*Session).standings},
		{name: "played", short: "list the completed matches", run: (*Session).played},
		{name: "players", short: "list the registered players", run: (*Session).players},
		{name: "rounds", usage: "[n | + | -]", short: "show or change the number of rounds", run: (*Session).rounds},
		{name: "variant", usage: "[classic | extended]", short: "show or change the move set", run: (*Session).variant},
		{name: "rules", short: "show the scoring rules", run: (*Session).rules},
		{name: "quote", short: "words of wisdom", run: (*Session).quote},
		{name: "save", usage: "[file]", short: "write the settings and players to a file", run: (*Session).saveCmd},
		{name: "reset", short: "start over with no players", run: (*Session).reset},
		{name: "help", short: "show this list", run: (*Session).help},
		{name: "quit", aliases: []string{"exit"}, short: "leave the session", run: (*Session).quit},
	}

	for _, command := range commands {
		commandIndex[command.name] = command
		for _, alias := range command.aliases {
			commandIndex[alias] = command
		}
	}
}

func (session *Session) add(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	// all names are checked first so that a bad one adds nobody
	seen := map[string]bool{}
	for _, name := range args {
		if _, found := session.Game.FindPlayer(name); found || seen[name] {
			return fmt.Errorf("add player %q: %w", name, tournament.ErrDuplicateName)
		}

		seen[name] = true
	}

	for _, name := range args {
		player, err := session.Game.AddPlayer(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(session.out, "Added #%d %s\n", player.ID, player.Name)
	}

	return nil
}

func (session *Session) next(args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
			return errUsage
		}
	}

	matches := session.Game.NextMatches(n)
	if len(matches) == 0 {
		fmt.Fprintln(session.out, "No matches left.")
		return nil
	}

	for i, match := range matches {
		fmt.Fprintf(session.out, "%3d. ", i+1)
		session.describe(match)
	}

	return nil
}

func (session *Session) result(args []string) error {
	if len(args) != 4 && len(args) != 5 {
		return errUsage
	}

	a, err := session.resolvePlayer(args[0])
	if err != nil {
		return err
	}

	b, err := session.resolvePlayer(args[1])
	if err != nil {
		return err
	}

	moveA, moveB, err := session.parseMoves(args[2], args[3])
	if err != nil {
		return err
	}

	match, err := session.findMatch(a, b, args[4:], false)
	if err != nil {
		return err
	}

	return session.record(match, a.ID, moveA, moveB)
}

func (session *Session) play(args []string) error {
	if len(args) != 2 {
		return errUsage
	}

	match, found := session.Game.NextMatch()
	if !found {
		fmt.Fprintln(session.out, "No matches left.")
		return nil
	}

	move1, move2, err := session.parseMoves(args[0], args[1])
	if err != nil {
		return err
	}

	return session.record(match, match.Player1, move1, move2)
}

func (session *Session) undo(args []string) error {
	key, removed := session.Game.RemoveLatest()
	if !removed {
		fmt.Fprintln(session.out, "Nothing to undo.")
		return nil
	}

	name1, _ := session.Game.PlayerName(key.Player1)
	name2, _ := session.Game.PlayerName(key.Player2)
	fmt.Fprintf(session.out, "Removed result of R%d %s vs %s\n", key.Round, name1, name2)
	return nil
}

func (session *Session) remove(args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return errUsage
	}

	a, err := session.resolvePlayer(args[0])
	if err != nil {
		return err
	}

	b, err := session.resolvePlayer(args[1])
	if err != nil {
		return err
	}

	match, err := session.findMatch(a, b, args[2:], true)
	if err != nil {
		return err
	}

	if !match.Played() {
		return fmt.Errorf("%s and %s have not played in round %d: %w", a.Name, b.Name, match.Round, tournament.ErrInvalidState)
	}

	if err := session.Game.RemoveResult(match.Key); err != nil {
		return err
	}

	fmt.Fprintf(session.out, "Removed result of R%d %s vs %s\n", match.Round, a.Name, b.Name)
	return nil
}

func (session *Session) standings(args []string) error {
	session.Game.Report(session.out)
	fmt.Fprintf(session.out, "%d played, %d left\n", session.Game.PlayedCount(), session.Game.RemainingCount())
	return nil
}

func (session *Session) played(args []string) error {
	if session.Game.PlayedCount() == 0 {
		fmt.Fprintln(session.out, "No matches played yet.")
		return nil
	}

	session.Game.ReportPlayed(session.out)
	return nil
}

func (session *Session) players(args []string) error {
	players := session.Game.PlayersByName()
	if len(players) == 0 {
		fmt.Fprintln(session.out, "No players registered.")
		return nil
	}

	for _, player := range players {
		fmt.Fprintf(session.out, "#%-3d %-20s %4d points\n", player.ID, player.Name, player.Score)
	}

	return nil
}

func (session *Session) rounds(args []string) error {
	if len(args) > 1 {
		return errUsage
	}

	if len(args) == 1 {
		var err error
		switch args[0] {
		case "+":
			err = session.Game.AddRound()
		case "-":
			err = session.Game.RemoveRound()
		default:
			n, parseErr := strconv.ParseUint(args[0], 10, 16)
			if parseErr != nil {
				return errUsage
			}

			err = session.Game.SetRounds(uint16(n))
		}

		if err != nil {
			return err
		}
	}

	fmt.Fprintf(session.out, "Rounds: %d (%d matches)\n", session.Game.Rounds(), len(session.Game.Matches()))
	return nil
}

func (session *Session) variant(args []string) error {
	if len(args) > 1 {
		return errUsage
	}

	if len(args) == 1 {
		variant, err := move.ParseVariant(args[0])
		if err != nil {
			return err
		}

		if err := session.Game.SetVariant(variant); err != nil {
			return err
		}
	}

	fmt.Fprintf(session.out, "Variant: %s\n", session.Game.Variant())
	return nil
}

func (session *Session) rules(args []string) error {
	printRules(session.out, session.Game.Variant())
	return nil
}

func (session *Session) quote(args []string) error {
	quote := session.Game.Quote()
	fmt.Fprintf(session.out, "%q\n    - %s\n", quote.Text, quote.Author)
	return nil
}

func (session *Session) saveCmd(args []string) error {
	if len(args) > 1 {
		return errUsage
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	return session.save(path)
}

func (session *Session) reset(args []string) error {
	session.Game.Reset()
	fmt.Fprintln(session.out, "Tournament reset.")
	return nil
}

func (session *Session) help(args []string) error {
	for _, command := range commands {
		fmt.Fprintf(session.out, "  %-10s %-42s %s\n", command.name, command.usage, command.short)
	}

	return nil
}

func (session *Session) quit(args []string) error {
	return ErrQuit
}
