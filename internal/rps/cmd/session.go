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
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/pkg/common"
	"laptudirm.com/x/rps/pkg/rps/move"
	"laptudirm.com/x/rps/pkg/rps/tournament"
)

// ErrQuit is returned by Execute when the user asks to leave the session.
var ErrQuit = errors.New("quit")

var errUsage = errors.New("invalid usage")

// Session is an interactive command interpreter driving a single game.
type Session struct {
	Game *tournament.Game

	// path is the tournament file the game was loaded from, if any.
	path string

	out   io.Writer
	split func(line string) ([]string, error)
}

func NewSession(game *tournament.Game, path string, out io.Writer) (*Session, error) {
	// Quoted names may contain spaces.
	tokenizer, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}

	return &Session{
		Game: game,
		path: path,
		out:  out,
		split: func(line string) ([]string, error) {
			return tokenizer.Split(line)
		},
	}, nil
}

// Run reads commands from in line by line until it is exhausted or the
// quit command is given. Command errors are reported and do not end the
// session.
func (session *Session) Run(in io.Reader) error {
	fmt.Fprintf(session.out, "%d players, %d matches left. Type help for a list of commands.\n",
		len(session.Game.Players()), session.Game.RemainingCount())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(session.out, "rps> ")
		if !scanner.Scan() {
			fmt.Fprintln(session.out)
			return scanner.Err()
		}

		err := session.Execute(scanner.Text())
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			fmt.Fprintf(session.out, "\x1b[31merror:\x1b[0m %v\n", err)
		}
	}
}

// Execute runs a single command line.
func (session *Session) Execute(line string) error {
	args, err := session.tokenize(line)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	command, found := commandIndex[name]
	if !found {
		return fmt.Errorf("unknown command %q, try help", args[0])
	}

	logrus.WithField("command", name).Trace("executing session command")

	if err := command.run(session, args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return fmt.Errorf("usage: %s %s", command.name, command.usage)
		}

		return err
	}

	return nil
}

func (session *Session) tokenize(line string) ([]string, error) {
	parts, err := session.split(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", line, err)
	}

	var args []string
	for _, part := range parts {
		part = unquote(strings.TrimSpace(part))
		if part != "" {
			args = append(args, part)
		}
	}

	return args, nil
}

func unquote(str string) string {
	for _, quotes := range [][2]string{{`"`, `"`}, {"“", "”"}} {
		if len(str) >= len(quotes[0])+len(quotes[1]) &&
			strings.HasPrefix(str, quotes[0]) && strings.HasSuffix(str, quotes[1]) {
			return str[len(quotes[0]) : len(str)-len(quotes[1])]
		}
	}

	return str
}

// resolvePlayer finds a player by id, exact name, or fuzzy name match.
func (session *Session) resolvePlayer(arg string) (tournament.Player, error) {
	if id, err := strconv.ParseUint(arg, 10, 16); err == nil {
		return session.Game.Player(uint16(id))
	}

	if player, found := session.Game.FindPlayer(arg); found {
		return player, nil
	}

	players := session.Game.Players()
	names := make([]string, len(players))
	for i, player := range players {
		names[i] = player.Name
	}

	ranks := fuzzy.RankFindFold(arg, names)
	switch len(ranks) {
	case 0:
		return tournament.Player{}, fmt.Errorf("no player matches %q: %w", arg, tournament.ErrNotFound)
	case 1:
		return players[ranks[0].OriginalIndex], nil
	}

	for _, rank := range ranks {
		if strings.EqualFold(rank.Target, arg) {
			return players[rank.OriginalIndex], nil
		}
	}

	sort.Stable(ranks)
	if ranks[0].Distance == ranks[1].Distance {
		return tournament.Player{}, fmt.Errorf("%q could be %s or %s", arg, ranks[0].Target, ranks[1].Target)
	}

	return players[ranks[0].OriginalIndex], nil
}

// findMatch picks a match between a and b: the one in the given round, or
// else the first unplayed one (played == false) or the last played one
// (played == true).
func (session *Session) findMatch(a, b tournament.Player, round []string, played bool) (tournament.Match, error) {
	between := session.Game.Between(a.ID, b.ID)
	if len(between) == 0 {
		return tournament.Match{}, fmt.Errorf("%s and %s do not meet: %w", a.Name, b.Name, tournament.ErrNotFound)
	}

	if len(round) > 0 {
		r, err := strconv.ParseUint(round[0], 10, 16)
		if err != nil {
			return tournament.Match{}, fmt.Errorf("invalid round %q", round[0])
		}

		for _, match := range between {
			if match.Round == uint16(r) {
				return match, nil
			}
		}

		return tournament.Match{}, fmt.Errorf("%s and %s do not meet in round %d: %w", a.Name, b.Name, r, tournament.ErrNotFound)
	}

	if played {
		slices.Reverse(between)
	}

	for _, match := range between {
		if match.Played() == played {
			return match, nil
		}
	}

	if played {
		return tournament.Match{}, fmt.Errorf("%s and %s have not played yet: %w", a.Name, b.Name, tournament.ErrInvalidState)
	}

	return tournament.Match{}, fmt.Errorf("%s and %s have played all their matches: %w", a.Name, b.Name, tournament.ErrAlreadyPlayed)
}

func (session *Session) parseMoves(arg1, arg2 string) (move.Move, move.Move, error) {
	variant := session.Game.Variant()

	move1, err := variant.ParseMove(arg1)
	if err != nil {
		return move.Unset, move.Unset, err
	}

	move2, err := variant.ParseMove(arg2)
	if err != nil {
		return move.Unset, move.Unset, err
	}

	return move1, move2, nil
}

// record stores a result given from the point of view of player a.
func (session *Session) record(match tournament.Match, a uint16, moveA, moveB move.Move) error {
	if match.Player1 != a {
		moveA, moveB = moveB, moveA
	}

	if err := session.Game.AddResult(match.Key, moveA, moveB); err != nil {
		return err
	}

	match, err := session.Game.Match(match.Key)
	if err != nil {
		return err
	}

	session.describe(match)
	return nil
}

func (session *Session) describe(match tournament.Match) {
	name1, _ := session.Game.PlayerName(match.Player1)
	name2, _ := session.Game.PlayerName(match.Player2)

	if !match.Played() {
		fmt.Fprintf(session.out, "R%-3d %s vs %s\n", match.Round, name1, name2)
		return
	}

	score1, score2 := match.Scores(session.Game.Variant())
	fmt.Fprintf(session.out, "R%-3d %s %s %s (%dp) vs %s %s %s (%dp)\n",
		match.Round,
		name1, match.Move1.Symbol(), match.Move1, score1,
		name2, match.Move2.Symbol(), match.Move2, score2,
	)

	if winner := match.Winner(); winner != 0 {
		name, _ := session.Game.PlayerName(winner)
		fmt.Fprintf(session.out, "\x1b[32m%s wins!\x1b[0m\n", name)
	} else {
		fmt.Fprintln(session.out, "\x1b[33mDraw.\x1b[0m")
	}
}

func (session *Session) save(path string) error {
	if path == "" {
		path = session.path
	}

	if path == "" {
		common.TryMkdir(common.Directory)
		path = common.TournamentFile
	}

	if err := session.Game.Config().Dump(path); err != nil {
		return err
	}

	session.path = path
	fmt.Fprintf(session.out, "Saved tournament to %s\n", path)
	return nil
}
