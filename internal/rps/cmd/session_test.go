package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rps/pkg/rps/move"
	"laptudirm.com/x/rps/pkg/rps/tournament"
)

func newSession(t *testing.T, names ...string) (*Session, *bytes.Buffer) {
	t.Helper()

	game := tournament.NewWithSeed(1)
	for _, name := range names {
		_, err := game.AddPlayer(name)
		require.NoError(t, err)
	}

	var out bytes.Buffer
	session, err := NewSession(game, "", &out)
	require.NoError(t, err)

	return session, &out
}

func TestTokenize(t *testing.T) {
	session, _ := newSession(t)

	args, err := session.tokenize(`add "Bob Builder"  Charlie`)
	require.NoError(t, err)
	assert.Equal(t, []string{"add", "Bob Builder", "Charlie"}, args)

	args, err = session.tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestAddPlayers(t *testing.T) {
	session, out := newSession(t)

	require.NoError(t, session.Execute(`add Alice "Bob Builder" Charlie`))
	assert.Len(t, session.Game.Players(), 3)
	assert.Len(t, session.Game.Matches(), 3)
	assert.Contains(t, out.String(), "Added #2 Bob Builder")

	_, found := session.Game.FindPlayer("Bob Builder")
	assert.True(t, found)

	assert.ErrorIs(t, session.Execute("add Alice"), tournament.ErrDuplicateName)

	// a duplicate anywhere in the list adds nobody
	assert.ErrorIs(t, session.Execute("add Dave Alice Erin"), tournament.ErrDuplicateName)
	assert.ErrorIs(t, session.Execute("add Dave Dave"), tournament.ErrDuplicateName)
	assert.Len(t, session.Game.Players(), 3)
	_, found = session.Game.FindPlayer("Dave")
	assert.False(t, found)
	assert.ErrorContains(t, session.Execute("add"), "usage: add")
}

func TestResolvePlayer(t *testing.T) {
	session, _ := newSession(t, "Alice", "Bob Builder", "Charlie")

	player, err := session.resolvePlayer("2")
	require.NoError(t, err)
	assert.Equal(t, "Bob Builder", player.Name)

	player, err = session.resolvePlayer("bob")
	require.NoError(t, err)
	assert.Equal(t, uint16(2), player.ID)

	// both Alice and Charlie match, Alice is closer
	player, err = session.resolvePlayer("li")
	require.NoError(t, err)
	assert.Equal(t, "Alice", player.Name)

	player, err = session.resolvePlayer("CHARLIE")
	require.NoError(t, err)
	assert.Equal(t, "Charlie", player.Name)

	_, err = session.resolvePlayer("xyz")
	assert.ErrorIs(t, err, tournament.ErrNotFound)

	_, err = session.resolvePlayer("99")
	assert.ErrorIs(t, err, tournament.ErrNotFound)

	ambiguous, _ := newSession(t, "Tom", "Tim")
	_, err = ambiguous.resolvePlayer("t")
	assert.ErrorContains(t, err, "could be")
}

func TestResult(t *testing.T) {
	session, out := newSession(t, "Alice", "Bob Builder", "Charlie")

	// Players may be given in either order; moves follow the given order.
	require.NoError(t, session.Execute("result bob alice rock scissors"))

	match, err := session.Game.Match(tournament.Key{Player1: 1, Player2: 2, Round: 1})
	require.NoError(t, err)
	assert.Equal(t, move.Scissors, match.Move1)
	assert.Equal(t, move.Rock, match.Move2)
	assert.Contains(t, out.String(), "Bob Builder wins!")

	alice, _ := session.Game.Player(1)
	bob, _ := session.Game.Player(2)
	assert.Equal(t, uint16(3), alice.Score)
	assert.Equal(t, uint16(7), bob.Score)

	assert.ErrorIs(t, session.Execute("result bob alice rock rock"), tournament.ErrAlreadyPlayed)
	assert.ErrorIs(t, session.Execute("result bob alice rock rock 1"), tournament.ErrAlreadyPlayed)
	assert.ErrorIs(t, session.Execute("result bob alice rock rock 2"), tournament.ErrNotFound)
	assert.ErrorIs(t, session.Execute("result bob bob rock rock"), tournament.ErrNotFound)
	assert.Error(t, session.Execute("result alice charlie rock spock"))
	assert.ErrorContains(t, session.Execute("result bob"), "usage: result")
	assert.Equal(t, 1, session.Game.PlayedCount())
}

func TestPlayAndUndo(t *testing.T) {
	session, out := newSession(t, "Alice", "Bob")

	require.NoError(t, session.Execute("play paper rock"))
	alice, _ := session.Game.Player(1)
	assert.Equal(t, uint16(8), alice.Score)
	assert.Equal(t, 0, session.Game.RemainingCount())

	out.Reset()
	require.NoError(t, session.Execute("play rock rock"))
	assert.Equal(t, "No matches left.\n", out.String())

	out.Reset()
	require.NoError(t, session.Execute("undo"))
	assert.Equal(t, "Removed result of R1 Alice vs Bob\n", out.String())
	assert.Equal(t, 0, session.Game.PlayedCount())

	out.Reset()
	require.NoError(t, session.Execute("undo"))
	assert.Equal(t, "Nothing to undo.\n", out.String())
}

func TestRemove(t *testing.T) {
	session, _ := newSession(t, "Alice", "Bob")
	require.NoError(t, session.Execute("rounds 2"))
	require.NoError(t, session.Execute("result alice bob rock paper"))
	require.NoError(t, session.Execute("result alice bob rock paper"))
	assert.Equal(t, 2, session.Game.PlayedCount())

	// the latest round goes first
	require.NoError(t, session.Execute("remove bob alice"))
	match, err := session.Game.Match(tournament.Key{Player1: 2, Player2: 1, Round: 2})
	require.NoError(t, err)
	assert.False(t, match.Played())

	require.NoError(t, session.Execute("remove bob alice 1"))
	assert.Equal(t, 0, session.Game.PlayedCount())

	assert.ErrorIs(t, session.Execute("remove bob alice"), tournament.ErrInvalidState)
	assert.ErrorIs(t, session.Execute("remove bob alice 1"), tournament.ErrInvalidState)
	assert.ErrorIs(t, session.Execute("remove bob alice 3"), tournament.ErrNotFound)
}

func TestRoundsAndVariant(t *testing.T) {
	session, out := newSession(t, "Alice", "Bob", "Charlie")

	require.NoError(t, session.Execute("rounds 2"))
	assert.Len(t, session.Game.Matches(), 6)

	require.NoError(t, session.Execute("rounds +"))
	assert.Len(t, session.Game.Matches(), 9)

	out.Reset()
	require.NoError(t, session.Execute("rounds -"))
	assert.Equal(t, "Rounds: 2 (6 matches)\n", out.String())

	assert.ErrorIs(t, session.Execute("rounds 0"), tournament.ErrInvalidState)
	assert.ErrorContains(t, session.Execute("rounds many"), "usage: rounds")

	require.NoError(t, session.Execute("variant rpsls"))
	assert.Equal(t, move.Extended, session.Game.Variant())

	require.NoError(t, session.Execute("play spock lizard"))
	assert.ErrorIs(t, session.Execute("variant classic"), tournament.ErrInvalidState)
	assert.Error(t, session.Execute("variant chess"))
}

func TestPlayersListing(t *testing.T) {
	session, out := newSession(t, "p10", "P2", "Alice")

	require.NoError(t, session.Execute("players"))
	listing := out.String()

	alice := strings.Index(listing, "Alice")
	p2 := strings.Index(listing, "P2")
	p10 := strings.Index(listing, "p10")
	assert.Less(t, alice, p2)
	assert.Less(t, p2, p10)
}

func TestSave(t *testing.T) {
	session, _ := newSession(t, "Alice", "Bob")
	path := filepath.Join(t.TempDir(), "league.yaml")

	require.NoError(t, session.Execute("save "+path))
	config, err := tournament.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, config.Players)

	require.NoError(t, session.Execute("add Charlie"))
	require.NoError(t, session.Execute("save"))
	config, err = tournament.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, config.Players)
}

func TestMiscCommands(t *testing.T) {
	session, out := newSession(t, "Alice", "Bob")

	assert.NoError(t, session.Execute(""))
	assert.ErrorContains(t, session.Execute("dance"), "unknown command")
	assert.ErrorIs(t, session.Execute("quit"), ErrQuit)
	assert.ErrorIs(t, session.Execute("EXIT"), ErrQuit)

	require.NoError(t, session.Execute("help"))
	assert.Contains(t, out.String(), "standings")

	out.Reset()
	require.NoError(t, session.Execute("next 5"))
	assert.Equal(t, "  1. R1   Alice vs Bob\n", out.String())

	out.Reset()
	require.NoError(t, session.Execute("played"))
	assert.Equal(t, "No matches played yet.\n", out.String())

	out.Reset()
	require.NoError(t, session.Execute("table"))
	assert.Contains(t, out.String(), "0 played, 1 left")

	out.Reset()
	require.NoError(t, session.Execute("quote"))
	assert.Contains(t, out.String(), session.Game.Quote().Author)

	require.NoError(t, session.Execute("reset"))
	assert.Empty(t, session.Game.Players())
}

func TestRun(t *testing.T) {
	session, out := newSession(t)

	input := strings.NewReader("add Alice\nadd Bob\nbogus\nquit\nadd Never\n")
	require.NoError(t, session.Run(input))

	assert.Len(t, session.Game.Players(), 2)
	assert.Contains(t, out.String(), "unknown command")

	// end of input also ends the session
	require.NoError(t, session.Run(strings.NewReader("add Charlie\n")))
	assert.Len(t, session.Game.Players(), 3)
}
