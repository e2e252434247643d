package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rps/pkg/rps/move"
)

func TestPlayers(t *testing.T) {
	players := NewPlayers()

	id, err := players.NextID()
	require.NoError(t, err)
	assert.Equal(t, uint16(1), id)

	alice, err := players.Add("Alice")
	require.NoError(t, err)
	bob, err := players.Add("Bob")
	require.NoError(t, err)
	assert.Equal(t, uint16(1), alice.ID)
	assert.Equal(t, uint16(2), bob.ID)

	_, err = players.Add("Bob")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = players.Get(3)
	assert.ErrorIs(t, err, ErrNotFound)

	players.credit(2, 7, move.Win)
	board := players.Leaderboard()
	assert.Equal(t, "Bob", board[0].Name)
	assert.Equal(t, uint16(1), board[0].Wins)

	players.resetScores()
	board = players.Leaderboard()
	assert.Equal(t, []uint16{1, 2}, ids(board))
}

func TestMatches(t *testing.T) {
	matches := NewMatches()
	key := Key{1, 2, 1}

	require.NoError(t, matches.Schedule(key))
	assert.ErrorIs(t, matches.Schedule(key), ErrDuplicateMatch)

	assert.ErrorIs(t, matches.Record(Key{2, 1, 1}, move.Classic, move.Rock, move.Rock), ErrNotFound)
	require.NoError(t, matches.Record(key, move.Classic, move.Scissors, move.Rock))
	assert.ErrorIs(t, matches.Record(key, move.Classic, move.Rock, move.Rock), ErrAlreadyPlayed)

	match, err := matches.Get(key)
	require.NoError(t, err)
	assert.True(t, match.Played())
	assert.Equal(t, move.Lose, match.Outcome)
	assert.Equal(t, uint16(2), match.Winner())

	s1, s2 := match.Scores(move.Classic)
	assert.Equal(t, uint16(3), s1)
	assert.Equal(t, uint16(7), s2)

	require.NoError(t, matches.Clear(key))
	match, _ = matches.Get(key)
	assert.False(t, match.Played())
	assert.Zero(t, match.Winner())
	assert.ErrorIs(t, matches.Clear(Key{3, 4, 1}), ErrNotFound)

	require.NoError(t, matches.Schedule(Key{2, 1, 2}))
	assert.Equal(t, []Key{{2, 1, 2}}, matches.Round(2))

	require.NoError(t, matches.Unschedule(Key{2, 1, 2}))
	assert.ErrorIs(t, matches.Unschedule(Key{2, 1, 2}), ErrNotFound)
	assert.Equal(t, 1, matches.Len())
	assert.False(t, matches.AnyPlayed())
}

func TestKey(t *testing.T) {
	key := Key{3, 7, 2}
	assert.Equal(t, "3-7#2", key.String())
	assert.True(t, key.Involves(3))
	assert.True(t, key.Involves(7))
	assert.False(t, key.Involves(2))
}
