package tournament

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rps/pkg/rps/move"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournament.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
variant: extended
rounds: 2
seed: 42
players:
  - Alice
  - Bob
  - Charlie
`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "extended", config.Variant)
	assert.Equal(t, 2, config.Rounds)
	require.NotNil(t, config.Seed)
	assert.Equal(t, uint64(42), *config.Seed)

	game, err := NewTournament(config)
	require.NoError(t, err)
	assert.Equal(t, move.Extended.Name(), game.Variant().Name())
	assert.Equal(t, uint16(2), game.Rounds())
	assert.Equal(t, uint64(42), game.Seed())
	assert.Len(t, game.Players(), 3)
	assert.Len(t, game.Matches(), 6)
}

func TestConfigRoundTrip(t *testing.T) {
	seed := uint64(7)
	path := filepath.Join(t.TempDir(), "tournament.yaml")
	config := Config{Variant: "classic", Rounds: 3, Seed: &seed, Players: []string{"Alice", "Bob"}}
	require.NoError(t, config.Dump(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestGameConfig(t *testing.T) {
	game := NewWithSeed(11)
	require.NoError(t, game.SetVariant(move.Extended))
	require.NoError(t, game.SetRounds(2))
	_, err := game.AddPlayer("Alice")
	require.NoError(t, err)
	_, err = game.AddPlayer("Bob")
	require.NoError(t, err)

	config := game.Config()
	assert.Equal(t, "extended", config.Variant)
	assert.Equal(t, 2, config.Rounds)
	require.NotNil(t, config.Seed)
	assert.Equal(t, uint64(11), *config.Seed)
	assert.Equal(t, []string{"Alice", "Bob"}, config.Players)

	assert.Equal(t, game.ID().String(), config.ID)

	rebuilt, err := NewTournament(config)
	require.NoError(t, err)
	assert.Equal(t, game.ID(), rebuilt.ID())
	assert.Equal(t, game.Matches(), rebuilt.Matches())
	assert.Equal(t, game.Quote(), rebuilt.Quote())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("players: [Alice"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestNewTournamentErrors(t *testing.T) {
	_, err := NewTournament(Config{Variant: "chess"})
	assert.Error(t, err)

	_, err = NewTournament(Config{ID: "not-a-uuid"})
	assert.ErrorContains(t, err, "invalid id")

	_, err = NewTournament(Config{Rounds: -1})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = NewTournament(Config{Players: []string{"Alice", "Alice"}})
	assert.ErrorIs(t, err, ErrDuplicateName)

	game, err := NewTournament(Config{})
	require.NoError(t, err)
	assert.Equal(t, uint16(1), game.Rounds())
	assert.Equal(t, move.Classic.Name(), game.Variant().Name())
}

func TestReport(t *testing.T) {
	game := newGame(t, "Alice", "Bob", "Charlie")
	require.NoError(t, game.AddResult(Key{2, 3, 1}, move.Paper, move.Rock))

	var out bytes.Buffer
	game.Report(&out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3+3+1)
	assert.Contains(t, lines[3], "Bob")
	assert.Contains(t, lines[4], "Charlie")
	assert.Contains(t, lines[5], "Alice")

	// unbeaten and winless records are unbounded, a new player is even
	assert.Contains(t, lines[3], "+inf   inf ║")
	assert.Contains(t, lines[4], "-inf   inf ║")
	assert.Contains(t, lines[5], "  +0     0 ║")

	out.Reset()
	game.ReportPlayed(&out)
	assert.Contains(t, out.String(), "Bob")
	assert.Contains(t, out.String(), "Paper")
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}
