package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rps/pkg/rps/move"
	"laptudirm.com/x/rps/pkg/rps/tournament"
)

func writeTournament(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tournament.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetIn(strings.NewReader(input))

	err := root.Execute()
	return out.String(), err
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "", "rules", "extended")
	require.NoError(t, err)
	assert.Contains(t, out, "Rock Paper Scissors Spock Lizard")
	assert.Regexp(t, `Spock\s+beats Rock, Scissors`, out)

	out, err = execute(t, "", "rules")
	require.NoError(t, err)
	assert.Regexp(t, `Rock\s+beats Scissors\n`, out)
	assert.NotContains(t, out, "Lizard")

	_, err = execute(t, "", "rules", "chess")
	assert.Error(t, err)
}

func TestScheduleCommand(t *testing.T) {
	path := writeTournament(t, "rounds: 2\nplayers: [Alice, Bob, Charlie]\n")

	out, err := execute(t, "", "schedule", path)
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, " vs "))

	_, err = execute(t, "", "schedule", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlayCommand(t *testing.T) {
	path := writeTournament(t, "players: [Alice, Bob]\n")

	out, err := execute(t, "add Charlie\nplay rock scissors\nstandings\nquit\n", "play", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Added #3 Charlie")
	assert.Contains(t, out, "1 played, 2 left")
}

func TestSimulate(t *testing.T) {
	play := func(seed uint64) *tournament.Game {
		game := tournament.NewWithSeed(1)
		require.NoError(t, game.SetVariant(move.Extended))
		require.NoError(t, game.SetRounds(2))
		for _, name := range []string{"Alice", "Bob", "Charlie", "Dave"} {
			_, err := game.AddPlayer(name)
			require.NoError(t, err)
		}

		var out bytes.Buffer
		require.NoError(t, simulate(game, seed, 0, &out))
		return game
	}

	game := play(42)
	assert.Equal(t, 0, game.RemainingCount())
	assert.Equal(t, 12, game.PlayedCount())

	var total, played int
	for _, player := range game.Players() {
		total += int(player.Score)
		played += int(player.Played)
		assert.Equal(t, uint16(6), player.Played)
	}
	assert.Equal(t, 24, played)
	assert.GreaterOrEqual(t, total, 12*8)

	assert.Equal(t, game.Leaderboard(), play(42).Leaderboard())
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "rps")

	_, err = execute(t, "", "completion", "tcsh")
	assert.Error(t, err)
}
