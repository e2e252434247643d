package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTournamentFile(t *testing.T) {
	t.Setenv("RPS_TOURNAMENT", "")
	assert.Equal(t, "league.yaml", ResolveTournamentFile("league.yaml"))

	t.Setenv("RPS_TOURNAMENT", "from-env.yaml")
	assert.Equal(t, "league.yaml", ResolveTournamentFile("league.yaml"))
	assert.Equal(t, "from-env.yaml", ResolveTournamentFile(""))
}

func TestResolveDefaultTournamentFile(t *testing.T) {
	t.Setenv("RPS_TOURNAMENT", "")

	saved := TournamentFile
	t.Cleanup(func() { TournamentFile = saved })

	TournamentFile = filepath.Join(t.TempDir(), "tournament.yaml")
	assert.Equal(t, "", ResolveTournamentFile(""))

	assert.NoError(t, os.WriteFile(TournamentFile, []byte("rounds: 1\n"), 0644))
	assert.Equal(t, TournamentFile, ResolveTournamentFile(""))
}

func TestTryMkdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "rps")
	TryMkdir(dir)
	assert.DirExists(t, dir)

	// an existing directory is left alone
	TryMkdir(dir)
	assert.DirExists(t, dir)
}
