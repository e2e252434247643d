package util

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalCompare(t *testing.T) {
	assert.Equal(t, -1, NaturalCompare("Player 2", "Player 10"))
	assert.Equal(t, +1, NaturalCompare("Player 10", "Player 2"))
	assert.Equal(t, 0, NaturalCompare("Alice", "Alice"))
	assert.Equal(t, -1, NaturalCompare("alice", "Bob"))
	assert.Equal(t, -1, NaturalCompare("Team", "Team 1"))
	assert.Equal(t, -1, NaturalCompare("ALICE", "alice"))
}

func TestNaturalSort(t *testing.T) {
	names := []string{"p10", "P2", "bob", "p1", "Alice"}
	slices.SortFunc(names, NaturalCompare)
	assert.Equal(t, []string{"Alice", "bob", "p1", "P2", "p10"}, names)
}
