package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarName(t *testing.T) {
	existing := []string{"Alice", "Bob", "Charlotte"}

	match, ok := similarName("alice", existing, 2)
	assert.True(t, ok)
	assert.Equal(t, "Alice", match)

	match, ok = similarName("Bobb", existing, 2)
	assert.True(t, ok)
	assert.Equal(t, "Bob", match)

	_, ok = similarName("Zed", existing, 1)
	assert.False(t, ok)

	_, ok = similarName("Alice", existing, 0)
	assert.False(t, ok, "zero distance disables the hint")

	_, ok = similarName("  ", existing, 2)
	assert.False(t, ok)
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "Round…", truncate("Round End Goals", 6))
	assert.Equal(t, "Eggs", truncate("Eggs", 6))
	assert.Equal(t, "", truncate("Eggs", 0))
	assert.Equal(t, "Eggs  ", padRight("Eggs", 6))
	assert.Equal(t, "Eggs", padRight("Eggs", 2))
}
