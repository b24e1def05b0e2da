package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contract-portal/backend/internal/lexicon"
)

func TestCorrectReplacesKnownMisspellings(t *testing.T) {
	c := New(lexicon.Defaults())

	corrected, changed := c.Correct("shw contrct 123456 effectuve dat")

	assert.True(t, changed)
	assert.Equal(t, "show contract 123456 effective date", corrected)
}

func TestCorrectLeavesCleanTextAlone(t *testing.T) {
	c := New(lexicon.Defaults())

	corrected, changed := c.Correct("show contract 123456")

	assert.False(t, changed)
	assert.Equal(t, "show contract 123456", corrected)
}

func TestCorrectIsIdempotent(t *testing.T) {
	c := New(lexicon.Defaults())

	once, changed := c.Correct("creat contrct for custmer")
	assert.True(t, changed)

	twice, changedAgain := c.Correct(once)
	assert.False(t, changedAgain)
	assert.Equal(t, once, twice)
}

func TestCorrectPreservesPunctuation(t *testing.T) {
	c := New(lexicon.Defaults())

	corrected, changed := c.Correct("contrct: 123456, staus?")

	assert.True(t, changed)
	assert.Equal(t, "contract: 123456, status?", corrected)
}

func TestCorrectMatchesCaseInsensitively(t *testing.T) {
	c := New(lexicon.Defaults())

	corrected, changed := c.Correct("Shw CONTRCT 123456")

	assert.True(t, changed)
	assert.Equal(t, "show contract 123456", corrected)
}

func TestCorrectBlankInput(t *testing.T) {
	c := New(lexicon.Defaults())

	corrected, changed := c.Correct("   ")

	assert.False(t, changed)
	assert.Equal(t, "   ", corrected)
}
