package keycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserTableHasNoCollisions(t *testing.T) {
	// Every canonical name and every alias must occupy its own slot; a
	// collision would have made the map smaller than the sum of both sets.
	assert.Len(t, byName, int(numCodes)+len(aliases))

	// Aliases never shadow a canonical spelling.
	for alias := range aliases {
		for c := range All() {
			assert.NotEqual(t, c.Name(), alias)
		}
	}
}
