package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeBasedIsUniqueAndPrefixed(t *testing.T) {
	g := MustGenerator()
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := g.TimeBased("project")
		require.True(t, strings.HasPrefix(id, "project-"))
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewGeneratorRejectsBadNode(t *testing.T) {
	_, err := NewGenerator(4096)
	assert.Error(t, err)
}

func TestShortAndEvent(t *testing.T) {
	short := Short("project")
	assert.Len(t, short, len("project-")+9)
	assert.NotEqual(t, short, Short("project"))
	assert.Len(t, Short(""), 9)

	event := Event()
	assert.True(t, strings.HasPrefix(event, "event-"))
	assert.NotEmpty(t, Request())
}
