// Package ids mints identifiers: time-ordered project ids, random short ids,
// request ids and sortable analytics event ids.
package ids

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// Generator produces time-based ids. Safe for concurrent use.
type Generator struct {
	node *snowflake.Node
}

// NewGenerator creates a generator for the given node (0-1023).
func NewGenerator(node int64) (*Generator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node: %w", err)
	}
	return &Generator{node: n}, nil
}

// MustGenerator is NewGenerator for node 0, which cannot fail.
func MustGenerator() *Generator {
	g, err := NewGenerator(0)
	if err != nil {
		panic(err)
	}
	return g
}

// TimeBased returns "<prefix>-<snowflake>". Later calls sort after earlier ones.
func (g *Generator) TimeBased(prefix string) string {
	return withPrefix(prefix, g.node.Generate().String())
}

// Short returns "<prefix>-<9 random hex chars>".
func Short(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return withPrefix(prefix, raw[:9])
}

// Request returns a fresh request id.
func Request() string {
	return uuid.NewString()
}

// Event returns "event-<ksuid>"; ksuids sort by creation second.
func Event() string {
	return withPrefix("event", ksuid.New().String())
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
