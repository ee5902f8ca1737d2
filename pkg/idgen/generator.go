package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out unique IDs used to tag inbound requests in logs.
type Generator interface {
	NextID() string
}

// SnowflakeGenerator implements Generator on top of Twitter snowflake IDs.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflake initializes a generator. nodeID must be unique per server
// instance (0-1023) to prevent collisions.
func NewSnowflake(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

// NextID returns a new unique ID in decimal string form.
func (g *SnowflakeGenerator) NextID() string {
	return g.node.Generate().String()
}
