package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID issues order and order-item identifiers. Time-ordered, unique
// across the process without a database round trip.
func GenID() int64 {
	return node.Generate().Int64()
}
