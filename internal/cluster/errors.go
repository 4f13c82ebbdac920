package cluster

import "fmt"

// InvalidConfigError reports that a Config violates one of its invariants
// (spec.md §3, §7). It identifies the offending option by name.
type InvalidConfigError struct {
	Option string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("cluster: invalid config option %s: %s", e.Option, e.Reason)
}

// MalformedEdgeError reports an input edge row that NewEdge rejects: a
// duplicate or unknown sample, an unrecognised style, or a cluster_size
// that breaks the rules for its style (spec.md §3, §7). Row is the row
// index the caller gave for the edge: NewEdge echoes its index argument,
// and internal/table's ReadEdges numbers data rows from 1.
type MalformedEdgeError struct {
	Row    int
	Reason string
}

func (e *MalformedEdgeError) Error() string {
	return fmt.Sprintf("cluster: malformed edge at row %d: %s", e.Row, e.Reason)
}
