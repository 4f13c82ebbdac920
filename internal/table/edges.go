// Package table reads and writes the tab-separated tables of spec.md §6:
// elusive_edges and read_size on input, elusive_clusters on output. It is
// kept mechanical on purpose — the clustering semantics all live in
// internal/cluster.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aroneys/elusive/internal/cluster"
)

const edgeHeader = "style\tcluster_size\tsamples\ttarget_ids"

// ReadEdges parses an elusive_edges table (spec.md §6) from r: one header
// row followed by tab-separated style/cluster_size/samples/target_ids
// rows. weights must already hold the read_size table (ReadWeights),
// since every edge sample must carry a known weight (spec.md §3); a row
// naming a sample absent from weights fails as a *cluster.MalformedEdgeError
// the same way a row with a duplicate sample does. A malformed row is
// reported as a *cluster.MalformedEdgeError naming the 1-based data row
// (the header is not counted).
func ReadEdges(r io.Reader, weights cluster.Weights) ([]cluster.Edge, error) {
	reader := newTabReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading elusive_edges header: %w", err)
	}
	if err := requireColumns(header, 4); err != nil {
		return nil, err
	}

	var edges []cluster.Edge
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading elusive_edges row %d: %w", row, err)
		}
		if len(record) != 4 {
			return nil, &cluster.MalformedEdgeError{Row: row, Reason: "expected 4 columns"}
		}

		clusterSize, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, &cluster.MalformedEdgeError{Row: row, Reason: "cluster_size is not an integer"}
		}
		samples := splitCSVField(record[2])
		targets := splitCSVField(record[3])

		edge, err := cluster.NewEdge(cluster.Style(record[0]), clusterSize, samples, targets, weights, row)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

// WriteEdges emits an elusive_edges table. It exists for symmetry with
// ReadEdges and for reporting/debugging tools that need to echo back the
// edges a pipeline run consumed.
func WriteEdges(w io.Writer, edges []cluster.Edge) error {
	writer := newTabWriter(w)
	defer writer.Flush()

	if err := writer.Write(strings.Split(edgeHeader, "\t")); err != nil {
		return err
	}
	for _, e := range edges {
		record := []string{
			string(e.Style),
			strconv.Itoa(e.ClusterSize),
			strings.Join(e.SortedSamples(), ","),
			strings.Join(e.SortedTargetIDs(), ","),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

func splitCSVField(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func requireColumns(header []string, want int) error {
	if len(header) != want {
		return fmt.Errorf("table: expected %d columns, header has %d", want, len(header))
	}
	return nil
}

func newTabReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

func newTabWriter(w io.Writer) *csv.Writer {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	return writer
}
