package table

import (
	"io"
	"strconv"
	"strings"

	"github.com/aroneys/elusive/internal/cluster"
)

var clusterHeader = strings.Split(
	"samples\tlength\ttotal_targets\ttotal_size\trecover_samples\tcoassembly", "\t")

// WriteClusters emits an elusive_clusters table (spec.md §6) from
// clusters, in the order given — row ordering is part of the contract
// (spec.md §4.5-4.6) and this writer never reorders its input.
func WriteClusters(w io.Writer, clusters []cluster.Cluster) error {
	writer := newTabWriter(w)
	defer writer.Flush()

	if err := writer.Write(clusterHeader); err != nil {
		return err
	}
	for _, c := range clusters {
		record := []string{
			strings.Join(c.Samples, ","),
			strconv.Itoa(c.Length),
			strconv.Itoa(c.TotalTargets),
			strconv.FormatInt(c.TotalSize, 10),
			strings.Join(c.RecoverSamples, ","),
			c.Coassembly,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

// ReadClusters parses an elusive_clusters table back into Cluster values,
// for tools downstream of coassembly-cluster that report on its output
// (e.g. coassembly-report) rather than feed it back into the pipeline.
func ReadClusters(r io.Reader) ([]cluster.Cluster, error) {
	reader := newTabReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := requireColumns(header, 6); err != nil {
		return nil, err
	}

	var clusters []cluster.Cluster
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		length, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		totalTargets, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		totalSize, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			return nil, err
		}

		clusters = append(clusters, cluster.Cluster{
			Samples:        splitCSVField(record[0]),
			Length:         length,
			TotalTargets:   totalTargets,
			TotalSize:      totalSize,
			RecoverSamples: splitCSVField(record[4]),
			Coassembly:     record[5],
		})
	}
	return clusters, nil
}
