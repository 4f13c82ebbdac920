// coassembly-cluster reads an elusive_edges table and a read_size table
// and writes the elusive_clusters table the greedy coassembly selector
// produces from them.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/aroneys/elusive/internal/cluster"
	"github.com/aroneys/elusive/internal/table"
)

var (
	edgesPath  = flag.String("edges", "", "input elusive_edges table path (required)")
	sizesPath  = flag.String("read-size", "", "input read_size table path (required)")
	outputPath = flag.String("out", "", "output elusive_clusters table path (default stdout)")

	maxSamples  = flag.Int("max-coassembly-samples", cluster.DefaultConfig().MaxCoassemblySamples, "maximum samples per coassembly")
	minSamples  = flag.Int("min-coassembly-samples", cluster.DefaultConfig().MinCoassemblySamples, "minimum samples per coassembly")
	maxRecovery = flag.Int("max-recovery-samples", cluster.DefaultConfig().MaxRecoverySamples, "maximum samples per recovery set")
	maxSize     = flag.Int64("max-coassembly-size", -1, "maximum total read size per coassembly; negative means unlimited")
)

func main() {
	flag.Parse()
	if *edgesPath == "" || *sizesPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg := cluster.Config{
		MaxCoassemblySamples: *maxSamples,
		MinCoassemblySamples: *minSamples,
		MaxRecoverySamples:   *maxRecovery,
	}
	if *maxSize >= 0 {
		cfg.MaxCoassemblySize = maxSize
	}

	sizes, err := os.Open(*sizesPath)
	if err != nil {
		log.Fatalf("opening %s: %v", *sizesPath, err)
	}
	defer sizes.Close()

	weights := make(cluster.Weights)
	if err := table.ReadWeights(sizes, weights); err != nil {
		log.Fatalf("reading %s: %v", *sizesPath, err)
	}

	edgeFile, err := os.Open(*edgesPath)
	if err != nil {
		log.Fatalf("opening %s: %v", *edgesPath, err)
	}
	defer edgeFile.Close()

	edges, err := table.ReadEdges(edgeFile, weights)
	if err != nil {
		log.Fatalf("reading %s: %v", *edgesPath, err)
	}

	clusters, err := cluster.Pipeline(edges, weights, cfg)
	if err != nil {
		log.Fatalf("clustering: %v", err)
	}

	out := os.Stdout
	if *outputPath != "" {
		out, err = os.Create(*outputPath)
		if err != nil {
			log.Fatalf("creating %s: %v", *outputPath, err)
		}
		defer out.Close()
	}
	if err := table.WriteClusters(out, clusters); err != nil {
		log.Fatalf("writing clusters: %v", err)
	}
}
