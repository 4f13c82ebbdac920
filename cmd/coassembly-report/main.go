// coassembly-report reads an elusive_clusters table and plots a histogram
// of total_targets across the emitted coassemblies, for human review of a
// clustering run.
package main

import (
	"flag"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aroneys/elusive/internal/table"
)

var (
	in     = flag.String("in", "", "input elusive_clusters table path (required)")
	out    = flag.String("out", "total_targets.svg", "output plot file path")
	bins   = flag.Int("bins", 10, "number of histogram bins")
	width  = flag.Float64("width", 6, "plot width, in inches")
	height = flag.Float64("height", 4, "plot height, in inches")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("opening %s: %v", *in, err)
	}
	defer f.Close()

	clusters, err := table.ReadClusters(f)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}
	if len(clusters) == 0 {
		log.Fatalf("%s: no clusters to report on", *in)
	}

	values := make(plotter.Values, len(clusters))
	for i, c := range clusters {
		values[i] = float64(c.TotalTargets)
	}

	p := plot.New()
	p.Title.Text = "total_targets per coassembly"
	p.X.Label.Text = "total_targets"
	p.Y.Label.Text = "coassemblies"

	hist, err := plotter.NewHist(values, *bins)
	if err != nil {
		log.Fatalf("building histogram: %v", err)
	}
	p.Add(hist)

	if err := p.Save(vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch, *out); err != nil {
		log.Fatalf("saving %s: %v", *out, err)
	}
}
