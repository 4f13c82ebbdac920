package cluster

// Pipeline is the driver of spec.md §4.7: validate config, run the
// component finder, run the candidate generator and greedy selector over
// each component, then materialise the final cluster table.
//
// Pipeline never errors on biologically reasonable empty input: zero
// edges yields an empty Cluster slice, never an error (spec.md §7). A
// Config that violates its own invariants is a programmer error and
// fails fast, identifying the offending option.
func Pipeline(edges []Edge, weights Weights, cfg Config) ([]Cluster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, nil
	}

	components := FindComponents(edges)

	selected := make([][]Candidate, 0, len(components))
	for _, comp := range components {
		candidates := GenerateCandidates(comp, weights, cfg)
		if len(candidates) == 0 {
			continue
		}
		selected = append(selected, Select(candidates))
	}

	return Materialize(selected), nil
}
