package layout

import "github.com/sceneflow/sceneflow/pkg/diagram"

// assemble deduplicates edges by id, keeping the first occurrence.
// Terminal-directed edges are ordered ahead of the rest, so when two
// construction paths produce the same edge identity the variant landing
// on a terminal wins. Relative order within each group is preserved.
func assemble(edges []diagram.Edge, terminals map[string]bool) []diagram.Edge {
	ordered := make([]diagram.Edge, 0, len(edges))
	for _, e := range edges {
		if terminals[e.Target] {
			ordered = append(ordered, e)
		}
	}
	for _, e := range edges {
		if !terminals[e.Target] {
			ordered = append(ordered, e)
		}
	}

	seen := make(map[string]bool, len(ordered))
	out := make([]diagram.Edge, 0, len(ordered))
	for _, e := range ordered {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
