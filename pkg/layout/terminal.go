package layout

import (
	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/script"
)

// terminalID names the synthetic end node of a block.
func terminalID(blockID string) string {
	return "end-" + blockID
}

// injectTerminal appends the block's terminal node, horizontally centered
// within the block's span and placed on the first free row below it.
func (e *Engine) injectTerminal(a *arena, termID string, sp span) {
	n := &script.Node{ID: termID, Type: script.TypeTerminal}
	x := sp.minX + (sp.maxX-sp.minX)/2
	a.addNode(n, termID, x, sp.nextY)
}

// connectLeaves routes every node of the block that ended up with no
// outgoing edge into the block's terminal. Branch arms and menu options
// normally rejoin through fallthrough threading; this sweep catches the
// nodes no construction path reached, such as children stranded when a
// guard skipped their successors.
func (e *Engine) connectLeaves(a *arena, start, end int, termID string) {
	outgoing := make(map[string]bool, len(a.edges))
	for _, ed := range a.edges {
		outgoing[ed.Source] = true
	}
	for i := start; i < end; i++ {
		id := a.nodes[i].ID
		if outgoing[id] {
			continue
		}
		a.addEdge(id, termID, diagram.LabelNone, "")
	}
}
