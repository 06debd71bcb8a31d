package layout

import (
	"fmt"

	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/display"
	"github.com/sceneflow/sceneflow/pkg/script"
)

// arena accumulates the nodes, edges, and diagnostics of one layout
// invocation. It also owns the per-invocation id state: the visited set
// guarding against repeated subtrees and the counter behind fallback ids.
// A fresh arena is created per Layout call, so engines stay stateless.
type arena struct {
	eng *Engine
	src *display.SourceContext

	nodes []diagram.Node
	edges []diagram.Edge
	diags []string

	// terminals records the synthetic end-node ids so the assemble pass
	// can give terminal-directed edges dedupe priority.
	terminals map[string]bool

	visited  map[*script.Node]bool
	fallback map[*script.Node]string
	nextID   int
}

func newArena(e *Engine, src *display.SourceContext) *arena {
	return &arena{
		eng:       e,
		src:       src,
		terminals: make(map[string]bool),
		visited:   make(map[*script.Node]bool),
		fallback:  make(map[*script.Node]string),
	}
}

// resolveID returns the node's id, synthesizing a deterministic fallback
// for nodes without one. Fallbacks are memoized per node object because
// sequence threading resolves a sibling's id before laying it out; both
// resolutions must agree.
func (a *arena) resolveID(n *script.Node) string {
	if n.ID != "" {
		return n.ID
	}
	if id, ok := a.fallback[n]; ok {
		return id
	}
	id := fmt.Sprintf("node-%d", a.nextID)
	a.nextID++
	a.fallback[n] = id
	return id
}

// addNode appends a positioned diagram node for the given script node,
// attaching resolver metadata and the theme accent.
func (a *arena) addNode(n *script.Node, id string, x, y float64) {
	g := a.eng.Geometry
	dn := diagram.Node{
		ID:       id,
		Type:     string(n.Type),
		Label:    n.Label,
		Position: diagram.Position{X: x, Y: y},
		Size:     diagram.Size{Width: g.NodeWidth, Height: g.NodeHeight},
		Accent:   a.eng.Theme.Accent(string(n.Type)),
		Display:  a.eng.Resolver.Resolve(n, a.src),
	}
	if n.Label != "" || n.StartLine > 0 || n.EndLine > 0 {
		dn.Source = &diagram.Source{
			Label:     n.Label,
			StartLine: n.StartLine,
			EndLine:   n.EndLine,
		}
	}
	a.nodes = append(a.nodes, dn)
}

// addEdge appends an edge with its deterministic id and themed style.
// Edges with an empty target are dropped; they arise only in degenerate
// trees that already carry a diagnostic.
func (a *arena) addEdge(source, target string, label diagram.EdgeLabel, discriminator string) {
	if target == "" {
		return
	}
	a.edges = append(a.edges, diagram.Edge{
		ID:     diagram.EdgeID(source, target, discriminator),
		Source: source,
		Target: target,
		Label:  label,
		Style:  a.eng.Theme.EdgeStyle(label),
	})
}

// translate shifts nodes[start:end] horizontally by dx. Branch and option
// subtrees are laid out at a provisional x and centered afterwards, once
// their widths are known.
func (a *arena) translate(start, end int, dx float64) {
	if dx == 0 {
		return
	}
	for i := start; i < end; i++ {
		a.nodes[i].Position.X += dx
	}
}

func (a *arena) diag(format string, args ...any) {
	a.diags = append(a.diags, fmt.Sprintf(format, args...))
}

func (a *arena) result() *diagram.Diagram {
	return &diagram.Diagram{
		Nodes:       a.nodes,
		Edges:       a.edges,
		Diagnostics: a.diags,
	}
}
