package layout

import (
	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/display"
	"github.com/sceneflow/sceneflow/pkg/script"
)

// MaxDepth bounds the recursion while laying out a single block. Scripts
// nest a few levels deep in practice; hitting the bound means the tree is
// degenerate, so the engine records a diagnostic and stops descending.
const MaxDepth = 10000

// Engine lays out script trees. The zero value is usable and equivalent
// to New(); unset collaborators are replaced with defaults per invocation.
type Engine struct {
	Geometry diagram.Geometry
	Resolver display.Resolver
	Theme    display.Theme
}

// New returns an engine with default geometry, resolver, and theme.
func New() *Engine {
	return &Engine{
		Geometry: diagram.DefaultGeometry(),
		Resolver: display.NewDefaultResolver(),
		Theme:    display.DefaultTheme(),
	}
}

// span describes the extent of a laid-out subtree, in node-origin
// coordinates: minX/maxX are the leftmost and rightmost node origins,
// nextY is the first free row below the subtree, and firstID identifies
// the subtree's entry node ("" when the guards skipped everything).
type span struct {
	minX, maxX float64
	nextY      float64
	firstID    string
}

// parentLink carries the predecessor a sequential edge should come from.
// The predecessor's type matters: conditionals and menus connect to their
// successors through labeled and option edges, so the default sequential
// edge is suppressed for them.
type parentLink struct {
	id  string
	typ script.NodeType
}

// Layout produces a positioned diagram for the script without source
// text; node summaries then fall back to labels.
func (e *Engine) Layout(s *script.Script) *diagram.Diagram {
	return e.LayoutSource(s, nil)
}

// LayoutSource produces a positioned diagram, deriving node summaries
// from the original source text. It never returns an error: malformed
// input yields a best-effort diagram with diagnostics attached.
func (e *Engine) LayoutSource(s *script.Script, src *display.SourceContext) *diagram.Diagram {
	e.applyDefaults()

	a := newArena(e, src)
	if s == nil || len(s.Blocks) == 0 {
		a.diag("script has no top-level blocks; nothing to lay out")
		return a.result()
	}

	x := 0.0
	for i, block := range s.Blocks {
		if block == nil {
			a.diag("skipping nil top-level block at index %d", i)
			continue
		}
		x = e.layoutBlock(a, block, x)
	}

	a.edges = assemble(a.edges, a.terminals)
	return a.result()
}

// applyDefaults fills unset collaborators so a zero-value Engine works.
func (e *Engine) applyDefaults() {
	if e.Geometry.IsZero() {
		e.Geometry = diagram.DefaultGeometry()
	}
	if e.Resolver == nil {
		e.Resolver = display.NewDefaultResolver()
	}
	if e.Theme.IsZero() {
		e.Theme = display.DefaultTheme()
	}
}

// layoutBlock lays out one top-level block as its own column whose left
// edge sits at x, injects the block's terminal node, and sweeps unreached
// leaves into it. Blocks are independent flows, so each gets a fresh
// vertical axis; the returned value is where the next block's column
// starts, one HorizontalGap to the right of this one.
func (e *Engine) layoutBlock(a *arena, block *script.Node, x float64) float64 {
	blockID := a.resolveID(block)
	termID := terminalID(blockID)
	a.terminals[termID] = true

	start := len(a.nodes)
	sp := e.layoutNode(a, block, nil, 0, 0, 0, termID)
	if sp.firstID == "" {
		// The guards rejected the whole block; no terminal for nothing.
		delete(a.terminals, termID)
		return x
	}
	end := len(a.nodes)

	e.injectTerminal(a, termID, sp)
	e.connectLeaves(a, start, end, termID)

	// The block was laid out around a provisional origin; branch balancing
	// can push its span left of it. Shift the whole column, terminal
	// included, so the span starts at x.
	a.translate(start, len(a.nodes), x-sp.minX)

	width := sp.maxX - sp.minX + e.Geometry.NodeWidth
	return x + width + e.Geometry.HorizontalGap
}

// layoutNode places a single node at (x, y) and recurses into its body.
// pl is the sequential predecessor (nil for block roots), depth the
// recursion level, and fallthrough the id control reaches after this
// subtree completes.
func (e *Engine) layoutNode(a *arena, n *script.Node, pl *parentLink, x, y float64, depth int, fallthru string) span {
	empty := span{minX: x, maxX: x, nextY: y}
	if n == nil {
		return empty
	}
	if depth > MaxDepth {
		a.diag("node %q exceeds depth %d; subtree skipped", n.ID, MaxDepth)
		return empty
	}
	if a.visited[n] {
		a.diag("node %q reached through more than one path; repeated subtree skipped", n.ID)
		return empty
	}
	a.visited[n] = true

	id := a.resolveID(n)
	a.addNode(n, id, x, y)

	// Default sequential edge from a plain predecessor. Conditional and
	// menu predecessors reach their successors through labeled and option
	// edges instead.
	if pl != nil && pl.typ != script.TypeConditional && pl.typ != script.TypeMenu {
		a.addEdge(pl.id, id, diagram.LabelNone, "")
	}

	switch n.Type {
	case script.TypeConditional:
		return e.layoutConditional(a, n, id, x, y, depth, fallthru)
	case script.TypeMenu:
		return e.layoutMenu(a, n, id, x, y, depth, fallthru)
	}

	if len(n.Children) > 0 {
		self := parentLink{id: id, typ: n.Type}
		sp := e.layoutSequence(a, n.Children, &self, x, y+e.Geometry.Step(), depth+1, fallthru)
		return span{
			minX:    min(x, sp.minX),
			maxX:    max(x, sp.maxX),
			nextY:   sp.nextY,
			firstID: id,
		}
	}

	// Leaf: control falls through to the inherited continuation.
	a.addEdge(id, fallthru, diagram.LabelNone, "")
	return span{minX: x, maxX: x, nextY: y + e.Geometry.Step(), firstID: id}
}

// layoutSequence lays out a vertical chain of siblings. Each node's
// continuation is the next sibling when one exists, otherwise the
// inherited fallthrough, so the last node of every sequence rejoins the
// surrounding flow.
func (e *Engine) layoutSequence(a *arena, seq []*script.Node, pl *parentLink, x, y float64, depth int, fallthru string) span {
	out := span{minX: x, maxX: x, nextY: y}
	prev := pl
	for i, child := range seq {
		if child == nil {
			continue
		}
		next := fallthru
		if j := nextSibling(seq, i); j >= 0 {
			next = a.resolveID(seq[j])
		}
		cs := e.layoutNode(a, child, prev, x, out.nextY, depth, next)
		if cs.firstID == "" {
			// Guard skipped the child; keep threading from the last
			// placed node.
			continue
		}
		if out.firstID == "" {
			out.firstID = cs.firstID
		}
		out.minX = min(out.minX, cs.minX)
		out.maxX = max(out.maxX, cs.maxX)
		out.nextY = cs.nextY
		prev = &parentLink{id: cs.firstID, typ: child.Type}
	}
	return out
}

// nextSibling returns the index of the next non-nil sibling after i,
// or -1 when none remains.
func nextSibling(seq []*script.Node, i int) int {
	for j := i + 1; j < len(seq); j++ {
		if seq[j] != nil {
			return j
		}
	}
	return -1
}

// layoutConditional emits exactly two labeled edges for a conditional.
// Present branches are laid out below and centered under the node; an
// absent branch becomes a labeled edge straight to the fallthrough.
func (e *Engine) layoutConditional(a *arena, n *script.Node, id string, x, y float64, depth int, fallthru string) span {
	g := e.Geometry
	childY := y + g.Step()
	self := &parentLink{id: id, typ: script.TypeConditional}
	out := span{minX: x, maxX: x, nextY: childY, firstID: id}

	hasTrue := len(n.Children) > 0
	hasFalse := len(n.FalseBranch) > 0

	switch {
	case hasTrue && hasFalse:
		tStart := len(a.nodes)
		ts := e.layoutSequence(a, n.Children, self, x, childY, depth+1, fallthru)
		tEnd := len(a.nodes)
		fs := e.layoutSequence(a, n.FalseBranch, self, x, childY, depth+1, fallthru)
		fEnd := len(a.nodes)

		// Width-balanced placement: both branch widths are known before
		// either is shifted, so neither side dictates the other's slot.
		wTrue := ts.maxX - ts.minX + g.NodeWidth
		wFalse := fs.maxX - fs.minX + g.NodeWidth
		total := wTrue + g.BranchGap + wFalse
		left := x + g.NodeWidth/2 - total/2

		a.translate(tStart, tEnd, left-ts.minX)
		a.translate(tEnd, fEnd, left+wTrue+g.BranchGap-fs.minX)

		a.addEdge(id, branchTarget(ts, fallthru), diagram.LabelTrue, "true")
		a.addEdge(id, branchTarget(fs, fallthru), diagram.LabelFalse, "false")

		out.minX = min(x, left)
		out.maxX = max(x, left+total-g.NodeWidth)
		out.nextY = max(ts.nextY, fs.nextY)

	case hasTrue:
		start := len(a.nodes)
		ts := e.layoutSequence(a, n.Children, self, x, childY, depth+1, fallthru)
		end := len(a.nodes)

		dx := e.centerUnder(x, ts)
		a.translate(start, end, dx)

		a.addEdge(id, branchTarget(ts, fallthru), diagram.LabelTrue, "true")
		a.addEdge(id, fallthru, diagram.LabelFalse, "false")

		out.minX = min(x, ts.minX+dx)
		out.maxX = max(x, ts.maxX+dx)
		out.nextY = ts.nextY

	case hasFalse:
		start := len(a.nodes)
		fs := e.layoutSequence(a, n.FalseBranch, self, x, childY, depth+1, fallthru)
		end := len(a.nodes)

		dx := e.centerUnder(x, fs)
		a.translate(start, end, dx)

		a.addEdge(id, fallthru, diagram.LabelTrue, "true")
		a.addEdge(id, branchTarget(fs, fallthru), diagram.LabelFalse, "false")

		out.minX = min(x, fs.minX+dx)
		out.maxX = max(x, fs.maxX+dx)
		out.nextY = fs.nextY

	default:
		// Both branches empty: the conditional still announces both
		// outcomes, each rejoining the flow directly.
		a.addEdge(id, fallthru, diagram.LabelTrue, "true")
		a.addEdge(id, fallthru, diagram.LabelFalse, "false")
	}

	return out
}

// branchTarget picks where a labeled edge lands: the branch's entry node,
// or the fallthrough when the guards left the branch empty.
func branchTarget(sp span, fallthru string) string {
	if sp.firstID != "" {
		return sp.firstID
	}
	return fallthru
}

// centerUnder returns the horizontal shift that centers a subtree span
// under a parent placed at x.
func (e *Engine) centerUnder(x float64, sp span) float64 {
	w := sp.maxX - sp.minX + e.Geometry.NodeWidth
	return (x + e.Geometry.NodeWidth/2) - (sp.minX + w/2)
}

// layoutMenu lays out a menu's options as a centered horizontal row, one
// unlabeled edge per option. Option bodies inherit the menu's
// fallthrough, which is how every choice rejoins the flow.
func (e *Engine) layoutMenu(a *arena, n *script.Node, id string, x, y float64, depth int, fallthru string) span {
	g := e.Geometry
	childY := y + g.Step()
	out := span{minX: x, maxX: x, nextY: childY, firstID: id}

	if len(n.Children) == 0 {
		a.addEdge(id, fallthru, diagram.LabelNone, "")
		return out
	}

	self := &parentLink{id: id, typ: script.TypeMenu}

	type column struct {
		start, end int
		sp         span
	}
	var cols []column
	rowWidth := 0.0
	for _, opt := range n.Children {
		if opt == nil {
			continue
		}
		start := len(a.nodes)
		sp := e.layoutNode(a, opt, self, x, childY, depth+1, fallthru)
		if sp.firstID == "" {
			continue
		}
		cols = append(cols, column{start: start, end: len(a.nodes), sp: sp})
		rowWidth += sp.maxX - sp.minX + g.NodeWidth
		a.addEdge(id, sp.firstID, diagram.LabelNone, "option")
	}
	if len(cols) == 0 {
		a.addEdge(id, fallthru, diagram.LabelNone, "")
		return out
	}
	rowWidth += g.OptionGap * float64(len(cols)-1)

	// Every column was laid out at the provisional x; walk the row and
	// shift each into its slot, centering the whole row under the menu.
	cursor := x + g.NodeWidth/2 - rowWidth/2
	for _, c := range cols {
		dx := cursor - c.sp.minX
		a.translate(c.start, c.end, dx)
		out.minX = min(out.minX, c.sp.minX+dx)
		out.maxX = max(out.maxX, c.sp.maxX+dx)
		out.nextY = max(out.nextY, c.sp.nextY)
		cursor += c.sp.maxX - c.sp.minX + g.NodeWidth + g.OptionGap
	}
	return out
}
