// Package layout converts a script tree into a positioned diagram.
//
// The engine walks each top-level block recursively, placing sequential
// bodies in a vertical chain and balancing branch structures horizontally:
// a conditional's true and false branches sit side by side, width-balanced
// and centered under the conditional; a menu's options form a centered row.
// Blocks are independent flows and occupy side-by-side columns, one
// HorizontalGap apart.
//
// # Fallthrough threading
//
// Instead of building an explicit control-flow graph, every recursive call
// receives the id of the node control reaches after the current subtree
// completes. Branch arms are seeded with the same inherited target, which
// is how both arms of a conditional and every menu option rejoin the
// surrounding flow. The outermost target for a block is the block's
// synthetic terminal node ("end-{blockID}"), so dangling leaves reconnect
// to the terminal through the ordinary mechanism; a final sweep catches
// any node no construction path reached.
//
// # Guarantees
//
//   - One diagram node per script node, plus one terminal per block
//   - Every conditional emits exactly two labeled edges (True/False)
//   - Every menu emits exactly one edge per option
//   - Edge ids are unique after the terminal-priority dedupe pass
//   - Identical input produces identical ids and coordinates; nodes
//     missing an id get deterministic counter-based fallbacks
//
// Recoverable anomalies (empty root, repeated subtrees, excessive depth)
// are absorbed into Diagram.Diagnostics; Layout never panics and never
// returns an error.
//
// # Usage
//
//	eng := layout.New()
//	d := eng.Layout(s)                       // without source text
//	d := eng.LayoutSource(s, sourceContext)  // with source-derived summaries
//
// The engine holds no mutable state between invocations; one Engine may be
// shared by concurrent callers as long as each call gets its own tree.
package layout
