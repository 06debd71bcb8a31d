// Package diagram defines the positioned node-and-edge model produced by
// the layout engine and consumed by an external renderer.
//
// # Model
//
//   - [Diagram]: the complete result (nodes, edges, diagnostics)
//   - [Node]: a positioned, sized element with pass-through display metadata
//   - [Edge]: a directed connection with an optional True/False label
//   - [Geometry]: the fixed spacing constants that drive placement
//
// The engine guarantees that every edge's Source and Target refer to an id
// present in Nodes, that edge ids are unique within one diagram, and that
// identical input yields identical coordinates and ids.
//
// # Wire Format
//
// Diagrams serialize to a node-link JSON format:
//
//	{
//	  "nodes": [{"id": "a", "type": "Action", "position": {"x": 0, "y": 0}, ...}],
//	  "edges": [{"id": "edge-a-b", "source": "a", "target": "b"}]
//	}
//
// Common operations:
//
//	data, _ := diagram.Marshal(d)          // Diagram → []byte
//	d, _ := diagram.Unmarshal(data)        // []byte → Diagram
//	diagram.WriteFile(d, "out.json")       // Diagram → file
//	d, _ := diagram.ReadFile("out.json")   // file → Diagram
//
// # Concurrency
//
// A Diagram is plain data: safe for concurrent reads, not concurrent writes.
package diagram
