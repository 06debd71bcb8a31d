package diagram

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EdgeLabel annotates an edge with its branch semantics.
// Sequential, menu-option, and leaf-to-terminal edges are unlabeled.
type EdgeLabel string

const (
	// LabelNone marks a plain sequential or option edge.
	LabelNone EdgeLabel = ""
	// LabelTrue marks the edge into a conditional's true branch.
	LabelTrue EdgeLabel = "True"
	// LabelFalse marks the edge into a conditional's false branch.
	LabelFalse EdgeLabel = "False"
)

// Position is the top-left corner of a node box.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the rendered extent of a node box.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Display carries the resolver-supplied presentation metadata for a node.
// The layout engine passes it through without inspecting its contents.
type Display struct {
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
	Status  string `json:"status,omitempty"`
	Author  string `json:"author,omitempty"`
	Tag     string `json:"tag,omitempty"`
}

// Source is a copy of the originating script data, kept on the diagram
// node for caller convenience. The node holds no live reference back into
// the script tree.
type Source struct {
	Label     string `json:"label,omitempty"`
	StartLine int    `json:"start_line,omitempty"`
	EndLine   int    `json:"end_line,omitempty"`
}

// Node is a positioned element of the diagram.
type Node struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"` // visual type; mirrors the script node type
	Label    string   `json:"label,omitempty"`
	Position Position `json:"position"`
	Size     Size     `json:"size"`
	Accent   string   `json:"accent,omitempty"` // accent color from the theme lookup
	Display  Display  `json:"display"`
	Source   *Source  `json:"source,omitempty"`
}

// Edge is a directed connection between two nodes.
type Edge struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Label  EdgeLabel `json:"label,omitempty"`
	Style  string    `json:"style,omitempty"` // visual only, opaque to the engine
}

// EdgeID builds the deterministic edge identity from its endpoints and an
// optional discriminator. The discriminator distinguishes True/False/option
// edges that would otherwise collide on the same source/target pair.
func EdgeID(source, target, discriminator string) string {
	if discriminator == "" {
		return fmt.Sprintf("edge-%s-%s", source, target)
	}
	return fmt.Sprintf("edge-%s-%s-%s", source, target, discriminator)
}

// Diagram is the complete layout result handed to the renderer.
// Diagnostics records recoverable anomalies (malformed root, depth guard,
// cyclic structure) absorbed while producing a best-effort diagram.
type Diagram struct {
	Nodes       []Node   `json:"nodes"`
	Edges       []Edge   `json:"edges"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// NodeIDs returns the set of node ids present in the diagram.
func (d *Diagram) NodeIDs() map[string]bool {
	ids := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		ids[n.ID] = true
	}
	return ids
}

// HasNode reports whether a node with the given id exists.
func (d *Diagram) HasNode(id string) bool {
	for _, n := range d.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Node returns the node with the given id and true, or a zero Node and
// false if not found.
func (d *Diagram) Node(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// OutgoingEdges returns the edges whose source is the given node id, in
// diagram order.
func (d *Diagram) OutgoingEdges(id string) []Edge {
	var out []Edge
	for _, e := range d.Edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// Marshal serializes a Diagram to pretty-printed JSON bytes.
func Marshal(d *Diagram) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Diagram.
func Unmarshal(data []byte) (*Diagram, error) {
	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal diagram: %w", err)
	}
	return &d, nil
}

// Write writes a Diagram as indented JSON to an io.Writer.
func Write(d *Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode diagram: %w", err)
	}
	return nil
}

// WriteFile writes a Diagram to a JSON file with 0644 permissions.
func WriteFile(d *Diagram, path string) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadFile reads a Diagram from a JSON file.
func ReadFile(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
