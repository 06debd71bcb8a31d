package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrDuplicateNodeID is returned by [Script.Validate] when two nodes in
	// the tree share the same non-empty id. Node ids must be unique across
	// the whole tree passed to one layout invocation.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrCyclicStructure is returned by [Script.Validate] when the same node
	// object is reachable through more than one path. A script must be a
	// tree; shared or cyclic structure would make layout non-terminating.
	ErrCyclicStructure = errors.New("script structure is not a tree")
)

// NodeType classifies a script node by its control-flow role.
// Unknown values are preserved and treated as generic actions by the
// layout engine, keeping the format forward-compatible with parser
// extensions.
type NodeType string

const (
	// TypeLabel is a top-level named scene entry point.
	TypeLabel NodeType = "Label"
	// TypeAction is a linear statement with no branching.
	TypeAction NodeType = "Action"
	// TypeConditional branches into a true sequence (Children) and an
	// optional false sequence (FalseBranch).
	TypeConditional NodeType = "Conditional"
	// TypeMenu presents mutually exclusive options (Children, each a
	// TypeMenuOption).
	TypeMenu NodeType = "Menu"
	// TypeMenuOption is a single menu choice; its Children form the
	// option's body.
	TypeMenuOption NodeType = "MenuOption"
	// TypeTerminal marks the synthetic end of a block's flow. Parsers do
	// not normally emit it; the layout engine injects one per block.
	TypeTerminal NodeType = "Terminal"
)

// Node is a single vertex in the script tree.
//
// Children is the sequential body for labels and actions, the true branch
// for conditionals, and the option list for menus. FalseBranch is only
// meaningful on conditionals. StartLine/EndLine record the node's origin in
// the script source and feed the display resolver's summaries; zero values
// mean "unknown".
type Node struct {
	ID          string   `json:"id,omitempty"`
	Type        NodeType `json:"type"`
	Label       string   `json:"label,omitempty"`
	StartLine   int      `json:"start_line,omitempty"`
	EndLine     int      `json:"end_line,omitempty"`
	Children    []*Node  `json:"children,omitempty"`
	FalseBranch []*Node  `json:"false_branch,omitempty"`
}

// IsBranch reports whether the node splits control flow.
func (n *Node) IsBranch() bool {
	return n.Type == TypeConditional || n.Type == TypeMenu
}

// IsLeaf reports whether the node has no body at all.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0 && len(n.FalseBranch) == 0
}

// DisplayLabel returns the label if set, otherwise the id.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Script is the root of a parsed script: an ordered list of top-level
// blocks, each typically a TypeLabel node.
type Script struct {
	Blocks []*Node `json:"blocks"`
}

// Count returns the total number of nodes in the tree.
func (s *Script) Count() int {
	count := 0
	s.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Walk visits every node in pre-order (node, children, false branch) and
// reports its nesting depth, starting at 0 for top-level blocks. Returning
// false from fn stops the walk.
func (s *Script) Walk(fn func(n *Node, depth int) bool) {
	if s == nil {
		return
	}
	var walk func(n *Node, depth int) bool
	walk = func(n *Node, depth int) bool {
		if n == nil {
			return true
		}
		if !fn(n, depth) {
			return false
		}
		for _, c := range n.Children {
			if !walk(c, depth+1) {
				return false
			}
		}
		for _, c := range n.FalseBranch {
			if !walk(c, depth+1) {
				return false
			}
		}
		return true
	}
	for _, b := range s.Blocks {
		if !walk(b, 0) {
			return
		}
	}
}

// Validate checks tree integrity and returns nil if valid.
// It verifies two constraints:
//
//  1. Non-empty node ids are unique across the whole tree
//  2. The structure is a tree (no node object appears twice)
//
// Returns ErrDuplicateNodeID or ErrCyclicStructure, wrapped with the
// offending id where one is available. Missing ids are not an error; the
// layout engine synthesizes deterministic fallbacks for them.
func (s *Script) Validate() error {
	ids := make(map[string]bool)
	seen := make(map[*Node]bool)

	var check func(n *Node) error
	check = func(n *Node) error {
		if n == nil {
			return nil
		}
		if seen[n] {
			return fmt.Errorf("node %q: %w", n.ID, ErrCyclicStructure)
		}
		seen[n] = true
		if n.ID != "" {
			if ids[n.ID] {
				return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNodeID)
			}
			ids[n.ID] = true
		}
		for _, c := range n.Children {
			if err := check(c); err != nil {
				return err
			}
		}
		for _, c := range n.FalseBranch {
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}

	for _, b := range s.Blocks {
		if err := check(b); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal deserializes JSON bytes to a Script.
func Unmarshal(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal script: %w", err)
	}
	return &s, nil
}

// Marshal serializes a Script to pretty-printed JSON bytes.
func Marshal(s *Script) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Read decodes a JSON script from an io.Reader.
// Use ReadFile for files or pass bytes.NewReader for in-memory data.
func Read(r io.Reader) (*Script, error) {
	var s Script
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

// ReadFile reads a JSON file and returns the decoded Script.
func ReadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write writes a Script as indented JSON to an io.Writer.
func Write(s *Script, w io.Writer) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("encode script: %w", err)
	}
	data = append(data, '\n')
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// WriteFile writes a Script to a JSON file with 0644 permissions.
func WriteFile(s *Script, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
