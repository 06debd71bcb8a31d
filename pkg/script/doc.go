// Package script defines the parsed script tree consumed by the layout engine.
//
// A script is produced upstream by a narrative-script parser and handed to
// Sceneflow as a tree of typed nodes: top-level label blocks containing
// sequential actions, conditionals with true/false branches, and menus with
// mutually exclusive option sequences.
//
// # Wire Format
//
// Scripts use a simple JSON tree format:
//
//	{
//	  "blocks": [
//	    {
//	      "id": "start",
//	      "type": "Label",
//	      "label": "start",
//	      "children": [
//	        {"id": "a1", "type": "Action"},
//	        {
//	          "id": "c1",
//	          "type": "Conditional",
//	          "children": [{"id": "a2", "type": "Action"}],
//	          "false_branch": [{"id": "a3", "type": "Action"}]
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// Common operations:
//
//	s, _ := script.ReadFile("script.json")   // File → Script
//	s, _ := script.Read(r)                   // io.Reader → Script
//	s, _ := script.Unmarshal(data)           // []byte → Script
//	data, _ := script.Marshal(s)             // Script → []byte
//
// # Identity
//
// Every node should carry a non-empty id that is unique across the whole
// tree. Missing ids are tolerated (the layout engine synthesizes
// deterministic fallback ids), but duplicate ids are a validation error.
// Use [Script.Validate] before layout to surface structural problems.
//
// # Concurrency
//
// Script trees are plain data. They are safe for concurrent reads but not
// concurrent mutation.
package script
