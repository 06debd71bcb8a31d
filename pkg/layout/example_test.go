package layout_test

import (
	"fmt"

	"github.com/sceneflow/sceneflow/pkg/layout"
	"github.com/sceneflow/sceneflow/pkg/script"
)

func ExampleEngine_conditional() {
	// A label with an action followed by a two-way conditional
	s := &script.Script{Blocks: []*script.Node{{
		ID:   "L",
		Type: script.TypeLabel,
		Children: []*script.Node{
			{ID: "A1", Type: script.TypeAction},
			{
				ID:          "C1",
				Type:        script.TypeConditional,
				Children:    []*script.Node{{ID: "A2", Type: script.TypeAction}},
				FalseBranch: []*script.Node{{ID: "A3", Type: script.TypeAction}},
			},
		},
	}}}

	d := layout.New().Layout(s)

	fmt.Println("Nodes:", len(d.Nodes))
	fmt.Println("Edges:", len(d.Edges))
	fmt.Println("Terminal:", d.HasNode("end-L"))
	// Output:
	// Nodes: 6
	// Edges: 6
	// Terminal: true
}

func ExampleEngine_menu() {
	// A menu fans out into one unlabeled edge per option
	s := &script.Script{Blocks: []*script.Node{{
		ID:   "M",
		Type: script.TypeLabel,
		Children: []*script.Node{{
			ID:   "menu",
			Type: script.TypeMenu,
			Children: []*script.Node{
				{ID: "left", Type: script.TypeMenuOption},
				{ID: "right", Type: script.TypeMenuOption},
			},
		}},
	}}}

	d := layout.New().Layout(s)

	for _, e := range d.OutgoingEdges("menu") {
		fmt.Println(e.ID)
	}
	// Output:
	// edge-menu-left-option
	// edge-menu-right-option
}
