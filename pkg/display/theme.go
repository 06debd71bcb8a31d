package display

import "github.com/sceneflow/sceneflow/pkg/diagram"

// Default accent colors per visual type.
const (
	ColorLabel      = "#4C6EF5"
	ColorAction     = "#74C0FC"
	ColorCondition  = "#FAB005"
	ColorMenu       = "#BE4BDB"
	ColorMenuOption = "#D0BFFF"
	ColorTerminal   = "#868E96"
	ColorFallback   = "#ADB5BD"
)

// Default edge styles per branch label.
const (
	EdgeStyleTrue    = "#2F9E44"
	EdgeStyleFalse   = "#E03131"
	EdgeStyleDefault = "#868E96"
)

// Theme maps visual types to accent colors and edge labels to edge styles.
// Values are opaque strings (hex colors by convention) passed through to
// the renderer. The zero value is not usable - use DefaultTheme.
type Theme struct {
	Accents map[string]string
	Edges   map[diagram.EdgeLabel]string
}

// DefaultTheme returns the stock color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accents: map[string]string{
			"Label":       ColorLabel,
			"Action":      ColorAction,
			"Conditional": ColorCondition,
			"Menu":        ColorMenu,
			"MenuOption":  ColorMenuOption,
			"Terminal":    ColorTerminal,
		},
		Edges: map[diagram.EdgeLabel]string{
			diagram.LabelTrue:  EdgeStyleTrue,
			diagram.LabelFalse: EdgeStyleFalse,
		},
	}
}

// Accent returns the accent color for a visual type.
// Unknown types get the fallback color, so forward-compatible node types
// still render with a sensible default.
func (t Theme) Accent(visualType string) string {
	if c, ok := t.Accents[visualType]; ok {
		return c
	}
	return ColorFallback
}

// EdgeStyle returns the style string for an edge label.
func (t Theme) EdgeStyle(label diagram.EdgeLabel) string {
	if s, ok := t.Edges[label]; ok {
		return s
	}
	return EdgeStyleDefault
}

// IsZero reports whether the theme has no mappings at all.
func (t Theme) IsZero() bool {
	return t.Accents == nil && t.Edges == nil
}
