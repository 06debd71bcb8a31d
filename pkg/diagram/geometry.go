package diagram

// Default spacing constants. All placement math derives from these; the
// engine never measures text, so layouts are bit-exact across platforms.
const (
	// DefaultNodeWidth is the horizontal size of every node box.
	DefaultNodeWidth = 220.0

	// DefaultNodeHeight is the vertical size of every node box.
	DefaultNodeHeight = 90.0

	// DefaultVerticalGap separates consecutive nodes in a sequence.
	DefaultVerticalGap = 50.0

	// DefaultHorizontalGap separates the columns of adjacent top-level
	// blocks.
	DefaultHorizontalGap = 60.0

	// DefaultBranchGap separates the true and false branches of a
	// conditional when both are present.
	DefaultBranchGap = 80.0

	// DefaultOptionGap separates adjacent menu option columns.
	DefaultOptionGap = 60.0
)

// Geometry holds the fixed spacing constants for one layout invocation.
// The zero value is not usable - use DefaultGeometry or fill every field.
type Geometry struct {
	NodeWidth     float64 `json:"node_width"`
	NodeHeight    float64 `json:"node_height"`
	VerticalGap   float64 `json:"vertical_gap"`
	HorizontalGap float64 `json:"horizontal_gap"`
	BranchGap     float64 `json:"branch_gap"`
	OptionGap     float64 `json:"option_gap"`
}

// DefaultGeometry returns the standard spacing constants.
func DefaultGeometry() Geometry {
	return Geometry{
		NodeWidth:     DefaultNodeWidth,
		NodeHeight:    DefaultNodeHeight,
		VerticalGap:   DefaultVerticalGap,
		HorizontalGap: DefaultHorizontalGap,
		BranchGap:     DefaultBranchGap,
		OptionGap:     DefaultOptionGap,
	}
}

// Step returns the vertical distance between the origins of two
// consecutive nodes in a sequence.
func (g Geometry) Step() float64 {
	return g.NodeHeight + g.VerticalGap
}

// IsZero reports whether the geometry is entirely unset.
func (g Geometry) IsZero() bool {
	return g == Geometry{}
}
