package display

import (
	"strings"

	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/script"
)

// Summarization limits for DefaultResolver. Bodies longer than
// summaryMaxLines collapse to the first and last summaryHeadTail non-empty
// lines around an elision marker.
const (
	summaryMaxLines = 14
	summaryHeadTail = 6
	elisionMarker   = "<...>"
)

// SourceContext carries the original script source for summary derivation.
// Lines are 1-indexed via node StartLine/EndLine. A nil context is valid;
// resolvers then fall back to node labels.
type SourceContext struct {
	Lines []string
}

// NewSourceContext splits raw script source into a SourceContext.
func NewSourceContext(source string) *SourceContext {
	if source == "" {
		return nil
	}
	return &SourceContext{Lines: strings.Split(source, "\n")}
}

// line returns the 1-indexed source line, or "" when out of range.
func (c *SourceContext) line(n int) string {
	if c == nil || n < 1 || n > len(c.Lines) {
		return ""
	}
	return c.Lines[n-1]
}

// Resolver derives presentation metadata for a raw script node.
// Implementations must be pure: the same node and context always produce
// the same Display, or layout determinism is lost.
type Resolver interface {
	Resolve(n *script.Node, src *SourceContext) diagram.Display
}

// DefaultResolver is the stock metadata resolver.
type DefaultResolver struct{}

// NewDefaultResolver creates the stock resolver.
func NewDefaultResolver() *DefaultResolver { return &DefaultResolver{} }

// Resolve derives a title from the node's label or type, a summary from its
// source line range, and a lowercase type tag.
func (r *DefaultResolver) Resolve(n *script.Node, src *SourceContext) diagram.Display {
	if n == nil {
		return diagram.Display{}
	}
	return diagram.Display{
		Title:   r.title(n),
		Summary: r.summary(n, src),
		Tag:     strings.ToLower(string(n.Type)),
	}
}

func (r *DefaultResolver) title(n *script.Node) string {
	switch n.Type {
	case script.TypeLabel:
		if n.Label != "" {
			return n.Label
		}
		return "label"
	case script.TypeMenu:
		return "menu"
	case script.TypeConditional:
		if n.Label != "" {
			return n.Label
		}
		return "if"
	case script.TypeTerminal:
		return "End"
	default:
		if n.Label != "" {
			return n.Label
		}
		return n.ID
	}
}

// summary assembles the node's source lines, eliding long bodies to the
// first and last six non-empty lines around a "<...>" marker.
func (r *DefaultResolver) summary(n *script.Node, src *SourceContext) string {
	if src == nil || n.StartLine < 1 || n.EndLine < n.StartLine {
		return n.Label
	}

	total := n.EndLine - n.StartLine + 1
	if total <= summaryMaxLines {
		var parts []string
		for i := n.StartLine; i <= n.EndLine; i++ {
			if line := strings.TrimSpace(src.line(i)); line != "" {
				parts = append(parts, line)
			}
		}
		return strings.Join(parts, "\n")
	}

	var parts []string
	appended := 0
	for i := n.StartLine; i <= n.EndLine && appended < summaryHeadTail; i++ {
		if line := strings.TrimSpace(src.line(i)); line != "" {
			parts = append(parts, line)
			appended++
		}
	}

	parts = append(parts, elisionMarker)

	var tail []string
	appended = 0
	for i := n.EndLine; i >= n.StartLine && appended < summaryHeadTail; i-- {
		if line := strings.TrimSpace(src.line(i)); line != "" {
			tail = append(tail, line)
			appended++
		}
	}
	// tail was collected bottom-up; reverse into document order.
	for i := len(tail) - 1; i >= 0; i-- {
		parts = append(parts, tail[i])
	}

	return strings.Join(parts, "\n")
}
