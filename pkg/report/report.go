// Package report renders a human-readable summary of an assembled
// collection's tab hierarchy. It is a presentation layer only: it never
// mutates the tree and carries no per-item rendering logic.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chartdeck/chartdeck/pkg/deck"
	"github.com/chartdeck/chartdeck/pkg/deck/tabpath"
	"github.com/chartdeck/chartdeck/pkg/deck/tree"
)

// Reporter summarizes a built hierarchy. Labels map tabgroup ids
// (slash-joined paths) to display names; unlabeled tabs fall back to their
// last path segment.
type Reporter interface {
	Summarize(root *tree.Node, labels map[string]string) (string, error)
}

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - tab headings
	colorWhite = lipgloss.Color("255") // Bright white - titles
	colorGray  = lipgloss.Color("245") // Gray - kinds and counts
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTab for tab headings.
	StyleTab = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleTitle for item titles.
	StyleTitle = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleKind for item kinds.
	StyleKind = lipgloss.NewStyle().Foreground(colorGray)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Text Reporter
// =============================================================================

// Text renders an indented plain-text outline of the hierarchy, one line
// per tab and per item, in traversal order.
type Text struct{}

// Summarize walks the tree in render order and prints each tab heading at
// its depth, followed by the items that terminate there.
func (Text) Summarize(root *tree.Node, labels map[string]string) (string, error) {
	if root == nil {
		return "", fmt.Errorf("report: nil tree")
	}

	var b strings.Builder
	err := root.Walk(func(path tabpath.Path, node *tree.Node) error {
		indent := strings.Repeat("  ", len(path))
		if len(path) > 0 {
			b.WriteString(indent)
			b.WriteString(StyleTab.Render(tabName(path, labels)))
			b.WriteString("\n")
			indent += "  "
		}
		for _, item := range node.Items {
			b.WriteString(indent)
			b.WriteString(itemLine(item))
			b.WriteString("\n")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	b.WriteString(StyleDim.Render(fmt.Sprintf("%d items · %d tabs", root.ItemCount(), root.NodeCount()-1)))
	b.WriteString("\n")
	return b.String(), nil
}

// tabName resolves the display name of a tab: an explicit label keyed by
// the slash-joined path wins, otherwise the last path segment.
func tabName(path tabpath.Path, labels map[string]string) string {
	if label, ok := labels[path.String()]; ok {
		return label
	}
	return path[len(path)-1]
}

// itemLine formats one item as "index. kind title".
func itemLine(item deck.ItemSpec) string {
	line := StyleDim.Render(fmt.Sprintf("%d.", item.Index)) + " " + StyleKind.Render(string(item.Kind))
	if item.Title != "" {
		line += " " + StyleTitle.Render(item.Title)
	}
	return line
}
