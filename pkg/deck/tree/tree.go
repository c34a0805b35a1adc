// Package tree builds the nested tab hierarchy from a flat ordered item
// list. It is the read-only contract between the deck builder and any
// reporter or renderer that organizes output by tab.
//
// Build is total: it never fails. Items without a tabgroup path land in the
// root's own bucket, and every depth is handled by the same segment walk
// with no special cases for shallow or deep hierarchies.
package tree

import (
	"github.com/chartdeck/chartdeck/pkg/deck"
	"github.com/chartdeck/chartdeck/pkg/deck/tabpath"
)

// Node is one level of the tab hierarchy. Items holds the items that
// terminate at this node in arrival order; children are keyed by path
// segment and preserve first-encountered order, so repeated traversal is
// deterministic.
//
// The root node's Items bucket holds the ungrouped items.
type Node struct {
	// Items that terminate at this node, in insertion order.
	Items []deck.ItemSpec

	order    []string
	children map[string]*Node
}

// Build constructs the hierarchy tree from a flat ordered item list.
//
// For each item, in list order, the builder walks the item's tabgroup path
// one segment at a time from the root, creating each child node on first
// visit, and appends the item to the node where the path ends. Node
// creation is idempotent: items sharing a path prefix reuse the same node
// chain, and within a node item order equals the relative insertion order
// of the items that terminate there.
func Build(items []deck.ItemSpec) *Node {
	root := &Node{}
	for _, item := range items {
		node := root
		for _, segment := range item.TabgroupPath {
			node = node.child(segment)
		}
		node.Items = append(node.Items, item)
	}
	return root
}

// child returns the child node for segment, creating it on first visit.
func (n *Node) child(segment string) *Node {
	if c, ok := n.children[segment]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	c := &Node{}
	n.children[segment] = c
	n.order = append(n.order, segment)
	return c
}

// Child returns the child node keyed by segment, or nil and false.
func (n *Node) Child(segment string) (*Node, bool) {
	c, ok := n.children[segment]
	return c, ok
}

// ChildNames returns the child segments in first-encountered order.
// The returned slice is a copy.
func (n *Node) ChildNames() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.order) }

// NodeCount returns the number of nodes in the subtree, including n.
func (n *Node) NodeCount() int {
	count := 1
	for _, segment := range n.order {
		count += n.children[segment].NodeCount()
	}
	return count
}

// ItemCount returns the number of items in the subtree, including n's own.
func (n *Node) ItemCount() int {
	count := len(n.Items)
	for _, segment := range n.order {
		count += n.children[segment].ItemCount()
	}
	return count
}

// Depth returns the length of the longest path from n to a leaf.
// A node without children has depth 0.
func (n *Node) Depth() int {
	max := 0
	for _, segment := range n.order {
		if d := n.children[segment].Depth() + 1; d > max {
			max = d
		}
	}
	return max
}

// Visit is called by Walk for every node. Path is the node's position in
// the hierarchy (empty for the root). Returning an error stops the walk.
type Visit func(path tabpath.Path, node *Node) error

// Walk traverses the subtree in the order renderers must follow: a node's
// own items first, then each child in first-encountered order, recursively.
func (n *Node) Walk(visit Visit) error {
	return n.walk(nil, visit)
}

func (n *Node) walk(path tabpath.Path, visit Visit) error {
	if err := visit(path, n); err != nil {
		return err
	}
	for _, segment := range n.order {
		childPath := append(path.Clone(), segment)
		if err := n.children[segment].walk(childPath, visit); err != nil {
			return err
		}
	}
	return nil
}
