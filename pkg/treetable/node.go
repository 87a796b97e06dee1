package treetable

// TreeNode is the table-owned counterpart of one RawNode. Its position in the
// tree is fixed at build time; only the expanded flag changes afterwards.
type TreeNode struct {
	id          string
	parent      *TreeNode // lookup only, never ownership
	depth       int
	ordinal     int
	isLast      bool
	hasChildren bool
	expanded    bool
	visible     bool // cached, see recomputeVisibility
	children    []*TreeNode
	payload     RawNode
}

// ID returns the path-derived identifier, unique within one tree.
func (n *TreeNode) ID() string { return n.id }

// Parent returns the parent node, or nil for the root.
func (n *TreeNode) Parent() *TreeNode { return n.parent }

// Depth returns 0 for the root and parent depth + 1 otherwise.
func (n *TreeNode) Depth() int { return n.depth }

// Ordinal returns the zero-based position among siblings.
func (n *TreeNode) Ordinal() int { return n.ordinal }

// IsLast reports whether n is the last of its siblings. The root is last.
func (n *TreeNode) IsLast() bool { return n.isLast }

// HasChildren reports whether the source record had a non-empty child sequence.
func (n *TreeNode) HasChildren() bool { return n.hasChildren }

// Expanded reports the expand flag. It is only meaningful when HasChildren is true.
func (n *TreeNode) Expanded() bool { return n.hasChildren && n.expanded }

// Visible reports whether every strict ancestor is expanded.
func (n *TreeNode) Visible() bool { return n.visible }

// Children returns the ordered children. Callers must not modify the slice.
func (n *TreeNode) Children() []*TreeNode { return n.children }

// Payload returns the source record.
func (n *TreeNode) Payload() RawNode { return n.payload }

// IsRoot reports whether n has no parent.
func (n *TreeNode) IsRoot() bool { return n.parent == nil }

// Root walks up to the root of n's tree.
func (n *TreeNode) Root() *TreeNode {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Ancestors returns the strict ancestors of n ordered from the root down to
// n's parent.
func (n *TreeNode) Ancestors() []*TreeNode {
	if n.depth == 0 {
		return nil
	}
	out := make([]*TreeNode, n.depth)
	i := n.depth - 1
	for p := n.parent; p != nil; p = p.parent {
		out[i] = p
		i--
	}
	return out
}

// IsVisibleByRule evaluates visibility from the ancestor chain, ignoring the
// cached flag.
func IsVisibleByRule(n *TreeNode) bool {
	for p := n.parent; p != nil; p = p.parent {
		if !p.Expanded() {
			return false
		}
	}
	return true
}
