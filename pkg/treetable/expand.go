package treetable

import (
	"github.com/virgo47/javasimon/internal/logger"
)

// Toggle flips the expand state of the node with the given id.
func (t *Table) Toggle(id string) (Event, error) {
	n, err := t.Find(id)
	if err != nil {
		return Event{}, err
	}
	return t.ToggleNode(n)
}

// ToggleNode flips the expand state of n and recomputes the visibility of its
// strict descendants. n itself keeps its visibility. Leaves fail with a
// *NotApplicableError and nodes of another tree with a *NotFoundError.
func (t *Table) ToggleNode(n *TreeNode) (Event, error) {
	if err := t.owns(n); err != nil {
		return Event{}, err
	}
	if !n.hasChildren {
		logger.Debug("toggle not applicable", "table", t.id, "node", n.id)
		return Event{}, &NotApplicableError{NodeID: n.id, Operation: "toggle"}
	}

	n.expanded = !n.expanded
	changes := cascade(n)

	ev := Event{Op: OpToggle, NodeID: n.id, Expanded: n.expanded, Changes: changes}
	logger.Debug("node toggled", "table", t.id, "node", n.id, "expanded", n.expanded, "changes", len(changes))
	t.publish(ev)
	return ev, nil
}

// ExpandAll expands every node with children.
func (t *Table) ExpandAll() Event {
	return t.setExpanded(OpExpandAll, func(*TreeNode) bool { return true })
}

// CollapseAll collapses every node with children. The root stays visible.
func (t *Table) CollapseAll() Event {
	return t.setExpanded(OpCollapseAll, func(*TreeNode) bool { return false })
}

// ExpandToDepth expands the nodes above depth d and collapses the rest, so
// that exactly the nodes with depth <= d are visible.
func (t *Table) ExpandToDepth(d int) Event {
	return t.setExpanded(OpExpandToDepth, func(n *TreeNode) bool { return n.depth < d })
}

// ExpandPath expands every ancestor of the node with the given id so the node
// becomes visible. Other nodes keep their state.
func (t *Table) ExpandPath(id string) (Event, error) {
	n, err := t.Find(id)
	if err != nil {
		return Event{}, err
	}

	for p := n.parent; p != nil; p = p.parent {
		p.expanded = true
	}
	ev := Event{Op: OpExpandPath, NodeID: n.id, Expanded: n.Expanded()}
	if t.root != nil {
		ev.Changes = cascade(t.root)
	}
	logger.Debug("path expanded", "table", t.id, "node", n.id, "changes", len(ev.Changes))
	t.publish(ev)
	return ev, nil
}

func (t *Table) setExpanded(op Operation, expand func(*TreeNode) bool) Event {
	if t.root == nil {
		return Event{Op: op}
	}

	walk(t.root, func(n *TreeNode) {
		if n.hasChildren {
			n.expanded = expand(n)
		}
	})
	ev := Event{Op: op, NodeID: t.root.id, Expanded: t.root.Expanded(), Changes: cascade(t.root)}
	logger.Debug("expand state reset", "table", t.id, "op", string(op), "changes", len(ev.Changes))
	t.publish(ev)
	return ev
}

// cascade recomputes the cached visibility of every strict descendant of n
// from its parent and returns the nodes that changed, in preorder.
func cascade(n *TreeNode) []VisibilityChange {
	return Visit(n, func(c *TreeNode, start *TreeNode) (VisibilityChange, bool) {
		if c == start {
			return VisibilityChange{}, false
		}
		visible := c.parent.visible && c.parent.Expanded()
		if visible == c.visible {
			return VisibilityChange{}, false
		}
		c.visible = visible
		return VisibilityChange{NodeID: c.id, Visible: visible}, true
	}, n)
}

func (t *Table) owns(n *TreeNode) error {
	if n == nil {
		return &NotFoundError{NodeID: ""}
	}
	if t.index[n.id] != n {
		return &NotFoundError{NodeID: n.id}
	}
	return nil
}
