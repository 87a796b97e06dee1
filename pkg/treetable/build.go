package treetable

import (
	"strconv"

	"github.com/virgo47/javasimon/internal/logger"
)

// RootSuffix is appended to the table id to form the root node id.
const RootSuffix = "_Node"

// Build converts root into a node tree whose ids are derived from tableID.
// Every node with children starts expanded and every node starts visible.
func Build(root RawNode, tableID string) (*TreeNode, error) {
	rootID := tableID + RootSuffix
	if root == nil {
		return nil, &StructureError{NodeID: rootID, Reason: "root is nil"}
	}

	n := &TreeNode{
		id:      rootID,
		isLast:  true,
		visible: true,
		payload: root,
	}
	count, err := buildChildren(n)
	if err != nil {
		logger.Debug("tree build failed", "table", tableID, "error", err)
		return nil, err
	}

	logger.Debug("tree built", "table", tableID, "nodes", count)
	return n, nil
}

// buildChildren attaches the children of n.payload and returns the number of
// nodes in n's subtree.
func buildChildren(n *TreeNode) (int, error) {
	raw, reason := childNodes(n.payload)
	if reason != "" {
		return 0, &StructureError{NodeID: n.id, Reason: reason}
	}

	count := 1
	if len(raw) == 0 {
		return count, nil
	}

	n.hasChildren = true
	n.expanded = true
	n.children = make([]*TreeNode, len(raw))
	last := len(raw) - 1
	for k, p := range raw {
		child := &TreeNode{
			id:      n.id + "_" + strconv.Itoa(k),
			parent:  n,
			depth:   n.depth + 1,
			ordinal: k,
			isLast:  k == last,
			visible: true,
			payload: p,
		}
		n.children[k] = child

		sub, err := buildChildren(child)
		if err != nil {
			return 0, err
		}
		count += sub
	}
	return count, nil
}
