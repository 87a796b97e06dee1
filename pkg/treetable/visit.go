package treetable

// Visit walks the subtree of n in preorder, left to right, applying fn to each
// node. Results with ok == false are dropped; the rest are returned in
// visiting order. A nil n yields nil.
func Visit[C, R any](n *TreeNode, fn func(*TreeNode, C) (R, bool), ctx C) []R {
	if n == nil {
		return nil
	}
	return visitInto(nil, n, fn, ctx)
}

func visitInto[C, R any](out []R, n *TreeNode, fn func(*TreeNode, C) (R, bool), ctx C) []R {
	if r, ok := fn(n, ctx); ok {
		out = append(out, r)
	}
	for _, c := range n.children {
		out = visitInto(out, c, fn, ctx)
	}
	return out
}

// VisitFromRoot walks t's current tree. It is a no-op when t has no data.
func VisitFromRoot[C, R any](t *Table, fn func(*TreeNode, C) (R, bool), ctx C) []R {
	if t == nil || t.root == nil {
		return nil
	}
	return Visit(t.root, fn, ctx)
}

// walk calls fn for every node of the subtree of n in preorder.
func walk(n *TreeNode, fn func(*TreeNode)) {
	fn(n)
	for _, c := range n.children {
		walk(c, fn)
	}
}
