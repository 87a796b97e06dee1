package treetable

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRoot returns root -> [A -> [A1, A2], B].
func sampleRoot() RawNode {
	return RawNode{
		"name": "root",
		"children": []any{
			map[string]any{
				"name": "A",
				"children": []any{
					map[string]any{"name": "A1"},
					map[string]any{"name": "A2"},
				},
			},
			map[string]any{"name": "B"},
		},
	}
}

// randomRoot builds a tree with up to maxDepth levels below the root.
func randomRoot(r *rand.Rand, maxDepth int) RawNode {
	var gen func(depth int) RawNode
	seq := 0
	gen = func(depth int) RawNode {
		seq++
		n := RawNode{"name": fmt.Sprintf("n%d", seq)}
		if depth >= maxDepth {
			return n
		}
		var children []any
		for range r.IntN(4) {
			children = append(children, map[string]any(gen(depth+1)))
		}
		if children != nil {
			n[ChildrenKey] = children
		}
		return n
	}
	return gen(0)
}

func newSampleTable(t *testing.T) *Table {
	t.Helper()
	cols, err := NewColumns(Column{Title: "Name", Field: "name"})
	require.NoError(t, err)
	table := New("t", cols)
	require.NoError(t, table.SetData(sampleRoot()))
	return table
}

func allNodes(root *TreeNode) []*TreeNode {
	return Visit(root, func(n *TreeNode, _ struct{}) (*TreeNode, bool) { return n, true }, struct{}{})
}

func nodeIDs(nodes []*TreeNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}

func TestBuild_SampleIDsAndFlags(t *testing.T) {
	root, err := Build(sampleRoot(), "t")
	require.NoError(t, err)

	nodes := allNodes(root)
	assert.Equal(t, []string{"t_Node", "t_Node_0", "t_Node_0_0", "t_Node_0_1", "t_Node_1"}, nodeIDs(nodes))

	a, a1, a2, b := nodes[1], nodes[2], nodes[3], nodes[4]
	assert.True(t, root.IsLast())
	assert.False(t, a.IsLast())
	assert.True(t, b.IsLast())
	assert.False(t, a1.IsLast())
	assert.True(t, a2.IsLast())

	assert.Nil(t, root.Parent())
	assert.Same(t, root, a.Parent())
	assert.Same(t, a, a2.Parent())
	assert.Equal(t, 1, a2.Ordinal())
	assert.Equal(t, "A2", a2.Payload()["name"])

	assert.True(t, root.HasChildren())
	assert.True(t, a.Expanded())
	assert.False(t, b.HasChildren())
	assert.Empty(t, b.Children())
}

func TestBuild_DepthLawAndUniqueIDs(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 20 {
		root, err := Build(randomRoot(r, 5), "tree")
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, n := range allNodes(root) {
			require.False(t, seen[n.ID()], "duplicate id %s in tree %d", n.ID(), i)
			seen[n.ID()] = true

			if n.Parent() == nil {
				require.Equal(t, 0, n.Depth())
			} else {
				require.Equal(t, n.Parent().Depth()+1, n.Depth())
			}
			require.Equal(t, len(n.Children()) > 0, n.HasChildren())
		}
	}
}

func TestBuild_ChildShapes(t *testing.T) {
	tests := []struct {
		name     string
		children any
		want     int
	}{
		{"absent", nil, 0},
		{"empty", []any{}, 0},
		{"raw nodes", []RawNode{{"name": "x"}, {"name": "y"}}, 2},
		{"maps", []map[string]any{{"name": "x"}}, 1},
		{"any of raw nodes", []any{RawNode{"name": "x"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := RawNode{"name": "root"}
			if tt.children != nil {
				raw[ChildrenKey] = tt.children
			}
			root, err := Build(raw, "t")
			require.NoError(t, err)
			assert.Len(t, root.Children(), tt.want)
			assert.Equal(t, tt.want > 0, root.HasChildren())
		})
	}
}

func TestBuild_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		raw    RawNode
		nodeID string
	}{
		{"nil root", nil, "t_Node"},
		{"children not a sequence", RawNode{"children": "x"}, "t_Node"},
		{"child not an object", RawNode{"children": []any{1}}, "t_Node"},
		{"nil child", RawNode{"children": []RawNode{nil}}, "t_Node"},
		{"nested", RawNode{"children": []any{
			map[string]any{"children": map[string]any{}},
		}}, "t_Node_0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.raw, "t")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrStructure))

			var se *StructureError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.nodeID, se.NodeID)
		})
	}
}

func TestVisit_KeepsChildResults(t *testing.T) {
	root, err := Build(sampleRoot(), "t")
	require.NoError(t, err)

	leaves := Visit(root, func(n *TreeNode, _ any) (string, bool) {
		return n.ID(), !n.HasChildren()
	}, nil)
	assert.Equal(t, []string{"t_Node_0_0", "t_Node_0_1", "t_Node_1"}, leaves)

	names := Visit(root, func(n *TreeNode, prefix string) (string, bool) {
		return prefix + n.Payload()["name"].(string), true
	}, "-")
	assert.Equal(t, []string{"-root", "-A", "-A1", "-A2", "-B"}, names)
}

func TestVisitFromRoot_NoData(t *testing.T) {
	table := New("t", nil)
	got := VisitFromRoot(table, func(n *TreeNode, _ any) (string, bool) { return n.ID(), true }, nil)
	assert.Nil(t, got)
	assert.Nil(t, Visit[any, string](nil, nil, nil))
}

func TestToggle_RootHidesEverythingBelow(t *testing.T) {
	table := newSampleTable(t)

	ev, err := table.Toggle("t_Node")
	require.NoError(t, err)
	assert.Equal(t, OpToggle, ev.Op)
	assert.False(t, ev.Expanded)
	assert.Equal(t, []VisibilityChange{
		{NodeID: "t_Node_0", Visible: false},
		{NodeID: "t_Node_0_0", Visible: false},
		{NodeID: "t_Node_0_1", Visible: false},
		{NodeID: "t_Node_1", Visible: false},
	}, ev.Changes)

	rows := table.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "t_Node", rows[0].ID)
	assert.Len(t, table.Draw(), 5)
}

func TestToggle_RoundTrip(t *testing.T) {
	table := newSampleTable(t)
	_, err := table.Toggle("t_Node_0")
	require.NoError(t, err)
	before := table.Draw()

	for _, id := range []string{"t_Node", "t_Node_0"} {
		_, err := table.Toggle(id)
		require.NoError(t, err)
		_, err = table.Toggle(id)
		require.NoError(t, err)
		assert.Equal(t, before, table.Draw(), "toggling %s twice", id)
	}
}

func TestToggle_VisibilityLaw(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	cols, err := NewColumns(Column{Title: "Name", Field: "name"})
	require.NoError(t, err)

	for range 10 {
		table := New("law", cols)
		require.NoError(t, table.SetData(randomRoot(r, 4)))

		var parents []*TreeNode
		for _, n := range allNodes(table.Root()) {
			if n.HasChildren() {
				parents = append(parents, n)
			}
		}
		if len(parents) == 0 {
			continue
		}

		for range 50 {
			_, err := table.ToggleNode(parents[r.IntN(len(parents))])
			require.NoError(t, err)

			for _, n := range allNodes(table.Root()) {
				require.Equal(t, IsVisibleByRule(n), n.Visible(), "node %s", n.ID())
			}
		}
	}
}

func TestToggle_Errors(t *testing.T) {
	table := newSampleTable(t)
	other := newSampleTable(t)

	_, err := table.Toggle("t_Node_1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotApplicable))
	var na *NotApplicableError
	require.True(t, errors.As(err, &na))
	assert.Equal(t, "t_Node_1", na.NodeID)

	_, err = table.Toggle("missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = table.ToggleNode(other.Root())
	assert.True(t, errors.Is(err, ErrNotFound), "node of another tree")

	_, err = table.ToggleNode(nil)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Failures leave the table usable.
	_, err = table.Toggle("t_Node_0")
	assert.NoError(t, err)
}

func TestSubscribe(t *testing.T) {
	table := newSampleTable(t)

	var got []string
	cancelA := table.Subscribe(func(ev Event) { got = append(got, "a:"+ev.NodeID) })
	table.Subscribe(func(ev Event) { got = append(got, "b:"+ev.NodeID) })

	_, err := table.Toggle("t_Node_0")
	require.NoError(t, err)
	assert.Equal(t, []string{"a:t_Node_0", "b:t_Node_0"}, got)

	cancelA()
	cancelA()
	got = nil
	table.CollapseAll()
	assert.Equal(t, []string{"b:t_Node"}, got)

	got = nil
	_, err = table.Toggle("t_Node_1")
	require.Error(t, err)
	assert.Empty(t, got, "failed toggles publish nothing")
}

func TestSubscribe_CancelDuringPublish(t *testing.T) {
	table := newSampleTable(t)

	calls := 0
	var cancel func()
	cancel = table.Subscribe(func(Event) {
		calls++
		cancel()
	})
	table.Subscribe(func(Event) { calls++ })

	table.ExpandAll()
	table.ExpandAll()
	assert.Equal(t, 3, calls)
}

func TestBulkOperations(t *testing.T) {
	table := newSampleTable(t)

	table.CollapseAll()
	assert.Equal(t, []string{"t_Node"}, rowIDs(table.VisibleRows()))
	assert.True(t, table.Root().Visible())

	table.ExpandToDepth(1)
	assert.Equal(t, []string{"t_Node", "t_Node_0", "t_Node_1"}, rowIDs(table.VisibleRows()))

	table.ExpandAll()
	assert.Len(t, table.VisibleRows(), 5)

	table.ExpandToDepth(0)
	assert.Equal(t, []string{"t_Node"}, rowIDs(table.VisibleRows()))

	ev, err := table.ExpandPath("t_Node_0_1")
	require.NoError(t, err)
	assert.Equal(t, OpExpandPath, ev.Op)
	n, err := table.Find("t_Node_0_1")
	require.NoError(t, err)
	assert.True(t, n.Visible())
	assert.Equal(t, []string{"t_Node", "t_Node_0", "t_Node_0_0", "t_Node_0_1", "t_Node_1"}, rowIDs(table.VisibleRows()))

	_, err = table.ExpandPath("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBulkOperations_NoData(t *testing.T) {
	table := New("t", nil)
	ev := table.ExpandAll()
	assert.Equal(t, OpExpandAll, ev.Op)
	assert.Empty(t, ev.Changes)
}

func rowIDs(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestDraw_Idempotent(t *testing.T) {
	table := newSampleTable(t)
	_, err := table.Toggle("t_Node_0")
	require.NoError(t, err)

	assert.Equal(t, table.Draw(), table.Draw())
	assert.Equal(t, table.Draw(), table.Redraw())
}

func TestDraw_NoData(t *testing.T) {
	table := New("t", nil)
	rows := table.Draw()
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.False(t, table.HasData())
}

func TestDraw_RowShape(t *testing.T) {
	table := newSampleTable(t)
	rows := table.Draw()
	require.Len(t, rows, 5)

	a1 := rows[2]
	assert.Equal(t, "t_Node_0_0", a1.ID)
	assert.Equal(t, 2, a1.Depth)
	assert.Equal(t, []Connector{ConnectorBlank, ConnectorBar}, a1.Indent)
	assert.Equal(t, "leaf", string(a1.Glyph))
	assert.False(t, a1.Affordance.Present)
	assert.Equal(t, []string{"A1"}, a1.Texts())

	a := rows[1]
	assert.Equal(t, Affordance{Present: true, Expanded: true}, a.Affordance)
	assert.Equal(t, "nodeExpanded", string(a.Glyph))
	assert.Equal(t, "  ├▾", table.Prefix(a))

	assert.Equal(t, "  │ └─", table.Prefix(rows[3]))
	assert.Equal(t, "  └─", table.Prefix(rows[4]))
}

func TestSetData_FailureKeepsPreviousTree(t *testing.T) {
	table := newSampleTable(t)
	before := table.Draw()

	err := table.SetData(RawNode{"children": 42})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStructure))

	assert.Equal(t, before, table.Draw())
	_, err = table.Find("t_Node_0_1")
	assert.NoError(t, err)
}

func TestSetData_ReplacesTree(t *testing.T) {
	table := newSampleTable(t)
	_, err := table.Toggle("t_Node_0")
	require.NoError(t, err)

	require.NoError(t, table.SetData(RawNode{"name": "fresh"}))
	assert.Equal(t, 1, table.Len())
	_, err = table.Find("t_Node_0")
	assert.True(t, errors.Is(err, ErrNotFound))

	table.Clear()
	assert.False(t, table.HasData())
	assert.Zero(t, table.Len())
}

func TestHeader_IndependentOfData(t *testing.T) {
	cols, err := NewColumns(
		Column{Title: "Name", Field: "name"},
		Column{Title: "Total", Field: "total"},
	)
	require.NoError(t, err)

	table := New("t", cols)
	assert.Equal(t, []string{"Name", "Total"}, table.Header())
	require.NoError(t, table.SetData(sampleRoot()))
	assert.Equal(t, []string{"Name", "Total"}, table.Header())
}
