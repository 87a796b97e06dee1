package treetable

// Operation names the state change that produced an Event.
type Operation string

const (
	OpToggle        Operation = "toggle"
	OpExpandAll     Operation = "expand-all"
	OpCollapseAll   Operation = "collapse-all"
	OpExpandToDepth Operation = "expand-to-depth"
	OpExpandPath    Operation = "expand-path"
)

// VisibilityChange records a node whose visibility flipped.
type VisibilityChange struct {
	NodeID  string
	Visible bool
}

// Event is published after every successful expand/collapse operation.
// Changes lists the flipped nodes in preorder and may be empty.
type Event struct {
	Op       Operation
	NodeID   string // toggled node, or the root for whole-tree operations
	Expanded bool   // new state of NodeID
	Changes  []VisibilityChange
}

// Listener receives events synchronously on the goroutine that changed the table.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it. Listeners are
// called in subscription order.
func (t *Table) Subscribe(l Listener) (cancel func()) {
	t.nextSub++
	id := t.nextSub
	t.subs = append(t.subs, subscription{id: id, fn: l})

	return func() {
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

func (t *Table) publish(ev Event) {
	// Copy so listeners may cancel themselves.
	subs := append([]subscription(nil), t.subs...)
	for _, s := range subs {
		s.fn(ev)
	}
}
