package treetable

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinels for errors.Is. The typed errors below match their sentinel.
var (
	// ErrStructure indicates a malformed input node.
	ErrStructure = errors.New("malformed tree structure")
	// ErrNotApplicable indicates an operation that does not apply to the node, such as toggling a leaf.
	ErrNotApplicable = errors.New("operation not applicable")
	// ErrNotFound indicates an unknown node id.
	ErrNotFound = errors.New("node not found")
)

// StructureError reports a RawNode that cannot be built into a tree.
type StructureError struct {
	NodeID string // id the offending node would have received
	Reason string
	Cause  error // optional
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed node %s: %s: %v", e.NodeID, e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed node %s: %s", e.NodeID, e.Reason)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *StructureError) Unwrap() error { return e.Cause }

// Is matches ErrStructure.
func (e *StructureError) Is(target error) bool { return target == ErrStructure }

// NotApplicableError reports an operation on a node that does not support it.
type NotApplicableError struct {
	NodeID    string
	Operation string
}

// Error implements the error interface.
func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("%s not applicable to node %s: node has no children", e.Operation, e.NodeID)
}

// Is matches ErrNotApplicable.
func (e *NotApplicableError) Is(target error) bool { return target == ErrNotApplicable }

// NotFoundError reports a lookup miss on a node id.
type NotFoundError struct {
	NodeID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %s not found", e.NodeID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
