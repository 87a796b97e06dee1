package treetable

import "fmt"

// ChildrenKey is the reserved RawNode key holding the child sequence.
const ChildrenKey = "children"

// RawNode is an externally supplied record, typically a decoded JSON object.
// Children, if any, are stored under ChildrenKey.
type RawNode map[string]any

// Get returns the value stored under key.
func (r RawNode) Get(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}

// childNodes returns the child sequence of r. A missing or nil children value
// yields no children. Any other shape is reported as a reason string.
func childNodes(r RawNode) ([]RawNode, string) {
	raw, ok := r[ChildrenKey]
	if !ok || raw == nil {
		return nil, ""
	}

	switch v := raw.(type) {
	case []RawNode:
		for i, c := range v {
			if c == nil {
				return nil, childReason(i, nil)
			}
		}
		return v, ""
	case []map[string]any:
		out := make([]RawNode, len(v))
		for i, c := range v {
			if c == nil {
				return nil, childReason(i, nil)
			}
			out[i] = RawNode(c)
		}
		return out, ""
	case []any:
		out := make([]RawNode, len(v))
		for i, c := range v {
			switch cv := c.(type) {
			case RawNode:
				if cv == nil {
					return nil, childReason(i, c)
				}
				out[i] = cv
			case map[string]any:
				if cv == nil {
					return nil, childReason(i, c)
				}
				out[i] = RawNode(cv)
			default:
				return nil, childReason(i, c)
			}
		}
		return out, ""
	default:
		return nil, fmt.Sprintf("children is %T, not a sequence", raw)
	}
}

func childReason(i int, v any) string {
	return fmt.Sprintf("child %d is %T, not an object", i, v)
}
