// Package calltree reads stopwatch call-tree documents.
//
// A document is the JSON object served for the call tree of one stopwatch:
//
//	{"logThreshold": 1000000, "rootNode": {"name": "main", "total": 2500000, "counter": 1, "children": [...]}}
//
// When no tree is available the document only carries a message. A bare node
// object is accepted as the root itself.
package calltree

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/virgo47/javasimon/pkg/treetable"
)

// Document keys.
const (
	KeyMessage      = "message"
	KeyLogThreshold = "logThreshold"
	KeyRootNode     = "rootNode"
	KeyName         = "name"
)

// ErrEmpty is returned for documents with neither a tree nor a message.
var ErrEmpty = errors.New("document has no rootNode and no message")

// Document is a decoded call-tree document.
type Document struct {
	Message      string
	LogThreshold time.Duration
	Root         treetable.RawNode // nil when no tree is available
}

// HasTree reports whether the document carries a root node.
func (d *Document) HasTree() bool {
	return d != nil && d.Root != nil
}

// Decode reads one document from r. Numbers are kept as json.Number.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode call tree")
	}
	if raw == nil {
		return nil, ErrEmpty
	}

	doc := &Document{}
	if v, ok := raw[KeyMessage]; ok {
		msg, ok := v.(string)
		if !ok {
			return nil, errors.Newf("%s is %T, not a string", KeyMessage, v)
		}
		doc.Message = msg
	}

	if v, ok := raw[KeyLogThreshold]; ok && v != nil {
		n, ok := v.(json.Number)
		if !ok {
			return nil, errors.Newf("%s is %T, not a number", KeyLogThreshold, v)
		}
		ns, err := n.Int64()
		if err != nil {
			return nil, errors.Wrapf(err, "%s", KeyLogThreshold)
		}
		doc.LogThreshold = time.Duration(ns)
	}

	switch v, ok := raw[KeyRootNode]; {
	case ok && v != nil:
		root, ok := v.(map[string]any)
		if !ok {
			return nil, errors.Newf("%s is %T, not an object", KeyRootNode, v)
		}
		doc.Root = root
	case !ok:
		if _, bare := raw[KeyName]; bare {
			doc.Root = raw
		}
	}

	if doc.Root == nil && doc.Message == "" {
		return nil, ErrEmpty
	}
	return doc, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Open reads the document stored at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open call tree")
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return doc, nil
}
