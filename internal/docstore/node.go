package docstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindObject
	kindArray
)

// Node is a JSON value whose object members keep a stable order. Objects and
// arrays are containers; everything else is a leaf holding the decoded value
// (string, float64, bool).
type Node struct {
	kind   nodeKind
	leaf   interface{}
	keys   []string
	fields map[string]*Node
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{kind: kindObject, fields: map[string]*Node{}}
}

// Null returns an explicit JSON null, for members that must be present
// without a value.
func Null() *Node {
	return &Node{kind: kindLeaf}
}

// NewArray returns an array node holding values in the given order.
func NewArray(values ...interface{}) *Node {
	n := &Node{kind: kindArray, fields: map[string]*Node{}}
	for _, v := range values {
		if child := NodeOf(v); child != nil {
			n.append(child)
		}
	}
	return n
}

// NodeOf converts a plain decoded value into a node. Map members are ordered
// the way the Realtime Database orders keys. nil yields nil.
func NodeOf(v interface{}) *Node {
	switch t := v.(type) {
	case nil:
		return nil
	case *Node:
		return t
	case Snapshot:
		return t.node
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		SortKeys(keys)
		n := NewObject()
		for _, k := range keys {
			if child := NodeOf(t[k]); child != nil {
				n.Set(k, child)
			}
		}
		return n
	case []interface{}:
		return NewArray(t...)
	case []map[string]interface{}:
		n := &Node{kind: kindArray, fields: map[string]*Node{}}
		for _, m := range t {
			n.append(NodeOf(m))
		}
		return n
	default:
		return &Node{kind: kindLeaf, leaf: v}
	}
}

// DecodeJSON parses data keeping object members in document order.
func DecodeJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	n, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("docstore: trailing data after JSON value")
	}
	return n, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("docstore: unexpected object key %v", keyTok)
				}
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				if child != nil {
					n.Set(key, child)
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			n := &Node{kind: kindArray, fields: map[string]*Node{}}
			for dec.More() {
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				if child != nil {
					n.append(child)
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		}
		return nil, fmt.Errorf("docstore: unexpected delimiter %v", t)
	case nil:
		return nil, nil
	default:
		return &Node{kind: kindLeaf, leaf: t}, nil
	}
}

// MarshalJSON writes the node with object members in order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the node with the decoded document.
func (n *Node) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	if decoded == nil {
		*n = Node{kind: kindLeaf}
		return nil
	}
	*n = *decoded
	return nil
}

func (n *Node) encode(buf *bytes.Buffer) error {
	if n == nil || (n.kind == kindLeaf && n.leaf == nil) {
		buf.WriteString("null")
		return nil
	}
	switch n.kind {
	case kindObject:
		buf.WriteByte('{')
		for i, k := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, _ := json.Marshal(k)
			buf.Write(key)
			buf.WriteByte(':')
			if err := n.fields[k].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case kindArray:
		buf.WriteByte('[')
		for i, k := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := n.fields[k].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		b, err := json.Marshal(n.leaf)
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

// Value converts the node back into plain Go values: map[string]interface{},
// []interface{} or the leaf value.
func (n *Node) Value() interface{} {
	if n == nil {
		return nil
	}
	switch n.kind {
	case kindObject:
		m := make(map[string]interface{}, len(n.keys))
		for _, k := range n.keys {
			m[k] = n.fields[k].Value()
		}
		return m
	case kindArray:
		s := make([]interface{}, 0, len(n.keys))
		for _, k := range n.keys {
			s = append(s, n.fields[k].Value())
		}
		return s
	default:
		return n.leaf
	}
}

// IsContainer reports whether n is an object or an array.
func (n *Node) IsContainer() bool {
	return n != nil && n.kind != kindLeaf
}

// IsObject reports whether n is a JSON object.
func (n *Node) IsObject() bool {
	return n != nil && n.kind == kindObject
}

// Empty reports whether n holds no data: nil, a null leaf or a container
// without members.
func (n *Node) Empty() bool {
	if n == nil {
		return true
	}
	if n.kind == kindLeaf {
		return n.leaf == nil
	}
	return len(n.keys) == 0
}

// Keys returns member keys in order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Child returns the member stored under key, or nil.
func (n *Node) Child(key string) *Node {
	if n == nil || n.kind == kindLeaf {
		return nil
	}
	return n.fields[key]
}

// Set stores child under key. Existing keys keep their position, new keys are
// appended. Setting a nil child removes the key. An array stays an array only
// while keys remain its next index.
func (n *Node) Set(key string, child *Node) {
	if child == nil {
		n.Remove(key)
		return
	}
	if n.kind == kindLeaf {
		*n = Node{kind: kindObject, fields: map[string]*Node{}}
	}
	if _, ok := n.fields[key]; ok {
		n.fields[key] = child
		return
	}
	if n.kind == kindArray && key != strconv.Itoa(len(n.keys)) {
		n.kind = kindObject
	}
	n.keys = append(n.keys, key)
	n.fields[key] = child
}

// Remove deletes key from n.
func (n *Node) Remove(key string) {
	if n == nil || n.kind == kindLeaf {
		return
	}
	if _, ok := n.fields[key]; !ok {
		return
	}
	delete(n.fields, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	if n.kind == kindArray {
		n.kind = kindObject
	}
}

func (n *Node) append(child *Node) {
	key := strconv.Itoa(len(n.keys))
	n.keys = append(n.keys, key)
	n.fields[key] = child
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, leaf: n.leaf}
	if n.kind != kindLeaf {
		c.keys = make([]string, len(n.keys))
		copy(c.keys, n.keys)
		c.fields = make(map[string]*Node, len(n.fields))
		for k, v := range n.fields {
			c.fields[k] = v.Clone()
		}
	}
	return c
}

// SortKeys orders keys the way the Realtime Database does for orderByKey:
// keys that parse as 32-bit integers first, numerically, then the rest
// lexicographically.
func SortKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
}

func keyLess(a, b string) bool {
	ai, aok := intKey(a)
	bi, bok := intKey(b)
	switch {
	case aok && bok:
		return ai < bi
	case aok:
		return true
	case bok:
		return false
	}
	return a < b
}

func intKey(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return v, strconv.FormatInt(v, 10) == s
}
