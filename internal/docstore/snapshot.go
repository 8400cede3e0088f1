package docstore

// Snapshot is the result of a read at a single path.
type Snapshot struct {
	key  string
	node *Node
}

// NewSnapshot wraps node as the data found under key.
func NewSnapshot(key string, node *Node) Snapshot {
	return Snapshot{key: key, node: node}
}

// Key is the last path segment of the read location.
func (s Snapshot) Key() string { return s.key }

// Exists reports whether any data lives at the location.
func (s Snapshot) Exists() bool { return !s.node.Empty() }

// Node exposes the ordered document.
func (s Snapshot) Node() *Node { return s.node }

// Value returns the document as plain Go values, nil when nothing exists.
func (s Snapshot) Value() interface{} {
	if !s.Exists() {
		return nil
	}
	return s.node.Value()
}

// Fields returns the document when it is an object, nil otherwise.
func (s Snapshot) Fields() map[string]interface{} {
	if !s.node.IsObject() {
		return nil
	}
	m, _ := s.node.Value().(map[string]interface{})
	return m
}

// Child returns the snapshot of a direct member.
func (s Snapshot) Child(key string) Snapshot {
	return Snapshot{key: key, node: s.node.Child(key)}
}

// Children returns direct members in iteration order.
func (s Snapshot) Children() []Snapshot {
	if !s.node.IsContainer() {
		return nil
	}
	out := make([]Snapshot, 0, len(s.node.keys))
	for _, k := range s.node.keys {
		out = append(out, Snapshot{key: k, node: s.node.fields[k]})
	}
	return out
}

// ForEach calls fn for each direct member in order until fn returns true.
// It reports whether iteration was stopped early.
func (s Snapshot) ForEach(fn func(Snapshot) bool) bool {
	for _, child := range s.Children() {
		if fn(child) {
			return true
		}
	}
	return false
}

// MarshalJSON renders the ordered document, or null.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if !s.Exists() {
		return []byte("null"), nil
	}
	return s.node.MarshalJSON()
}
