package docstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store. Members keep insertion order, which makes it
// the reference for iteration order in tests and local runs.
type Memory struct {
	mu   sync.RWMutex
	root *Node
}

func NewMemory() *Memory {
	return &Memory{root: NewObject()}
}

// LoadFile replaces the contents with the JSON document in path.
func (m *Memory) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Load(f)
}

// Load replaces the contents with the JSON document read from r.
func (m *Memory) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	n, err := DecodeJSON(data)
	if err != nil {
		return fmt.Errorf("docstore: decode seed: %w", err)
	}
	if n == nil {
		n = NewObject()
	}
	if !n.IsObject() {
		return errors.New("docstore: seed document must be an object")
	}
	m.mu.Lock()
	m.root = n
	m.mu.Unlock()
	return nil
}

// Set writes v at path, replacing whatever was there. New keys are appended
// after existing siblings.
func (m *Memory) Set(path string, v interface{}) error {
	segs := Split(path)
	if len(segs) == 0 {
		return errors.New("docstore: cannot set the root")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	parent := m.ensure(segs[:len(segs)-1])
	child := NodeOf(v)
	if child == nil {
		parent.Remove(segs[len(segs)-1])
		m.prune(segs[:len(segs)-1])
		return nil
	}
	parent.Set(segs[len(segs)-1], child.Clone())
	return nil
}

func (m *Memory) Read(ctx context.Context, path string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return NewSnapshot(Base(path), m.lookup(Split(path)).Clone()), nil
}

func (m *Memory) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(fields) == 0 {
		return errors.New("docstore: update needs at least one field")
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if !ValidKey(k) {
			return fmt.Errorf("docstore: invalid field name %q", k)
		}
		keys = append(keys, k)
	}
	SortKeys(keys)

	segs := Split(path)
	m.mu.Lock()
	defer m.mu.Unlock()
	target := m.ensure(segs)
	// Arrays become objects once addressed by field name.
	target.kind = kindObject
	for _, k := range keys {
		if child := NodeOf(fields[k]); child != nil {
			target.Set(k, child.Clone())
		} else {
			target.Remove(k)
		}
	}
	m.prune(segs)
	return nil
}

func (m *Memory) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	segs := Split(path)
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(segs) == 0 {
		m.root = NewObject()
		return nil
	}
	parent := m.lookup(segs[:len(segs)-1])
	if parent == nil {
		return nil
	}
	parent.Remove(segs[len(segs)-1])
	m.prune(segs[:len(segs)-1])
	return nil
}

func (m *Memory) GenerateKey(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (m *Memory) lookup(segs []string) *Node {
	n := m.root
	for _, s := range segs {
		n = n.Child(s)
		if n == nil {
			return nil
		}
	}
	return n
}

// ensure walks segs creating objects as needed and returns the last node.
func (m *Memory) ensure(segs []string) *Node {
	n := m.root
	for _, s := range segs {
		next := n.Child(s)
		if next == nil || !next.IsContainer() {
			next = NewObject()
			n.Set(s, next)
		}
		n = next
	}
	return n
}

// prune drops empty containers along segs, deepest first.
func (m *Memory) prune(segs []string) {
	for i := len(segs); i > 0; i-- {
		parent := m.lookup(segs[:i-1])
		child := parent.Child(segs[i-1])
		if child == nil || !child.Empty() {
			return
		}
		parent.Remove(segs[i-1])
	}
}
