// SPDX-License-Identifier: MIT
// Package: maxflow/network
//
// labeled.go - label↔index bijection for callers that name nodes.
//
// The flow engine works on dense integer indices only. Labeled sits at the
// boundary: it owns a Network plus a fixed mapping between caller labels
// ("Node0", "s", "warehouse-3", ...) and indices 0..N-1.

package network

import "fmt"

// Labeled is a Network whose nodes carry unique string labels.
type Labeled struct {
	net    *Network
	labels []string       // index -> label
	index  map[string]int // label -> index
}

// NewLabeled builds a Labeled network over labels; labels[i] names node i.
//
// Errors:
//   - ErrInvalidSize if labels is empty;
//   - ErrInvalidLabel for an empty or repeated label.
func NewLabeled(labels []string, opts ...Option) (*Labeled, error) {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("NewLabeled: empty label at %d: %w", i, ErrInvalidLabel)
		}
		if prev, dup := index[l]; dup {
			return nil, fmt.Errorf("NewLabeled: label %q at %d and %d: %w", l, prev, i, ErrInvalidLabel)
		}
		index[l] = i
	}
	net, err := New(len(labels), opts...)
	if err != nil {
		return nil, fmt.Errorf("NewLabeled: %w", err)
	}
	names := make([]string, len(labels))
	copy(names, labels)

	return &Labeled{net: net, labels: names, index: index}, nil
}

// AddEdge inserts from→to by label. Unknown labels yield ErrInvalidEdge;
// everything else follows Network.AddEdge.
func (l *Labeled) AddEdge(from, to string, capacity float64) error {
	u, ok := l.index[from]
	if !ok {
		return fmt.Errorf("AddEdge(%q,%q): unknown label %q: %w", from, to, from, ErrInvalidEdge)
	}
	v, ok := l.index[to]
	if !ok {
		return fmt.Errorf("AddEdge(%q,%q): unknown label %q: %w", from, to, to, ErrInvalidEdge)
	}

	return l.net.AddEdge(u, v, capacity)
}

// Index returns the node index of label.
func (l *Labeled) Index(label string) (int, bool) {
	i, ok := l.index[label]

	return i, ok
}

// Label returns the label of node i, or "" when i is out of range.
func (l *Labeled) Label(i int) string {
	if i < 0 || i >= len(l.labels) {
		return ""
	}

	return l.labels[i]
}

// Labels maps a sequence of indices (an augmenting path, a cut side) to labels.
func (l *Labeled) Labels(path []int) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = l.Label(v)
	}

	return out
}

// Network returns the underlying indexed Network. It is shared, not copied.
func (l *Labeled) Network() *Network {
	return l.net
}
