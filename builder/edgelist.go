// SPDX-License-Identifier: MIT
// Package: maxflow/builder
//
// edgelist.go — plain-text edge lists.
//
// Format (one edge per line, whitespace-separated):
//
//	# comment
//	from to capacity
//
// Blank lines and lines starting with '#' are skipped. Labels are any
// token without whitespace; nodes are indexed in order of first
// appearance. Capacities are parsed as float64 and validated by
// network.AddEdge, so negative or non-finite values are rejected there.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/maxflow/network"
)

const (
	methodReadEdgeList  = "ReadEdgeList"
	methodWriteEdgeList = "WriteEdgeList"
	commentPrefix       = "#"
	edgeListFields      = 3
)

// edgeLine is one parsed edge plus its source line for error context.
type edgeLine struct {
	from, to string
	capacity float64
	line     int
}

// ReadEdgeList parses an edge list from r into a labeled network. opts are
// forwarded to the network (e.g. a duplicate policy for repeated pairs).
//
// Errors:
//   - ErrSyntax (wrapped with the line number) for a malformed line.
//   - network.ErrInvalidSize when the stream holds no edges.
//   - network.ErrInvalidEdge for self-loops and invalid capacities.
//   - any error from r.
func ReadEdgeList(r io.Reader, opts ...network.Option) (*network.Labeled, error) {
	var (
		lines  []edgeLine
		labels []string
		seen   = make(map[string]struct{})
	)
	addLabel := func(s string) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			labels = append(labels, s)
		}
	}

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != edgeListFields {
			return nil, builderErrorf(methodReadEdgeList, "line %d: expected %d fields, got %d: %w",
				n, edgeListFields, len(fields), ErrSyntax)
		}
		c, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, builderErrorf(methodReadEdgeList, "line %d: capacity %q: %w", n, fields[2], ErrSyntax)
		}
		addLabel(fields[0])
		addLabel(fields[1])
		lines = append(lines, edgeLine{from: fields[0], to: fields[1], capacity: c, line: n})
	}
	if err := scanner.Err(); err != nil {
		return nil, builderErrorf(methodReadEdgeList, "%w", err)
	}

	ln, err := network.NewLabeled(labels, opts...)
	if err != nil {
		return nil, builderErrorf(methodReadEdgeList, "%w", err)
	}
	for _, e := range lines {
		if err := ln.AddEdge(e.from, e.to, e.capacity); err != nil {
			return nil, builderErrorf(methodReadEdgeList, "line %d: %w", e.line, err)
		}
	}

	return ln, nil
}

// WriteEdgeList writes every recorded edge of ln in insertion order, in the
// format ReadEdgeList accepts. Zero-capacity records are kept so that a
// re-read network has the same edge list.
func WriteEdgeList(w io.Writer, ln *network.Labeled) error {
	bw := bufio.NewWriter(w)
	for _, e := range ln.Network().Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n",
			ln.Label(e.From), ln.Label(e.To), strconv.FormatFloat(e.Capacity, 'g', -1, 64)); err != nil {
			return builderErrorf(methodWriteEdgeList, "%w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return builderErrorf(methodWriteEdgeList, "%w", err)
	}

	return nil
}
