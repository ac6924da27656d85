package flow_test

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/builder"
	"github.com/katalvlaran/maxflow/flow"
)

const expectPrefix = "# expect "

// TestFixtures runs every testdata/*.flow instance. Each file is an edge
// list carrying a "# expect <flow> <source> <sink>" comment.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.flow"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			want, source, sink, err := readExpectation(f)
			require.NoError(t, err)
			_, err = f.Seek(0, io.SeekStart)
			require.NoError(t, err)

			ln, err := builder.ReadEdgeList(f)
			require.NoError(t, err)
			s, ok := ln.Index(source)
			require.True(t, ok, "unknown source %q", source)
			d, ok := ln.Index(sink)
			require.True(t, ok, "unknown sink %q", sink)

			for name, engine := range map[string]func(context.Context, int, int) (*flow.Result, error){
				"edmonds-karp": func(ctx context.Context, s, d int) (*flow.Result, error) {
					return flow.EdmondsKarp(ctx, ln.Network(), s, d)
				},
				"dinic": func(ctx context.Context, s, d int) (*flow.Result, error) {
					return flow.Dinic(ctx, ln.Network(), s, d)
				},
			} {
				res, err := engine(context.Background(), s, d)
				require.NoError(t, err, name)
				require.InDelta(t, want, res.MaxFlow, 1e-9, name)
				require.NoError(t, flow.Verify(res), name)
			}
		})
	}
}

func readExpectation(r io.Reader) (float64, string, string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, expectPrefix) {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, expectPrefix))
		if len(fields) != 3 {
			return 0, "", "", fmt.Errorf("expectation needs <flow> <source> <sink>: %q", line)
		}
		want, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, "", "", fmt.Errorf("expected flow: %w", err)
		}
		return want, fields[1], fields[2], nil
	}
	if err := scanner.Err(); err != nil {
		return 0, "", "", err
	}

	return 0, "", "", fmt.Errorf("no %q line", strings.TrimSpace(expectPrefix))
}
