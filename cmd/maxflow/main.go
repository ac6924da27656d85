// Command maxflow computes the maximum flow of a network read from an edge
// list or generated at random, printing every augmenting path as it is
// applied followed by the flow value, the smallest bottleneck and the
// minimum cut.
//
//	maxflow -input net.flow -source s -sink t
//	maxflow -random 8 -p 0.3 -seed 42
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/maxflow/builder"
	"github.com/katalvlaran/maxflow/config"
	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/logger"
	"github.com/katalvlaran/maxflow/network"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "maxflow:", err)
		os.Exit(1)
	}
}

// flagKeys maps command-line flags to config keys. Only flags given on the
// command line override the file and environment.
var flagKeys = map[string]string{
	"input":             config.KeyInput,
	"source":            config.KeySource,
	"sink":              config.KeySink,
	"engine":            config.KeyEngine,
	"epsilon":           config.KeyEpsilon,
	"max-augmentations": config.KeyMaxAugmentations,
	"timeout":           config.KeyTimeout,
	"duplicates":        config.KeyDuplicates,
	"log-level":         config.KeyLogLevel,
	"trace":             config.KeyTrace,
	"random":            config.KeyRandom,
	"p":                 config.KeyProbability,
	"seed":              config.KeySeed,
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("maxflow", flag.ContinueOnError)
	configFile := fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("input", "", "edge list: one \"from to capacity\" per line")
	fs.String("source", "", "source label")
	fs.String("sink", "", "sink label")
	fs.String("engine", "edmonds-karp", "edmonds-karp or dinic")
	fs.Float64("epsilon", flow.DefaultEpsilon, "residual capacities at or below this are saturated")
	fs.Int("max-augmentations", 0, "stop after this many augmentations (0: no limit)")
	fs.Duration("timeout", 0, "abort the computation after this long")
	fs.String("duplicates", "ignore", "repeated edges: ignore, overwrite or sum")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.Bool("trace", true, "print every augmenting path")
	fs.Int("random", 0, "generate a random network with this many nodes")
	fs.Float64("p", 0.3, "edge probability for -random")
	fs.Uint64("seed", 1, "seed for -random")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := config.New(*configFile)
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.(flag.Getter).Get())
		}
	})
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ln, source, sink, err := loadNetwork(cfg)
	if err != nil {
		return err
	}
	log.Info("network loaded",
		zap.Int("nodes", ln.Network().Size()),
		zap.Int("edges", len(ln.Network().Edges())),
		zap.String("source", ln.Label(source)),
		zap.String("sink", ln.Label(sink)),
	)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	res, runErr := solve(ctx, cfg, log, ln, source, sink, stdout)
	if res == nil {
		return runErr
	}
	report(stdout, ln, res)
	if runErr != nil {
		return runErr
	}
	if err := flow.Verify(res); err != nil {
		log.Error("result failed verification", zap.Error(err))
		return err
	}

	return nil
}

// loadNetwork builds the network and resolves the source and sink.
func loadNetwork(cfg config.Config) (*network.Labeled, int, int, error) {
	policy, err := network.ParseDuplicatePolicy(cfg.Duplicates)
	if err != nil {
		return nil, 0, 0, err
	}

	if cfg.Random > 0 {
		ln, err := builder.RandomNetwork(cfg.Random, cfg.Probability,
			builder.WithSeed(cfg.Seed),
			builder.WithPrefixIDs("Node"),
			builder.WithNetworkOptions(network.WithDuplicatePolicy(policy)),
		)
		if err != nil {
			return nil, 0, 0, err
		}
		return ln, 0, cfg.Random - 1, nil
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	ln, err := builder.ReadEdgeList(f, network.WithDuplicatePolicy(policy))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	source, ok := ln.Index(cfg.Source)
	if !ok {
		return nil, 0, 0, fmt.Errorf("%s: unknown source %q: %w", cfg.Input, cfg.Source, network.ErrInvalidLabel)
	}
	sink, ok := ln.Index(cfg.Sink)
	if !ok {
		return nil, 0, 0, fmt.Errorf("%s: unknown sink %q: %w", cfg.Input, cfg.Sink, network.ErrInvalidLabel)
	}

	return ln, source, sink, nil
}

// solve runs the engine in one goroutine and prints its augmentations from
// another. The engine blocks on the channel between phases, so a slow
// renderer paces the computation instead of the other way round.
func solve(
	ctx context.Context,
	cfg config.Config,
	log *zap.Logger,
	ln *network.Labeled,
	source, sink int,
	stdout io.Writer,
) (*flow.Result, error) {
	engine := flow.EdmondsKarp
	if cfg.Engine == "dinic" {
		engine = flow.Dinic
	}

	events := make(chan flow.Augmentation)
	g, gctx := errgroup.WithContext(ctx)

	var (
		res    *flow.Result
		runErr error
	)
	g.Go(func() error {
		defer close(events)
		res, runErr = engine(gctx, ln.Network(), source, sink,
			flow.WithEpsilon(cfg.Epsilon),
			flow.WithMaxAugmentations(cfg.MaxAugmentations),
			flow.WithLogger(log),
			flow.WithTrace(false),
			flow.WithOnAugment(func(a flow.Augmentation) error {
				select {
				case events <- a:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			}),
		)
		// A partial result is still reported; the error is returned by solve.
		if res != nil {
			return nil
		}
		return runErr
	})
	g.Go(func() error {
		total := 0.0
		phase := 0
		for a := range events {
			phase++
			total += a.Flow
			if !cfg.Trace {
				continue
			}
			if _, err := fmt.Fprintf(stdout, "path %d: %s  +%g  (total %g)\n",
				phase, strings.Join(ln.Labels(a.Path), " → "), a.Flow, total); err != nil {
				return fmt.Errorf("write trace: %w", err)
			}
		}
		return nil
	})

	// A renderer failure cancels gctx, so runErr then only says "canceled";
	// report the renderer's error instead.
	if err := g.Wait(); err != nil {
		return res, err
	}

	return res, runErr
}

// report prints the final summary.
func report(w io.Writer, ln *network.Labeled, res *flow.Result) {
	if res.Incomplete {
		fmt.Fprintln(w, "computation stopped early; the flow below is a lower bound")
	}
	fmt.Fprintf(w, "max flow: %g\n", res.MaxFlow)
	if b, ok := res.Bottleneck(); ok {
		fmt.Fprintf(w, "min bottleneck: %g\n", b)
	} else {
		fmt.Fprintln(w, "min bottleneck: no flow")
	}

	cut := res.MinCut()
	edges := make([]string, 0, len(cut.Edges))
	for _, e := range cut.Edges {
		edges = append(edges, fmt.Sprintf("%s→%s %g", ln.Label(e.From), ln.Label(e.To), e.Capacity))
	}
	fmt.Fprintf(w, "min cut: {%s} capacity %g\n", strings.Join(ln.Labels(cut.Source), " "), cut.Capacity)
	if len(edges) > 0 {
		fmt.Fprintf(w, "cut edges: %s\n", strings.Join(edges, ", "))
	}
}
