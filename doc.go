// Package maxflow computes maximum flows and minimum cuts on small and
// medium capacitated directed networks.
//
// The module is organized as:
//
//	network/     — capacitated graph model: dense N×N capacities, duplicate policies, labels
//	flow/        — Edmonds–Karp and Dinic engines, augmentation trace, min cut, verification
//	builder/     — fixtures: random, grid and bipartite networks, edge-list reader/writer
//	config/      — viper-backed settings for the command-line harness
//	logger/      — zap logger construction
//	cmd/maxflow/ — command-line harness streaming the augmentation trace
//	examples/    — runnable scenarios
//
// Quick example:
//
//	g, _ := network.New(4)
//	_ = g.AddEdge(0, 1, 3)
//	_ = g.AddEdge(0, 2, 2)
//	_ = g.AddEdge(1, 3, 2)
//	_ = g.AddEdge(2, 3, 3)
//
//	res, err := flow.EdmondsKarp(context.Background(), g, 0, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.MaxFlow) // 4
//
// The engines never mutate the input network; every call works on a private
// residual copy, so a Network may be shared by concurrent calls.
package maxflow
