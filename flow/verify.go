package flow

import (
	"fmt"
	"math"
)

// Verify checks a Result against the invariants of a maximum flow:
//
//  1. capacity respect: 0 ≤ Flow(u,v) ≤ capacity(u,v) for every original arc;
//  2. conservation: inflow == outflow at every node other than source/sink;
//  3. value: net outflow of the source equals MaxFlow;
//  4. maximality (complete results only): no augmenting path remains and
//     the residual cut has capacity MaxFlow.
//
// Comparisons use a tolerance scaled by Epsilon and the flow magnitude.
// Returns nil or an error wrapping ErrVerify.
func Verify(res *Result) error {
	if res == nil {
		return fmt.Errorf("Verify: nil result: %w", ErrVerify)
	}
	tol := math.Max(res.eps, 1e-9) * (1 + math.Abs(res.MaxFlow)) * float64(len(res.edges)+1)

	net := make([]float64, res.n) // outflow - inflow per node
	for _, e := range res.edges {
		f := res.Flow(e.from, e.to)
		if f > e.capacity+tol {
			return fmt.Errorf("Verify: flow %g on %d→%d exceeds capacity %g: %w",
				f, e.from, e.to, e.capacity, ErrVerify)
		}
		net[e.from] += f
		net[e.to] -= f
	}

	if res.source != res.sink {
		for v, d := range net {
			if v == res.source || v == res.sink {
				continue
			}
			if math.Abs(d) > tol {
				return fmt.Errorf("Verify: node %d inflow and outflow differ by %g: %w", v, d, ErrVerify)
			}
		}
		if math.Abs(net[res.source]-res.MaxFlow) > tol {
			return fmt.Errorf("Verify: source net outflow %g but MaxFlow %g: %w",
				net[res.source], res.MaxFlow, ErrVerify)
		}
	} else if res.MaxFlow != 0 {
		return fmt.Errorf("Verify: source == sink but MaxFlow %g: %w", res.MaxFlow, ErrVerify)
	}

	if res.Incomplete || res.source == res.sink {
		return nil
	}
	if reachable(res.residual, res.n, res.eps, res.source)[res.sink] {
		return fmt.Errorf("Verify: augmenting path to %d remains; flow is not maximum: %w", res.sink, ErrVerify)
	}
	if cut := res.MinCut(); math.Abs(cut.Capacity-res.MaxFlow) > tol {
		return fmt.Errorf("Verify: cut capacity %g differs from MaxFlow %g: %w", cut.Capacity, res.MaxFlow, ErrVerify)
	}

	return nil
}
