// SPDX-License-Identifier: MIT
package arbitrary

import (
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// pathArb draws []string vertex-ID paths of length <= maxLen through g,
// starting at src. When dst is nil, the endpoint is chosen uniformly
// among vertices BFS-reachable within maxLen hops; when dst is set, the
// single path to it is returned (or the pick fails if unreachable within
// maxLen).
type pathArb struct {
	g      *core.Graph
	src    string
	dst    *string
	maxLen int
}

// Path returns an Arbitrary over []string vertex-ID paths through g from
// src, bounded by maxLen hops, per §3's Path(graph, src, dst?, maxLen)
// variant. It is grounded directly on bfs.BFS's Parent/Depth maps rather
// than reimplementing traversal.
func Path(g *core.Graph, src string, dst *string, maxLen int) Arbitrary {
	if g == nil || src == "" || maxLen < 0 || !g.HasVertex(src) {
		return NoArbitrary()
	}

	return pathArb{g: g, src: src, dst: dst, maxLen: maxLen}
}

func (a pathArb) Name() string { return "path" }

func (a pathArb) reachable() (*bfs.BFSResult, []string) {
	res, err := bfs.BFS(a.g, a.src)
	if err != nil {
		return nil, nil
	}

	var within []string
	for _, id := range res.Order {
		if res.Depth[id] <= a.maxLen {
			within = append(within, id)
		}
	}

	return res, within
}

// Size is estimated as the count of vertices reachable within maxLen
// hops; exact in spirit (BFS is deterministic for a fixed graph) but
// reported estimated since the arbitrary's contract doesn't guarantee
// every reachable vertex yields a distinct path value under repeated
// Pick (dst is chosen uniformly, not enumerated).
func (a pathArb) Size() Size {
	_, within := a.reachable()
	if a.dst != nil {
		return ExactSize(1)
	}

	return EstimatedSize(float64(len(within)), 1, float64(len(within)))
}

func (a pathArb) Pick(rng RNG) (Pick, bool) {
	res, within := a.reachable()
	if res == nil {
		return Pick{}, false
	}

	target := ""
	if a.dst != nil {
		target = *a.dst
		if d, reached := res.Depth[target]; !reached || d > a.maxLen {
			return Pick{}, false
		}
	} else {
		if len(within) == 0 {
			return Pick{}, false
		}
		idx := intFromUnit(rng.Float64(), 0, len(within)-1)
		target = within[idx]
	}

	path, err := res.PathTo(target)
	if err != nil {
		return Pick{}, false
	}

	return NewPick(path), true
}

func (a pathArb) CanGenerate(p Pick) bool {
	path, ok := p.Value.([]string)
	if !ok || len(path) == 0 || path[0] != a.src {
		return false
	}
	if len(path)-1 > a.maxLen {
		return false
	}
	for i := 0; i+1 < len(path); i++ {
		if !a.g.HasEdge(path[i], path[i+1]) && !a.g.HasEdge(path[i+1], path[i]) {
			return false
		}
	}

	return true
}

func (a pathArb) CornerCases() []Pick {
	return []Pick{NewPick([]string{a.src})}
}

// Shrink caps maxLen at half of initial's hop count, the same
// length-halving policy used by Array.
func (a pathArb) Shrink(initial Pick) Arbitrary {
	path, ok := initial.Value.([]string)
	if !ok {
		return a
	}

	newMax := (len(path) - 1) / 2
	if newMax < 0 {
		newMax = 0
	}

	return Path(a.g, a.src, a.dst, newMax)
}

func (a pathArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a pathArb) Equal(x, y Value) bool { return deepEqual(x, y) }
