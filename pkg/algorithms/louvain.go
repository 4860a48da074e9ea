package algorithms

import (
	"math"

	"github.com/dd0wney/cluso-graphbench/pkg/storage"
)

// Louvain computes a community partition of the graph engine's contents by
// multi-level modularity optimization. The engine's adjacency index is first
// flattened into compact arrays so the optimization loop runs over dense
// integer ranges instead of hash lookups; this is the engine's fast path.
//
// The result is deterministic for a given insertion order: nodes are visited
// in engine order and ties between candidate communities break toward the
// first candidate encountered.
func Louvain(gs *storage.GraphStorage, opts LouvainOptions) (*CommunityDetectionResult, error) {
	nodes := gs.Nodes()
	n := len(nodes)
	if n == 0 {
		return &CommunityDetectionResult{
			Communities:   []*Community{},
			NodeCommunity: map[int64]int{},
		}, nil
	}
	if opts.MaxLevels <= 0 {
		opts.MaxLevels = DefaultLouvainOptions().MaxLevels
	}

	lg := buildLevel(gs, nodes)

	// assign maps each original node (by dense index) to its node in the
	// current level graph.
	assign := make([]int, n)
	for i := range assign {
		assign[i] = i
	}

	comm, k, improved := lg.oneLevel(opts.Resolution)
	q := lg.modularity(comm, k, opts.Resolution)
	for i := range assign {
		assign[i] = comm[assign[i]]
	}
	levels := 1

	for improved && levels < opts.MaxLevels {
		lg = lg.aggregate(comm, k)

		comm, k, improved = lg.oneLevel(opts.Resolution)
		if !improved {
			break
		}
		newQ := lg.modularity(comm, k, opts.Resolution)
		if newQ-q <= opts.MinQualityGain {
			break
		}
		q = newQ

		for i := range assign {
			assign[i] = comm[assign[i]]
		}
		levels++
	}

	return buildResult(nodes, assign, q, levels), nil
}

// levelGraph is one level of the aggregation hierarchy in CSR form. Nodes
// are dense indexes; self-loops are held out of the edge arrays and kept in
// selfW (weight counted once).
type levelGraph struct {
	n       int
	offsets []int
	targets []int
	weights []float64
	selfW   []float64
	degree  []float64 // weighted degree, self-loops counted twice
	m       float64   // total edge weight
}

func buildLevel(gs *storage.GraphStorage, nodes []int64) *levelGraph {
	n := len(nodes)
	index := make(map[int64]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	lg := &levelGraph{
		n:       n,
		offsets: make([]int, n+1),
		selfW:   make([]float64, n),
		degree:  make([]float64, n),
		m:       gs.TotalEdgeWeight(),
	}

	// First pass sizes the edge arrays, second pass fills them.
	for i, id := range nodes {
		count := 0
		gs.ForEachNeighbor(id, func(neighbor int64, weight float64) {
			if neighbor != id {
				count++
			}
		})
		lg.offsets[i+1] = lg.offsets[i] + count
	}

	lg.targets = make([]int, lg.offsets[n])
	lg.weights = make([]float64, lg.offsets[n])

	for i, id := range nodes {
		pos := lg.offsets[i]
		gs.ForEachNeighbor(id, func(neighbor int64, weight float64) {
			if neighbor == id {
				lg.selfW[i] = weight
				return
			}
			lg.targets[pos] = index[neighbor]
			lg.weights[pos] = weight
			pos++
		})
		lg.degree[i] = gs.WeightedDegree(id)
	}

	return lg
}

// oneLevel runs local move optimization until no node changes community.
// It returns the community of every node, renumbered densely in order of
// first appearance, the community count, and whether any move happened.
func (lg *levelGraph) oneLevel(resolution float64) ([]int, int, bool) {
	comm := make([]int, lg.n)
	commTot := make([]float64, lg.n)
	for i := 0; i < lg.n; i++ {
		comm[i] = i
		commTot[i] = lg.degree[i]
	}

	// Scratch space for per-node neighbor community weights.
	neighW := make(map[int]float64, 16)
	var neighOrder []int

	improved := false
	for changed := true; changed; {
		changed = false
		for u := 0; u < lg.n; u++ {
			cu := comm[u]
			ku := lg.degree[u]

			clear(neighW)
			neighOrder = neighOrder[:0]
			for e := lg.offsets[u]; e < lg.offsets[u+1]; e++ {
				c := comm[lg.targets[e]]
				if _, ok := neighW[c]; !ok {
					neighOrder = append(neighOrder, c)
				}
				neighW[c] += lg.weights[e]
			}

			// Remove u from its community before evaluating candidates.
			commTot[cu] -= ku

			best := cu
			bestGain := neighW[cu] - resolution*commTot[cu]*ku/(2*lg.m)
			for _, c := range neighOrder {
				if c == cu {
					continue
				}
				gain := neighW[c] - resolution*commTot[c]*ku/(2*lg.m)
				if gain > bestGain {
					bestGain = gain
					best = c
				}
			}

			commTot[best] += ku
			if best != cu {
				comm[u] = best
				changed = true
				improved = true
			}
		}
	}

	// Renumber densely in first-appearance order for determinism.
	renumber := make(map[int]int, lg.n)
	k := 0
	for u := 0; u < lg.n; u++ {
		c, ok := renumber[comm[u]]
		if !ok {
			c = k
			renumber[comm[u]] = c
			k++
		}
		comm[u] = c
	}

	return comm, k, improved
}

// aggregate folds communities into super nodes, summing parallel edge
// weights. Intra-community weight becomes the super node's self-loop, so
// total edge weight is invariant across levels.
func (lg *levelGraph) aggregate(comm []int, k int) *levelGraph {
	next := &levelGraph{
		n:       k,
		offsets: make([]int, k+1),
		selfW:   make([]float64, k),
		degree:  make([]float64, k),
		m:       lg.m,
	}

	cross := make([]map[int]float64, k)
	crossOrder := make([][]int, k)
	for c := 0; c < k; c++ {
		cross[c] = make(map[int]float64)
	}

	for u := 0; u < lg.n; u++ {
		cu := comm[u]
		next.selfW[cu] += lg.selfW[u]
		for e := lg.offsets[u]; e < lg.offsets[u+1]; e++ {
			cv := comm[lg.targets[e]]
			w := lg.weights[e]
			if cv == cu {
				// Each intra edge is seen from both endpoints; halve.
				next.selfW[cu] += w / 2
				continue
			}
			if _, ok := cross[cu][cv]; !ok {
				crossOrder[cu] = append(crossOrder[cu], cv)
			}
			cross[cu][cv] += w
		}
	}

	for c := 0; c < k; c++ {
		next.offsets[c+1] = next.offsets[c] + len(crossOrder[c])
	}
	next.targets = make([]int, next.offsets[k])
	next.weights = make([]float64, next.offsets[k])

	for c := 0; c < k; c++ {
		pos := next.offsets[c]
		total := 2 * next.selfW[c]
		for _, cv := range crossOrder[c] {
			next.targets[pos] = cv
			next.weights[pos] = cross[c][cv]
			total += cross[c][cv]
			pos++
		}
		next.degree[c] = total
	}

	return next
}

// modularity scores the given partition of this level's nodes.
func (lg *levelGraph) modularity(comm []int, k int, resolution float64) float64 {
	if lg.m == 0 {
		return math.NaN()
	}

	intra := make([]float64, k) // edge weight inside each community, counted once
	tot := make([]float64, k)   // summed weighted degree per community

	for u := 0; u < lg.n; u++ {
		c := comm[u]
		intra[c] += lg.selfW[u]
		tot[c] += lg.degree[u]
		for e := lg.offsets[u]; e < lg.offsets[u+1]; e++ {
			if comm[lg.targets[e]] == c {
				intra[c] += lg.weights[e] / 2
			}
		}
	}

	q := 0.0
	for c := 0; c < k; c++ {
		frac := tot[c] / (2 * lg.m)
		q += intra[c]/lg.m - resolution*frac*frac
	}
	return q
}

func buildResult(nodes []int64, assign []int, q float64, levels int) *CommunityDetectionResult {
	nodeCommunity := make(map[int64]int, len(nodes))
	byCommunity := make(map[int][]int64)
	maxID := 0
	for i, id := range nodes {
		c := assign[i]
		nodeCommunity[id] = c
		byCommunity[c] = append(byCommunity[c], id)
		if c > maxID {
			maxID = c
		}
	}

	communities := make([]*Community, 0, len(byCommunity))
	for c := 0; c <= maxID; c++ {
		members, ok := byCommunity[c]
		if !ok {
			continue
		}
		communities = append(communities, &Community{
			ID:    c,
			Nodes: members,
			Size:  len(members),
		})
	}

	return &CommunityDetectionResult{
		Communities:   communities,
		Modularity:    q,
		NodeCommunity: nodeCommunity,
		Levels:        levels,
	}
}
