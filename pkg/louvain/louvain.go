package louvain

import "math"

// Options controls the modularity optimization.
type Options struct {
	// Resolution scales the null-model term; 1.0 is classic modularity.
	Resolution float64
	// MinModularityGrowth stops the aggregation once a level improves
	// modularity by less than this.
	MinModularityGrowth float64
}

// DefaultOptions returns the options used by the benchmark sweep.
func DefaultOptions() Options {
	return Options{
		Resolution:          1.0,
		MinModularityGrowth: 1e-7,
	}
}

// BestPartition computes the community partition that greedily maximises
// modularity: local moves until no node improves, then aggregation into a
// super-node graph, repeated while modularity keeps growing. The returned
// mapping assigns every node a dense community identifier.
//
// The optimization is deterministic: nodes are swept in insertion order and
// ties break toward the node's current community.
func BestPartition(g *Graph, opts Options) map[int64]int {
	if opts.Resolution == 0 {
		opts.Resolution = 1.0
	}

	original := g.Nodes()

	partition, improvement := oneLevel(g, opts.Resolution)
	if !improvement {
		return densify(original, []map[int64]int64{partition})
	}
	mod := modularityOf(g, partition, opts.Resolution)

	partitions := []map[int64]int64{partition}
	g = aggregate(g, partition)

	for {
		partition, improvement = oneLevel(g, opts.Resolution)
		if !improvement {
			break
		}
		newMod := modularityOf(g, partition, opts.Resolution)
		if newMod-mod <= opts.MinModularityGrowth {
			break
		}
		mod = newMod
		partitions = append(partitions, partition)
		g = aggregate(g, partition)
	}

	return densify(original, partitions)
}

// Modularity scores a partition of the graph. NaN for a graph without
// edges, matching the convention that modularity is undefined there.
func Modularity(g *Graph, partition map[int64]int) float64 {
	p := make(map[int64]int64, len(partition))
	for node, com := range partition {
		p[node] = int64(com)
	}
	return modularityOf(g, p, 1.0)
}

// oneLevel computes one level of communities: every node starts alone, then
// nodes are repeatedly moved to the neighboring community with the best
// modularity gain until a full sweep changes nothing.
func oneLevel(g *Graph, resolution float64) (map[int64]int64, bool) {
	partition := make(map[int64]int64, g.NodeCount())
	degrees := make(map[int64]float64, g.NodeCount())
	communityDegrees := make(map[int64]float64, g.NodeCount())

	for _, node := range g.order {
		partition[node] = node
		degrees[node] = g.WeightedDegree(node)
		communityDegrees[node] = degrees[node]
	}

	m := g.m
	improvement := false

	for modified := true; modified; {
		modified = false
		for _, node := range g.order {
			nodeDegree := degrees[node]
			nodeCom := partition[node]

			// Weight between node and each neighboring community,
			// self-edges excluded, in first-seen order.
			degreeInCom := make(map[int64]float64)
			var comOrder []int64
			for _, nb := range g.nbrOrder[node] {
				if nb == node {
					continue
				}
				c := partition[nb]
				if _, ok := degreeInCom[c]; !ok {
					comOrder = append(comOrder, c)
				}
				degreeInCom[c] += g.adj[node][nb]
			}

			bestMod := 0.0
			bestCom := nodeCom
			nodeComTot := communityDegrees[nodeCom]
			inOwn := degreeInCom[nodeCom]

			for _, c := range comOrder {
				if c == nodeCom {
					continue
				}
				deltaQ := (degreeInCom[c]-inOwn)/m +
					resolution*nodeDegree/(2*m*m)*(nodeComTot-nodeDegree-communityDegrees[c])
				if deltaQ > bestMod {
					bestMod = deltaQ
					bestCom = c
				}
			}

			if bestCom != nodeCom {
				communityDegrees[nodeCom] -= nodeDegree
				communityDegrees[bestCom] += nodeDegree
				partition[node] = bestCom
				modified = true
				improvement = true
			}
		}
	}

	return partition, improvement
}

// aggregate builds the super-node graph: one node per community, edge
// weights summed, intra-community weight folded into self-loops.
func aggregate(g *Graph, partition map[int64]int64) *Graph {
	next := NewGraph()
	for _, u := range g.order {
		cu := partition[u]
		for _, v := range g.nbrOrder[u] {
			if v < u {
				continue // each undirected edge once
			}
			next.AddEdge(cu, partition[v], g.adj[u][v])
		}
	}
	return next
}

func modularityOf(g *Graph, partition map[int64]int64, resolution float64) float64 {
	if g.m == 0 {
		return math.NaN()
	}

	intra := make(map[int64]float64)
	tot := make(map[int64]float64)
	var comOrder []int64

	for _, u := range g.order {
		c := partition[u]
		if _, ok := tot[c]; !ok {
			comOrder = append(comOrder, c)
		}
		tot[c] += g.WeightedDegree(u)
		for _, v := range g.nbrOrder[u] {
			if partition[v] != c {
				continue
			}
			if v == u {
				intra[c] += g.adj[u][v]
			} else {
				intra[c] += g.adj[u][v] / 2
			}
		}
	}

	q := 0.0
	for _, c := range comOrder {
		frac := tot[c] / (2 * g.m)
		q += intra[c]/g.m - resolution*frac*frac
	}
	return q
}

// densify flattens the level partitions down to the original nodes and
// renumbers communities densely in node order.
func densify(original []int64, partitions []map[int64]int64) map[int64]int {
	flat := make(map[int64]int64, len(original))
	for _, node := range original {
		com := partitions[0][node]
		for _, p := range partitions[1:] {
			com = p[com]
		}
		flat[node] = com
	}

	renumber := make(map[int64]int, len(flat))
	result := make(map[int64]int, len(flat))
	next := 0
	for _, node := range original {
		c, ok := renumber[flat[node]]
		if !ok {
			c = next
			renumber[flat[node]] = c
			next++
		}
		result[node] = c
	}
	return result
}
