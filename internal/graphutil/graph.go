// Package graphutil adapts this module's own graph-shaped data (the CFG, in
// particular) to gonum's graph interfaces. Its traversal (ReversePostorder)
// is a depth-first search written against gonum's graph.Directed interface
// rather than against the CFG types directly.
package graphutil

import (
	"sort"

	"github.com/xinchen-jzx/tai-e-go/internal/funcutil"
	"gonum.org/v1/gonum/graph"
)

// AdjGraph is a directed graph described purely by an adjacency list keyed
// by an arbitrary int64 id. It implements gonum's graph.Directed so gonum
// traversal algorithms (topo.TarjanSCC, traverse.DepthFirst, ...) can run
// over it directly.
type AdjGraph struct {
	// ids is the sorted set of node ids in the graph, used for
	// deterministic iteration.
	ids []int64

	// idSet supports Node/HasEdgeBetween membership checks.
	idSet map[int64]bool

	// out is the adjacency list: out[x] are the ids y such that there is
	// a directed edge x -> y.
	out map[int64][]int64
}

// NewAdjGraph builds an AdjGraph from the given node ids and a successors
// function giving, for each id, the ids of its direct successors.
func NewAdjGraph(ids []int64, successors func(int64) []int64) *AdjGraph {
	idSet := make(map[int64]bool, len(ids))
	out := make(map[int64][]int64, len(ids))
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, id := range sorted {
		idSet[id] = true
	}
	for _, id := range sorted {
		out[id] = successors(id)
	}
	return &AdjGraph{ids: sorted, idSet: idSet, out: out}
}

// Node implements graph.Graph.
func (g *AdjGraph) Node(id int64) graph.Node {
	if !g.idSet[id] {
		return nil
	}
	return idNode(id)
}

// Nodes implements graph.Graph.
func (g *AdjGraph) Nodes() graph.Nodes {
	return &idIterator{ids: g.ids, cur: -1}
}

// From implements graph.Graph.
func (g *AdjGraph) From(id int64) graph.Nodes {
	succs := g.out[id]
	return &idIterator{ids: succs, cur: -1}
}

// HasEdgeBetween implements graph.Graph.
func (g *AdjGraph) HasEdgeBetween(xid, yid int64) bool {
	return funcutil.Contains(g.out[xid], yid) || funcutil.Contains(g.out[yid], xid)
}

// Edge implements graph.Graph.
func (g *AdjGraph) Edge(uid, vid int64) graph.Edge {
	if !funcutil.Contains(g.out[uid], vid) {
		return nil
	}
	return simpleEdge{from: idNode(uid), to: idNode(vid)}
}

// HasEdgeFromTo implements graph.Directed.
func (g *AdjGraph) HasEdgeFromTo(uid, vid int64) bool {
	return funcutil.Contains(g.out[uid], vid)
}

// To implements graph.Directed: the predecessors of id.
func (g *AdjGraph) To(id int64) graph.Nodes {
	var preds []int64
	for _, x := range g.ids {
		if funcutil.Contains(g.out[x], id) {
			preds = append(preds, x)
		}
	}
	return &idIterator{ids: preds, cur: -1}
}

type idNode int64

func (n idNode) ID() int64 { return int64(n) }

type idIterator struct {
	ids []int64
	cur int
}

func (it *idIterator) Next() bool {
	if it.cur < len(it.ids)-1 {
		it.cur++
		return true
	}
	return false
}

func (it *idIterator) Len() int { return len(it.ids) - (it.cur + 1) }

func (it *idIterator) Reset() { it.cur = -1 }

func (it *idIterator) Node() graph.Node { return idNode(it.ids[it.cur]) }

type simpleEdge struct {
	from, to graph.Node
}

func (e simpleEdge) From() graph.Node         { return e.from }
func (e simpleEdge) To() graph.Node           { return e.to }
func (e simpleEdge) ReversedEdge() graph.Edge { return simpleEdge{from: e.to, to: e.from} }
