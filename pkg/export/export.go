// Package export 把加载出来的图投影成对外展示用的形状
// 投影只是视图，不参与哈希和存储
package export

import (
	"slices"
	"strconv"

	"graphvault/pkg/graph"
)

// GraphJSON 是图的朴素 JSON 投影
type GraphJSON struct {
	Vertices []uint64    `json:"vertices"`
	Edges    [][2]uint64 `json:"edges"`
}

// ToJSON 构造 JSON 投影
// 图的枚举顺序是任意的，这里排序只是为了展示输出稳定
func ToJSON(g *graph.DirectedGraph) GraphJSON {
	vertices := make([]uint64, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		vertices = append(vertices, uint64(v))
	}
	slices.Sort(vertices)

	edges := make([][2]uint64, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, [2]uint64{uint64(e.From), uint64(e.To)})
	}
	slices.SortFunc(edges, func(a, b [2]uint64) int {
		if a[0] != b[0] {
			if a[0] < b[0] {
				return -1
			}
			return 1
		}
		switch {
		case a[1] < b[1]:
			return -1
		case a[1] > b[1]:
			return 1
		}
		return 0
	})

	return GraphJSON{Vertices: vertices, Edges: edges}
}

// G6Node / G6Edge / GraphG6 是 AntV G6 可视化库期望的数据形状
// https://g6.antv.vision
type G6Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type G6Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

type GraphG6 struct {
	Nodes []G6Node `json:"nodes"`
	Edges []G6Edge `json:"edges"`
}

// ToG6 构造 G6 投影
func ToG6(g *graph.DirectedGraph) GraphG6 {
	j := ToJSON(g)

	nodes := make([]G6Node, 0, len(j.Vertices))
	for _, v := range j.Vertices {
		s := strconv.FormatUint(v, 10)
		nodes = append(nodes, G6Node{ID: s, Label: s})
	}

	edges := make([]G6Edge, 0, len(j.Edges))
	for _, e := range j.Edges {
		edges = append(edges, G6Edge{
			Source: strconv.FormatUint(e[0], 10),
			Target: strconv.FormatUint(e[1], 10),
			Label:  "edge",
		})
	}
	return GraphG6{Nodes: nodes, Edges: edges}
}
