package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectedGraph_SetSemantics(t *testing.T) {
	g := NewDirectedGraph()

	g.AddVertex(14)
	g.AddVertex(17)
	g.AddVertex(14) // 重复添加是无害的

	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex(14))
	assert.True(t, g.HasVertex(17))
	assert.False(t, g.HasVertex(15))

	g.AddEdge(Edge{From: 14, To: 17})
	g.AddEdge(Edge{From: 14, To: 17})

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(Edge{From: 14, To: 17}))
	// 有向：反向的边不存在
	assert.False(t, g.HasEdge(Edge{From: 17, To: 14}))
}

func TestDirectedGraph_EdgeDoesNotMaterializeEndpoints(t *testing.T) {
	g := NewDirectedGraph()

	// 只加边，不加端点
	g.AddEdge(Edge{From: 14, To: 15})

	assert.Equal(t, 0, g.VertexCount(), "加边不应该隐式物化端点为顶点")
	assert.False(t, g.HasVertex(14))
	assert.False(t, g.HasVertex(15))
}

func TestDirectedGraph_Equal(t *testing.T) {
	g1 := NewDirectedGraph()
	g1.AddVertex(1)
	g1.AddVertex(2)
	g1.AddEdge(Edge{From: 1, To: 2})

	// 插入顺序不同，集合相同
	g2 := NewDirectedGraph()
	g2.AddEdge(Edge{From: 1, To: 2})
	g2.AddVertex(2)
	g2.AddVertex(1)

	assert.True(t, g1.Equal(g2))
	assert.True(t, g2.Equal(g1))

	g2.AddVertex(3)
	assert.False(t, g1.Equal(g2))
}

func TestDirectedGraph_Enumeration(t *testing.T) {
	g := NewDirectedGraph()
	g.AddVertex(7)
	g.AddVertex(9)
	g.AddEdge(Edge{From: 7, To: 9})

	assert.ElementsMatch(t, []VertexID{7, 9}, g.Vertices())
	assert.ElementsMatch(t, []Edge{{From: 7, To: 9}}, g.Edges())
}
