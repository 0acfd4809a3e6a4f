package graph

// VertexID 是顶点的领域标识 (64 位整数)
// 它由调用方拥有，存储引擎只负责对它的序列化形式做内容寻址
type VertexID uint64

// Edge 是一条有向边 (From -> To)
// 注意：Edge 只是两个 VertexID 的有序对，端点不要求已经存在于顶点集合中
type Edge struct {
	From VertexID
	To   VertexID
}

// DirectedGraph 是内存中的有向图
// 顶点集合和边集合是两个独立的 Set：
// 添加一条边不会把它的端点物化为顶点 (这是刻意的，不是缺陷)
type DirectedGraph struct {
	vertices map[VertexID]struct{}
	edges    map[Edge]struct{}
}

// NewDirectedGraph 创建一个空图
func NewDirectedGraph() *DirectedGraph {
	return &DirectedGraph{
		vertices: make(map[VertexID]struct{}),
		edges:    make(map[Edge]struct{}),
	}
}

// AddVertex 把顶点加入集合，重复添加是无害的
func (g *DirectedGraph) AddVertex(id VertexID) {
	g.vertices[id] = struct{}{}
}

// AddEdge 把边加入集合，不会隐式添加端点
func (g *DirectedGraph) AddEdge(e Edge) {
	g.edges[e] = struct{}{}
}

func (g *DirectedGraph) HasVertex(id VertexID) bool {
	_, ok := g.vertices[id]
	return ok
}

func (g *DirectedGraph) HasEdge(e Edge) bool {
	_, ok := g.edges[e]
	return ok
}

func (g *DirectedGraph) VertexCount() int { return len(g.vertices) }
func (g *DirectedGraph) EdgeCount() int   { return len(g.edges) }

// Vertices 返回顶点的一次性枚举
// 顺序是任意的 (map 迭代序)，调用方不应依赖它
func (g *DirectedGraph) Vertices() []VertexID {
	out := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	return out
}

// Edges 返回边的一次性枚举，顺序同样是任意的
func (g *DirectedGraph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	return out
}

// Equal 按集合语义比较两个图 (顶点集 + 边集)
func (g *DirectedGraph) Equal(other *DirectedGraph) bool {
	if len(g.vertices) != len(other.vertices) || len(g.edges) != len(other.edges) {
		return false
	}
	for v := range g.vertices {
		if _, ok := other.vertices[v]; !ok {
			return false
		}
	}
	for e := range g.edges {
		if _, ok := other.edges[e]; !ok {
			return false
		}
	}
	return true
}
