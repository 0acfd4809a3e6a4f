package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphvault/pkg/core"
	"graphvault/pkg/graph"
)

// mustSave / mustLoad 让场景测试的主干保持干净
func mustSave(t *testing.T, base, name string, g *graph.DirectedGraph) {
	t.Helper()
	require.NoError(t, SaveGraphAs(context.Background(), base, name, g))
}

func mustLoad(t *testing.T, base, name string) *graph.DirectedGraph {
	t.Helper()
	g, err := LoadGraph(context.Background(), base, name)
	require.NoError(t, err)
	return g
}

// countFiles 数某个 Kind 目录下的文件数
func countFiles(t *testing.T, base string, kind core.ObjectKind) int {
	t.Helper()
	entries, err := os.ReadDir(core.KindDir(base, kind))
	require.NoError(t, err)
	return len(entries)
}

// -----------------------------------------------------------------------------
// 往返
// -----------------------------------------------------------------------------

func TestSaveLoad_RoundTrip(t *testing.T) {
	base := t.TempDir()

	g := graph.NewDirectedGraph()
	g.AddVertex(19)
	g.AddVertex(12)
	g.AddEdge(graph.Edge{From: 12, To: 19})

	mustSave(t, base, "graph_pepi", g)
	result := mustLoad(t, base, "graph_pepi")

	assert.True(t, g.Equal(result), "保存再加载必须得到相同的顶点集和边集")
}

func TestSaveLoad_EmptyGraph(t *testing.T) {
	base := t.TempDir()

	mustSave(t, base, "empty", graph.NewDirectedGraph())
	result := mustLoad(t, base, "empty")

	assert.Equal(t, 0, result.VertexCount())
	assert.Equal(t, 0, result.EdgeCount())
}

func TestSaveLoad_LargeFanOut(t *testing.T) {
	base := t.TempDir()

	// 足够大的图，真正跑到并发扇出路径
	g := graph.NewDirectedGraph()
	for i := uint64(0); i < 200; i++ {
		g.AddVertex(graph.VertexID(i))
	}
	for i := uint64(0); i < 100; i++ {
		g.AddEdge(graph.Edge{From: graph.VertexID(i), To: graph.VertexID(i + 100)})
	}

	mustSave(t, base, "big", g)
	result := mustLoad(t, base, "big")

	assert.True(t, g.Equal(result))
}

// -----------------------------------------------------------------------------
// 规定的场景
// -----------------------------------------------------------------------------

func TestScenarioA_VerticesOnly(t *testing.T) {
	base := t.TempDir()

	g := graph.NewDirectedGraph()
	g.AddVertex(14)
	g.AddVertex(17)

	mustSave(t, base, "g1", g)
	result := mustLoad(t, base, "g1")

	assert.Equal(t, 2, result.VertexCount())
	assert.True(t, result.HasVertex(14))
	assert.True(t, result.HasVertex(17))
	assert.Equal(t, 0, result.EdgeCount())
}

func TestScenarioB_EdgeEndpointNotMaterialized(t *testing.T) {
	base := t.TempDir()

	// 顶点 15 从未被显式添加，只作为边的端点出现
	g := graph.NewDirectedGraph()
	g.AddVertex(14)
	g.AddEdge(graph.Edge{From: 14, To: 15})

	mustSave(t, base, "g2", g)
	result := mustLoad(t, base, "g2")

	assert.True(t, result.HasEdge(graph.Edge{From: 14, To: 15}))
	assert.True(t, result.HasVertex(14))
	// 端点 15 的对象在盘上 (边的解析需要它)，但它不在顶点集合里
	assert.False(t, result.HasVertex(15), "未显式添加的端点不应该被物化为顶点")
	assert.Equal(t, 1, result.VertexCount())
	assert.Equal(t, 2, countFiles(t, base, core.KindVertex))
}

// -----------------------------------------------------------------------------
// 去重与指针可变性
// -----------------------------------------------------------------------------

func TestSave_Deduplicates(t *testing.T) {
	base := t.TempDir()

	g := graph.NewDirectedGraph()
	g.AddVertex(14)

	mustSave(t, base, "a", g)
	mustSave(t, base, "b", g)

	// 相同内容 = 相同路径 = 同一个文件，第二次保存是字节一致的幂等覆盖
	assert.Equal(t, 1, countFiles(t, base, core.KindVertex))
	assert.Equal(t, 1, countFiles(t, base, core.KindVertexVec))
	assert.Equal(t, 2, countFiles(t, base, core.KindGraph), "两个命名指针指向同一个对象集")
}

func TestNamedPointer_LastWriterWins(t *testing.T) {
	base := t.TempDir()

	g1 := graph.NewDirectedGraph()
	g1.AddVertex(1)

	g2 := graph.NewDirectedGraph()
	g2.AddVertex(2)
	g2.AddEdge(graph.Edge{From: 2, To: 3})

	mustSave(t, base, "N", g1)
	mustSave(t, base, "N", g2)

	result := mustLoad(t, base, "N")
	assert.True(t, g2.Equal(result), "同名保存必须覆盖，加载返回最后写入的图")
}

// -----------------------------------------------------------------------------
// 失败路径：缺失与损坏
// -----------------------------------------------------------------------------

func TestLoad_UnknownName(t *testing.T) {
	base := t.TempDir()

	_, err := LoadGraph(context.Background(), base, "never-saved")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_MissingVertexObject(t *testing.T) {
	base := t.TempDir()

	g := graph.NewDirectedGraph()
	g.AddVertex(14)
	g.AddVertex(17)
	mustSave(t, base, "g1", g)

	// 删掉一个被引用的顶点对象
	f, err := core.NewVertexFile(14)
	require.NoError(t, err)
	require.NoError(t, os.Remove(f.Path(base)))

	_, err = LoadGraph(context.Background(), base, "g1")
	assert.ErrorIs(t, err, ErrNotFound, "绝不返回部分填充的图")
}

func TestLoad_MissingEdgeEndpoint(t *testing.T) {
	base := t.TempDir()

	g := graph.NewDirectedGraph()
	g.AddVertex(14)
	g.AddEdge(graph.Edge{From: 14, To: 15})
	mustSave(t, base, "g2", g)

	// 删掉边端点 15 的顶点对象：边无法解析，整次加载失败
	f, err := core.NewVertexFile(15)
	require.NoError(t, err)
	require.NoError(t, os.Remove(f.Path(base)))

	_, err = LoadGraph(context.Background(), base, "g2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_CorruptObject(t *testing.T) {
	base := t.TempDir()

	g := graph.NewDirectedGraph()
	g.AddVertex(14)
	mustSave(t, base, "g1", g)

	// 原地篡改顶点对象：重算的内容 Hash 与文件名不一致
	f, err := core.NewVertexFile(14)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(f.Path(base), []byte("garbage"), 0o644))

	_, err = LoadGraph(context.Background(), base, "g1")
	var serr *core.SerializationError
	assert.ErrorAs(t, err, &serr)
}

func TestLoad_CorruptNamedPointer(t *testing.T) {
	base := t.TempDir()

	mustSave(t, base, "g1", graph.NewDirectedGraph())
	require.NoError(t, os.WriteFile(core.NamedPath(base, core.KindGraph, "g1"), []byte("junk"), 0o644))

	_, err := LoadGraph(context.Background(), base, "g1")
	var serr *core.SerializationError
	assert.ErrorAs(t, err, &serr)
}

// -----------------------------------------------------------------------------
// 单对象读写
// -----------------------------------------------------------------------------

func TestReadFile_VerifiesContentHash(t *testing.T) {
	base := t.TempDir()

	g := graph.NewDirectedGraph()
	g.AddVertex(27)
	mustSave(t, base, "g", g)

	f, err := core.NewVertexFile(27)
	require.NoError(t, err)

	got, err := ReadFile(base, core.KindVertex, f.Hash)
	require.NoError(t, err)
	assert.Equal(t, f.Content, got.Content)
	assert.Equal(t, f.Hash, got.Hash)

	// 不存在的 Hash
	_, err = ReadFile(base, core.KindVertex, core.HashBytes([]byte("nope")))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadNamedFile(t *testing.T) {
	base := t.TempDir()

	mustSave(t, base, "current", graph.NewDirectedGraph())

	f, err := ReadNamedFile(base, core.KindGraph, "current")
	require.NoError(t, err)

	gh, err := f.GraphHash()
	require.NoError(t, err)
	assert.False(t, gh.VertexVecHash.IsZero())
	assert.False(t, gh.EdgeVecHash.IsZero())

	_, err = ReadNamedFile(base, core.KindGraph, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// -----------------------------------------------------------------------------
// 重试语义：失败的保存重跑是安全的
// -----------------------------------------------------------------------------

func TestSave_RerunAfterPartialState(t *testing.T) {
	base := t.TempDir()

	g := graph.NewDirectedGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(graph.Edge{From: 1, To: 2})

	// 人为制造 "部分写入" 的状态：先保存一次，删掉命名指针，
	// 留下的对象相当于一次中断在最后一步的保存
	mustSave(t, base, "g", g)
	require.NoError(t, os.Remove(core.NamedPath(base, core.KindGraph, "g")))

	// 重跑同一次保存：内容寻址的对象被字节一致地覆盖，剩余步骤补全
	mustSave(t, base, "g", g)
	result := mustLoad(t, base, "g")
	assert.True(t, g.Equal(result))
}
