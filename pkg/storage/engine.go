// Package storage 实现图快照的存储引擎：
// 把一整张图变成一棵 Hash 链接的对象树写到文件系统上，或者反过来读回。
//
// 持久状态就是 base path 下的文件树，引擎在两次调用之间不持有任何
// 缓存或句柄；所有操作都显式接收 base path，没有全局单例。
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"

	"graphvault/pkg/core"
	"graphvault/pkg/graph"
)

// =============================================================================
// 写路径
// =============================================================================

// ensureKindDir 幂等地创建某个 Kind 的子目录
// MkdirAll 在并发竞争下也是安全的
func ensureKindDir(basePath string, kind core.ObjectKind) error {
	if err := os.MkdirAll(core.KindDir(basePath, kind), 0o755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", kind, err)
	}
	return nil
}

// writeFile 把一个 File 写到它的 Hash 寻址路径上
// 内容寻址意味着重写相同内容是字节一致的幂等覆盖，不需要锁，
// 失败的多步保存也不需要回滚 —— 重跑同一次保存永远是安全的
func writeFile(basePath string, f core.File) (core.Hash, error) {
	if err := os.WriteFile(f.Path(basePath), f.Content, 0o644); err != nil {
		return core.Hash{}, fmt.Errorf("failed to write %s object: %w", f.Kind, err)
	}
	return f.Hash, nil
}

// writeNamedFile 把一个 File 写到命名路径上，直接覆盖旧内容 (last-writer-wins)
func writeNamedFile(basePath, name string, f core.File) error {
	if err := os.WriteFile(core.NamedPath(basePath, f.Kind, name), f.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write named %s %q: %w", f.Kind, name, err)
	}
	return nil
}

// writeAllFiles 并发写入一批同 Kind 的 File，返回保持生产顺序的 HashVec
// 语义：join 全部，第一个错误胜出；已在飞行中的兄弟写入不被显式取消，
// 留在盘上的部分写入是无害的 (内容寻址)
func writeAllFiles(ctx context.Context, basePath string, kind core.ObjectKind, files []core.File) (core.HashVec, error) {
	if err := ensureKindDir(basePath, kind); err != nil {
		return nil, err
	}

	vec := make(core.HashVec, len(files))
	g, _ := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			h, err := writeFile(basePath, f)
			if err != nil {
				return err
			}
			vec[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vec, nil
}

// writeHashVec 把收集到的 HashVec 作为一个普通的 Hash 寻址对象写下去
func writeHashVec(basePath string, kind core.ObjectKind, vec core.HashVec) (core.Hash, error) {
	f, err := core.NewHashVecFile(kind, vec)
	if err != nil {
		return core.Hash{}, err
	}
	if err := ensureKindDir(basePath, kind); err != nil {
		return core.Hash{}, err
	}
	return writeFile(basePath, f)
}

// writeGraphVertices 是顶点阶段：
// 逐顶点 serialize-hash-write，再把按生产顺序收集的 Hash 列表写成 vertexvec 对象
func writeGraphVertices(ctx context.Context, basePath string, dg *graph.DirectedGraph) (core.Hash, error) {
	vertices := dg.Vertices()
	files := make([]core.File, 0, len(vertices))
	for _, v := range vertices {
		f, err := core.NewVertexFile(v)
		if err != nil {
			return core.Hash{}, err
		}
		files = append(files, f)
	}

	vec, err := writeAllFiles(ctx, basePath, core.KindVertex, files)
	if err != nil {
		return core.Hash{}, err
	}
	return writeHashVec(basePath, core.KindVertexVec, vec)
}

// writeGraphEdges 是边阶段，与顶点阶段对称：
// Edge -> HashEdge 的推导是结构化的，不依赖端点是否被单独存储
//
// 端点的顶点对象也在这里一并写入：读路径要通过顶点对象才能把
// 端点 Hash 还原成 VertexID，哪怕端点从未被显式加入顶点集合。
// 这些写入是内容寻址的幂等覆盖，并且不影响 vertexvec —— 未显式
// 添加的端点不会因此出现在加载出来的顶点集合里。
func writeGraphEdges(ctx context.Context, basePath string, dg *graph.DirectedGraph) (core.Hash, error) {
	edges := dg.Edges()
	edgeFiles := make([]core.File, 0, len(edges))
	endpointFiles := make([]core.File, 0, len(edges)*2)
	for _, e := range edges {
		fromFile, err := core.NewVertexFile(e.From)
		if err != nil {
			return core.Hash{}, err
		}
		toFile, err := core.NewVertexFile(e.To)
		if err != nil {
			return core.Hash{}, err
		}
		f, err := core.NewHashEdgeFile(core.HashEdge{From: fromFile.Hash, To: toFile.Hash})
		if err != nil {
			return core.Hash{}, err
		}
		edgeFiles = append(edgeFiles, f)
		endpointFiles = append(endpointFiles, fromFile, toFile)
	}

	if _, err := writeAllFiles(ctx, basePath, core.KindVertex, endpointFiles); err != nil {
		return core.Hash{}, err
	}
	vec, err := writeAllFiles(ctx, basePath, core.KindEdge, edgeFiles)
	if err != nil {
		return core.Hash{}, err
	}
	return writeHashVec(basePath, core.KindEdgeVec, vec)
}

// SaveGraphAs 在 name 下保存一次图快照
//
// 顶点阶段和边阶段相互独立，并发执行；两者都成功后才构造 GraphHash
// 并写命名指针。两个并发的同名保存不会在对象写入上冲突 (内容寻址 ⇒ 幂等)，
// 最后的命名指针写入可能竞争，last-writer-wins，没有冲突检测。
func SaveGraphAs(ctx context.Context, basePath, name string, dg *graph.DirectedGraph) error {
	var gh core.GraphHash

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := writeGraphVertices(gctx, basePath, dg)
		if err != nil {
			return err
		}
		gh.VertexVecHash = h
		return nil
	})
	g.Go(func() error {
		h, err := writeGraphEdges(gctx, basePath, dg)
		if err != nil {
			return err
		}
		gh.EdgeVecHash = h
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	f, err := core.NewGraphFile(gh)
	if err != nil {
		return err
	}
	if err := ensureKindDir(basePath, core.KindGraph); err != nil {
		return err
	}
	return writeNamedFile(basePath, name, f)
}

// =============================================================================
// 读路径
// =============================================================================

// ReadFile 读取一个 Hash 寻址对象
// 读取方校验：对内容重算的 Hash 必须与文件名一致，否则按损坏处理
func ReadFile(basePath string, kind core.ObjectKind, h core.Hash) (core.File, error) {
	content, err := os.ReadFile(core.HashPath(basePath, kind, h))
	if errors.Is(err, fs.ErrNotExist) {
		return core.File{}, fmt.Errorf("%s object %s: %w", kind, h, ErrNotFound)
	}
	if err != nil {
		return core.File{}, fmt.Errorf("failed to read %s object: %w", kind, err)
	}

	f := core.FileFromContent(kind, content)
	if f.Hash != h {
		return core.File{}, &core.SerializationError{
			Op:   "decode",
			Kind: kind,
			Err:  fmt.Errorf("content hash %s does not match object name %s", f.Hash, h),
		}
	}
	return f, nil
}

// ReadNamedFile 读取一个命名对象
// 名字推导不出 Hash，所以这里没有 (也不需要) 与文件名的比对
func ReadNamedFile(basePath string, kind core.ObjectKind, name string) (core.File, error) {
	content, err := os.ReadFile(core.NamedPath(basePath, kind, name))
	if errors.Is(err, fs.ErrNotExist) {
		return core.File{}, fmt.Errorf("named %s %q: %w", kind, name, ErrNotFound)
	}
	if err != nil {
		return core.File{}, fmt.Errorf("failed to read named %s %q: %w", kind, name, err)
	}
	return core.FileFromContent(kind, content), nil
}

// readVertex 是逐 Hash 的顶点读取例程，边的端点解析也复用它
func readVertex(basePath string, h core.Hash) (graph.VertexID, error) {
	f, err := ReadFile(basePath, core.KindVertex, h)
	if err != nil {
		return 0, err
	}
	return f.Vertex()
}

// readEdge 读取一条存储边，并发解析它的两个端点
func readEdge(ctx context.Context, basePath string, h core.Hash) (graph.Edge, error) {
	f, err := ReadFile(basePath, core.KindEdge, h)
	if err != nil {
		return graph.Edge{}, err
	}
	he, err := f.HashEdge()
	if err != nil {
		return graph.Edge{}, err
	}

	var from, to graph.VertexID
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		from, err = readVertex(basePath, he.From)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = readVertex(basePath, he.To)
		return err
	})
	if err := g.Wait(); err != nil {
		return graph.Edge{}, err
	}
	return graph.Edge{From: from, To: to}, nil
}

func readHashVec(basePath string, kind core.ObjectKind, h core.Hash) (core.HashVec, error) {
	f, err := ReadFile(basePath, kind, h)
	if err != nil {
		return nil, err
	}
	return f.HashVec()
}

// readGraphVertices 读回顶点列表并把每个顶点加入 dg
// 并发读取按下标落位，之后顺序插入，图本身不需要加锁
func readGraphVertices(ctx context.Context, basePath string, vecHash core.Hash, dg *graph.DirectedGraph) error {
	vec, err := readHashVec(basePath, core.KindVertexVec, vecHash)
	if err != nil {
		return err
	}

	ids := make([]graph.VertexID, len(vec))
	g, _ := errgroup.WithContext(ctx)
	for i, h := range vec {
		g.Go(func() error {
			id, err := readVertex(basePath, h)
			if err != nil {
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, id := range ids {
		dg.AddVertex(id)
	}
	return nil
}

// readGraphEdges 读回边列表并把每条边加入 dg
func readGraphEdges(ctx context.Context, basePath string, vecHash core.Hash, dg *graph.DirectedGraph) error {
	vec, err := readHashVec(basePath, core.KindEdgeVec, vecHash)
	if err != nil {
		return err
	}

	edges := make([]graph.Edge, len(vec))
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range vec {
		g.Go(func() error {
			e, err := readEdge(gctx, basePath, h)
			if err != nil {
				return err
			}
			edges[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, e := range edges {
		dg.AddEdge(e)
	}
	return nil
}

// LoadGraph 按名字加载一次图快照
//
// 链条上任何一个对象缺失或损坏都会让整次加载以第一个错误失败，
// 绝不返回部分填充的图。
func LoadGraph(ctx context.Context, basePath, name string) (*graph.DirectedGraph, error) {
	f, err := ReadNamedFile(basePath, core.KindGraph, name)
	if err != nil {
		return nil, err
	}
	gh, err := f.GraphHash()
	if err != nil {
		return nil, err
	}

	dg := graph.NewDirectedGraph()
	if err := readGraphVertices(ctx, basePath, gh.VertexVecHash, dg); err != nil {
		return nil, err
	}
	if err := readGraphEdges(ctx, basePath, gh.EdgeVecHash, dg); err != nil {
		return nil, err
	}
	return dg, nil
}
