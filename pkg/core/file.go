package core

import (
	"fmt"
	"path/filepath"

	"graphvault/pkg/graph"
)

// File 把一个对象在单次读/写调用期间需要的东西绑在一起：
// 原始字节、内容 Hash、以及 Kind 标签
// 它是一个瞬态值，从不作为结构体落盘 —— 只有 Content 会写进文件
type File struct {
	Content []byte
	Hash    Hash
	Kind    ObjectKind
}

// newFile 是所有 "领域值 -> File" 构造的公共路径：确定性序列化，然后取 Hash
func newFile(kind ObjectKind, v any) (File, error) {
	h, data, err := ComputeHash(v)
	if err != nil {
		return File{}, err
	}
	return File{Content: data, Hash: h, Kind: kind}, nil
}

// NewVertexFile 把一个顶点标识变成可存储的 File
func NewVertexFile(id graph.VertexID) (File, error) {
	return newFile(KindVertex, uint64(id))
}

// NewEdgeFile 把一条领域边变成可存储的 File
// 先结构化地推导 HashEdge (两个端点各自 serialize + hash)，再序列化 HashEdge 本身
func NewEdgeFile(e graph.Edge) (File, error) {
	he, err := NewHashEdge(e)
	if err != nil {
		return File{}, err
	}
	return newFile(KindEdge, he)
}

// NewHashEdgeFile 把一个已经推导好的 HashEdge 变成可存储的 File
func NewHashEdgeFile(he HashEdge) (File, error) {
	return newFile(KindEdge, he)
}

// NewHashVecFile 把一个 Hash 列表变成可存储的 File
// kind 必须是 KindVertexVec 或 KindEdgeVec
func NewHashVecFile(kind ObjectKind, vec HashVec) (File, error) {
	return newFile(kind, vec)
}

// NewGraphFile 把快照根变成可存储的 File
func NewGraphFile(gh GraphHash) (File, error) {
	return newFile(KindGraph, gh)
}

// FileFromContent 从磁盘读出的字节构造 File
// Hash 总是在内容上重新计算：Hash 寻址的读取方可以拿它和文件名比对，
// 命名读取方则直接使用 (名字推导不出 Hash)
func FileFromContent(kind ObjectKind, content []byte) File {
	return File{Content: content, Hash: HashBytes(content), Kind: kind}
}

// KindDir 返回某个 Kind 在 base path 下的目录
func KindDir(basePath string, kind ObjectKind) string {
	return filepath.Join(basePath, kind.Subdir())
}

// HashPath 返回 Hash 寻址对象的完整路径：base/<kind>/<hex>
func HashPath(basePath string, kind ObjectKind, h Hash) string {
	return filepath.Join(basePath, kind.Subdir(), h.String())
}

// NamedPath 返回命名对象的完整路径：base/<kind>/<name>
func NamedPath(basePath string, kind ObjectKind, name string) string {
	return filepath.Join(basePath, kind.Subdir(), name)
}

// Path 返回该 File 的 Hash 寻址路径
func (f File) Path(basePath string) string {
	return HashPath(basePath, f.Kind, f.Hash)
}

// checkKind 在解码前校验 File 的 Kind 标签，拦截拿错目录的调用方
func (f File) checkKind(want ObjectKind) error {
	if f.Kind != want {
		return &SerializationError{Op: "decode", Kind: f.Kind, Err: fmt.Errorf("expected kind %q", want)}
	}
	return nil
}

// Vertex 把 File 解码回顶点标识
func (f File) Vertex() (graph.VertexID, error) {
	if err := f.checkKind(KindVertex); err != nil {
		return 0, err
	}
	var id uint64
	if err := decode(KindVertex, f.Content, &id); err != nil {
		return 0, err
	}
	return graph.VertexID(id), nil
}

// HashEdge 把 File 解码回存储边
func (f File) HashEdge() (HashEdge, error) {
	if err := f.checkKind(KindEdge); err != nil {
		return HashEdge{}, err
	}
	var he HashEdge
	if err := decode(KindEdge, f.Content, &he); err != nil {
		return HashEdge{}, err
	}
	return he, nil
}

// HashVec 把 File 解码回 Hash 列表
func (f File) HashVec() (HashVec, error) {
	if f.Kind != KindVertexVec && f.Kind != KindEdgeVec {
		return nil, &SerializationError{Op: "decode", Kind: f.Kind, Err: fmt.Errorf("expected a hashvec kind")}
	}
	var vec HashVec
	if err := decode(f.Kind, f.Content, &vec); err != nil {
		return nil, err
	}
	return vec, nil
}

// GraphHash 把 File 解码回快照根
func (f File) GraphHash() (GraphHash, error) {
	if err := f.checkKind(KindGraph); err != nil {
		return GraphHash{}, err
	}
	var gh GraphHash
	if err := decode(KindGraph, f.Content, &gh); err != nil {
		return GraphHash{}, err
	}
	return gh, nil
}
