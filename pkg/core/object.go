package core

import "fmt"

// ObjectKind 定义了可存储的对象种类
// 每种 Kind 声明一个稳定且全局唯一的子目录名，
// 改动任何一个名字都会让已有的存储库无法读取
type ObjectKind string

const (
	KindVertex    ObjectKind = "vertex"    // 顶点标识 (叶子)
	KindEdge      ObjectKind = "edge"      // HashEdge：一对端点 Hash
	KindVertexVec ObjectKind = "vertexvec" // 顶点 Hash 的有序列表
	KindEdgeVec   ObjectKind = "edgevec"   // 边 Hash 的有序列表
	KindGraph     ObjectKind = "graph"     // 快照根 (唯一支持按名字存储的 Kind)
)

// Subdir 返回该 Kind 在 base path 下的子目录名
func (k ObjectKind) Subdir() string {
	return string(k)
}

// NameAddressed 报告该 Kind 是否按名字存储 (而不是按内容 Hash)
// 只有 KindGraph 是命名存储，并且它从不使用 Hash 寻址，
// 这样两个路径族 (base/kind/<hex> 和 base/kind/<name>) 在同一 Kind 下永远不会冲突
func (k ObjectKind) NameAddressed() bool {
	return k == KindGraph
}

// Valid 报告 k 是否是已注册的 Kind
func (k ObjectKind) Valid() bool {
	switch k {
	case KindVertex, KindEdge, KindVertexVec, KindEdgeVec, KindGraph:
		return true
	}
	return false
}

// ParseKind 把 CLI/HTTP 传入的文本解析为 ObjectKind
func ParseKind(s string) (ObjectKind, error) {
	k := ObjectKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown object kind %q", s)
	}
	return k, nil
}
