package core

import "graphvault/pkg/graph"

// HashEdge 是边的存储表示：用两个端点的内容 Hash 代替 VertexID
// 端点 Hash 是结构化计算出来的 (serialize + hash)，
// 不依赖端点本身是否被单独存储过
type HashEdge struct {
	From Hash `cbor:"f"`
	To   Hash `cbor:"t"`
}

// NewHashEdge 由领域边推导存储边
func NewHashEdge(e graph.Edge) (HashEdge, error) {
	from, _, err := ComputeHash(uint64(e.From))
	if err != nil {
		return HashEdge{}, err
	}
	to, _, err := ComputeHash(uint64(e.To))
	if err != nil {
		return HashEdge{}, err
	}
	return HashEdge{From: from, To: to}, nil
}

// HashVec 是指向同一 Kind 对象的 Hash 有序列表
// 顺序 = 写入时源集合的枚举顺序；不同写方对同一个逻辑图
// 可能产生不同的顺序，从而产生不同的 GraphHash (刻意保留，见 DESIGN.md)
type HashVec []Hash

// GraphHash 是一次图快照的 Merkle 根：
// 顶点列表的 Hash + 边列表的 Hash
type GraphHash struct {
	VertexVecHash Hash `cbor:"v"`
	EdgeVecHash   Hash `cbor:"e"`
}
