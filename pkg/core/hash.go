package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// HashSize 是摘要的固定长度 (SHA-256)
const HashSize = 32

// Hash 是对象序列化字节的 SHA-256 摘要
// 这是一个值对象：复制廉价，相等性就是字节比较
// 文本形式 (64 个小写 hex 字符) 只用于构造文件名
type Hash [HashSize]byte

// String 返回固定 64 字符的小写 hex 编码，用作文件名
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

// ParseHash 解析 64 字符的 hex 文本 (例如 CLI 传入的参数)
func ParseHash(s string) (Hash, error) {
	var h Hash
	if len(s) != hex.EncodedLen(HashSize) {
		return h, fmt.Errorf("invalid hash text: want %d hex chars, got %d", hex.EncodedLen(HashSize), len(s))
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, fmt.Errorf("invalid hash text: %w", err)
	}
	return h, nil
}

// MarshalCBOR 把 Hash 编码为 32 字节的 byte string
// 默认情况下 cbor 会把 [32]byte 编成整数数组，那不是我们想要的线格式
func (h Hash) MarshalCBOR() ([]byte, error) {
	return em.Marshal(h[:])
}

// UnmarshalCBOR 从 byte string 还原 Hash，并严格校验长度
func (h *Hash) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := dm.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != HashSize {
		return fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(raw))
	}
	copy(h[:], raw)
	return nil
}

// 定义确定性的编码选项
// 写方和读方共用同一套编码，Hash 是在它的确切输出上计算的，
// 所以这里的每一项配置都是线格式的一部分，不能随意改动
var encOptions = cbor.EncOptions{
	// 1. 强制 Map Key 排序 (Canonical)
	// 保证相同的对象生成唯一的 Hash
	Sort: cbor.SortCanonical,

	// 2. 本系统的对象模型里没有时间，禁止时间 Tag
	Time:    cbor.TimeUnix,
	TimeTag: cbor.EncTagNone,

	// 3. 禁止不定长编码 (Indefinite Length)
	// 数组和 Map 必须在头部声明长度
	IndefLength: cbor.IndefLengthForbidden,
}

// 全局复用的编码模式
var em, _ = encOptions.EncMode()

// 定义严格的解码选项
var decOptions = cbor.DecOptions{
	// --- 安全性配置 ---
	// 限制容器元素数量和嵌套深度，防止恶意构造的头部耗尽内存
	MaxArrayElements: 1 << 20,
	MaxMapPairs:      1024,
	MaxNestedLevels:  16,

	// --- 规范性配置 ---
	IndefLength: cbor.IndefLengthForbidden,
	DupMapKey:   cbor.DupMapKeyEnforcedAPF,
}

var dm, _ = decOptions.DecMode()

// ComputeHash 对一个对象做确定性序列化，并返回 (Hash, 序列化字节)
// 这是整个内容寻址机制的根：相同的领域值永远产生相同的字节和相同的 Hash
func ComputeHash(v any) (Hash, []byte, error) {
	data, err := em.Marshal(v)
	if err != nil {
		return Hash{}, nil, &SerializationError{Op: "encode", Err: err}
	}
	return HashBytes(data), data, nil
}

// HashBytes 计算一段原始字节的 Hash
// 纯函数，没有错误分支
func HashBytes(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

// decode 是包内统一的解码入口，出错时带上 kind 方便定位
func decode(kind ObjectKind, data []byte, v any) error {
	if err := dm.Unmarshal(data, v); err != nil {
		return &SerializationError{Op: "decode", Kind: kind, Err: err}
	}
	return nil
}
