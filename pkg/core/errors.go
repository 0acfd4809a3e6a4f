package core

import "fmt"

// SerializationError 表示对象的编码或解码失败：
// 损坏、截断、或者字节内容与期望的 Kind 不匹配
type SerializationError struct {
	Op   string // "encode" 或 "decode"
	Kind ObjectKind
	Err  error
}

func (e *SerializationError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("serialization: %s %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("serialization: %s: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
