package storage

import "errors"

// ErrNotFound 表示某个命名对象或 Hash 寻址对象在 base path 下不存在
// 它是 IO 错误里 "文件缺失" 的特化，调用方用 errors.Is 判定
var ErrNotFound = errors.New("object not found")
