package store

import "errors"

// Store errors
var (
	// ErrNotFound 未找到
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput 无效输入
	ErrInvalidInput = errors.New("invalid input")
	// ErrConnectionFailed 连接失败
	ErrConnectionFailed = errors.New("connection failed")
	// ErrPathRequired 该后端需要路径配置
	ErrPathRequired = errors.New("store path is required")
)
