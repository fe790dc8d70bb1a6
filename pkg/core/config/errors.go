package config

import (
	"errors"
	"fmt"
)

// 配置验证相关错误
var (
	// ErrUnknownMatcher 匹配器类型未知
	ErrUnknownMatcher = errors.New("unknown matcher type")
	// ErrUnknownFormat 上下文格式未知
	ErrUnknownFormat = errors.New("unknown context format")
	// ErrUnknownStore 存储类型未知
	ErrUnknownStore = errors.New("unknown store type")
	// ErrInvalidMaxDistance 最大编辑距离无效
	ErrInvalidMaxDistance = errors.New("max distance must not be negative")
	// ErrInvalidThresholdFactor 阈值系数无效
	ErrInvalidThresholdFactor = errors.New("threshold factor must be positive")
	// ErrInvalidK1 K1 参数无效
	ErrInvalidK1 = errors.New("bm25 k1 must be positive")
	// ErrInvalidB B 参数无效
	ErrInvalidB = errors.New("bm25 b must be between 0 and 1")
	// ErrInvalidMaxItems 上下文窗口大小无效
	ErrInvalidMaxItems = errors.New("context max items must be at least 1")
	// ErrInvalidChunkSize 块大小无效
	ErrInvalidChunkSize = errors.New("invalid chunk size range")
	// ErrInvalidChunkOverlap 块重叠无效
	ErrInvalidChunkOverlap = errors.New("chunk overlap must be smaller than max chunk size")
)

// WrapError 包装错误并附加上下文
func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
