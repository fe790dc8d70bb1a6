// Package errors 定义框架的通用错误类型
package errors

import (
	"errors"
	"fmt"
)

// 通用错误
var (
	// ErrInvalidConfig 配置无效
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidInput 输入无效
	ErrInvalidInput = errors.New("invalid input")
)

// 匹配器配置相关错误
//
// 配置错误属于调用方错误，在构造时快速失败，而不是静默钳制。
var (
	// ErrNegativeMaxDistance 最大编辑距离不能为负数
	ErrNegativeMaxDistance = errors.New("max distance must not be negative")
	// ErrInvalidThresholdFactor 阈值因子必须为正数
	ErrInvalidThresholdFactor = errors.New("threshold factor must be positive")
	// ErrInvalidK1 BM25 k1 参数必须为正数
	ErrInvalidK1 = errors.New("bm25 k1 must be positive")
	// ErrInvalidB BM25 b 参数必须在 [0, 1] 区间内
	ErrInvalidB = errors.New("bm25 b must be between 0 and 1")
	// ErrInvalidMaxItems 上下文窗口容量必须为正数
	ErrInvalidMaxItems = errors.New("max context items must be positive")
	// ErrNilMatcher 被包装的匹配器不能为空
	ErrNilMatcher = errors.New("wrapped matcher must not be nil")
)

// 知识库相关错误
var (
	// ErrNoPath 未指定知识库文件路径
	ErrNoPath = errors.New("no knowledge base path provided")
	// ErrIndexOutOfRange 示例索引越界
	ErrIndexOutOfRange = errors.New("example index out of range")
)

// 导入器相关错误
var (
	// ErrInvalidChunkSize 块大小范围无效
	ErrInvalidChunkSize = errors.New("min chunk size must be positive and not exceed max chunk size")
	// ErrInvalidChunkOverlap 块重叠长度必须小于最大块长度
	ErrInvalidChunkOverlap = errors.New("chunk overlap must be non-negative and smaller than max chunk size")
)

// WrapError 包装错误并添加上下文信息
func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// IsConfigError 判断错误是否为配置错误
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNegativeMaxDistance) ||
		errors.Is(err, ErrInvalidThresholdFactor) ||
		errors.Is(err, ErrInvalidK1) ||
		errors.Is(err, ErrInvalidB) ||
		errors.Is(err, ErrInvalidMaxItems) ||
		errors.Is(err, ErrInvalidChunkSize) ||
		errors.Is(err, ErrInvalidChunkOverlap) ||
		errors.Is(err, ErrInvalidConfig)
}
