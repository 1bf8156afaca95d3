package lru

import "errors"

var (
	// ErrInvalidCapacity 表示缓存容量配置无效。
	ErrInvalidCapacity = errors.New("lru: capacity must be greater than 0")

	// ErrCapacityExceedsMax 表示缓存容量超过上限 (16,777,216)。
	ErrCapacityExceedsMax = errors.New("lru: capacity must not exceed 16777216")
)
