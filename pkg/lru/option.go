package lru

// Option 定义缓存可选配置函数类型。
type Option[K comparable, V any] func(*options[K, V])

// options 内部可选配置。
type options[K comparable, V any] struct {
	onEvicted func(key K, value V)
}

// WithOnEvicted 设置条目被淘汰时的回调函数。
//
// 回调在 Put（容量压力淘汰）和 Clear 内同步执行。调用方必须遵守以下约束：
//   - 严禁在回调中调用 Cache 自身的任何方法（Get/Put/Delete/Len 等）
//   - 应避免耗时操作，以免拖慢触发淘汰的那次调用
//
// Delete 是调用方主动移除，不触发该回调。
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvicted = fn
	}
}
