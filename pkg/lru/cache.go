package lru

// maxCapacity 缓存最大条目数上限。
const maxCapacity = 1 << 24 // 16,777,216

// Config 定义缓存配置。
type Config struct {
	// Capacity 缓存最大条目数。
	// 必须大于 0 且不超过 16,777,216。
	Capacity int
}

// Cache 是固定容量的 LRU 缓存。
// 必须通过 [New] 函数创建，零值不可用（方法调用会 panic）。
// 非并发安全：所有方法都假定顺序调用。
//
// 内部由两个结构组成并始终保持一致：键到槽位的映射（O(1) 查找）
// 和按访问新旧排序的 recency 链表（头部最新，尾部最旧）。
// 任何操作返回时两者的键集合完全相同。
type Cache[K comparable, V any] struct {
	list      *recencyList[K, V]
	slots     map[K]int32
	capacity  int
	onEvicted func(key K, value V)
}

// New 创建新的 LRU 缓存。
// 如果 cfg.Capacity <= 0，返回 ErrInvalidCapacity。
// 如果 cfg.Capacity > maxCapacity (16,777,216)，返回 ErrCapacityExceedsMax。
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	if cfg.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if cfg.Capacity > maxCapacity {
		return nil, ErrCapacityExceedsMax
	}

	// 应用可选配置
	o := &options[K, V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	pre := cfg.Capacity
	if pre > maxPrealloc {
		pre = maxPrealloc
	}
	return &Cache[K, V]{
		list:      newRecencyList[K, V](cfg.Capacity),
		slots:     make(map[K]int32, pre),
		capacity:  cfg.Capacity,
		onEvicted: o.onEvicted,
	}, nil
}

// Put 写入缓存条目并将其标记为最近使用。
//
//   - 如果 key 已存在，覆盖其值并返回旧值和 replaced=true，缓存大小不变
//   - 如果 key 不存在且缓存已满，先淘汰最久未访问的条目（触发淘汰回调），
//     再写入新条目，返回零值和 replaced=false
//
// 该操作不会失败。
func (c *Cache[K, V]) Put(key K, value V) (prev V, replaced bool) {
	if slot, ok := c.slots[key]; ok {
		prev = c.list.nodes[slot].value
		c.list.nodes[slot].value = value
		c.list.moveToFront(slot)
		return prev, true
	}

	if c.list.size == c.capacity {
		c.evictBack()
	}
	slot := c.list.alloc(key, value)
	c.list.pushFront(slot)
	c.slots[key] = slot
	return prev, false
}

// Get 获取缓存值并将条目标记为最近使用。
// 如果键不存在，返回零值和 false，缓存状态不变。
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	slot, ok := c.slots[key]
	if !ok {
		return value, false
	}
	c.list.moveToFront(slot)
	return c.list.nodes[slot].value, true
}

// Peek 获取缓存值但不更新 LRU 顺序。
// 适用于检查缓存状态而不影响淘汰策略的场景。
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	slot, ok := c.slots[key]
	if !ok {
		return value, false
	}
	return c.list.nodes[slot].value, true
}

// Contains 检查键是否存在（不更新 LRU 顺序）。
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.slots[key]
	return ok
}

// Delete 删除缓存条目。
// 返回 true 表示键存在并被删除。不触发淘汰回调。
func (c *Cache[K, V]) Delete(key K) bool {
	slot, ok := c.slots[key]
	if !ok {
		return false
	}
	c.list.unlink(slot)
	c.list.release(slot)
	delete(c.slots, key)
	return true
}

// Clear 清空所有缓存条目。
// 对每个被清除的条目触发淘汰回调，按从最旧到最新的顺序。
func (c *Cache[K, V]) Clear() {
	for c.list.size > 0 {
		c.evictBack()
	}
}

// Len 返回当前缓存条目数。
func (c *Cache[K, V]) Len() int {
	return c.list.size
}

// Cap 返回构造时设定的容量。
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys 返回所有键的切片，按从最旧到最新的顺序排列。
func (c *Cache[K, V]) Keys() []K {
	return c.list.keys()
}

// evictBack 淘汰链表尾部（最久未访问）的条目。
// 先从两个结构中同时移除，再触发淘汰回调，回调看到的是已一致的状态。
func (c *Cache[K, V]) evictBack() {
	slot := c.list.back
	key := c.list.nodes[slot].key
	value := c.list.nodes[slot].value
	c.list.unlink(slot)
	c.list.release(slot)
	delete(c.slots, key)
	if c.onEvicted != nil {
		c.onEvicted(key, value)
	}
}
