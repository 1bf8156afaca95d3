package lru

// nilSlot 表示空链或无效槽位。
const nilSlot int32 = -1

// maxPrealloc 构造时预分配槽位数的上限，避免超大 Capacity 直接预占内存。
const maxPrealloc = 1 << 16

// node 是 recency 链表中的一个槽位。prev/next 保存 arena 槽位下标而非指针。
// 空闲槽位通过 next 串入 free list，此时 prev 无意义。
type node[K comparable, V any] struct {
	key   K
	value V
	prev  int32
	next  int32
}

// recencyList 是以下标寻址的双向链表（arena 实现）。
// front 为最近使用端，back 为最久未用端。
type recencyList[K comparable, V any] struct {
	nodes []node[K, V]
	front int32
	back  int32
	free  int32
	size  int
}

func newRecencyList[K comparable, V any](capacity int) *recencyList[K, V] {
	pre := capacity
	if pre > maxPrealloc {
		pre = maxPrealloc
	}
	return &recencyList[K, V]{
		nodes: make([]node[K, V], 0, pre),
		front: nilSlot,
		back:  nilSlot,
		free:  nilSlot,
	}
}

// alloc 取得一个空闲槽位并写入键值，优先复用 free list。
// 返回的槽位尚未链入链表。
func (l *recencyList[K, V]) alloc(key K, value V) int32 {
	if l.free != nilSlot {
		slot := l.free
		l.free = l.nodes[slot].next
		l.nodes[slot] = node[K, V]{key: key, value: value, prev: nilSlot, next: nilSlot}
		return slot
	}
	l.nodes = append(l.nodes, node[K, V]{key: key, value: value, prev: nilSlot, next: nilSlot})
	return int32(len(l.nodes) - 1)
}

// release 将槽位归还 free list，并清零键值以便 GC 回收所引用的内存。
// 槽位必须已经 unlink。
func (l *recencyList[K, V]) release(slot int32) {
	var zero node[K, V]
	l.nodes[slot] = zero
	l.nodes[slot].prev = nilSlot
	l.nodes[slot].next = l.free
	l.free = slot
}

// pushFront 将已分配但未链入的槽位挂到链表头部。
func (l *recencyList[K, V]) pushFront(slot int32) {
	l.nodes[slot].prev = nilSlot
	l.nodes[slot].next = l.front
	if l.front != nilSlot {
		l.nodes[l.front].prev = slot
	}
	l.front = slot
	if l.back == nilSlot {
		l.back = slot
	}
	l.size++
}

// unlink 将槽位从链表中摘除，保持其余节点的相对顺序不变。
// 槽位本身的键值不动，调用方决定后续是重新链入还是 release。
func (l *recencyList[K, V]) unlink(slot int32) {
	prev, next := l.nodes[slot].prev, l.nodes[slot].next
	if prev != nilSlot {
		l.nodes[prev].next = next
	} else {
		l.front = next
	}
	if next != nilSlot {
		l.nodes[next].prev = prev
	} else {
		l.back = prev
	}
	l.nodes[slot].prev = nilSlot
	l.nodes[slot].next = nilSlot
	l.size--
}

// moveToFront 将链表中的槽位提升为最近使用。
func (l *recencyList[K, V]) moveToFront(slot int32) {
	if l.front == slot {
		return
	}
	l.unlink(slot)
	l.pushFront(slot)
}

// keys 返回从最旧到最新排列的键切片。
func (l *recencyList[K, V]) keys() []K {
	out := make([]K, 0, l.size)
	for slot := l.back; slot != nilSlot; slot = l.nodes[slot].prev {
		out = append(out, l.nodes[slot].key)
	}
	return out
}
