// Package lru 提供固定容量的泛型 LRU 缓存实现。
//
// lru 以哈希映射加下标寻址的双向链表（arena）组合实现经典 LRU 淘汰策略，
// 核心数据结构自包含、零运行时依赖，适合作为进程内的顺序访问缓存使用。
//
// # 核心特性
//
//   - 泛型支持：支持任意 comparable 的键类型和任意值类型
//   - LRU 淘汰：缓存满时自动淘汰最久未访问的条目
//   - O(1) 操作：Get/Put/Delete 均摊 O(1)
//   - 淘汰回调：可选 WithOnEvicted，感知被淘汰的键值对
//
// # 配置选项
//
// Config 结构体提供必需的配置：
//   - Capacity：缓存最大条目数，必须 > 0 且 ≤ 16,777,216
//
// 可选配置通过 Option 函数提供：
//   - WithOnEvicted：设置条目被淘汰时的回调函数
//
// # 性能特性
//
//   - Get/Put/Peek/Contains/Delete 均摊 O(1) 时间复杂度
//   - Keys() 会分配新切片，复杂度 O(n)
//   - 稳态（缓存已满）下 Put 复用被淘汰条目的槽位，不再产生节点分配
//
// # 设计决策
//
// recency 链表不使用 container/list，而是将节点存放在可增长的切片中，
// prev/next 保存槽位下标，-1 表示空链；空闲槽位通过 next 串成 free list。
// move-to-front 与尾部淘汰均为 O(1)，节点之间没有指针引用，
// 条目离开缓存后其槽位立即可复用。
//
// Put 对已存在的键返回旧值（replaced=true），淘汰事件通过 WithOnEvicted
// 回调暴露给调用方；两者分别覆盖"需要旧值"与"需要清理被淘汰值"的场景。
//
// # 已知限制
//
//   - 非并发安全：所有方法都假定顺序调用，并发访问需调用方在外层自行加锁
//   - 无 TTL：条目只因容量压力或显式 Delete/Clear 离开缓存
//   - 容量固定：构造后不可调整
//   - Capacity 是条目数量，不是内存大小
//
// # 注意事项
//
//   - 淘汰回调在 Put/Clear 内同步执行，回调中严禁调用 Cache 自身方法
//   - Delete 是调用方主动移除，不会触发淘汰回调
//   - Clear 会对每个被清除的条目触发淘汰回调，按从最旧到最新的顺序
//   - Keys() 返回的键按从最旧到最新排列
package lru
