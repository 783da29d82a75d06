// Package ecs 提供特效层使用的轻量实体-组件存储
//
// 每个特效上下文持有一个独立的 EntityManager，粒子和拖尾点都是其中的实体。
// 实体 ID 单调递增，查询结果按 ID 升序返回，因此迭代顺序即创建顺序。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 组件按类型分桶存储：查询时只需遍历最小的那个桶，
// 粒子数量很多而单例状态实体很少时，查询代价与匹配的实体数成正比。
type EntityManager struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	// 组件类型 -> 实体 -> 组件实例
	stores map[reflect.Type]map[EntityID]interface{}
	// 待删除的实体，RemoveMarkedEntities 时统一清理
	pending []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[reflect.Type]map[EntityID]interface{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// DestroyEntity 标记实体待删除，组件在 RemoveMarkedEntities 之前仍可访问
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pending = append(em.pending, id)
}

// AddComponent 为实体添加组件，同类型组件会被替换；实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if _, ok := em.alive[id]; !ok {
		return
	}
	t := reflect.TypeOf(component)
	store, ok := em.stores[t]
	if !ok {
		store = make(map[EntityID]interface{})
		em.stores[t] = store
	}
	store[id] = component
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if store, ok := em.stores[componentType]; ok {
		delete(store, id)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	comp, ok := em.stores[componentType][id]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.stores[componentType][id]
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 返回本次实际删除的实体数量（重复标记只计一次）
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range em.pending {
		if _, ok := em.alive[id]; !ok {
			continue
		}
		delete(em.alive, id)
		for _, store := range em.stores {
			delete(store, id)
		}
		removed++
	}
	em.pending = em.pending[:0]
	return removed
}

// EntityCount 返回当前存活的实体数量（包含已标记但尚未清理的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 返回的 ID 按升序排列（即创建顺序）；不传类型时返回空
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	if len(componentTypes) == 0 {
		return nil
	}

	// 从最小的桶出发过滤
	smallest := -1
	for i, ct := range componentTypes {
		store, ok := em.stores[ct]
		if !ok || len(store) == 0 {
			return nil
		}
		if smallest < 0 || len(store) < len(em.stores[componentTypes[smallest]]) {
			smallest = i
		}
	}

	result := make([]EntityID, 0, len(em.stores[componentTypes[smallest]]))
	for id := range em.stores[componentTypes[smallest]] {
		hasAll := true
		for i, ct := range componentTypes {
			if i == smallest {
				continue
			}
			if _, found := em.stores[ct][id]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	// map 迭代顺序随机，排序后保证渲染与淘汰顺序稳定
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
