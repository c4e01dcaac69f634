package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理特效实体和组件
//
// 游戏核心状态（车辆、障碍物、阶段）不放在这里，它们由 game.RunState 持有；
// EntityManager 只承载寿命短、数量多的视觉实体（火花、火焰拖尾、等离子电弧）。
type EntityManager struct {
	nextID uint64
	// EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID，在帧末统一清理
	pendingDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除（不立即删除，避免遍历中修改）
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pendingDestroy = append(em.pendingDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.pendingDestroy {
		delete(em.components, id)
	}
	em.pendingDestroy = em.pendingDestroy[:0]
}

// Clear 立即删除全部实体（重开一局时使用），ID 计数继续递增
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]any)
	em.pendingDestroy = em.pendingDestroy[:0]
}

// Count 返回当前存活的实体数量
func (em *EntityManager) Count() int {
	return len(em.components)
}

// Exists 检查实体是否存在
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

func (em *EntityManager) addComponent(id EntityID, component any) {
	if compMap, ok := em.components[id]; ok {
		compMap[reflect.TypeOf(component)] = component
	}
}

func (em *EntityManager) getComponent(id EntityID, t reflect.Type) (any, bool) {
	compMap, ok := em.components[id]
	if !ok {
		return nil, false
	}
	comp, found := compMap[t]
	return comp, found
}

// entitiesWith 查询拥有全部指定组件类型的实体，按ID升序返回
// 固定顺序保证渲染层叠稳定（map 遍历顺序随机）
func (em *EntityManager) entitiesWith(types ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, t := range types {
			if _, found := compMap[t]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件（同类型组件会被覆盖）
//
// 组件一般以指针形式存储，查询时的类型参数需与之一致：
//
//	ecs.AddComponent(em, id, &components.LifetimeComponent{...})
//	lt, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.addComponent(id, component)
}

// GetComponent 获取实体的特定类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.getComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := em.getComponent(id, typeOf[T]())
	return ok
}

// RemoveComponent 从实体移除特定类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, ok := em.components[id]; ok {
		delete(compMap, typeOf[T]())
	}
}

// GetEntitiesWith1 查询拥有组件 A 的实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[A]())
}

// GetEntitiesWith2 查询同时拥有组件 A、B 的实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[A](), typeOf[B]())
}

// GetEntitiesWith3 查询同时拥有组件 A、B、C 的实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[A](), typeOf[B](), typeOf[C]())
}
