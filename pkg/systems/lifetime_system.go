package systems

import (
	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/ecs"
)

// LifetimeSystem 管理特效实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进一帧，过期实体标记删除
// 实际删除发生在调用方执行 RemoveMarkedEntities 时
func (s *LifetimeSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.Age++
		if lifetime.Age >= lifetime.MaxFrames {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
