package systems

import (
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

// TimerSystem 推进所有 TimerComponent
//
// 到时后置 IsReady，由使用方消费；Repeat 计时器在消费前不会重新计时
type TimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimerSystem 创建计时器系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{entityManager: em}
}

// Update 推进计时
func (s *TimerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if timer.IsReady {
			continue
		}
		timer.CurrentTime += deltaTime
		if timer.CurrentTime >= timer.TargetTime {
			timer.IsReady = true
		}
	}
}

// Consume 若计时器已完成则返回 true，Repeat 计时器同时开始下一轮
func Consume(timer *components.TimerComponent) bool {
	if !timer.IsReady {
		return false
	}
	if timer.Repeat {
		// 保留超出部分，周期不随帧率漂移
		timer.CurrentTime -= timer.TargetTime
		timer.IsReady = timer.CurrentTime >= timer.TargetTime
	}
	return true
}
