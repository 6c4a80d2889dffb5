package systems

import (
	"math/rand/v2"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// ScrollSystem 星星缓慢下移，越过底边后回到顶部并随机新的横坐标
//
// 只修改归一化坐标，像素坐标由 FieldLayoutSystem 同步
type ScrollSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	layout        *FieldLayoutSystem
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(em *ecs.EntityManager, rng *rand.Rand, layout *FieldLayoutSystem) *ScrollSystem {
	return &ScrollSystem{
		entityManager: em,
		rng:           rng,
		layout:        layout,
	}
}

// Update 按速度（每 60fps 帧的像素数）移动星星
func (s *ScrollSystem) Update(deltaTime float64) {
	_, height := s.layout.Size()
	if height <= 0 {
		return
	}
	frames := deltaTime / config.ReferenceFrameTime

	ids := ecs.GetEntitiesWith2[*components.StarComponent, *components.NormalizedPositionComponent](s.entityManager)
	for _, id := range ids {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		if star.ScrollSpeed <= 0 {
			continue
		}
		norm, _ := ecs.GetComponent[*components.NormalizedPositionComponent](s.entityManager, id)
		norm.Top += star.ScrollSpeed * frames / height
		if norm.Top > 1 {
			norm.Top = 0
			norm.Left = s.rng.Float64()
		}
	}
}
