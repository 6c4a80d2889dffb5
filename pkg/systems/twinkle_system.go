package systems

import (
	"math/rand/v2"

	"github.com/decker502/portfolio/internal/particle"
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// maxWalkStepsPerUpdate 单次 Update 最多补几个节拍，长时间卡顿后不追帧
const maxWalkStepsPerUpdate = 10

// TwinkleSystem 让星星透明度在预设范围内振荡
//
// 两种方式：
//   - walk: 每个节拍 opacity += (2u-1) * step * rate，u ∈ [0,1)
//   - pulse: 每帧（按 60fps 归一化）增减 rate，碰到边界反向
//
// 两种方式都把结果限制在 bounds 内
type TwinkleSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	cfg           config.TwinkleConfig
	bounds        particle.Range

	// walk 模式的节拍累加器（秒）
	accumulator float64
}

// NewTwinkleSystem 创建闪烁系统
func NewTwinkleSystem(em *ecs.EntityManager, rng *rand.Rand, cfg config.TwinkleConfig, bounds particle.Range) *TwinkleSystem {
	return &TwinkleSystem{
		entityManager: em,
		rng:           rng,
		cfg:           cfg,
		bounds:        bounds,
	}
}

// Update 推进闪烁
func (s *TwinkleSystem) Update(deltaTime float64) {
	switch s.cfg.Mode {
	case config.TwinklePulse:
		s.pulse(deltaTime)
	default:
		s.walk(deltaTime)
	}
}

func (s *TwinkleSystem) walk(deltaTime float64) {
	interval := s.cfg.Interval.Seconds()
	if interval <= 0 {
		return
	}
	s.accumulator += deltaTime

	steps := 0
	for s.accumulator >= interval {
		s.accumulator -= interval
		if steps < maxWalkStepsPerUpdate {
			s.walkStep()
		}
		steps++
	}
}

// walkStep 执行一个随机游走节拍
func (s *TwinkleSystem) walkStep() {
	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager) {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		u := s.rng.Float64()
		star.Opacity = s.bounds.Clamp(star.Opacity + (2*u-1)*s.cfg.Step*star.TwinkleRate)
	}
}

func (s *TwinkleSystem) pulse(deltaTime float64) {
	frames := deltaTime / config.ReferenceFrameTime
	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager) {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		if star.TwinkleDirection == 0 {
			star.TwinkleDirection = 1
		}
		star.Opacity += star.TwinkleDirection * star.TwinkleRate * frames

		if star.Opacity >= s.bounds.Max {
			star.Opacity = s.bounds.Max
			star.TwinkleDirection = -1
		} else if star.Opacity <= s.bounds.Min {
			star.Opacity = s.bounds.Min
			star.TwinkleDirection = 1
		}
	}
}
