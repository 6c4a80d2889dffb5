package systems

import (
	"math"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

// DriftSystem 星星围绕基准点做周期漂浮
//
// 每个轴: offset = drift * sin(2π t / duration + phase)
type DriftSystem struct {
	entityManager *ecs.EntityManager
	elapsed       float64
}

// NewDriftSystem 创建漂浮系统
func NewDriftSystem(em *ecs.EntityManager) *DriftSystem {
	return &DriftSystem{entityManager: em}
}

// Update 推进时间并写入每颗星星的当前偏移
func (s *DriftSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager) {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		star.OffsetX, star.OffsetY = DriftOffset(star, s.elapsed)
	}
}

// DriftOffset 计算某一时刻的漂浮偏移，周期为 0 时不漂浮
func DriftOffset(star *components.StarComponent, t float64) (float64, float64) {
	if star.DriftDuration <= 0 {
		return 0, 0
	}
	wave := math.Sin(2*math.Pi*t/star.DriftDuration + star.DriftPhase)
	return star.DriftX * wave, star.DriftY * wave
}
