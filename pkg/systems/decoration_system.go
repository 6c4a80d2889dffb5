package systems

import (
	"math"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// DecorationSystem 按关键帧轨道求值行星和火箭的动画
type DecorationSystem struct {
	entityManager *ecs.EntityManager
	planet        config.PlanetAnimation
	rocket        config.RocketAnimation
}

// NewDecorationSystem 创建装饰物系统
func NewDecorationSystem(em *ecs.EntityManager, planet config.PlanetAnimation, rocket config.RocketAnimation) *DecorationSystem {
	return &DecorationSystem{
		entityManager: em,
		planet:        planet,
		rocket:        rocket,
	}
}

// Update 推进时间并写入求值结果
func (s *DecorationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.DecorationComponent](s.entityManager) {
		deco, _ := ecs.GetComponent[*components.DecorationComponent](s.entityManager, id)
		deco.Elapsed += deltaTime

		switch deco.Kind {
		case components.DecorationPlanet:
			s.updatePlanet(deco)
		case components.DecorationRocket:
			s.updateRocket(deco)
		}
	}
}

func (s *DecorationSystem) updatePlanet(deco *components.DecorationComponent) {
	t := deco.Elapsed
	deco.Scale = s.planet.Scale.At(t)
	if s.planet.RingPeriod > 0 {
		deco.RingAngle = 2 * math.Pi * math.Mod(t, s.planet.RingPeriod) / s.planet.RingPeriod
	}

	// 关键帧坐标换算为相对中心、按实际尺寸缩放的偏移
	unit := deco.Size / config.DecorationViewBox
	center := config.DecorationViewBox / 2
	for i, moon := range s.planet.Moons {
		deco.Moons[i][0] = (moon.X.At(t) - center) * unit
		deco.Moons[i][1] = (moon.Y.At(t) - center) * unit
	}
}

func (s *DecorationSystem) updateRocket(deco *components.DecorationComponent) {
	t := deco.Elapsed
	deco.OffsetY = s.rocket.Bob.At(t)
	deco.Rotation = s.rocket.Sway.At(t) * math.Pi / 180
	deco.Flame = s.rocket.FlameScale.At(t)
}

// FlameOpacity 火箭尾焰当前透明度
func (s *DecorationSystem) FlameOpacity(deco *components.DecorationComponent) float64 {
	return s.rocket.FlameOpacity.At(deco.Elapsed)
}
