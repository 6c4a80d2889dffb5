package entities

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// Starfield 一次挂载创建的全部背景实体
type Starfield struct {
	Stars   []ecs.EntityID
	Meteors []ecs.EntityID
	Nebulas []ecs.EntityID
}

// NewStarfield 按配置创建星星、空闲流星和星云
//
// 所有随机参数来自 rng，同一个种子得到同一片星空。不会失败。
func NewStarfield(em *ecs.EntityManager, rng *rand.Rand, cfg *config.StarfieldConfig, width, height float64) Starfield {
	field := Starfield{
		Stars:   make([]ecs.EntityID, 0, cfg.StarCount),
		Meteors: make([]ecs.EntityID, 0, cfg.Meteor.Count),
		Nebulas: make([]ecs.EntityID, 0, cfg.Nebula.Count),
	}

	// 星云先创建，绘制顺序在星星之下
	colors := cfg.NebulaColors()
	if len(colors) > 0 {
		for i := 0; i < cfg.Nebula.Count; i++ {
			field.Nebulas = append(field.Nebulas, NewNebulaEntity(em, rng, cfg, colors, width, height))
		}
	}

	for i := 0; i < cfg.StarCount; i++ {
		field.Stars = append(field.Stars, NewStarEntity(em, rng, cfg, width, height))
	}

	meteors := min(cfg.Meteor.Count, config.MaxMeteors)
	for i := 0; i < meteors; i++ {
		field.Meteors = append(field.Meteors, NewMeteorEntity(em))
	}

	return field
}

// NewStarEntity 创建一颗星星
// 参数:
//   - em: EntityManager 实例
//   - rng: 随机源
//   - cfg: 星空参数（预设）
//   - width, height: 当前绘制区域尺寸，用于推导像素坐标
//
// 返回: 创建的实体ID
func NewStarEntity(em *ecs.EntityManager, rng *rand.Rand, cfg *config.StarfieldConfig, width, height float64) ecs.EntityID {
	id := em.CreateEntity()

	left, top := rng.Float64(), rng.Float64()
	ecs.AddComponent(em, id, &components.NormalizedPositionComponent{Left: left, Top: top})
	ecs.AddComponent(em, id, &components.PositionComponent{X: left * width, Y: top * height})

	direction := 1.0
	if rng.Float64() <= 0.5 {
		direction = -1
	}

	star := &components.StarComponent{
		Radius:           cfg.Radius.Random(rng),
		Opacity:          cfg.Opacity.Random(rng),
		TwinkleRate:      cfg.Twinkle.Rate.Random(rng),
		TwinkleDirection: direction,
	}
	if cfg.Drift.Enabled {
		star.DriftX = cfg.Drift.Offset.Random(rng)
		star.DriftY = cfg.Drift.Offset.Random(rng)
		star.DriftDuration = cfg.Drift.Duration.Random(rng)
		star.DriftPhase = rng.Float64() * 2 * math.Pi
	}
	if cfg.Scroll.Enabled {
		star.ScrollSpeed = cfg.Scroll.Speed.Random(rng)
	}
	ecs.AddComponent(em, id, star)

	// 绘制参数初始为基准值，指针靠近时由 PointerProximitySystem 改写
	ecs.AddComponent(em, id, &components.StarAppearanceComponent{
		Opacity: star.Opacity,
		Scale:   1,
	})

	return id
}

// NewMeteorEntity 创建一颗空闲流星
func NewMeteorEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.MeteorComponent{State: components.MeteorIdle})
	return id
}

// NewNebulaEntity 创建一块星云，颜色从 colors 中随机挑选
func NewNebulaEntity(em *ecs.EntityManager, rng *rand.Rand, cfg *config.StarfieldConfig, colors []color.NRGBA, width, height float64) ecs.EntityID {
	id := em.CreateEntity()

	left, top := rng.Float64(), rng.Float64()
	ecs.AddComponent(em, id, &components.NormalizedPositionComponent{Left: left, Top: top})
	ecs.AddComponent(em, id, &components.PositionComponent{X: left * width, Y: top * height})
	ecs.AddComponent(em, id, &components.NebulaComponent{
		Radius: cfg.Nebula.Radius.Random(rng),
		Color:  colors[rng.IntN(len(colors))],
	})

	return id
}
