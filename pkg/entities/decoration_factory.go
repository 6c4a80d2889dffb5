package entities

import (
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// NewDecorations 创建首屏的行星与火箭
func NewDecorations(em *ecs.EntityManager) []ecs.EntityID {
	return []ecs.EntityID{
		NewDecorationEntity(em, components.DecorationPlanet, config.PlanetSize),
		NewDecorationEntity(em, components.DecorationRocket, config.RocketSize),
	}
}

// NewDecorationEntity 创建一个装饰物，动画状态初始为第 0 秒
func NewDecorationEntity(em *ecs.EntityManager, kind components.DecorationKind, size float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.DecorationComponent{
		Kind:  kind,
		Size:  size,
		Scale: 1,
		Flame: 1,
	})
	return id
}
