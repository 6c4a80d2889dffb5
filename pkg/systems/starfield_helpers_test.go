package systems

import (
	"math/rand/v2"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

// newTestRNG 返回固定种子的随机源
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

// addStar 创建一颗测试星星
func addStar(em *ecs.EntityManager, left, top, width, height float64, star components.StarComponent) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.NormalizedPositionComponent{Left: left, Top: top})
	ecs.AddComponent(em, id, &components.PositionComponent{X: left * width, Y: top * height})
	ecs.AddComponent(em, id, &star)
	ecs.AddComponent(em, id, &components.StarAppearanceComponent{Opacity: star.Opacity, Scale: 1})
	return id
}

func starOf(em *ecs.EntityManager, id ecs.EntityID) *components.StarComponent {
	star, _ := ecs.GetComponent[*components.StarComponent](em, id)
	return star
}
