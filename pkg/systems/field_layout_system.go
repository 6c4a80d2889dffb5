package systems

import (
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

// FieldLayoutSystem 负责从归一化坐标推导像素坐标
//
// 尺寸变化只改变像素坐标，实体身份和其他属性不变
type FieldLayoutSystem struct {
	entityManager *ecs.EntityManager
	width         float64
	height        float64
}

// NewFieldLayoutSystem 创建布局系统
func NewFieldLayoutSystem(em *ecs.EntityManager, width, height float64) *FieldLayoutSystem {
	return &FieldLayoutSystem{
		entityManager: em,
		width:         width,
		height:        height,
	}
}

// Size 返回当前绘制区域尺寸
func (s *FieldLayoutSystem) Size() (float64, float64) {
	return s.width, s.height
}

// Resize 按新尺寸重算所有实体的像素坐标：x = left*width, y = top*height
func (s *FieldLayoutSystem) Resize(width, height float64) {
	s.width, s.height = width, height
	s.Update()
}

// Update 把归一化坐标同步到像素坐标
func (s *FieldLayoutSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.NormalizedPositionComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		norm, _ := ecs.GetComponent[*components.NormalizedPositionComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X = norm.Left * s.width
		pos.Y = norm.Top * s.height
	}
}
