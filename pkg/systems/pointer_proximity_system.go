package systems

import (
	"math"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// Proximity 计算指针对一颗星星的增亮效果
//
// d = |star - pointer|，d < radius 时 f = 1 - d/radius：
//   - opacity = min(1, base + boost*f)
//   - glow = maxBlur * f
//   - scale = 1 + scaleBoost*f
//
// 否则返回基准透明度、无光晕、原始大小
func Proximity(starX, starY, baseOpacity, pointerX, pointerY float64, cfg config.PointerConfig) components.StarAppearanceComponent {
	baseline := components.StarAppearanceComponent{Opacity: baseOpacity, Scale: 1}
	if cfg.InfluenceRadius <= 0 {
		return baseline
	}

	d := math.Hypot(starX-pointerX, starY-pointerY)
	if d >= cfg.InfluenceRadius {
		return baseline
	}

	f := 1 - d/cfg.InfluenceRadius
	return components.StarAppearanceComponent{
		Opacity: math.Min(1, baseOpacity+cfg.OpacityBoost*f),
		Glow:    cfg.MaxGlowBlur * f,
		Scale:   1 + cfg.ScaleBoost*f,
	}
}

// PointerProximitySystem 每帧把指针邻近效果写入 StarAppearanceComponent
//
// 只读 StarComponent，不改变星星的基准透明度
type PointerProximitySystem struct {
	entityManager *ecs.EntityManager
	cfg           config.PointerConfig

	pointerX float64
	pointerY float64
	present  bool
}

// NewPointerProximitySystem 创建指针邻近系统
func NewPointerProximitySystem(em *ecs.EntityManager, cfg config.PointerConfig) *PointerProximitySystem {
	return &PointerProximitySystem{
		entityManager: em,
		cfg:           cfg,
	}
}

// SetPointer 记录指针位置（绘制区域像素坐标）
func (s *PointerProximitySystem) SetPointer(x, y float64) {
	s.pointerX, s.pointerY = x, y
	s.present = true
}

// ClearPointer 指针离开绘制区域
func (s *PointerProximitySystem) ClearPointer() {
	s.present = false
}

// Pointer 返回当前指针位置和是否存在
func (s *PointerProximitySystem) Pointer() (float64, float64, bool) {
	return s.pointerX, s.pointerY, s.present
}

// SetEnabled 开关指针增亮
func (s *PointerProximitySystem) SetEnabled(enabled bool) {
	s.cfg.Enabled = enabled
}

// Enabled 是否启用指针增亮
func (s *PointerProximitySystem) Enabled() bool {
	return s.cfg.Enabled
}

// Update 计算每颗星星的绘制参数
func (s *PointerProximitySystem) Update() {
	ids := ecs.GetEntitiesWith3[*components.StarComponent, *components.PositionComponent, *components.StarAppearanceComponent](s.entityManager)
	for _, id := range ids {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		appearance, _ := ecs.GetComponent[*components.StarAppearanceComponent](s.entityManager, id)

		if !s.cfg.Enabled || !s.present {
			*appearance = components.StarAppearanceComponent{Opacity: star.Opacity, Scale: 1}
			continue
		}
		*appearance = Proximity(pos.X+star.OffsetX, pos.Y+star.OffsetY, star.Opacity, s.pointerX, s.pointerY, s.cfg)
	}
}
