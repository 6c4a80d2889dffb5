package systems

import (
	"image/color"
	"math"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/render"
)

// 星空颜色
var (
	SpaceBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 0xff}
	StarColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// 光晕的相对不透明度
const (
	starGlowRadiusFactor  = 2.0
	starGlowOpacityFactor = 0.2
	pointerGlowOpacity    = 0.6
)

// StarfieldRenderSystem 以即时模式绘制星空
//
// 绘制顺序：清屏 → 星云 → 星星（含光晕）→ 流星尾迹与头部。
// 只读取实体状态，从不修改。
type StarfieldRenderSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.StarfieldConfig
}

// NewStarfieldRenderSystem 创建星空渲染系统
func NewStarfieldRenderSystem(em *ecs.EntityManager, cfg *config.StarfieldConfig) *StarfieldRenderSystem {
	return &StarfieldRenderSystem{
		entityManager: em,
		cfg:           cfg,
	}
}

// Draw 绘制一帧
func (s *StarfieldRenderSystem) Draw(surface render.Surface) {
	surface.Clear(SpaceBackground)
	s.drawNebulas(surface)
	s.drawStars(surface)
	s.drawMeteors(surface)
}

func (s *StarfieldRenderSystem) drawNebulas(surface render.Surface) {
	ids := ecs.GetEntitiesWith2[*components.NebulaComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		nebula, _ := ecs.GetComponent[*components.NebulaComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		render.FillRadialGradient(surface, pos.X, pos.Y, nebula.Radius, nebula.Color)
	}
}

func (s *StarfieldRenderSystem) drawStars(surface render.Surface) {
	ids := ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		appearance := components.StarAppearanceComponent{Opacity: star.Opacity, Scale: 1}
		if a, ok := ecs.GetComponent[*components.StarAppearanceComponent](s.entityManager, id); ok {
			appearance = *a
		}

		x, y := pos.X+star.OffsetX, pos.Y+star.OffsetY
		r := star.Radius * appearance.Scale

		// 指针光晕在最下层
		if appearance.Glow > 0 {
			render.FillRadialGradient(surface, x, y, r+appearance.Glow, render.WithAlpha(StarColor, appearance.Opacity*pointerGlowOpacity))
		}

		surface.FillCircle(x, y, r, render.WithAlpha(StarColor, appearance.Opacity))

		if star.Radius > s.cfg.GlowThreshold {
			surface.FillCircle(x, y, r*starGlowRadiusFactor, render.WithAlpha(StarColor, appearance.Opacity*starGlowOpacityFactor))
		}
	}
}

func (s *StarfieldRenderSystem) drawMeteors(surface render.Surface) {
	w, h := surface.Size()
	mc := s.cfg.Meteor
	dx, dy := math.Cos(math.Pi/4), math.Sin(math.Pi/4)

	for _, id := range ecs.GetEntitiesWith1[*components.MeteorComponent](s.entityManager) {
		meteor, _ := ecs.GetComponent[*components.MeteorComponent](s.entityManager, id)
		if meteor.State != components.MeteorActive {
			continue
		}

		hx, hy := MeteorHead(meteor, mc.Margin, float64(w), float64(h))

		// 尾迹：逐段变淡
		for i := 0; i < mc.TrailSegments; i++ {
			opacity := 1 - float64(i)/float64(mc.TrailSegments)
			x0 := hx - float64(i)*dx*mc.TrailSpacing
			y0 := hy - float64(i)*dy*mc.TrailSpacing
			x1 := hx - float64(i+1)*dx*mc.TrailSpacing
			y1 := hy - float64(i+1)*dy*mc.TrailSpacing
			surface.StrokeLine(x0, y0, x1, y1, mc.TrailWidth, render.WithAlpha(StarColor, opacity))
		}

		surface.FillCircle(hx, hy, mc.HeadRadius, StarColor)
	}
}
