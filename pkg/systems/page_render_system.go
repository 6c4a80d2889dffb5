package systems

import (
	"image/color"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/utils"
)

// PageView 一帧绘制所需的页面状态
type PageView struct {
	Width, Height float64
	ScrollY       float64

	// HeroOpacity, HeroScale 首屏随滚动的淡出和缩小
	HeroOpacity float64
	HeroScale   float64
}

// CardFrame 卡片在屏幕上的最终位置和透明度
type CardFrame struct {
	Rect    config.Rect
	Opacity float64
	Hover   float64
}

// PageRenderSystem 绘制首屏装饰物、社交徽章和卡片的图形部分
//
// 文字和图片由场景另行绘制；本系统只读取组件，不修改状态
type PageRenderSystem struct {
	entityManager    *ecs.EntityManager
	decorationSystem *DecorationSystem
}

// NewPageRenderSystem 创建页面渲染系统
// decorationSystem 用于读取火箭尾焰透明度
func NewPageRenderSystem(em *ecs.EntityManager, decorationSystem *DecorationSystem) *PageRenderSystem {
	return &PageRenderSystem{
		entityManager:    em,
		decorationSystem: decorationSystem,
	}
}

// Draw 依次绘制装饰物、社交徽章、卡片
func (s *PageRenderSystem) Draw(surface render.Surface, view PageView) {
	if view.HeroOpacity > 0 {
		if config.DecorationsVisible(view.Width) {
			s.drawDecorations(surface, view)
		}
		s.drawSocialLinks(surface, view)
	}
	s.drawCards(surface, view)
}

// CardFrame 计算卡片的屏幕矩形：减去滚动、叠加出现动画的纵向偏移
func (s *PageRenderSystem) CardFrame(id ecs.EntityID, scrollY float64) (CardFrame, bool) {
	card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
	if !ok {
		return CardFrame{}, false
	}
	frame := CardFrame{Rect: card.Rect, Opacity: 1}
	frame.Rect.Y -= scrollY

	if reveal, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, id); ok {
		opacity, offset := RevealVisual(reveal)
		frame.Opacity = opacity
		frame.Rect.Y += offset
	}
	if hover, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok {
		frame.Hover = hover.Intensity
	}
	return frame, true
}

func (s *PageRenderSystem) drawCards(surface render.Surface, view PageView) {
	for _, id := range ecs.GetEntitiesWith1[*components.CardComponent](s.entityManager) {
		frame, _ := s.CardFrame(id, view.ScrollY)
		r := frame.Rect
		if frame.Opacity <= 0 || r.Bottom() < 0 || r.Y > view.Height {
			continue
		}

		surface.FillRect(r.X, r.Y, r.W, r.H, render.ScaleAlpha(config.CardBackgroundColor, frame.Opacity))

		// 图片区域：占位色块，悬停时叠加一层紫色渐变
		surface.FillRect(r.X, r.Y, r.W, config.CardImageHeight, render.ScaleAlpha(config.PlaceholderColor, frame.Opacity))
		if frame.Hover > 0 {
			overlay := render.WithAlpha(config.PlanetColorDark, 0.35*frame.Hover*frame.Opacity)
			surface.FillRect(r.X, r.Y, r.W, config.CardImageHeight, overlay)
		}

		border := render.LerpColor(config.CardBorderColor, config.CardBorderHoverColor, frame.Hover)
		render.StrokeRect(surface, r.X, r.Y, r.W, r.H, 1, render.ScaleAlpha(border, frame.Opacity))
	}
}

func (s *PageRenderSystem) drawSocialLinks(surface render.Surface, view PageView) {
	ids := ecs.GetEntitiesWith2[*components.SocialLinkComponent, *components.ClickableComponent](s.entityManager)
	for _, id := range ids {
		link, _ := ecs.GetComponent[*components.SocialLinkComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)

		scale := 1.0
		if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			scale = sc.ScaleX
		}
		hover := 0.0
		if h, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok {
			hover = h.Intensity
		}

		b := clickable.Bounds
		cx, cy := b.X+b.W/2, b.Y+b.H/2-view.ScrollY
		colors := config.GitHubRingColors
		if link.Name == components.SocialLinkedIn {
			colors = config.LinkedInRingColors
		}
		from := render.ScaleAlpha(colors[0], view.HeroOpacity)
		to := render.ScaleAlpha(colors[1], view.HeroOpacity)

		if hover > 0 {
			render.FillRadialGradient(surface, cx, cy, link.Radius*scale*1.6, render.WithAlpha(colors[1], 0.5*hover*view.HeroOpacity))
		}
		surface.FillCircle(cx, cy, (b.W/2-4)*scale, render.ScaleAlpha(config.CardTagColor, view.HeroOpacity))
		render.DashedCircle(surface, cx, cy, link.Radius*scale, 2, 4, 4, link.RingAngle, from, to)
	}
}

func (s *PageRenderSystem) drawDecorations(surface render.Surface, view PageView) {
	for _, id := range ecs.GetEntitiesWith1[*components.DecorationComponent](s.entityManager) {
		deco, _ := ecs.GetComponent[*components.DecorationComponent](s.entityManager, id)
		switch deco.Kind {
		case components.DecorationPlanet:
			s.drawPlanet(surface, deco, config.PlanetRect(view.Width, view.Height), view)
		case components.DecorationRocket:
			s.drawRocket(surface, deco, config.RocketRect(view.Width, view.Height), view)
		}
	}
}

func (s *PageRenderSystem) drawPlanet(surface render.Surface, deco *components.DecorationComponent, r config.Rect, view PageView) {
	alpha := view.HeroOpacity
	cx, cy := r.X+r.W/2, r.Y+r.H/2-view.ScrollY
	unit := r.W / config.DecorationViewBox
	radius := 50 * unit * deco.Scale

	// 由暗到亮的同心圆近似球体的线性渐变
	const layers = 8
	for i := 0; i < layers; i++ {
		t := float64(i) / (layers - 1)
		c := render.LerpColor(config.PlanetColorDark, config.PlanetColorLight, t)
		lr := radius * (1 - 0.6*t)
		surface.FillCircle(cx-radius*0.25*t, cy-radius*0.25*t, lr, render.ScaleAlpha(c, alpha))
	}

	ring := render.WithAlpha(config.PlanetColorLight, 0.6*alpha)
	render.StrokeEllipse(surface, cx, cy, radius*1.6, radius*0.35, deco.RingAngle, 3*unit, 48, ring)

	moonColors := [2]color.NRGBA{config.MoonColor1, config.MoonColor2}
	moonRadii := [2]float64{10, 6}
	for i, moon := range deco.Moons {
		surface.FillCircle(cx+moon[0], cy+moon[1], moonRadii[i]*unit, render.ScaleAlpha(moonColors[i], alpha))
	}
}

func (s *PageRenderSystem) drawRocket(surface render.Surface, deco *components.DecorationComponent, r config.Rect, view PageView) {
	alpha := view.HeroOpacity
	cx, cy := r.X+r.W/2, r.Y+r.H/2+deco.OffsetY-view.ScrollY
	unit := r.W / config.RocketSize
	angle := deco.Rotation

	point := func(dx, dy float64) (float64, float64) {
		return render.Rotate(cx+dx*unit, cy+dy*unit, cx, cy, angle)
	}

	// 尾焰
	flameOpacity := 1.0
	if s.decorationSystem != nil {
		flameOpacity = s.decorationSystem.FlameOpacity(deco)
	}
	fx0, fy0 := point(0, 30)
	fx1, fy1 := point(0, 30+24*deco.Flame)
	surface.StrokeLine(fx0, fy0, fx1, fy1, 12*unit, render.WithAlpha(config.RocketFlameColor, flameOpacity*alpha))

	// 尾翼
	for _, side := range []float64{-1, 1} {
		x0, y0 := point(side*10, 14)
		x1, y1 := point(side*22, 32)
		surface.StrokeLine(x0, y0, x1, y1, 6*unit, render.ScaleAlpha(config.RocketFinColor, alpha))
	}

	// 箭身与箭头
	bx0, by0 := point(0, -24)
	bx1, by1 := point(0, 28)
	surface.StrokeLine(bx0, by0, bx1, by1, 20*unit, render.ScaleAlpha(config.RocketBodyColor, alpha))
	nx, ny := point(0, -30)
	surface.FillCircle(nx, ny, 10*unit, render.ScaleAlpha(config.RocketFinColor, alpha))

	wx, wy := point(0, -6)
	surface.FillCircle(wx, wy, 6*unit, render.ScaleAlpha(config.RocketWindowColor, alpha))
}

// HintArrowOffset 滚动提示箭头的弹跳偏移（像素）
func HintArrowOffset(elapsed float64) float64 {
	const amplitude, period = 8.0, 1.5
	return amplitude * utils.EaseInOutSine(utils.PingPong(elapsed, period))
}
