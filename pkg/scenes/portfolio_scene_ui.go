package scenes

import (
	"image"
	"image/color"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/modules"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/systems"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 卡片标签的尺寸
const (
	TagHeight   = 24.0
	TagPaddingX = 8.0
	TagGap      = 8.0
)

// HintArrowSize 滚动提示箭头的半宽
const HintArrowSize = 8.0

// caret 打字光标
const caret = "|"

// textStyle 一段文字的字体、颜色和对齐方式
type textStyle struct {
	face   *text.GoTextFace
	color  color.NRGBA
	align  text.Align
	valign text.Align
}

// draw 以 (x, y) 为锚点绘制文字，scale 以锚点为中心缩放
func (ts textStyle) draw(dst *ebiten.Image, str string, x, y, scale, alpha float64) {
	if str == "" || ts.face == nil || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = ts.align
	op.SecondaryAlign = ts.valign
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(ts.color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, str, ts.face, op)
}

// viewport 返回当前视口尺寸，尚未收到 Resize 时取屏幕尺寸
func (s *PortfolioScene) viewport(screen *ebiten.Image) (float64, float64) {
	if s.width > 0 && s.height > 0 {
		return float64(s.width), float64(s.height)
	}
	b := screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// drawHero 首屏标题、打字标签和滚动提示
//
// 首屏随页面滚动，并以首屏中心为轴整体缩放、淡出
func (s *PortfolioScene) drawHero(screen *ebiten.Image, surface render.Surface) {
	hero := s.page.Hero()
	if hero.Opacity <= 0 {
		return
	}
	w, h := s.viewport(screen)
	scrollY := s.page.ScrollY()
	cx, cy := w/2, h/2-scrollY

	// heroPoint 把首屏内的点按缩放映射到屏幕
	heroPoint := func(x, y float64) (float64, float64) {
		return cx + (x-cx)*hero.Scale, cy + (y-cy)*hero.Scale
	}

	title := textStyle{face: s.fonts.title, color: config.TextColor, align: text.AlignCenter, valign: text.AlignCenter}
	x, y := heroPoint(cx, config.HeroTitleY(h)-scrollY)
	title.draw(screen, hero.Title, x, y, hero.Scale, hero.Opacity)

	// 前缀 + 标签 + 光标作为一行居中
	measure := utils.FaceMeasure(s.fonts.label)
	prefixWidth := measure(hero.Prefix)
	labelWidth := measure(hero.Label)
	lineWidth := prefixWidth + labelWidth + measure(caret)
	left := cx - lineWidth/2
	lineY := config.HeroLabelY(h) - scrollY

	plain := textStyle{face: s.fonts.label, color: config.TextColor, align: text.AlignStart, valign: text.AlignCenter}
	x, y = heroPoint(left, lineY)
	plain.draw(screen, hero.Prefix, x, y, hero.Scale, hero.Opacity)

	label := plain
	label.color = hero.LabelColor
	x, y = heroPoint(left+prefixWidth, lineY)
	label.draw(screen, hero.Label, x, y, hero.Scale, hero.Opacity)
	if hero.Caret {
		x, y = heroPoint(left+prefixWidth+labelWidth, lineY)
		label.draw(screen, caret, x, y, hero.Scale, hero.Opacity)
	}

	if hero.HintOpacity > 0 {
		hintY := config.HeroHintY(h) - scrollY
		hint := textStyle{face: s.fonts.hint, color: config.MutedTextColor, align: text.AlignCenter, valign: text.AlignEnd}
		hint.draw(screen, hero.Hint, cx, hintY-HintArrowSize*2, 1, hero.HintOpacity)

		arrowY := hintY + hero.HintOffset
		arrowColor := render.WithAlpha(config.MutedTextColor, hero.HintOpacity)
		surface.StrokeLine(cx-HintArrowSize, arrowY-HintArrowSize/2, cx, arrowY+HintArrowSize/2, 2, arrowColor)
		surface.StrokeLine(cx, arrowY+HintArrowSize/2, cx+HintArrowSize, arrowY-HintArrowSize/2, 2, arrowColor)
	}
}

// drawProjects 项目区标题和卡片的文字、图片
func (s *PortfolioScene) drawProjects(screen *ebiten.Image, surface render.Surface) {
	_, h := s.viewport(screen)

	title, r := s.page.ProjectsTitle()
	if r.Bottom() >= 0 && r.Y <= h {
		style := textStyle{face: s.fonts.section, color: config.TextColor, align: text.AlignCenter, valign: text.AlignCenter}
		style.draw(screen, title, r.X+r.W/2, r.Y+r.H/2, 1, 1)
	}

	for _, card := range s.page.Cards() {
		f := card.Frame
		if f.Opacity <= 0 || f.Rect.Bottom() < 0 || f.Rect.Y > h {
			continue
		}
		s.drawCardImage(screen, card)
		s.drawCardText(screen, surface, card)
	}
}

// drawCardImage 项目图片按 cover 方式铺满图片区域，悬停时轻微放大
// 没有图片或加载失败时保留页面渲染的占位色块
func (s *PortfolioScene) drawCardImage(screen *ebiten.Image, card modules.CardView) {
	img := s.resourceManager.ProjectImage(card.Project.Image)
	if img == nil {
		return
	}
	r := card.Frame.Rect
	area := image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+config.CardImageHeight))
	clip, ok := screen.SubImage(area).(*ebiten.Image)
	if !ok {
		return
	}

	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 {
		return
	}
	scale := max(r.W/iw, config.CardImageHeight/ih) * (1 + systems.CardHoverScale*card.Frame.Hover)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.X+r.W/2, r.Y+config.CardImageHeight/2)
	op.ColorScale.ScaleAlpha(float32(card.Frame.Opacity))
	op.Filter = ebiten.FilterLinear
	clip.DrawImage(img, op)
}

// drawCardText 标题、描述（最多 CardDescriptionRows 行）和标签
func (s *PortfolioScene) drawCardText(screen *ebiten.Image, surface render.Surface, card modules.CardView) {
	r := card.Frame.Rect
	alpha := card.Frame.Opacity
	contentWidth := r.W - 2*config.CardPadding
	x := r.X + config.CardPadding
	y := r.Y + config.CardImageHeight + config.CardPadding

	title := textStyle{
		face:   s.fonts.cardTitle,
		color:  render.LerpColor(config.CardTitleColor, config.CardTitleHoverColor, card.Frame.Hover),
		align:  text.AlignStart,
		valign: text.AlignStart,
	}
	title.draw(screen, card.Project.Title, x, y, 1, alpha)
	y += CardTitleFontSize * 1.4

	body := textStyle{face: s.fonts.cardText, color: config.CardTextColor, align: text.AlignStart, valign: text.AlignStart}
	measure := utils.FaceMeasure(s.fonts.cardText)
	lines := utils.TruncateLines(utils.WrapText(card.Project.Description, contentWidth, measure), CardDescriptionRows, contentWidth, measure)
	for _, line := range lines {
		body.draw(screen, line, x, y, 1, alpha)
		y += CardTextFontSize * 1.5
	}

	tag := textStyle{face: s.fonts.tag, color: config.MutedTextColor, align: text.AlignStart, valign: text.AlignCenter}
	tagMeasure := utils.FaceMeasure(s.fonts.tag)
	tagX, tagY := x, r.Bottom()-config.CardPadding-TagHeight
	for _, name := range card.Project.Tags {
		width := tagMeasure(name) + 2*TagPaddingX
		if tagX+width > r.X+r.W-config.CardPadding {
			break
		}
		surface.FillRect(tagX, tagY, width, TagHeight, render.ScaleAlpha(config.CardTagColor, alpha))
		tag.draw(screen, name, tagX+TagPaddingX, tagY+TagHeight/2, 1, alpha)
		tagX += width + TagGap
	}
}
