package tui

import (
	"math"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/utils"
)

// 终端里卡片描述最多显示的行数
const cardDescriptionRows = 2

// drawHero 标题、打字标签和滚动提示，随滚动淡出
func (r *Runner) drawHero() {
	hero := r.page.Hero()
	if hero.Opacity <= 0 {
		return
	}
	w, h := r.page.Size()
	scrollY := r.page.ScrollY()
	cx := w / 2

	r.surface.DrawText(cx-render.TextWidth(hero.Title)/2, config.HeroTitleY(h)-scrollY, hero.Title, render.WithAlpha(config.TextColor, hero.Opacity))

	label := hero.Label
	if hero.Caret {
		label += "|"
	}
	line := hero.Prefix + label
	left := cx - render.TextWidth(line)/2
	y := config.HeroLabelY(h) - scrollY
	r.surface.DrawText(left, y, hero.Prefix, render.WithAlpha(config.TextColor, hero.Opacity))
	r.surface.DrawText(left+render.TextWidth(hero.Prefix), y, label, render.WithAlpha(hero.LabelColor, hero.Opacity))

	if hero.HintOpacity > 0 {
		hint := hero.Hint + " ↓"
		hintY := config.HeroHintY(h) - scrollY + math.Round(hero.HintOffset/render.CellHeight)*render.CellHeight
		r.surface.DrawText(cx-render.TextWidth(hint)/2, hintY, hint, render.WithAlpha(config.MutedTextColor, hero.HintOpacity))
	}
}

// drawCards 项目区标题、卡片标题、描述和标签
func (r *Runner) drawCards() {
	_, h := r.page.Size()

	title, rect := r.page.ProjectsTitle()
	if rect.Bottom() >= 0 && rect.Y <= h {
		r.surface.DrawText(rect.X+rect.W/2-render.TextWidth(title)/2, rect.Y+rect.H/2, title, config.TextColor)
	}

	measure := func(s string) float64 { return render.TextWidth(s) }
	for _, card := range r.page.Cards() {
		f := card.Frame
		if f.Opacity <= 0 || f.Rect.Bottom() < 0 || f.Rect.Y > h {
			continue
		}
		x := f.Rect.X + render.CellWidth
		width := f.Rect.W - 2*render.CellWidth
		y := f.Rect.Y + config.CardImageHeight + render.CellHeight

		titleColor := render.LerpColor(config.CardTitleColor, config.CardTitleHoverColor, f.Hover)
		r.surface.DrawText(x, y, card.Project.Title, render.WithAlpha(titleColor, f.Opacity))
		if card.Project.HasLink() {
			r.surface.DrawText(f.Rect.X+f.Rect.W-2*render.CellWidth, y, "↗", render.WithAlpha(titleColor, f.Opacity))
		}

		lines := utils.TruncateLines(utils.WrapText(card.Project.Description, width, measure), cardDescriptionRows, width, measure)
		for _, line := range lines {
			y += render.CellHeight
			r.surface.DrawText(x, y, line, render.WithAlpha(config.CardTextColor, f.Opacity))
		}

		tags := ""
		for _, tag := range card.Project.Tags {
			next := tags + "#" + tag + " "
			if render.TextWidth(next) > width {
				break
			}
			tags = next
		}
		r.surface.DrawText(x, f.Rect.Bottom()-2*render.CellHeight, tags, render.WithAlpha(config.MutedTextColor, f.Opacity))
	}
}
