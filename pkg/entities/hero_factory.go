package entities

import (
	"image/color"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// NewTypedLabelEntity 创建首屏的轮换打字标签
//
// 初始颜色取第一项标签的选中语言，打字从第一项的第一个字符开始
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 作品集配置（标签序列、打字速度）
//   - languages: 语言名 → 颜色
//
// 返回: 创建的实体ID
func NewTypedLabelEntity(em *ecs.EntityManager, cfg *config.PortfolioConfig, languages map[string]color.NRGBA) ecs.EntityID {
	id := em.CreateEntity()

	text := &components.TypedTextComponent{
		Labels:        append([]config.Label(nil), cfg.Labels...),
		Phase:         components.PhaseTyping,
		TypingDelay:   cfg.Hero.TypingDelay.Seconds(),
		DeletingDelay: cfg.Hero.DeletingDelay.Seconds(),
		Color:         color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	if len(text.Labels) > 0 {
		text.Selected = text.Labels[0].Select
		if c, ok := languages[text.Selected]; ok {
			text.Color = c
		}
	}
	ecs.AddComponent(em, id, text)

	return id
}
