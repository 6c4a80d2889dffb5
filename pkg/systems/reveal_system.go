package systems

import (
	"math"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/utils"
)

// RevealSystem 卡片进入视口时播放一次出现动画
//
// 视口底部向内收缩 CardRevealBottomMargin，卡片至少 CardRevealAmount 的高度
// 落入该区域才触发；触发后不再回退
type RevealSystem struct {
	entityManager *ecs.EntityManager
}

// NewRevealSystem 创建出现动画系统
func NewRevealSystem(em *ecs.EntityManager) *RevealSystem {
	return &RevealSystem{entityManager: em}
}

// Update 检查可见性并推进动画
// scrollY: 页面滚动距离；viewportHeight: 视口高度
func (s *RevealSystem) Update(deltaTime, scrollY, viewportHeight float64) {
	ids := ecs.GetEntitiesWith2[*components.CardComponent, *components.RevealComponent](s.entityManager)
	for _, id := range ids {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		reveal, _ := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)

		if reveal.Revealed {
			reveal.Elapsed = math.Min(reveal.Elapsed+deltaTime, reveal.Duration)
			continue
		}
		if VisibleFraction(card.Rect, scrollY, viewportHeight) >= config.CardRevealAmount {
			reveal.Revealed = true
		}
	}
}

// VisibleFraction 返回卡片落在收缩后视口内的高度比例
func VisibleFraction(rect config.Rect, scrollY, viewportHeight float64) float64 {
	if rect.H <= 0 {
		return 0
	}
	top := rect.Y - scrollY
	bottom := top + rect.H
	visible := math.Min(bottom, viewportHeight-config.CardRevealBottomMargin) - math.Max(top, 0)
	if visible <= 0 {
		return 0
	}
	return visible / rect.H
}

// RevealVisual 返回卡片当前的透明度和纵向偏移
func RevealVisual(reveal *components.RevealComponent) (opacity, offsetY float64) {
	eased := utils.EaseOutCubic(reveal.Progress())
	return eased, utils.Lerp(reveal.OffsetY, 0, eased)
}
