package systems

import (
	"cmp"
	"slices"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// CardGridSystem 按视口宽度排布项目卡片和社交徽章
//
// 卡片顺序由 CardComponent.Index 决定，与项目输入顺序一致
type CardGridSystem struct {
	entityManager *ecs.EntityManager
}

// NewCardGridSystem 创建卡片网格系统
func NewCardGridSystem(em *ecs.EntityManager) *CardGridSystem {
	return &CardGridSystem{entityManager: em}
}

// Layout 重新计算卡片和徽章的内容坐标（窗口尺寸变化时调用）
func (s *CardGridSystem) Layout(viewportWidth, viewportHeight float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		card.Rect = config.CalculateCardRect(card.Index, viewportWidth, viewportHeight)
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
			clickable.Bounds = card.Rect
		}
	}

	badges := ecs.GetEntitiesWith2[*components.SocialLinkComponent, *components.ClickableComponent](s.entityManager)
	for i, id := range badges {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		clickable.Bounds = config.SocialLinkRect(i, len(badges), viewportWidth, viewportHeight)
	}
}

// Cards 按输入顺序返回卡片实体
func (s *CardGridSystem) Cards() []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.CardComponent](s.entityManager)
	ordered := make([]ecs.EntityID, len(ids))
	copy(ordered, ids)
	// 实体按创建顺序编号，Index 相同时保持创建顺序
	slices.SortStableFunc(ordered, func(a, b ecs.EntityID) int {
		return cmp.Compare(s.index(a), s.index(b))
	})
	return ordered
}

func (s *CardGridSystem) index(id ecs.EntityID) int {
	card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
	return card.Index
}
