package systems

import (
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/decker502/portfolio/pkg/utils"
	"go.uber.org/zap"
)

// 悬停效果参数
const (
	// HoverFadeTime 高亮从 0 到 1 的秒数
	HoverFadeTime = 0.3
	// CardHoverScale 卡片图片悬停放大
	CardHoverScale = 0.05
	// BadgeHoverScale 社交徽章悬停放大
	BadgeHoverScale = 0.1
)

// LinkInteractionSystem 处理卡片和徽章的悬停高亮与点击
//
// 点击有外链的实体时通过 URLOpener 在新窗口打开；没有外链的卡片只有悬停效果
type LinkInteractionSystem struct {
	entityManager *ecs.EntityManager
	opener        utils.URLOpener
	log           *zap.Logger
}

// NewLinkInteractionSystem 创建交互系统
func NewLinkInteractionSystem(em *ecs.EntityManager, opener utils.URLOpener) *LinkInteractionSystem {
	return &LinkInteractionSystem{
		entityManager: em,
		opener:        opener,
		log:           logging.Named("LinkInteraction"),
	}
}

// Update 更新悬停状态并处理点击
//
// 参数：
//   - pointer: 本帧指针状态（屏幕坐标）
//   - scrollY: 页面滚动距离，用于把屏幕坐标换算为内容坐标
//
// 返回：本帧打开的链接（没有则为空）
func (s *LinkInteractionSystem) Update(deltaTime float64, pointer utils.PointerState, scrollY float64) string {
	px, py := pointer.X, pointer.Y+scrollY
	step := deltaTime / HoverFadeTime
	opened := ""

	for _, id := range ecs.GetEntitiesWith1[*components.HoverHighlightComponent](s.entityManager) {
		hover, _ := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)
		bounds, ok := s.bounds(id)
		if !ok {
			continue
		}

		hover.IsActive = pointer.Present && bounds.Contains(px, py)
		target := 0.0
		if hover.IsActive {
			target = 1
		}
		hover.Intensity = utils.Approach(hover.Intensity, target, step)

		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			factor := BadgeHoverScale
			if ecs.HasComponent[*components.CardComponent](s.entityManager, id) {
				factor = CardHoverScale
			}
			scale.ScaleX = 1 + factor*hover.Intensity
			scale.ScaleY = scale.ScaleX
		}

		if pointer.Clicked && hover.IsActive && opened == "" {
			if url, ok := s.click(id); ok {
				opened = url
			}
		}
	}
	return opened
}

// bounds 返回实体的内容坐标区域：卡片取布局矩形，其余取可点击区域
func (s *LinkInteractionSystem) bounds(id ecs.EntityID) (config.Rect, bool) {
	if card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, id); ok {
		return card.Rect, true
	}
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		return clickable.Bounds, true
	}
	return config.Rect{}, false
}

func (s *LinkInteractionSystem) click(id ecs.EntityID) (string, bool) {
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
	if !ok || !clickable.IsEnabled {
		return "", false
	}
	link, ok := ecs.GetComponent[*components.LinkComponent](s.entityManager, id)
	if !ok || s.opener == nil {
		return "", false
	}
	if err := s.opener.OpenURL(link.URL); err != nil {
		s.log.Warn("failed to open link", zap.String("url", link.URL), zap.Error(err))
		return "", false
	}
	s.log.Info("link opened", zap.String("url", link.URL), zap.String("target", link.Target))
	return link.URL, true
}
