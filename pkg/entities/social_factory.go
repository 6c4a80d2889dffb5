package entities

import (
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// NewSocialLinks 创建 LinkedIn 与 GitHub 徽章
// 未配置地址的徽章不创建；LinkedIn 的虚线环顺时针旋转，GitHub 逆时针
func NewSocialLinks(em *ecs.EntityManager, links config.SocialLinks, viewportWidth, viewportHeight float64) []ecs.EntityID {
	type badge struct {
		name      string
		url       string
		direction float64
	}
	badges := make([]badge, 0, 2)
	if links.LinkedIn != "" {
		badges = append(badges, badge{components.SocialLinkedIn, links.LinkedIn, 1})
	}
	if links.GitHub != "" {
		badges = append(badges, badge{components.SocialGitHub, links.GitHub, -1})
	}

	ids := make([]ecs.EntityID, 0, len(badges))
	for i, b := range badges {
		rect := config.SocialLinkRect(i, len(badges), viewportWidth, viewportHeight)

		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.SocialLinkComponent{
			Name:       b.name,
			Radius:     config.SocialRingRadius,
			RingPeriod: config.SocialRingPeriod,
			Direction:  b.direction,
		})
		ecs.AddComponent(em, id, &components.ClickableComponent{Bounds: rect, IsEnabled: true})
		ecs.AddComponent(em, id, &components.LinkComponent{URL: b.url, Target: components.LinkTargetBlank})
		ecs.AddComponent(em, id, &components.HoverHighlightComponent{})
		ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
		ids = append(ids, id)
	}
	return ids
}
