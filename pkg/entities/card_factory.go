package entities

import (
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// NewCardGrid 为每个项目创建一张卡片，顺序与输入一致
//
// 参数:
//   - em: EntityManager 实例
//   - projects: 项目列表
//   - viewportWidth, viewportHeight: 当前视口尺寸，用于初始布局
//
// 返回: 卡片实体ID，下标与项目下标一一对应
func NewCardGrid(em *ecs.EntityManager, projects []config.Project, viewportWidth, viewportHeight float64) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(projects))
	for i, p := range projects {
		ids = append(ids, NewCardEntity(em, i, p, config.CalculateCardRect(i, viewportWidth, viewportHeight)))
	}
	return ids
}

// NewCardEntity 创建一张项目卡片
//
// 有 url 的卡片是在新窗口打开该地址的外链；没有 url 的卡片只是静态容器，不可点击
func NewCardEntity(em *ecs.EntityManager, index int, project config.Project, rect config.Rect) ecs.EntityID {
	id := em.CreateEntity()

	if config.IsPlaceholderImage(project.Image) {
		project.Image = config.PlaceholderImage
	}
	project.Tags = append([]string{}, project.Tags...)

	ecs.AddComponent(em, id, &components.CardComponent{
		Index:   index,
		Project: project,
		Rect:    rect,
	})
	ecs.AddComponent(em, id, &components.RevealComponent{
		Duration: config.CardRevealDuration,
		OffsetY:  config.CardRevealOffsetY,
	})
	ecs.AddComponent(em, id, &components.HoverHighlightComponent{})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})

	if project.HasLink() {
		ecs.AddComponent(em, id, &components.ClickableComponent{
			Bounds:    rect,
			IsEnabled: true,
		})
		ecs.AddComponent(em, id, &components.LinkComponent{
			URL:    project.URL,
			Target: components.LinkTargetBlank,
		})
	}

	return id
}
