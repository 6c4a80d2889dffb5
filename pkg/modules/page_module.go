package modules

import (
	"image/color"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/entities"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/systems"
	"github.com/decker502/portfolio/pkg/utils"
	"go.uber.org/zap"
)

// HintFadeTime 滚动提示出现时的淡入时长（秒）
const HintFadeTime = 0.5

// HeroView 首屏一帧的文字状态，由场景负责绘制文字
type HeroView struct {
	Title  string
	Prefix string

	// Label 打字标签当前显示的部分
	Label      string
	LabelColor color.NRGBA
	Caret      bool

	Opacity float64
	Scale   float64

	Hint        string
	HintOpacity float64
	// HintOffset 提示箭头的弹跳偏移
	HintOffset float64
}

// CardView 一张卡片的屏幕状态与项目数据
type CardView struct {
	ID      ecs.EntityID
	Project config.Project
	Frame   systems.CardFrame
}

// PageModule 作品集页面（首屏、社交徽章、装饰物、项目卡片）
//
// 与窗口后端无关：图形部分通过 render.Surface 绘制，
// 文字和图片通过 Hero()/Cards() 交给场景绘制。
// 指针坐标为屏幕坐标，内部按滚动距离换算为内容坐标
type PageModule struct {
	cfg    *config.PortfolioConfig
	opener utils.URLOpener
	log    *zap.Logger

	entityManager *ecs.EntityManager

	typedTextSystem  *systems.TypedTextSystem
	cardGridSystem   *systems.CardGridSystem
	revealSystem     *systems.RevealSystem
	linkSystem       *systems.LinkInteractionSystem
	socialSystem     *systems.SocialLinkSystem
	decorationSystem *systems.DecorationSystem
	renderSystem     *systems.PageRenderSystem

	label ecs.EntityID
	cards []ecs.EntityID

	width, height float64
	scrollY       float64

	// elapsed 页面显示以来的时间，驱动滚动提示
	elapsed float64
}

// NewPageModule 创建页面模块
//
// 参数:
//   - cfg: 已校验的作品集配置
//   - opener: 打开外链的方式；nil 时点击只记录日志
func NewPageModule(cfg *config.PortfolioConfig, opener utils.URLOpener) *PageModule {
	m := &PageModule{
		opener:        opener,
		log:           logging.Named("Page"),
		entityManager: ecs.NewEntityManager(),
	}
	m.SetContent(cfg)
	return m
}

// SetContent 替换页面内容并重建所有实体（配置热重载时调用）
//
// 滚动位置保留，但会限制在新内容的范围内
func (m *PageModule) SetContent(cfg *config.PortfolioConfig) {
	m.cfg = cfg
	m.entityManager.Clear()

	languages := cfg.LanguageColors()
	m.typedTextSystem = systems.NewTypedTextSystem(m.entityManager, languages)
	m.cardGridSystem = systems.NewCardGridSystem(m.entityManager)
	m.revealSystem = systems.NewRevealSystem(m.entityManager)
	m.linkSystem = systems.NewLinkInteractionSystem(m.entityManager, m.opener)
	m.socialSystem = systems.NewSocialLinkSystem(m.entityManager)
	m.decorationSystem = systems.NewDecorationSystem(m.entityManager, config.DefaultPlanetAnimation(), config.DefaultRocketAnimation())
	m.renderSystem = systems.NewPageRenderSystem(m.entityManager, m.decorationSystem)

	m.label = entities.NewTypedLabelEntity(m.entityManager, cfg, languages)
	entities.NewSocialLinks(m.entityManager, cfg.Social, m.width, m.height)
	entities.NewDecorations(m.entityManager)
	entities.NewCardGrid(m.entityManager, cfg.Projects, m.width, m.height)
	m.cards = m.cardGridSystem.Cards()

	m.decorationSystem.Update(0)
	m.ScrollTo(m.scrollY)

	m.log.Info("page content loaded",
		zap.Int("labels", len(cfg.Labels)),
		zap.Int("projects", len(cfg.Projects)))
}

// Config 返回当前内容
func (m *PageModule) Config() *config.PortfolioConfig {
	return m.cfg
}

// Resize 视口尺寸变化：重新排布卡片和徽章，并重新限制滚动距离
func (m *PageModule) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if m.width == float64(width) && m.height == float64(height) {
		return
	}
	m.width, m.height = float64(width), float64(height)
	m.cardGridSystem.Layout(m.width, m.height)
	m.ScrollTo(m.scrollY)
	m.log.Debug("page resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("columns", config.GridColumnCount(m.width)))
}

// Size 返回当前视口尺寸
func (m *PageModule) Size() (float64, float64) {
	return m.width, m.height
}

// MaxScroll 最大滚动距离
func (m *PageModule) MaxScroll() float64 {
	if m.height <= 0 {
		return 0
	}
	return config.MaxScroll(m.width, m.height, len(m.cards))
}

// ScrollTo 滚动到指定位置，超出范围时截断
func (m *PageModule) ScrollTo(y float64) {
	m.scrollY = max(0, min(y, m.MaxScroll()))
}

// ScrollBy 相对滚动（正数向下）
func (m *PageModule) ScrollBy(dy float64) {
	m.ScrollTo(m.scrollY + dy)
}

// ScrollY 当前滚动距离
func (m *PageModule) ScrollY() float64 {
	return m.scrollY
}

// heroFade 首屏当前的透明度和缩放
func (m *PageModule) heroFade() (float64, float64) {
	return config.HeroFade(config.HeroProgress(m.scrollY, m.height))
}

// Update 推进一帧
//
// 顺序：打字标签 → 徽章旋转 → 装饰物 → 卡片出现 → 悬停与点击。
// 返回本帧点击打开的链接（没有则为空）
func (m *PageModule) Update(deltaTime float64, pointer utils.PointerState) string {
	m.elapsed += deltaTime

	m.typedTextSystem.Update(deltaTime)
	m.socialSystem.Update(deltaTime)
	m.decorationSystem.Update(deltaTime)
	m.revealSystem.Update(deltaTime, m.scrollY, m.height)

	// 首屏完全淡出后徽章不再响应点击
	heroOpacity, _ := m.heroFade()
	for _, id := range ecs.GetEntitiesWith2[*components.SocialLinkComponent, *components.ClickableComponent](m.entityManager) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](m.entityManager, id)
		clickable.IsEnabled = heroOpacity > 0
	}

	return m.linkSystem.Update(deltaTime, pointer, m.scrollY)
}

// Draw 绘制装饰物、徽章和卡片的图形部分，不修改任何状态
func (m *PageModule) Draw(surface render.Surface) {
	if surface == nil {
		return
	}
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		w, h := surface.Size()
		width, height = float64(w), float64(h)
	}
	opacity, scale := m.heroFade()
	m.renderSystem.Draw(surface, systems.PageView{
		Width:       width,
		Height:      height,
		ScrollY:     m.scrollY,
		HeroOpacity: opacity,
		HeroScale:   scale,
	})
}

// Hero 返回首屏文字状态
func (m *PageModule) Hero() HeroView {
	opacity, scale := m.heroFade()
	view := HeroView{
		Title:      m.cfg.Hero.Title,
		Prefix:     m.cfg.Hero.Prefix,
		LabelColor: systems.DefaultLabelColor,
		Opacity:    opacity,
		Scale:      scale,
		Hint:       m.cfg.Hero.ScrollHint,
		HintOffset: systems.HintArrowOffset(m.elapsed),
	}
	if text, ok := ecs.GetComponent[*components.TypedTextComponent](m.entityManager, m.label); ok {
		view.Label = text.Current()
		view.LabelColor = text.Color
		view.Caret = text.CaretVisible()
	}
	if m.elapsed > config.HeroHintDelay {
		view.HintOpacity = utils.Clamp01((m.elapsed-config.HeroHintDelay)/HintFadeTime) * opacity
	}
	return view
}

// ProjectsTitle 项目区标题及其屏幕矩形
func (m *PageModule) ProjectsTitle() (string, config.Rect) {
	r := config.ProjectsTitleRect(m.width, m.height)
	r.Y -= m.scrollY
	return m.cfg.ProjectsTitle, r
}

// Cards 按输入顺序返回卡片的屏幕状态
func (m *PageModule) Cards() []CardView {
	views := make([]CardView, 0, len(m.cards))
	for _, id := range m.cards {
		card, ok := ecs.GetComponent[*components.CardComponent](m.entityManager, id)
		if !ok {
			continue
		}
		frame, _ := m.renderSystem.CardFrame(id, m.scrollY)
		views = append(views, CardView{ID: id, Project: card.Project, Frame: frame})
	}
	return views
}

// SelectedLanguage 最近一次触发选中的语言
func (m *PageModule) SelectedLanguage() string {
	if text, ok := ecs.GetComponent[*components.TypedTextComponent](m.entityManager, m.label); ok {
		return text.Selected
	}
	return ""
}

// EntityManager 返回页面实体管理器
func (m *PageModule) EntityManager() *ecs.EntityManager {
	return m.entityManager
}
