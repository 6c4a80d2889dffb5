package scenes

import (
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/decker502/portfolio/pkg/modules"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

// 字号
const (
	HeroTitleFontSize   = 56.0
	HeroLabelFontSize   = 32.0
	HintFontSize        = 16.0
	SectionFontSize     = 36.0
	CardTitleFontSize   = 22.0
	CardTextFontSize    = 15.0
	CardTagFontSize     = 12.0
	CardDescriptionRows = 3
)

// BackgroundColor 页面底色
var BackgroundColor = config.MustParseHexColor("#000000")

// PortfolioSceneOptions 场景依赖
type PortfolioSceneOptions struct {
	Content   *config.PortfolioConfig
	Resources *game.ResourceManager
	Settings  *game.SettingsManager

	// Opener 打开外链；nil 时使用系统浏览器
	Opener utils.URLOpener

	// Updates 配置热重载通道（可选）
	Updates <-chan *config.PortfolioConfig

	// Seed 非 0 时覆盖设置中的随机种子
	Seed uint64
}

// PortfolioScene 作品集页面场景
//
// 组合星空背景和页面模块：
//   - 星空固定在视口上，在第一次绘制时挂载到屏幕上（屏幕尺寸此时才可知）
//   - 页面随滚动移动，图形部分走 render.Surface，文字和图片在这里用 text/v2 绘制
//
// 配置热重载通过通道送达，只在 Update 中应用
type PortfolioScene struct {
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	updates         <-chan *config.PortfolioConfig

	starfield *modules.StarfieldModule
	page      *modules.PageModule

	drag    utils.DragScroller
	pointer utils.PointerState

	width, height int

	fonts sceneFonts
	log   *zap.Logger
}

// sceneFonts 场景用到的字体
type sceneFonts struct {
	title, label, hint, section *text.GoTextFace
	cardTitle, cardText, tag    *text.GoTextFace
}

// NewPortfolioScene 创建作品集场景
//
// 星空预设：设置中保存过的预设优先，没有保存过时沿用配置文件（含其中的调参）
func NewPortfolioScene(opts PortfolioSceneOptions) *PortfolioScene {
	log := logging.Named("PortfolioScene")

	opener := opts.Opener
	if opener == nil {
		opener = utils.NewBrowserOpener()
	}
	settings := opts.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	resources := opts.Resources
	if resources == nil {
		resources = game.NewResourceManager(nil)
	}

	current := settings.GetSettings()
	starCfg, err := opts.Content.StarfieldPreset(current.Preset)
	if err != nil {
		log.Warn("unknown preset in settings, using config", zap.String("preset", current.Preset))
		starCfg = opts.Content.Starfield
	}
	seed := opts.Seed
	if seed == 0 {
		seed = current.Seed
	}

	starfield := modules.NewStarfieldModule(starCfg, seed)
	starfield.SetPointerGlow(current.PointerGlow)

	s := &PortfolioScene{
		resourceManager: resources,
		settingsManager: settings,
		updates:         opts.Updates,
		starfield:       starfield,
		page:            modules.NewPageModule(opts.Content, opener),
		log:             log,
	}
	s.fonts = sceneFonts{
		title:     resources.DefaultFace(HeroTitleFontSize),
		label:     resources.DefaultFace(HeroLabelFontSize),
		hint:      resources.DefaultFace(HintFontSize),
		section:   resources.DefaultFace(SectionFontSize),
		cardTitle: resources.DefaultFace(CardTitleFontSize),
		cardText:  resources.DefaultFace(CardTextFontSize),
		tag:       resources.DefaultFace(CardTagFontSize),
	}
	return s
}

// OnEnter 场景进入：星空在下一次绘制时挂载
func (s *PortfolioScene) OnEnter() {
	s.log.Debug("enter")
}

// OnExit 场景退出：卸载星空，释放所有实体和计时器
func (s *PortfolioScene) OnExit() {
	s.starfield.Unmount()
	s.log.Debug("exit")
}

// Resize 窗口尺寸变化
func (s *PortfolioScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.starfield.Resize(width, height)
	s.page.Resize(width, height)
}

// Update 每帧：应用热重载 → 处理输入 → 推进背景 → 推进页面
func (s *PortfolioScene) Update(deltaTime float64) {
	s.applyUpdates()
	s.handleKeys(deltaTime)
	s.handlePointer()

	s.starfield.Update(deltaTime)
	s.page.Update(deltaTime, s.pointer)
}

// applyUpdates 取出最新的热重载配置（非阻塞）
func (s *PortfolioScene) applyUpdates() {
	if s.updates == nil {
		return
	}
	select {
	case cfg, ok := <-s.updates:
		if !ok {
			s.updates = nil
			return
		}
		s.page.SetContent(cfg)
		// 图片文件可能随配置一起被替换
		s.resourceManager.ClearImageCache()
		// 设置里没有固定预设，或固定的正是文件里的预设时，跟随文件调参
		if name := s.settingsManager.GetSettings().Preset; name == "" || name == cfg.Starfield.Preset {
			glow := s.starfield.PointerGlow()
			s.starfield.SetConfig(cfg.Starfield)
			s.starfield.SetPointerGlow(glow)
		}
		s.log.Info("portfolio reloaded", zap.Int("projects", len(cfg.Projects)))
	default:
	}
}

// Draw 绘制背景、页面图形、文字和图片
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	surface := render.NewEbitenSurface(screen)

	// 挂载失败（尺寸为 0）时本帧只画底色
	if !s.starfield.IsMounted() {
		s.starfield.Mount(surface)
	}
	if s.starfield.IsMounted() {
		s.starfield.Draw(surface)
	} else {
		surface.Clear(BackgroundColor)
	}

	s.page.Draw(surface)
	s.drawHero(screen, surface)
	s.drawProjects(screen, surface)
}

// Page 返回页面模块
func (s *PortfolioScene) Page() *modules.PageModule {
	return s.page
}

// Starfield 返回星空模块
func (s *PortfolioScene) Starfield() *modules.StarfieldModule {
	return s.starfield
}
