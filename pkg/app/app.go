// Package app 提供作品集应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/decker502/portfolio/pkg/scenes"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// StorageName 设置存储使用的应用名
const StorageName = "portfolio"

// WindowTitle 窗口标题
const WindowTitle = "Portfolio"

// Config 定义应用启动配置
type Config struct {
	// Content 已校验的作品集配置
	Content *config.PortfolioConfig
	// Images 项目图片所在的文件系统（内嵌 data 目录或用户配置所在目录）
	Images fs.FS
	// Updates 配置热重载通道，可为 nil
	Updates <-chan *config.PortfolioConfig

	// Preset 非空时覆盖已保存的星空预设
	Preset string
	// Seed 非 0 时固定星空随机种子并写入设置
	Seed uint64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	log             *zap.Logger

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 设置存储打开失败不是致命错误，降级为仅内存设置
func NewApp(cfg Config) (*App, error) {
	log := logging.Named("App")
	if cfg.Content == nil {
		return nil, errors.New("portfolio content is required")
	}

	storage, err := utils.OpenStorage(StorageName)
	if err != nil {
		log.Warn("settings storage unavailable, settings will not persist", zap.Error(err))
		storage = nil
	}
	settingsManager := game.NewSettingsManager(storage)

	// 命令行指定的预设和种子写入设置，下次启动沿用
	if cfg.Preset != "" {
		if err := settingsManager.SetPreset(cfg.Preset); err != nil {
			return nil, fmt.Errorf("invalid preset: %w", err)
		}
	}
	if cfg.Seed != 0 {
		settingsManager.SetSeed(cfg.Seed)
	}
	if cfg.Preset != "" || cfg.Seed != 0 {
		if err := settingsManager.Save(); err != nil {
			log.Warn("failed to save settings", zap.Error(err))
		}
	}

	scene := scenes.NewPortfolioScene(scenes.PortfolioSceneOptions{
		Content:   cfg.Content,
		Resources: game.NewResourceManager(cfg.Images),
		Settings:  settingsManager,
		Updates:   cfg.Updates,
		Seed:      cfg.Seed,
	})

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	log.Info("app initialized",
		zap.String("preset", settingsManager.GetSettings().Preset),
		zap.Int("projects", len(cfg.Content.Projects)))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		log:             log,
	}, nil
}

// ConfigureWindow 设置窗口尺寸、标题和全屏状态（移动端不需要）
func (a *App) ConfigureWindow() {
	if utils.IsMobile() {
		return
	}
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowSizeLimits(config.MinWindowWidth, config.MinWindowHeight, -1, -1)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.settingsManager.GetSettings().Fullscreen)
}

// Run 运行主循环，窗口关闭后卸载场景
func (a *App) Run() error {
	defer a.Close()
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

// Close 卸载当前场景，停止所有计时器
func (a *App) Close() {
	a.sceneManager.Close()
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 让窗口管理器先处理退出全屏
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		a.log.Warn("failed to save settings", zap.Error(err))
	}
	a.log.Debug("fullscreen toggled", zap.Bool("fullscreen", fullscreen))
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑尺寸跟随窗口尺寸，页面按实际宽度重新排布
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.WindowWidth, config.WindowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
