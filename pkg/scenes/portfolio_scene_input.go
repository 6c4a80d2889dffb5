package scenes

import (
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// KeyScrollSpeed 按住方向键时每秒滚动的距离
const KeyScrollSpeed = config.ScrollStep * 12

// PageScrollRatio 翻页键滚动的视口比例
const PageScrollRatio = 0.9

// handleKeys 键盘：滚动、指针增亮开关（G）、切换星空预设（P）
// F11 全屏由 App 处理
func (s *PortfolioScene) handleKeys(deltaTime float64) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.page.ScrollBy(KeyScrollSpeed * deltaTime)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.page.ScrollBy(-KeyScrollSpeed * deltaTime)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.page.ScrollBy(float64(s.height) * PageScrollRatio)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		s.page.ScrollBy(-float64(s.height) * PageScrollRatio)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		s.page.ScrollTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		s.page.ScrollTo(s.page.MaxScroll())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.TogglePointerGlow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.NextPreset()
	}
}

// handlePointer 滚轮和拖动滚动页面，指针位置同时驱动星空增亮和页面悬停
func (s *PortfolioScene) handlePointer() {
	s.page.ScrollBy(utils.WheelDelta() * config.ScrollStep)
	s.page.ScrollBy(s.drag.Update())

	s.pointer = utils.ReadPointer(s.width, s.height)
	// 拖动页面不算点击
	if s.drag.IsDragging() {
		s.pointer.Clicked = false
	}

	if s.pointer.Present {
		s.starfield.SetPointer(s.pointer.X, s.pointer.Y)
	} else {
		s.starfield.ClearPointer()
	}
}

// TogglePointerGlow 开关指针增亮并保存设置
func (s *PortfolioScene) TogglePointerGlow() {
	enabled := !s.starfield.PointerGlow()
	s.starfield.SetPointerGlow(enabled)
	s.settingsManager.SetPointerGlow(enabled)
	s.saveSettings()
	s.log.Info("pointer glow toggled", zap.Bool("enabled", enabled))
}

// NextPreset 切换到下一个星空预设并保存设置
//
// 星空先卸载，下一次绘制时用新预设重新挂载；
// 切回配置文件中的预设时沿用文件里的调参
func (s *PortfolioScene) NextPreset() {
	name := s.settingsManager.NextPreset(s.starfield.Config().Preset)
	preset, err := s.page.Config().StarfieldPreset(name)
	if err != nil {
		s.log.Warn("unknown preset", zap.String("preset", name), zap.Error(err))
		return
	}
	glow := s.starfield.PointerGlow()
	s.starfield.SetConfig(preset)
	s.starfield.SetPointerGlow(glow)
	s.saveSettings()
	s.log.Info("starfield preset switched", zap.String("preset", name))
}

func (s *PortfolioScene) saveSettings() {
	if err := s.settingsManager.Save(); err != nil {
		s.log.Warn("failed to save settings", zap.Error(err))
	}
}
