package game

import (
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
	log          *zap.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		log: logging.Named("SceneManager"),
	}
}

// SwitchTo changes the active scene to the provided scene.
//
// 旧场景收到 OnExit，新场景收到 OnEnter；已知窗口尺寸时立即同步给新场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}

	sm.currentScene = scene
	if scene == nil {
		return
	}

	if lc, ok := scene.(Lifecycle); ok {
		lc.OnEnter()
	}
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
	sm.log.Debug("scene switched", zap.String("scene", sceneName(scene)))
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Close 卸载当前场景（窗口关闭时调用）
func (sm *SceneManager) Close() {
	sm.SwitchTo(nil)
}

// Resize 记录窗口尺寸并转发给当前场景
// 尺寸未变化时不转发
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func sceneName(scene Scene) string {
	if s, ok := scene.(interface{ Name() string }); ok {
		return s.Name()
	}
	return "unnamed"
}
