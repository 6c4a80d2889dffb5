package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a top-level view (e.g., the portfolio page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// Draw 不修改场景状态
	Draw(screen *ebiten.Image)
}

// Lifecycle 是一个可选接口，用于场景的挂载与卸载
//
// 场景在被切换进来时调用 OnEnter，被切换走或窗口关闭时调用 OnExit。
// OnExit 之后场景持有的计时器、后台 goroutine 都必须停止。
type Lifecycle interface {
	OnEnter()
	OnExit()
}

// Resizable 是一个可选接口，窗口尺寸变化时被调用
type Resizable interface {
	Resize(width, height int)
}
