package scenes

import (
	"github.com/decker502/portfolio/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 编译期检查场景实现的可选接口
var (
	_ Scene          = (*PortfolioScene)(nil)
	_ game.Lifecycle = (*PortfolioScene)(nil)
	_ game.Resizable = (*PortfolioScene)(nil)
)
