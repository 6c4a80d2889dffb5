package components

import "github.com/decker502/portfolio/pkg/config"

// CardComponent 项目卡片
//
// Rect 为页面坐标（未减去滚动偏移），由 CardGridSystem 按列数布局
type CardComponent struct {
	Index   int
	Project config.Project
	Rect    config.Rect
}

// RevealComponent 进入视口时的一次性出现动画
//
// 透明度 0→1，纵向偏移 OffsetY→0
type RevealComponent struct {
	Revealed bool
	Elapsed  float64
	Duration float64
	OffsetY  float64
}

// Progress 缓动前的进度 [0, 1]
func (r *RevealComponent) Progress() float64 {
	if !r.Revealed {
		return 0
	}
	if r.Duration <= 0 || r.Elapsed >= r.Duration {
		return 1
	}
	return r.Elapsed / r.Duration
}
