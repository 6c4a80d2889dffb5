package components

import "github.com/decker502/portfolio/pkg/config"

// ClickableComponent 标记实体可以被指针点击
// Bounds 为页面坐标系下的可点击区域（不含滚动偏移）
type ClickableComponent struct {
	Bounds    config.Rect
	IsEnabled bool // 是否可以被点击
}

// LinkComponent 外链
// 点击后在新窗口（浏览器）打开 URL
type LinkComponent struct {
	URL    string
	Target string // 固定为 "_blank"
}

// LinkTargetBlank 外链在新窗口打开
const LinkTargetBlank = "_blank"
