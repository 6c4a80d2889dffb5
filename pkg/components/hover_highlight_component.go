package components

// HoverHighlightComponent 悬停高亮组件
// 卡片和社交徽章被指针悬停时的持续高亮（不闪烁）
type HoverHighlightComponent struct {
	// Intensity 高亮强度（0.0 - 1.0），悬停时渐入，离开时渐出
	Intensity float64

	// IsActive 指针当前是否在区域内
	IsActive bool
}
