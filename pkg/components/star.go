package components

// StarComponent 一颗背景星星
//
// Radius 创建后不变；Opacity 每帧变化但始终在预设范围内
type StarComponent struct {
	Radius  float64
	Opacity float64

	// TwinkleRate 振荡速率
	TwinkleRate float64
	// TwinkleDirection pulse 模式的当前方向（+1 变亮，-1 变暗）
	TwinkleDirection float64

	// DriftX, DriftY 每个轴的最大漂浮偏移（像素）
	DriftX float64
	DriftY float64
	// DriftDuration 漂浮周期（秒）
	DriftDuration float64
	// DriftPhase 初始相位（弧度）
	DriftPhase float64
	// OffsetX, OffsetY 当前漂浮偏移，由 DriftSystem 写入
	OffsetX float64
	OffsetY float64

	// ScrollSpeed 每帧（60fps）下移的像素数
	ScrollSpeed float64
}

// StarAppearanceComponent 指针邻近计算得出的绘制参数
//
// 只影响绘制，不改变 StarComponent 中的基准值
type StarAppearanceComponent struct {
	Opacity float64
	Glow    float64 // 光晕半径（像素），0 表示无光晕
	Scale   float64
}
