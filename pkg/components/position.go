package components

// PositionComponent 像素坐标
type PositionComponent struct {
	X float64
	Y float64
}

// NormalizedPositionComponent 归一化坐标，Left/Top ∈ [0, 1]
//
// 尺寸变化时像素坐标由它重新推导：x = Left*width, y = Top*height
type NormalizedPositionComponent struct {
	Left float64
	Top  float64
}
