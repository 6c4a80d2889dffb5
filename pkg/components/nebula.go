package components

import "image/color"

// NebulaComponent 星云：一块柔和的径向渐变
// 位置使用 NormalizedPositionComponent / PositionComponent
type NebulaComponent struct {
	Radius float64
	Color  color.NRGBA
}
