// Package render 提供即时模式的绘制目标抽象
//
// 星空渲染器只依赖 Surface，窗口（Ebitengine）和终端（tcell）各有一个实现，
// 测试使用 Recorder 记录绘制调用。
package render

import (
	"image/color"
	"math"
)

// Surface 即时模式绘制目标
//
// 坐标单位为逻辑像素，颜色的 A 分量即不透明度
type Surface interface {
	// Size 返回逻辑尺寸
	Size() (width, height int)
	// Clear 以纯色清空
	Clear(c color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeCircle(x, y, r, width float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
}

// WithAlpha 返回替换了不透明度的颜色，alpha ∈ [0, 1]
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(math.Round(alpha * 255))
	return c
}

// ScaleAlpha 将颜色现有的不透明度乘以 factor
func ScaleAlpha(c color.NRGBA, factor float64) color.NRGBA {
	return WithAlpha(c, float64(c.A)/255*factor)
}

// RadialGradientRings 径向渐变的分层数
const RadialGradientRings = 12

// FillRadialGradient 用同心圆近似从中心 c 到边缘透明的径向渐变
//
// 由外向内绘制，每一层叠加一份 c.A/RadialGradientRings 的不透明度
func FillRadialGradient(s Surface, x, y, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	layer := ScaleAlpha(c, 1.0/RadialGradientRings)
	if layer.A == 0 {
		layer.A = 1
	}
	for i := RadialGradientRings; i >= 1; i-- {
		s.FillCircle(x, y, r*float64(i)/RadialGradientRings, layer)
	}
}
