package render

import (
	"image/color"
	"math"
)

// LerpColor 在两种颜色之间线性插值，t ∈ [0, 1]
func LerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// StrokeRect 描边矩形
func StrokeRect(s Surface, x, y, w, h, width float64, c color.NRGBA) {
	s.StrokeLine(x, y, x+w, y, width, c)
	s.StrokeLine(x+w, y, x+w, y+h, width, c)
	s.StrokeLine(x+w, y+h, x, y+h, width, c)
	s.StrokeLine(x, y+h, x, y, width, c)
}

// DashedCircle 以短弦近似的虚线圆
//
// dash、gap 为沿圆周的长度；angle 为起始角（弧度），整体随之旋转。
// 颜色沿圆周从 from 渐变到 to（与 SVG 线性渐变描边的观感接近）
func DashedCircle(s Surface, cx, cy, r, width, dash, gap, angle float64, from, to color.NRGBA) {
	if r <= 0 || dash <= 0 {
		return
	}
	circumference := 2 * math.Pi * r
	count := int(circumference / (dash + gap))
	if count < 1 {
		count = 1
	}
	step := 2 * math.Pi / float64(count)
	arc := step * dash / (dash + gap)

	for i := 0; i < count; i++ {
		a0 := angle + float64(i)*step
		a1 := a0 + arc
		c := LerpColor(from, to, float64(i)/float64(max(count-1, 1)))
		s.StrokeLine(cx+r*math.Cos(a0), cy+r*math.Sin(a0), cx+r*math.Cos(a1), cy+r*math.Sin(a1), width, c)
	}
}

// StrokeEllipse 以折线近似的旋转椭圆
func StrokeEllipse(s Surface, cx, cy, rx, ry, rotation, width float64, segments int, c color.NRGBA) {
	if segments < 3 || rx <= 0 || ry <= 0 {
		return
	}
	sin, cos := math.Sincos(rotation)
	point := func(t float64) (float64, float64) {
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		return cx + ex*cos - ey*sin, cy + ex*sin + ey*cos
	}

	x0, y0 := point(0)
	for i := 1; i <= segments; i++ {
		x1, y1 := point(2 * math.Pi * float64(i) / float64(segments))
		s.StrokeLine(x0, y0, x1, y1, width, c)
		x0, y0 = x1, y1
	}
}

// Rotate 把点 (x, y) 绕 (cx, cy) 旋转 angle 弧度
func Rotate(x, y, cx, cy, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	dx, dy := x-cx, y-cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}
