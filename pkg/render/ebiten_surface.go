package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 把 Surface 调用转成 vector 包的抗锯齿绘制
type EbitenSurface struct {
	dst *ebiten.Image
}

// NewEbitenSurface 包装一张目标图像（通常是屏幕）
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

// Target 返回底层图像，供文字等 Surface 之外的绘制使用
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.dst
}

func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear(c color.NRGBA) {
	s.dst.Fill(c)
}

func (s *EbitenSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s *EbitenSurface) StrokeCircle(x, y, r, width float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	vector.StrokeCircle(s.dst, float32(x), float32(y), float32(r), float32(width), c, true)
}

func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, true)
}
