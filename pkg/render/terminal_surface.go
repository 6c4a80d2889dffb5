package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// 每个终端字符格对应的逻辑像素
// 保持与窗口相同的像素单位，星空参数（半径、影响范围）无需换算
const (
	CellWidth  = 8
	CellHeight = 16
)

// 大于此半径的圆按面积填充背景，否则画成一个字符
const areaFillRadius = CellWidth

type termCell struct {
	ch    rune
	fg    color.NRGBA
	alpha float64 // 前景不透明度，较亮的绘制覆盖较暗的
	bg    color.NRGBA
}

// TerminalSurface 以字符格为像素的 Surface
//
// 绘制写入缓冲区，Flush 一次性提交到 tcell 屏幕
type TerminalSurface struct {
	screen tcell.Screen
	cols   int
	rows   int
	cells  []termCell
}

// NewTerminalSurface 包装一个已初始化的 tcell 屏幕
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	s := &TerminalSurface{screen: screen}
	s.Clear(color.NRGBA{A: 0xff})
	return s
}

func (s *TerminalSurface) Size() (int, int) {
	cols, rows := s.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

// Clear 按屏幕当前尺寸重建缓冲区
func (s *TerminalSurface) Clear(c color.NRGBA) {
	c.A = 0xff
	s.cols, s.rows = s.screen.Size()
	n := s.cols * s.rows
	if cap(s.cells) < n {
		s.cells = make([]termCell, n)
	}
	s.cells = s.cells[:n]
	for i := range s.cells {
		s.cells[i] = termCell{ch: ' ', bg: c}
	}
}

func (s *TerminalSurface) at(col, row int) *termCell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func (s *TerminalSurface) plot(x, y float64, ch rune, c color.NRGBA) {
	cell := s.at(int(math.Floor(x/CellWidth)), int(math.Floor(y/CellHeight)))
	if cell == nil {
		return
	}
	alpha := float64(c.A) / 255
	if cell.ch != ' ' && alpha < cell.alpha {
		return
	}
	cell.ch = ch
	cell.fg = c
	cell.alpha = alpha
}

func (s *TerminalSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	if r < areaFillRadius {
		s.plot(x, y, glyphForRadius(r), c)
		return
	}
	// 面积填充：格子中心落在圆内即混合背景色
	minCol, maxCol := int((x-r)/CellWidth), int((x+r)/CellWidth)
	minRow, maxRow := int((y-r)/CellHeight), int((y+r)/CellHeight)
	for row := max(minRow, 0); row <= min(maxRow, s.rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, s.cols-1); col++ {
			cx := (float64(col) + 0.5) * CellWidth
			cy := (float64(row) + 0.5) * CellHeight
			if math.Hypot(cx-x, cy-y) <= r {
				cell := s.at(col, row)
				cell.bg = blend(cell.bg, c)
			}
		}
	}
}

func (s *TerminalSurface) StrokeCircle(x, y, r, width float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	steps := max(8, int(2*math.Pi*r/CellWidth))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.plot(x+r*math.Cos(a), y+r*math.Sin(a), '·', c)
	}
}

func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	ch := lineGlyph(dx, dy)
	steps := int(math.Max(math.Abs(dx)/CellWidth, math.Abs(dy)/CellHeight)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.plot(x0+dx*t, y0+dy*t, ch, c)
	}
}

func (s *TerminalSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	minCol, maxCol := int(math.Floor(x/CellWidth)), int(math.Ceil((x+w)/CellWidth))-1
	minRow, maxRow := int(math.Floor(y/CellHeight)), int(math.Ceil((y+h)/CellHeight))-1
	for row := max(minRow, 0); row <= min(maxRow, s.rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, s.cols-1); col++ {
			cell := s.at(col, row)
			cell.bg = blend(cell.bg, c)
		}
	}
}

// DrawText 在像素坐标处写一行文字，宽字符占两格
func (s *TerminalSurface) DrawText(x, y float64, text string, c color.NRGBA) {
	col := int(math.Floor(x / CellWidth))
	row := int(math.Floor(y / CellHeight))
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cell := s.at(col, row); cell != nil {
			cell.ch = r
			cell.fg = c
			cell.alpha = 1
		}
		// 宽字符的第二格置空，避免残留
		for i := 1; i < w; i++ {
			if cell := s.at(col+i, row); cell != nil {
				cell.ch = 0
			}
		}
		col += w
	}
}

// TextWidth 返回文字占用的像素宽度
func TextWidth(text string) float64 {
	return float64(runewidth.StringWidth(text) * CellWidth)
}

// Flush 把缓冲区提交到屏幕
func (s *TerminalSurface) Flush() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			cell := s.cells[row*s.cols+col]
			if cell.ch == 0 {
				continue
			}
			fg := blend(cell.bg, cell.fg)
			style := tcell.StyleDefault.Background(toTcell(cell.bg)).Foreground(toTcell(fg))
			s.screen.SetContent(col, row, cell.ch, nil, style)
		}
	}
	s.screen.Show()
}

// blend 把 src 按其不透明度混合到不透明的 dst 上
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xff}
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func glyphForRadius(r float64) rune {
	switch {
	case r < 0.75:
		return '.'
	case r < 1.5:
		return '·'
	case r < 3:
		return '+'
	default:
		return '*'
	}
}

func lineGlyph(dx, dy float64) rune {
	// 终端格高是宽的两倍，按格子坐标判断方向
	cdx, cdy := dx/CellWidth, dy/CellHeight
	switch {
	case math.Abs(cdy) < math.Abs(cdx)*0.5:
		return '-'
	case math.Abs(cdx) < math.Abs(cdy)*0.5:
		return '|'
	case cdx*cdy > 0:
		return '\\'
	default:
		return '/'
	}
}
