package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, col, row int) rune {
	r, _, _, _ := screen.GetContent(col, row)
	return r
}

func TestTerminalSurfaceSize(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	s := NewTerminalSurface(screen)

	w, h := s.Size()
	assert.Equal(t, 40*CellWidth, w)
	assert.Equal(t, 12*CellHeight, h)
}

func TestTerminalSurfaceStarGlyph(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := NewTerminalSurface(screen)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	s.FillCircle(5*CellWidth+1, 3*CellHeight+1, 0.5, white)
	s.FillCircle(10*CellWidth+1, 2*CellHeight+1, 4, white)
	s.Flush()

	assert.Equal(t, '.', runeAt(screen, 5, 3))
	assert.Equal(t, '*', runeAt(screen, 10, 2))
	assert.Equal(t, ' ', runeAt(screen, 0, 0))
}

func TestTerminalSurfaceBrighterWins(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	s := NewTerminalSurface(screen)

	x, y := 2.0*CellWidth, 2.0*CellHeight
	s.FillCircle(x, y, 2, color.NRGBA{R: 255, A: 255})
	// 更暗的绘制不覆盖已有字符
	s.FillCircle(x, y, 0.5, color.NRGBA{R: 255, A: 40})
	s.Flush()

	assert.Equal(t, '+', runeAt(screen, 2, 2))
}

func TestTerminalSurfaceOutOfBounds(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	s := NewTerminalSurface(screen)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	assert.NotPanics(t, func() {
		s.FillCircle(-50, -50, 1, white)
		s.FillCircle(1e6, 1e6, 1, white)
		s.StrokeLine(-100, -100, 1e4, 1e4, 2, white)
		s.FillRect(-10, -10, 1e5, 1e5, white)
		s.DrawText(-8, 0, "hello", white)
		s.Flush()
	})
}

func TestTerminalSurfaceLine(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := NewTerminalSurface(screen)

	// 每格 8x16 像素，(0,0)→(64,128) 在格子坐标下为 45°
	s.StrokeLine(4, 8, 4+8*CellWidth, 8+8*CellHeight, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	s.Flush()

	for i := 0; i <= 8; i++ {
		assert.Equal(t, '\\', runeAt(screen, i, i), "cell %d", i)
	}
}

func TestTerminalSurfaceText(t *testing.T) {
	screen := newSimScreen(t, 20, 3)
	s := NewTerminalSurface(screen)

	s.DrawText(CellWidth, CellHeight, "开发者!", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	s.Flush()

	assert.Equal(t, '开', runeAt(screen, 1, 1))
	assert.Equal(t, '发', runeAt(screen, 3, 1))
	assert.Equal(t, '者', runeAt(screen, 5, 1))
	assert.Equal(t, '!', runeAt(screen, 7, 1))
	assert.Equal(t, float64(7*CellWidth), TextWidth("开发者!"))
}

func TestTerminalSurfaceClearFollowsResize(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	s := NewTerminalSurface(screen)

	screen.SetSize(30, 8)
	s.Clear(color.NRGBA{A: 255})
	s.FillCircle(25*CellWidth, 7*CellHeight, 1, color.NRGBA{G: 255, A: 255})
	s.Flush()

	assert.Equal(t, '·', runeAt(screen, 25, 7))
}
