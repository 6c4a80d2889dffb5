// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	// X, Y 指针位置（屏幕坐标）
	X, Y float64
	// Present 指针是否在窗口内
	Present bool
	// Clicked 是否刚刚发生点击/触摸
	Clicked bool
	// IsTouching 是否有活动的触摸
	IsTouching bool
}

// ReadPointer 读取当前帧的指针状态
// 优先检测触摸；鼠标离开 width x height 区域视为指针不存在
func ReadPointer(width, height int) PointerState {
	state := PointerState{}

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		state.X, state.Y = float64(x), float64(y)
		state.Present = true
		state.IsTouching = true
		state.Clicked = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		return state
	}

	x, y := ebiten.CursorPosition()
	state.X, state.Y = float64(x), float64(y)
	state.Present = x >= 0 && y >= 0 && x < width && y < height
	state.Clicked = state.Present && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return state
}

// WheelDelta 返回本帧滚轮的纵向滚动量（向下为正）
func WheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return -dy
}

// ============================================================================
// 拖拽滚动 - 用于移动端手指拖动页面
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
)

// DragScroller 把触摸拖动转换为页面滚动量
type DragScroller struct {
	state DragState
	lastY float64
	// moved 本次拖拽累计移动距离，用于区分点击和拖动
	moved float64
}

// dragClickSlop 移动距离小于此值的触摸仍视为点击
const dragClickSlop = 8.0

// Track 推进一帧
//
// 参数：
//   - pressed: 本帧是否有触摸
//   - y: 触摸纵坐标
//
// 返回：本帧应滚动的距离（手指上移时为正）
func (d *DragScroller) Track(pressed bool, y float64) float64 {
	if !pressed {
		d.state = DragStateNone
		return 0
	}
	if d.state == DragStateNone {
		d.state = DragStateDragging
		d.lastY = y
		d.moved = 0
		return 0
	}
	dy := d.lastY - y
	d.lastY = y
	if dy < 0 {
		d.moved -= dy
	} else {
		d.moved += dy
	}
	return dy
}

// Update 从 ebiten 触摸输入推进一帧
func (d *DragScroller) Update() float64 {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 0 {
		return d.Track(false, 0)
	}
	_, y := ebiten.TouchPosition(touchIDs[0])
	return d.Track(true, float64(y))
}

// State 返回当前拖拽状态
func (d *DragScroller) State() DragState {
	return d.state
}

// IsDragging 手指移动超过点击容差后视为拖动
func (d *DragScroller) IsDragging() bool {
	return d.state == DragStateDragging && d.moved >= dragClickSlop
}
