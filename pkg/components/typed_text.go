package components

import (
	"image/color"

	"github.com/decker502/portfolio/pkg/config"
)

// TypingPhase 打字动画阶段
type TypingPhase int

const (
	// PhaseTyping 逐字打出当前标签
	PhaseTyping TypingPhase = iota
	// PhaseHolding 完整显示，等待停留时长
	PhaseHolding
	// PhaseDeleting 逐字删除
	PhaseDeleting
)

func (p TypingPhase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhaseHolding:
		return "holding"
	case PhaseDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// TypedTextComponent 轮换打字标签
//
// 标签序列无限循环：打字 → 停留 → 触发选中 → 删除 → 下一项
type TypedTextComponent struct {
	Labels []config.Label

	// Index 当前标签下标
	Index int
	// Shown 已显示的字符数（按 rune 计）
	Shown int
	Phase TypingPhase

	// Elapsed 当前阶段内累计的时间（秒）
	Elapsed float64

	TypingDelay   float64
	DeletingDelay float64

	// Selected 最近一次触发选中的语言
	Selected string
	// Color 当前标签颜色，选中后更新
	Color color.NRGBA

	// Cycles 完整轮换的次数
	Cycles int

	// CaretElapsed 光标闪烁计时
	CaretElapsed float64
}

// Current 返回当前显示的文本
func (t *TypedTextComponent) Current() string {
	if len(t.Labels) == 0 {
		return ""
	}
	runes := []rune(t.Labels[t.Index].Text)
	n := t.Shown
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

// CaretVisible 光标每秒闪烁一次
func (t *TypedTextComponent) CaretVisible() bool {
	frac := t.CaretElapsed - float64(int(t.CaretElapsed))
	return frac < 0.5
}
