package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]，超出范围的输入先被截断。
//
// 参考：https://easings.net/

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（卡片出现动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出
// 特点：两端平缓（滚动提示箭头的上下弹跳）
// 公式：f(t) = -(cos(πt) - 1) / 2
func EaseInOutSine(t float64) float64 {
	t = Clamp01(t)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach 让 current 以不超过 step 的幅度靠近 target
// 用于悬停高亮的渐入渐出
func Approach(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}

// PingPong 把持续增长的时间映射为 0 → 1 → 0 的往返进度
// period 为一次往返的秒数
func PingPong(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(elapsed, period) / period
	if phase < 0 {
		phase++
	}
	if phase < 0.5 {
		return phase * 2
	}
	return (1 - phase) * 2
}
