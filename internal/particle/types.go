// Package particle 提供星空粒子参数的取值描述与解析
//
// 配置文件中的数值字段沿用粒子配置的字符串写法：
//   - 固定值: "1.5"
//   - 范围: "[0 1.5]"（生成时在 min 与 max 之间随机）
//   - 关键帧: "0,1 0.5,1.05 1,1"（time,value 对，可附加插值关键字，如 "EaseInOut 0,0 1,1"）
package particle

import (
	"fmt"
	"math/rand/v2"

	"gopkg.in/yaml.v3"
)

// Keyframe represents a single keyframe in an animation curve.
type Keyframe struct {
	Time  float64 // 归一化时间 (0-1)
	Value float64 // 该时刻的取值
}

// Range 是一个闭区间取值，用于随机化粒子的初始属性
type Range struct {
	Min float64
	Max float64
}

// Fixed 返回 min=max=v 的区间
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Random 使用给定随机源在区间内取值
func (r Range) Random(rng *rand.Rand) float64 {
	return RandomInRange(rng, r.Min, r.Max)
}

// Contains 判断 v 是否落在区间内（含端点）
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp 将 v 限制在区间内
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// String 以配置文件中的写法输出
func (r Range) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%g", r.Min)
	}
	return fmt.Sprintf("[%g %g]", r.Min, r.Max)
}

// UnmarshalYAML 支持 "1.5"、"[0 1.5]" 以及数字标量
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseRange(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = parsed
	return nil
}

// MarshalYAML 输出字符串写法
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// Curve 是一条关键帧曲线，t ∈ [0,1]
type Curve struct {
	Keyframes     []Keyframe
	Interpolation string
}

// Eval 计算 t 时刻的曲线取值
func (c Curve) Eval(t float64) float64 {
	return EvaluateKeyframes(c.Keyframes, t, c.Interpolation)
}

// IsZero 判断曲线是否为空
func (c Curve) IsZero() bool {
	return len(c.Keyframes) == 0
}

// UnmarshalYAML 解析 "0,1 0.5,1.05 1,1" 形式的关键帧
func (c *Curve) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseCurve(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}
