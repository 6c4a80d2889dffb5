package particle

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
)

// ErrEmptyValue 表示取值字符串为空
var ErrEmptyValue = errors.New("empty value")

// interpolationKeywords 支持的插值关键字
var interpolationKeywords = []string{"Linear", "EaseInOut", "EaseIn", "EaseOut"}

// ParseValue parses a value string from configuration.
// Supports multiple formats:
//   - Fixed value: "150" → min=150, max=150, keyframes=nil
//   - Range: "[0.2 1]" → min=0.2, max=1, keyframes=nil
//   - Keyframes: "0,1 0.5,1.05 1,1" → keyframes=[{0,1} {0.5,1.05} {1,1}]
//   - Interpolation: "EaseInOut 0,0 1,10" → keyframes with interpolation="EaseInOut"
//
// 无法识别的写法返回错误（不再静默回退为 0）。
func ParseValue(s string) (min, max float64, keyframes []Keyframe, interpolation string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil, "", ErrEmptyValue
	}

	// 范围格式: "[min max]" 或 "[value]"
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return 0, 0, nil, "", fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return 0, 0, nil, "", fmt.Errorf("invalid range %q: %w", s, err)
			}
			return v, v, nil, "", nil
		case 2:
			lo, err1 := strconv.ParseFloat(parts[0], 64)
			hi, err2 := strconv.ParseFloat(parts[1], 64)
			if err := errors.Join(err1, err2); err != nil {
				return 0, 0, nil, "", fmt.Errorf("invalid range %q: %w", s, err)
			}
			if lo > hi {
				return 0, 0, nil, "", fmt.Errorf("invalid range %q: min > max", s)
			}
			return lo, hi, nil, "", nil
		default:
			return 0, 0, nil, "", fmt.Errorf("invalid range %q: want 1 or 2 numbers", s)
		}
	}

	// 插值关键字
	for _, keyword := range interpolationKeywords {
		if strings.HasPrefix(s, keyword) {
			interpolation = keyword
			s = strings.TrimSpace(strings.TrimPrefix(s, keyword))
			break
		}
	}

	// 关键帧格式
	if strings.Contains(s, ",") {
		parts := strings.Fields(s)
		keyframes = make([]Keyframe, 0, len(parts))
		for _, part := range parts {
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				return 0, 0, nil, "", fmt.Errorf("invalid keyframe %q", part)
			}
			tm, err1 := strconv.ParseFloat(pair[0], 64)
			val, err2 := strconv.ParseFloat(pair[1], 64)
			if err := errors.Join(err1, err2); err != nil {
				return 0, 0, nil, "", fmt.Errorf("invalid keyframe %q: %w", part, err)
			}
			keyframes = append(keyframes, Keyframe{Time: tm, Value: val})
		}
		sort.SliceStable(keyframes, func(i, j int) bool { return keyframes[i].Time < keyframes[j].Time })
		return 0, 0, keyframes, interpolation, nil
	}
	if interpolation != "" {
		return 0, 0, nil, "", fmt.Errorf("interpolation %q without keyframes", interpolation)
	}

	// 固定值
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, nil, "", fmt.Errorf("invalid value %q: %w", s, err)
	}
	return value, value, nil, "", nil
}

// ParseRange 解析固定值或范围
func ParseRange(s string) (Range, error) {
	lo, hi, kf, _, err := ParseValue(s)
	if err != nil {
		return Range{}, err
	}
	if kf != nil {
		return Range{}, fmt.Errorf("expected a value or range, got keyframes %q", s)
	}
	return Range{Min: lo, Max: hi}, nil
}

// ParseCurve 解析关键帧曲线；固定值被视为常量曲线
func ParseCurve(s string) (Curve, error) {
	lo, hi, kf, interp, err := ParseValue(s)
	if err != nil {
		return Curve{}, err
	}
	if kf == nil {
		if lo != hi {
			return Curve{}, fmt.Errorf("expected keyframes, got range %q", s)
		}
		kf = []Keyframe{{Time: 0, Value: lo}}
	}
	return Curve{Keyframes: kf, Interpolation: interp}, nil
}

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
//
// Parameters:
//   - keyframes: Array of keyframes (must be sorted by Time)
//   - t: Normalized time (0-1)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", "EaseOut", "EaseInOut")
//
// Returns the interpolated value at time t.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case "EaseIn":
				ratio = ratio * ratio
			case "EaseOut":
				ratio = 1 - (1-ratio)*(1-ratio)
			case "EaseInOut":
				ratio = ratio * ratio * (3 - 2*ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max].
// rng 为 nil 时使用全局随机源。
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return min + rand.Float64()*(max-min)
	}
	return min + rng.Float64()*(max-min)
}
