package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3
		{"超出上界", 1.5, 1.0},
		{"低于下界", -0.2, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInOutSine 测试正弦缓入缓出函数
func TestEaseInOutSine(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutSine(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutSine(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if got := Lerp(60, 0, 0.25); got != 45 {
		t.Errorf("Lerp(60, 0, 0.25) = %v, 期望 45", got)
	}
}

// TestApproach 测试渐近且不越过目标
func TestApproach(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, step float64
		expected              float64
	}{
		{"向上", 0, 1, 0.25, 0.25},
		{"向下", 1, 0, 0.25, 0.75},
		{"不越过目标", 0.9, 1, 0.25, 1},
		{"已到达", 0, 0, 0.25, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approach(tt.current, tt.target, tt.step); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Approach(%v, %v, %v) = %v, 期望 %v", tt.current, tt.target, tt.step, got, tt.expected)
			}
		})
	}
}

// TestPingPong 测试往返进度
func TestPingPong(t *testing.T) {
	tests := []struct {
		elapsed  float64
		expected float64
	}{
		{0, 0},
		{0.75, 1},
		{1.5, 0},
		{2.25, 1},
		{0.375, 0.5},
	}
	for _, tt := range tests {
		if got := PingPong(tt.elapsed, 1.5); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("PingPong(%v, 1.5) = %v, 期望 %v", tt.elapsed, got, tt.expected)
		}
	}
	if got := PingPong(3, 0); got != 0 {
		t.Errorf("PingPong with zero period = %v, 期望 0", got)
	}
}
