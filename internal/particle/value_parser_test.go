package particle

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestParseValue_FixedValue tests parsing of fixed value format
func TestParseValue_FixedValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Integer", "150", 150, 150},
		{"Float", "3.14", 3.14, 3.14},
		{"Negative", "-10.5", -10.5, -10.5},
		{"Zero", "0", 0, 0},
		{"Padded", "  0.7 ", 0.7, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, keyframes, interp, err := ParseValue(tt.input)
			require.NoError(t, err)
			if min != tt.wantMin {
				t.Errorf("ParseValue(%q) min = %v, want %v", tt.input, min, tt.wantMin)
			}
			if max != tt.wantMax {
				t.Errorf("ParseValue(%q) max = %v, want %v", tt.input, max, tt.wantMax)
			}
			if keyframes != nil {
				t.Errorf("ParseValue(%q) keyframes = %v, want nil", tt.input, keyframes)
			}
			if interp != "" {
				t.Errorf("ParseValue(%q) interpolation = %q, want empty", tt.input, interp)
			}
		})
	}
}

// TestParseValue_Range tests parsing of range format
func TestParseValue_Range(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Float range", "[0.2 1]", 0.2, 1},
		{"Integer range", "[200 500]", 200, 500},
		{"Negative range", "[-5 -2]", -5, -2},
		{"Single value", "[1.5]", 1.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, keyframes, _, err := ParseValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, min)
			assert.Equal(t, tt.wantMax, max)
			assert.Nil(t, keyframes)
		})
	}
}

func TestParseValue_Keyframes(t *testing.T) {
	_, _, kf, interp, err := ParseValue("EaseInOut 1,1 0,1 0.5,1.05")
	require.NoError(t, err)
	assert.Equal(t, "EaseInOut", interp)
	// 关键帧按时间排序
	assert.Equal(t, []Keyframe{{0, 1}, {0.5, 1.05}, {1, 1}}, kf)
}

func TestParseValue_Errors(t *testing.T) {
	for _, input := range []string{"", "[1 2", "[2 1]", "[1 2 3]", "abc", "0,1,2", "Linear", "[a b]"} {
		t.Run(input, func(t *testing.T) {
			_, _, _, _, err := ParseValue(input)
			assert.Error(t, err)
		})
	}
}

func TestParseRangeRejectsKeyframes(t *testing.T) {
	_, err := ParseRange("0,1 1,2")
	assert.Error(t, err)

	r, err := ParseRange("[0 1.5]")
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 0, Max: 1.5}, r)
	assert.Equal(t, "[0 1.5]", r.String())
	assert.Equal(t, "2", Fixed(2).String())
}

func TestParseCurveConstant(t *testing.T) {
	c, err := ParseCurve("3")
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.Eval(0))
	assert.Equal(t, 3.0, c.Eval(1))

	_, err = ParseCurve("[1 2]")
	assert.Error(t, err)
}

func TestEvaluateKeyframes(t *testing.T) {
	kf := []Keyframe{{0, 1}, {0.5, 1.05}, {1, 1}}

	tests := []struct {
		name   string
		t      float64
		interp string
		want   float64
	}{
		{"start", 0, "", 1},
		{"peak", 0.5, "", 1.05},
		{"end", 1, "", 1},
		{"linear quarter", 0.25, "Linear", 1.025},
		{"ease in quarter", 0.25, "EaseIn", 1 + 0.05*0.25},
		{"ease out quarter", 0.25, "EaseOut", 1 + 0.05*0.75},
		{"ease in out quarter", 0.25, "EaseInOut", 1.025},
		{"clamp below", -1, "", 1},
		{"clamp above", 2, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateKeyframes(kf, tt.t, tt.interp)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EvaluateKeyframes(t=%v, %q) = %v, want %v", tt.t, tt.interp, got, tt.want)
			}
		})
	}

	assert.Equal(t, 0.0, EvaluateKeyframes(nil, 0.5, ""))
}

func TestRangeRandomStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := Range{Min: 0.2, Max: 1}
	for i := 0; i < 1000; i++ {
		v := r.Random(rng)
		if !r.Contains(v) {
			t.Fatalf("Random() = %v, outside %v", v, r)
		}
	}
	assert.Equal(t, 0.5, Fixed(0.5).Random(rng))
	assert.Equal(t, 0.2, r.Clamp(-3))
	assert.Equal(t, 1.0, r.Clamp(3))
}

func TestRangeAndCurveYAML(t *testing.T) {
	var doc struct {
		Radius Range `yaml:"radius"`
		Count  Range `yaml:"count"`
		Pulse  Curve `yaml:"pulse"`
	}
	src := "radius: \"[0 1.5]\"\ncount: 150\npulse: \"EaseInOut 0,1 0.5,1.05 1,1\"\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	assert.Equal(t, Range{0, 1.5}, doc.Radius)
	assert.Equal(t, Fixed(150), doc.Count)
	assert.Equal(t, "EaseInOut", doc.Pulse.Interpolation)
	assert.InDelta(t, 1.05, doc.Pulse.Eval(0.5), 1e-9)

	err := yaml.Unmarshal([]byte("radius: \"[3 1]\"\n"), &doc)
	assert.Error(t, err)

	out, err := yaml.Marshal(struct {
		R Range `yaml:"r"`
	}{Range{0.3, 0.8}})
	require.NoError(t, err)
	var back struct {
		R Range `yaml:"r"`
	}
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, Range{0.3, 0.8}, back.R)
}
