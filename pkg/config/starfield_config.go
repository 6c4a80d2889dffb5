package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/decker502/portfolio/internal/particle"
	"gopkg.in/yaml.v3"
)

// 星空背景的固定上限
const (
	// DefaultStarCount 挂载时创建的星星数量
	DefaultStarCount = 150

	// MaxMeteors 流星数量上限，任何配置都不能超过
	MaxMeteors = 2

	// ReferenceFrameTime 原始动画按 60fps 调参，逐帧速度按此归一化
	ReferenceFrameTime = 1.0 / 60.0
)

// 预设名称
const (
	// PresetCanvas 即时绘制风格：星星向下滚动，透明度在 [0.2, 1.0] 之间脉动
	PresetCanvas = "canvas"

	// PresetAmbient 环境风格：星星原地漂浮，透明度在 [0.3, 0.8] 之间随机游走，指针附近增亮
	PresetAmbient = "ambient"
)

// TwinkleMode 闪烁方式
type TwinkleMode string

const (
	// TwinkleWalk 有界随机游走：按固定节拍随机增减透明度
	TwinkleWalk TwinkleMode = "walk"

	// TwinklePulse 往返脉动：每帧按速率增减，碰到边界反向
	TwinklePulse TwinkleMode = "pulse"
)

// StarfieldConfig 星空背景参数
//
// 数值字段使用粒子取值写法，如 "[0 1.5]"。
// 在 YAML 中先读取 preset，以预设为底再覆盖其余字段。
type StarfieldConfig struct {
	Preset string `yaml:"preset"`

	StarCount int `yaml:"starCount"`

	// Opacity 透明度允许范围，闪烁始终被限制在此范围内
	Opacity particle.Range `yaml:"opacity"`

	// Radius 星星半径（像素），创建后不变
	Radius particle.Range `yaml:"radius"`

	// GlowThreshold 半径大于此值的星星额外绘制光晕
	GlowThreshold float64 `yaml:"glowThreshold"`

	Twinkle TwinkleConfig `yaml:"twinkle"`
	Drift   DriftConfig   `yaml:"drift"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Meteor  MeteorConfig  `yaml:"meteor"`
	Nebula  NebulaConfig  `yaml:"nebula"`
	Pointer PointerConfig `yaml:"pointer"`
}

// TwinkleConfig 闪烁参数
type TwinkleConfig struct {
	Mode TwinkleMode `yaml:"mode"`

	// Rate 每颗星星的振荡速率
	// walk 模式下为步长倍数；pulse 模式下为每帧（60fps）透明度变化量
	Rate particle.Range `yaml:"rate"`

	// Interval walk 模式的节拍
	Interval time.Duration `yaml:"interval"`

	// Step walk 模式单步最大变化量（再乘以速率）
	Step float64 `yaml:"step"`
}

// DriftConfig 漂浮参数：位置围绕基准点做正弦往返
type DriftConfig struct {
	Enabled bool `yaml:"enabled"`

	// Offset 每个轴的最大偏移（像素）
	Offset particle.Range `yaml:"offset"`

	// Duration 一个往返周期（秒）
	Duration particle.Range `yaml:"duration"`
}

// ScrollConfig 向下滚动参数（仅 canvas 预设启用）
type ScrollConfig struct {
	Enabled bool `yaml:"enabled"`

	// Speed 每帧（60fps）下移的像素数
	Speed particle.Range `yaml:"speed"`
}

// MeteorConfig 流星参数
type MeteorConfig struct {
	Count int `yaml:"count"`

	// Interval 周期扫描间隔，每次最多激活一颗空闲流星
	Interval time.Duration `yaml:"interval"`

	// ActiveDuration 激活后划过屏幕的时长，到时回到空闲
	ActiveDuration time.Duration `yaml:"activeDuration"`

	// SpawnTop 出生点的归一化纵坐标范围
	SpawnTop particle.Range `yaml:"spawnTop"`

	// Margin 轨迹起止点超出屏幕边缘的距离（像素）
	Margin float64 `yaml:"margin"`

	TrailSegments int     `yaml:"trailSegments"`
	TrailSpacing  float64 `yaml:"trailSpacing"`
	TrailWidth    float64 `yaml:"trailWidth"`
	HeadRadius    float64 `yaml:"headRadius"`
}

// NebulaConfig 星云（柔和的径向渐变色块）参数
type NebulaConfig struct {
	Count  int            `yaml:"count"`
	Radius particle.Range `yaml:"radius"`
	Colors []string       `yaml:"colors"`
}

// PointerConfig 指针邻近增亮参数
//
// 0.7 / 150 / 15 均为调参常量，保留为可配置项
type PointerConfig struct {
	Enabled bool `yaml:"enabled"`

	// InfluenceRadius 影响半径（像素），距离小于此值才生效
	InfluenceRadius float64 `yaml:"influenceRadius"`

	// OpacityBoost 距离为 0 时透明度的增量
	OpacityBoost float64 `yaml:"opacityBoost"`

	// MaxGlowBlur 距离为 0 时的光晕半径（像素）
	MaxGlowBlur float64 `yaml:"maxGlowBlur"`

	// ScaleBoost 距离为 0 时的额外缩放
	ScaleBoost float64 `yaml:"scaleBoost"`
}

// DefaultPointerConfig 返回默认的指针邻近参数
func DefaultPointerConfig() PointerConfig {
	return PointerConfig{
		Enabled:         true,
		InfluenceRadius: 150,
		OpacityBoost:    0.7,
		MaxGlowBlur:     15,
		ScaleBoost:      0.5,
	}
}

func defaultMeteorConfig() MeteorConfig {
	return MeteorConfig{
		Count:          MaxMeteors,
		Interval:       10 * time.Second,
		ActiveDuration: 8 * time.Second,
		SpawnTop:       particle.Range{Min: 0, Max: 1.0 / 3.0},
		Margin:         200,
		TrailSegments:  20,
		TrailSpacing:   2,
		TrailWidth:     2,
		HeadRadius:     2,
	}
}

func defaultNebulaConfig() NebulaConfig {
	return NebulaConfig{
		Count:  2,
		Radius: particle.Range{Min: 200, Max: 500},
		Colors: []string{
			"#6f42c108", // 紫色
			"#3b82f608", // 蓝色
		},
	}
}

// CanvasPreset 即时绘制风格预设
func CanvasPreset() StarfieldConfig {
	pointer := DefaultPointerConfig()
	pointer.Enabled = false
	return StarfieldConfig{
		Preset:        PresetCanvas,
		StarCount:     DefaultStarCount,
		Opacity:       particle.Range{Min: 0.2, Max: 1.0},
		Radius:        particle.Range{Min: 0, Max: 1.5},
		GlowThreshold: 1,
		Twinkle: TwinkleConfig{
			Mode:     TwinklePulse,
			Rate:     particle.Range{Min: 0, Max: 0.01},
			Interval: 100 * time.Millisecond,
			Step:     0.1,
		},
		Drift: DriftConfig{
			Enabled:  false,
			Offset:   particle.Range{Min: -2, Max: 2},
			Duration: particle.Range{Min: 3, Max: 8},
		},
		Scroll: ScrollConfig{
			Enabled: true,
			Speed:   particle.Range{Min: 0, Max: 0.05},
		},
		Meteor:  defaultMeteorConfig(),
		Nebula:  defaultNebulaConfig(),
		Pointer: pointer,
	}
}

// AmbientPreset 环境风格预设
func AmbientPreset() StarfieldConfig {
	return StarfieldConfig{
		Preset:        PresetAmbient,
		StarCount:     DefaultStarCount,
		Opacity:       particle.Range{Min: 0.3, Max: 0.8},
		Radius:        particle.Range{Min: 0.5, Max: 2},
		GlowThreshold: 1,
		Twinkle: TwinkleConfig{
			Mode:     TwinkleWalk,
			Rate:     particle.Range{Min: 0.2, Max: 1},
			Interval: 100 * time.Millisecond,
			Step:     0.1,
		},
		Drift: DriftConfig{
			Enabled:  true,
			Offset:   particle.Range{Min: -10, Max: 10},
			Duration: particle.Range{Min: 3, Max: 8},
		},
		Scroll: ScrollConfig{
			Enabled: false,
			Speed:   particle.Range{Min: 0, Max: 0.05},
		},
		Meteor:  defaultMeteorConfig(),
		Nebula:  defaultNebulaConfig(),
		Pointer: DefaultPointerConfig(),
	}
}

// PresetByName 按名称返回预设，未知名称返回错误
func PresetByName(name string) (StarfieldConfig, error) {
	switch name {
	case PresetCanvas, "":
		return CanvasPreset(), nil
	case PresetAmbient:
		return AmbientPreset(), nil
	default:
		return StarfieldConfig{}, fmt.Errorf("unknown starfield preset %q", name)
	}
}

// PresetNames 返回所有预设名称（用于循环切换）
func PresetNames() []string {
	return []string{PresetCanvas, PresetAmbient}
}

// UnmarshalYAML 以 preset 指定的预设为底，再覆盖 YAML 中出现的字段
func (c *StarfieldConfig) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	base, err := PresetByName(head.Preset)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	// 使用别名类型避免递归调用 UnmarshalYAML
	type plain StarfieldConfig
	p := plain(base)
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = StarfieldConfig(p)
	if c.Preset == "" {
		c.Preset = PresetCanvas
	}
	return nil
}

// Validate 验证星空参数
//
// 所有问题合并为一个错误返回
func (c *StarfieldConfig) Validate() error {
	var errs []error

	if c.StarCount <= 0 {
		errs = append(errs, fmt.Errorf("starCount must be positive, got %d", c.StarCount))
	}
	if c.Opacity.Min < 0 || c.Opacity.Max > 1 || c.Opacity.Min > c.Opacity.Max {
		errs = append(errs, fmt.Errorf("opacity %v must be within [0 1]", c.Opacity))
	}
	if c.Radius.Min < 0 {
		errs = append(errs, fmt.Errorf("radius %v must not be negative", c.Radius))
	}
	switch c.Twinkle.Mode {
	case TwinkleWalk:
		if c.Twinkle.Interval <= 0 {
			errs = append(errs, fmt.Errorf("twinkle.interval must be positive, got %v", c.Twinkle.Interval))
		}
	case TwinklePulse:
	default:
		errs = append(errs, fmt.Errorf("unknown twinkle.mode %q", c.Twinkle.Mode))
	}
	if c.Drift.Enabled && c.Drift.Duration.Min <= 0 {
		errs = append(errs, fmt.Errorf("drift.duration %v must be positive", c.Drift.Duration))
	}
	if c.Meteor.Count < 0 || c.Meteor.Count > MaxMeteors {
		errs = append(errs, fmt.Errorf("meteor.count must be within [0 %d], got %d", MaxMeteors, c.Meteor.Count))
	}
	if c.Meteor.Count > 0 {
		if c.Meteor.Interval <= 0 {
			errs = append(errs, fmt.Errorf("meteor.interval must be positive, got %v", c.Meteor.Interval))
		}
		if c.Meteor.ActiveDuration <= 0 {
			errs = append(errs, fmt.Errorf("meteor.activeDuration must be positive, got %v", c.Meteor.ActiveDuration))
		}
	}
	for _, s := range c.Nebula.Colors {
		if _, err := ParseHexColor(s); err != nil {
			errs = append(errs, fmt.Errorf("nebula.colors: %w", err))
		}
	}
	if c.Nebula.Count > 0 && len(c.Nebula.Colors) == 0 {
		errs = append(errs, errors.New("nebula.colors must not be empty when nebula.count > 0"))
	}
	if c.Pointer.Enabled && c.Pointer.InfluenceRadius <= 0 {
		errs = append(errs, fmt.Errorf("pointer.influenceRadius must be positive, got %v", c.Pointer.InfluenceRadius))
	}

	return errors.Join(errs...)
}

// NebulaColors 返回解析后的星云颜色（无效项已被 Validate 拒绝，这里跳过）
func (c *StarfieldConfig) NebulaColors() []color.NRGBA {
	colors := make([]color.NRGBA, 0, len(c.Nebula.Colors))
	for _, s := range c.Nebula.Colors {
		if clr, err := ParseHexColor(s); err == nil {
			colors = append(colors, clr)
		}
	}
	return colors
}
