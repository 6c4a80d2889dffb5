package config

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/portfolio/internal/particle"
)

// Track 一条循环播放的关键帧轨道
//
// Curve 的时间轴为归一化 [0, 1]，Period 为一个循环的秒数
type Track struct {
	Period float64
	Curve  particle.Curve
}

// At 返回 elapsed 秒时的取值，超过一个周期后从头循环
func (t Track) At(elapsed float64) float64 {
	if t.Period <= 0 {
		return t.Curve.Eval(0)
	}
	phase := math.Mod(elapsed, t.Period)
	if phase < 0 {
		phase += t.Period
	}
	return t.Curve.Eval(phase / t.Period)
}

// MoonTrack 卫星的闭合路径（关键帧坐标系 200x200，中心 100,100）
type MoonTrack struct {
	X Track
	Y Track
	// Radius 卫星半径
	Radius float64
}

// PlanetAnimation 行星动画
type PlanetAnimation struct {
	// Scale 呼吸缩放
	Scale Track
	// RingPeriod 光环旋转一周的秒数
	RingPeriod float64
	Moons      [2]MoonTrack
}

// RocketAnimation 火箭动画
type RocketAnimation struct {
	// Bob 纵向浮动（像素）
	Bob Track
	// Sway 左右摇摆（角度）
	Sway Track
	// FlameScale 尾焰纵向缩放
	FlameScale Track
	// FlameOpacity 尾焰透明度
	FlameOpacity Track
}

// DecorationViewBox 装饰物关键帧使用的坐标系边长
const DecorationViewBox = 200.0

// 装饰物与页面配色
var (
	PlanetColorLight = MustParseHexColor("#8B5CF6")
	PlanetColorDark  = MustParseHexColor("#4C1D95")
	MoonColor1       = MustParseHexColor("#A78BFA")
	MoonColor2       = MustParseHexColor("#C4B5FD")

	RocketBodyColor   = MustParseHexColor("#E5E7EB")
	RocketWindowColor = MustParseHexColor("#60A5FA")
	RocketFinColor    = MustParseHexColor("#EF4444")
	RocketFlameColor  = MustParseHexColor("#F59E0B")

	// 社交徽章虚线环的两端颜色
	LinkedInRingColors = [2]color.NRGBA{MustParseHexColor("#0A66C2"), MustParseHexColor("#00A0DC")}
	GitHubRingColors   = [2]color.NRGBA{MustParseHexColor("#6E5494"), MustParseHexColor("#9F7BE1")}

	// 卡片
	CardBackgroundColor  = MustParseHexColor("#111827cc")
	CardBorderColor      = MustParseHexColor("#374151")
	CardBorderHoverColor = MustParseHexColor("#8B5CF6")
	CardTitleColor       = MustParseHexColor("#FFFFFF")
	CardTitleHoverColor  = MustParseHexColor("#C084FC")
	CardTextColor        = MustParseHexColor("#9CA3AF")
	CardTagColor         = MustParseHexColor("#1F2937")
	PlaceholderColor     = MustParseHexColor("#1F2937")
	TextColor            = MustParseHexColor("#FFFFFF")
	MutedTextColor       = MustParseHexColor("#9CA3AF")
)

// DefaultPlanetAnimation 行星缺省动画
func DefaultPlanetAnimation() PlanetAnimation {
	return PlanetAnimation{
		Scale:      Track{Period: 8, Curve: mustCurve("EaseInOut 0,1 0.5,1.05 1,1")},
		RingPeriod: 20,
		Moons: [2]MoonTrack{
			{
				X:      Track{Period: 10, Curve: mustCurve("Linear 0,160 0.25,170 0.5,160 0.75,150 1,160")},
				Y:      Track{Period: 10, Curve: mustCurve("Linear 0,70 0.25,80 0.5,90 0.75,80 1,70")},
				Radius: 10,
			},
			{
				X:      Track{Period: 8, Curve: mustCurve("Linear 0,40 0.25,30 0.5,40 0.75,50 1,40")},
				Y:      Track{Period: 8, Curve: mustCurve("Linear 0,130 0.25,140 0.5,150 0.75,140 1,130")},
				Radius: 6,
			},
		},
	}
}

// DefaultRocketAnimation 火箭缺省动画
func DefaultRocketAnimation() RocketAnimation {
	return RocketAnimation{
		Bob:          Track{Period: 5, Curve: mustCurve("EaseInOut 0,0 0.5,-10 1,0")},
		Sway:         Track{Period: 5, Curve: mustCurve("EaseInOut 0,0 0.25,5 0.5,0 0.75,-5 1,0")},
		FlameScale:   Track{Period: 0.5, Curve: mustCurve("0,1 0.25,1.2 0.5,0.9 0.75,1.1 1,1")},
		FlameOpacity: Track{Period: 0.5, Curve: mustCurve("0,0.8 0.25,1 0.5,0.7 0.75,0.9 1,0.8")},
	}
}

// mustCurve 解析内置关键帧，写错属于编程错误
func mustCurve(s string) particle.Curve {
	c, err := particle.ParseCurve(s)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in curve %q: %v", s, err))
	}
	return c
}
