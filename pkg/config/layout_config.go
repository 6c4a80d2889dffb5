package config

import "math"

// 布局配置常量
// 本文件定义了作品集页面的布局参数：窗口、首屏、项目卡片网格
// 所有坐标使用"内容坐标系"（相对于页面顶部，不随滚动变化）

// Window Configuration (窗口配置)
const (
	// WindowWidth 默认窗口宽度
	WindowWidth = 1280

	// WindowHeight 默认窗口高度
	WindowHeight = 800

	// MinWindowWidth 最小窗口宽度（单列布局下卡片仍可读）
	MinWindowWidth = 360

	// MinWindowHeight 最小窗口高度
	MinWindowHeight = 480
)

// Card Grid Configuration (卡片网格配置)
const (
	// BreakpointMD 宽度达到此值时使用双列
	BreakpointMD = 768.0

	// PagePaddingX 页面左右留白
	PagePaddingX = 16.0

	// ContainerMaxWidth 内容容器最大宽度
	ContainerMaxWidth = 1280.0

	// SectionPaddingY 项目区上下留白
	SectionPaddingY = 80.0

	// SectionTitleHeight 项目区标题高度
	SectionTitleHeight = 48.0

	// SectionTitleMarginBottom 标题与网格之间的距离
	SectionTitleMarginBottom = 48.0

	// CardGap 卡片间距
	CardGap = 32.0

	// CardHeight 卡片高度
	CardHeight = 360.0

	// CardImageHeight 卡片顶部图片区域高度
	CardImageHeight = 192.0

	// CardPadding 卡片文字区内边距
	CardPadding = 24.0

	// CardRevealOffsetY 进入视口前卡片的下移距离
	CardRevealOffsetY = 60.0

	// CardRevealDuration 卡片进入动画时长（秒）
	CardRevealDuration = 0.7

	// CardRevealAmount 卡片至少有此比例进入视口才触发动画
	CardRevealAmount = 0.2

	// CardRevealBottomMargin 视口底部向内收缩的距离
	CardRevealBottomMargin = 100.0
)

// Hero Configuration (首屏配置)
const (
	// HeroFadeEnd 滚动进度达到此值时首屏完全淡出
	HeroFadeEnd = 0.5

	// HeroMinScale 首屏淡出结束时的缩放
	HeroMinScale = 0.8

	// ScrollStep 每格滚轮/方向键滚动的距离
	ScrollStep = 60.0

	// HeroTitleRatio 标题中心在首屏高度中的位置
	HeroTitleRatio = 0.38

	// HeroLabelGap 标题与打字标签之间的距离
	HeroLabelGap = 64.0

	// HeroHintDelay 滚动提示在此秒数后淡入
	HeroHintDelay = 2.0

	// HeroHintMarginBottom 滚动提示距首屏底部的距离
	HeroHintMarginBottom = 48.0
)

// Social Links Configuration (社交徽章配置)
const (
	// SocialBadgeSize 徽章边长
	SocialBadgeSize = 40.0

	// SocialBadgeGap 徽章间距
	SocialBadgeGap = 16.0

	// SocialMarginTop 徽章行与打字标签之间的距离
	SocialMarginTop = 56.0

	// SocialRingRadius 虚线环半径
	SocialRingRadius = 18.4

	// SocialRingPeriod 虚线环旋转一周的秒数
	SocialRingPeriod = 20.0
)

// Decoration Configuration (装饰物配置)
const (
	// PlanetSize 行星绘制区域边长（关键帧坐标系为 200x200）
	PlanetSize = 200.0

	// RocketSize 火箭绘制区域边长
	RocketSize = 120.0

	// DecorationMargin 装饰物与视口边缘的距离
	DecorationMargin = 48.0
)

// Rect 轴对齐矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bottom 返回矩形下边界
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// GridColumnCount 根据视口宽度返回卡片列数
func GridColumnCount(viewportWidth float64) int {
	if viewportWidth >= BreakpointMD {
		return 2
	}
	return 1
}

// containerBounds 返回内容容器的左边界和宽度
func containerBounds(viewportWidth float64) (left, width float64) {
	width = math.Min(viewportWidth-2*PagePaddingX, ContainerMaxWidth)
	if width < 0 {
		width = 0
	}
	left = (viewportWidth - width) / 2
	return left, width
}

// ProjectsSectionTop 项目区顶部（首屏占满一个视口高度）
func ProjectsSectionTop(viewportHeight float64) float64 {
	return viewportHeight
}

// ProjectsTitleRect 项目区标题的位置
func ProjectsTitleRect(viewportWidth, viewportHeight float64) Rect {
	left, width := containerBounds(viewportWidth)
	return Rect{
		X: left,
		Y: ProjectsSectionTop(viewportHeight) + SectionPaddingY,
		W: width,
		H: SectionTitleHeight,
	}
}

// CalculateCardRect 计算第 index 张卡片的内容坐标
//
// 参数：
//   - index: 卡片序号（与项目输入顺序一致，从 0 开始）
//   - viewportWidth, viewportHeight: 当前视口尺寸
//
// 返回：
//   - Rect: 卡片矩形（内容坐标）
func CalculateCardRect(index int, viewportWidth, viewportHeight float64) Rect {
	cols := GridColumnCount(viewportWidth)
	left, width := containerBounds(viewportWidth)
	colWidth := (width - float64(cols-1)*CardGap) / float64(cols)

	gridTop := ProjectsTitleRect(viewportWidth, viewportHeight).Bottom() + SectionTitleMarginBottom
	row := index / cols
	col := index % cols

	return Rect{
		X: left + float64(col)*(colWidth+CardGap),
		Y: gridTop + float64(row)*(CardHeight+CardGap),
		W: colWidth,
		H: CardHeight,
	}
}

// ContentHeight 返回整页内容高度，用于限制滚动范围
func ContentHeight(viewportWidth, viewportHeight float64, cardCount int) float64 {
	gridTop := ProjectsTitleRect(viewportWidth, viewportHeight).Bottom() + SectionTitleMarginBottom
	if cardCount == 0 {
		return gridTop + SectionPaddingY
	}
	rows := (cardCount + GridColumnCount(viewportWidth) - 1) / GridColumnCount(viewportWidth)
	return gridTop + float64(rows)*(CardHeight+CardGap) - CardGap + SectionPaddingY
}

// MaxScroll 返回最大滚动距离
func MaxScroll(viewportWidth, viewportHeight float64, cardCount int) float64 {
	return math.Max(0, ContentHeight(viewportWidth, viewportHeight, cardCount)-viewportHeight)
}

// HeroTitleY 标题中心的纵坐标
func HeroTitleY(viewportHeight float64) float64 {
	return viewportHeight * HeroTitleRatio
}

// HeroLabelY 打字标签中心的纵坐标
func HeroLabelY(viewportHeight float64) float64 {
	return HeroTitleY(viewportHeight) + HeroLabelGap
}

// HeroHintY 滚动提示的纵坐标
func HeroHintY(viewportHeight float64) float64 {
	return viewportHeight - HeroHintMarginBottom
}

// HeroProgress 返回首屏滚出比例 [0, 1]
func HeroProgress(scrollY, viewportHeight float64) float64 {
	if viewportHeight <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, scrollY/viewportHeight))
}

// HeroFade 根据滚动进度计算首屏透明度与缩放
// 进度 0 → HeroFadeEnd 时，透明度 1 → 0，缩放 1 → HeroMinScale
func HeroFade(progress float64) (opacity, scale float64) {
	t := math.Max(0, math.Min(1, progress/HeroFadeEnd))
	return 1 - t, 1 - (1-HeroMinScale)*t
}

// SocialLinkRect 第 index 个社交徽章的内容坐标，count 个徽章水平居中
func SocialLinkRect(index, count int, viewportWidth, viewportHeight float64) Rect {
	total := float64(count)*SocialBadgeSize + float64(max(count-1, 0))*SocialBadgeGap
	left := (viewportWidth - total) / 2
	return Rect{
		X: left + float64(index)*(SocialBadgeSize+SocialBadgeGap),
		Y: HeroLabelY(viewportHeight) + SocialMarginTop,
		W: SocialBadgeSize,
		H: SocialBadgeSize,
	}
}

// DecorationsVisible 窄屏下不显示装饰物
func DecorationsVisible(viewportWidth float64) bool {
	return viewportWidth >= BreakpointMD
}

// PlanetRect 行星位于首屏右上角
func PlanetRect(viewportWidth, viewportHeight float64) Rect {
	return Rect{
		X: viewportWidth - PlanetSize - DecorationMargin,
		Y: DecorationMargin + viewportHeight*0.05,
		W: PlanetSize,
		H: PlanetSize,
	}
}

// RocketRect 火箭位于首屏左下角
func RocketRect(viewportWidth, viewportHeight float64) Rect {
	return Rect{
		X: DecorationMargin + viewportWidth*0.05,
		Y: viewportHeight - RocketSize - 2*DecorationMargin,
		W: RocketSize,
		H: RocketSize,
	}
}
