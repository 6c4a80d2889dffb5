package components

// DecorationKind 装饰物类型
type DecorationKind int

const (
	// DecorationPlanet 带光环和两颗卫星的行星
	DecorationPlanet DecorationKind = iota
	// DecorationRocket 上下浮动、左右摇摆的火箭
	DecorationRocket
)

func (k DecorationKind) String() string {
	switch k {
	case DecorationPlanet:
		return "planet"
	case DecorationRocket:
		return "rocket"
	default:
		return "unknown"
	}
}

// DecorationComponent 首屏装饰物的关键帧动画状态
//
// 由 DecorationSystem 每帧根据 Elapsed 求值
type DecorationComponent struct {
	Kind    DecorationKind
	Size    float64
	Elapsed float64

	// 求值结果
	Scale     float64
	Rotation  float64 // 弧度
	OffsetX   float64
	OffsetY   float64
	RingAngle float64 // 行星光环

	// Moons 两颗卫星相对行星中心的偏移
	Moons [2][2]float64

	// Flame 火箭尾焰长度倍数
	Flame float64
}
