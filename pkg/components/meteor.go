package components

// MeteorState 流星状态
type MeteorState int

const (
	// MeteorIdle 空闲，不绘制
	MeteorIdle MeteorState = iota
	// MeteorActive 正在划过屏幕
	MeteorActive
)

func (s MeteorState) String() string {
	switch s {
	case MeteorIdle:
		return "idle"
	case MeteorActive:
		return "active"
	default:
		return "unknown"
	}
}

// MeteorComponent 流星
//
// 状态机: idle → active（周期扫描），active → idle（激活时设定的超时）
type MeteorComponent struct {
	State MeteorState

	// SpawnTop 出生点的归一化纵坐标，激活时随机
	SpawnTop float64

	// Elapsed 本次激活已经过的时间（秒）
	Elapsed float64
	// Duration 本次激活的总时长（秒）
	Duration float64

	// Activations 累计激活次数
	Activations int
}

// Progress 本次激活的进度 [0, 1]
func (m *MeteorComponent) Progress() float64 {
	if m.State != MeteorActive || m.Duration <= 0 {
		return 0
	}
	p := m.Elapsed / m.Duration
	if p > 1 {
		return 1
	}
	return p
}
