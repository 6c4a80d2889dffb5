package modules

import (
	"math/rand/v2"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/entities"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/systems"
	"go.uber.org/zap"
)

// StarfieldModule 星空背景模块
// 封装背景的全部状态和系统，包括：
//   - 星星、流星、星云实体（挂载时创建，卸载时销毁）
//   - 每帧的更新顺序：计时器 → 流星 → 闪烁 → 漂浮 → 滚动 → 坐标同步 → 指针邻近
//   - 即时模式绘制
//
// 生命周期：
//   - Mount(surface): 绘制目标缺失时静默跳过，不初始化也不报错
//   - Unmount(): 销毁所有实体和计时器，之后 Update/Draw 都是空操作
//
// 所有随机参数来自同一个种子，同一个种子每次挂载得到同一片星空
type StarfieldModule struct {
	cfg  config.StarfieldConfig
	seed uint64
	log  *zap.Logger

	entityManager *ecs.EntityManager
	rng           *rand.Rand

	layoutSystem    *systems.FieldLayoutSystem
	timerSystem     *systems.TimerSystem
	meteorSystem    *systems.MeteorSystem
	twinkleSystem   *systems.TwinkleSystem
	driftSystem     *systems.DriftSystem
	scrollSystem    *systems.ScrollSystem
	proximitySystem *systems.PointerProximitySystem
	renderSystem    *systems.StarfieldRenderSystem

	field   entities.Starfield
	mounted bool

	// pointerGlow 跨挂载保留的指针增亮开关
	pointerGlow bool
}

// NewStarfieldModule 创建星空模块（未挂载）
//
// 参数:
//   - cfg: 星空参数（预设）
//   - seed: 随机种子，0 表示随机选取
func NewStarfieldModule(cfg config.StarfieldConfig, seed uint64) *StarfieldModule {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &StarfieldModule{
		cfg:         cfg,
		seed:        seed,
		log:         logging.Named("Starfield"),
		pointerGlow: cfg.Pointer.Enabled,
	}
}

// Mount 在绘制目标上初始化星空
//
// surface 为 nil 或尺寸为 0 时视为缺失，静默返回 false。
// 已挂载时直接返回 true。
func (m *StarfieldModule) Mount(surface render.Surface) bool {
	if m.mounted {
		return true
	}
	if surface == nil {
		m.log.Debug("no surface, skip mount")
		return false
	}
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		m.log.Debug("empty surface, skip mount", zap.Int("width", w), zap.Int("height", h))
		return false
	}

	m.entityManager = ecs.NewEntityManager()
	m.rng = rand.New(rand.NewPCG(m.seed, m.seed^0x9e3779b97f4a7c15))

	width, height := float64(w), float64(h)
	m.layoutSystem = systems.NewFieldLayoutSystem(m.entityManager, width, height)
	m.timerSystem = systems.NewTimerSystem(m.entityManager)
	m.meteorSystem = systems.NewMeteorSystem(m.entityManager, m.rng, m.cfg.Meteor)
	m.twinkleSystem = systems.NewTwinkleSystem(m.entityManager, m.rng, m.cfg.Twinkle, m.cfg.Opacity)
	m.driftSystem = systems.NewDriftSystem(m.entityManager)
	m.scrollSystem = systems.NewScrollSystem(m.entityManager, m.rng, m.layoutSystem)
	m.proximitySystem = systems.NewPointerProximitySystem(m.entityManager, m.cfg.Pointer)
	m.proximitySystem.SetEnabled(m.pointerGlow)
	m.renderSystem = systems.NewStarfieldRenderSystem(m.entityManager, &m.cfg)

	m.field = entities.NewStarfield(m.entityManager, m.rng, &m.cfg, width, height)
	m.mounted = true

	m.log.Info("starfield mounted",
		zap.String("preset", m.cfg.Preset),
		zap.Uint64("seed", m.seed),
		zap.Int("stars", len(m.field.Stars)),
		zap.Int("meteors", len(m.field.Meteors)),
		zap.Int("width", w),
		zap.Int("height", h))
	return true
}

// Unmount 销毁所有实体、计时器和系统
func (m *StarfieldModule) Unmount() {
	if !m.mounted {
		return
	}
	m.entityManager.Clear()
	m.entityManager = nil
	m.rng = nil
	m.layoutSystem = nil
	m.timerSystem = nil
	m.meteorSystem = nil
	m.twinkleSystem = nil
	m.driftSystem = nil
	m.scrollSystem = nil
	m.proximitySystem = nil
	m.renderSystem = nil
	m.field = entities.Starfield{}
	m.mounted = false
	m.log.Info("starfield unmounted")
}

// IsMounted 是否已挂载
func (m *StarfieldModule) IsMounted() bool {
	return m.mounted
}

// Update 推进一帧
func (m *StarfieldModule) Update(deltaTime float64) {
	if !m.mounted {
		return
	}
	m.timerSystem.Update(deltaTime)
	m.meteorSystem.Update(deltaTime)
	m.twinkleSystem.Update(deltaTime)
	if m.cfg.Drift.Enabled {
		m.driftSystem.Update(deltaTime)
	}
	if m.cfg.Scroll.Enabled {
		m.scrollSystem.Update(deltaTime)
	}
	m.layoutSystem.Update()
	m.proximitySystem.Update()
}

// Draw 绘制当前状态，不修改任何实体
func (m *StarfieldModule) Draw(surface render.Surface) {
	if !m.mounted || surface == nil {
		return
	}
	m.renderSystem.Draw(surface)
}

// Resize 绘制区域尺寸变化
func (m *StarfieldModule) Resize(width, height int) {
	if !m.mounted || width <= 0 || height <= 0 {
		return
	}
	if w, h := m.layoutSystem.Size(); w == float64(width) && h == float64(height) {
		return
	}
	m.layoutSystem.Resize(float64(width), float64(height))
	m.log.Debug("starfield resized", zap.Int("width", width), zap.Int("height", height))
}

// SetPointer 指针移动（绘制区域像素坐标）
func (m *StarfieldModule) SetPointer(x, y float64) {
	if m.mounted {
		m.proximitySystem.SetPointer(x, y)
	}
}

// ClearPointer 指针离开
func (m *StarfieldModule) ClearPointer() {
	if m.mounted {
		m.proximitySystem.ClearPointer()
	}
}

// SetPointerGlow 开关指针增亮，重新挂载后保持
func (m *StarfieldModule) SetPointerGlow(enabled bool) {
	m.pointerGlow = enabled
	if m.mounted {
		m.proximitySystem.SetEnabled(enabled)
	}
}

// PointerGlow 指针增亮是否开启
func (m *StarfieldModule) PointerGlow() bool {
	return m.pointerGlow
}

// SetConfig 替换星空参数；已挂载时先卸载，由调用方在下一次绘制时重新挂载
func (m *StarfieldModule) SetConfig(cfg config.StarfieldConfig) {
	m.Unmount()
	m.cfg = cfg
	m.pointerGlow = cfg.Pointer.Enabled
}

// Config 返回当前星空参数
func (m *StarfieldModule) Config() config.StarfieldConfig {
	return m.cfg
}

// Seed 返回实际使用的随机种子
func (m *StarfieldModule) Seed() uint64 {
	return m.seed
}

// EntityManager 返回当前挂载的实体管理器，未挂载时为 nil
func (m *StarfieldModule) EntityManager() *ecs.EntityManager {
	return m.entityManager
}

// Field 返回当前挂载创建的实体
func (m *StarfieldModule) Field() entities.Starfield {
	return m.field
}

// MeteorSystem 返回流星系统，未挂载时为 nil
func (m *StarfieldModule) MeteorSystem() *systems.MeteorSystem {
	return m.meteorSystem
}
