package game

import (
	"fmt"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Settings 用户设置
// 只保存显示偏好，星空状态每次挂载重新生成，不持久化
type Settings struct {
	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏

	// 背景设置
	Preset      string `yaml:"preset"`      // 星空预设：canvas / ambient，空表示沿用配置文件
	PointerGlow bool   `yaml:"pointerGlow"` // 指针邻近增亮开关
	Seed        uint64 `yaml:"seed"`        // 随机种子，0 表示每次随机
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		Fullscreen:  false,
		Preset:      "",
		PointerGlow: true,
		Seed:        0,
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *Settings      // 当前设置
	log          *zap.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例，加载失败时使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		log:          logging.Named("SettingsManager"),
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		sm.log.Warn("failed to load settings, using defaults", zap.Error(err))
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置；
// 未知的预设名被丢弃，回退为沿用配置文件
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	// 降级模式：无法持久化
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if _, err := config.PresetByName(loaded.Preset); err != nil {
		sm.log.Warn("unknown preset in settings", zap.String("preset", loaded.Preset))
		loaded.Preset = ""
	}

	sm.settings = loaded
	sm.log.Debug("settings loaded", zap.String("preset", loaded.Preset), zap.Bool("pointerGlow", loaded.PointerGlow))
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.log.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetPointerGlow 设置指针邻近增亮
func (sm *SettingsManager) SetPointerGlow(enabled bool) {
	sm.settings.PointerGlow = enabled
}

// SetSeed 设置随机种子
func (sm *SettingsManager) SetSeed(seed uint64) {
	sm.settings.Seed = seed
}

// SetPreset 设置星空预设，空字符串表示沿用配置文件中的预设
//
// 返回：
//   - error: 预设名未知时返回错误，设置保持不变
func (sm *SettingsManager) SetPreset(name string) error {
	if _, err := config.PresetByName(name); err != nil {
		return err
	}
	sm.settings.Preset = name
	return nil
}

// NextPreset 从正在运行的预设 current 切换到下一个，保存到设置并返回其名称
func (sm *SettingsManager) NextPreset(current string) string {
	names := config.PresetNames()
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	sm.settings.Preset = next
	return next
}
