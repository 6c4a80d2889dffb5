package game

import (
	"testing"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestGdata 在临时 HOME 下打开 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: appName})
	require.NoError(t, err, "failed to create gdata manager")
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.False(t, settings.Fullscreen)
	assert.Empty(t, settings.Preset, "no saved preset means the config file decides")
	assert.True(t, settings.PointerGlow)
	assert.Zero(t, settings.Seed)
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	require.NotNil(t, sm)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())

	// 降级模式下保存不报错
	sm.SetFullscreen(true)
	assert.NoError(t, sm.Save())
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "portfolio_test_settings")

	sm1 := NewSettingsManager(m)
	sm1.SetFullscreen(true)
	sm1.SetPointerGlow(false)
	sm1.SetSeed(42)
	require.NoError(t, sm1.SetPreset(config.PresetAmbient))
	require.NoError(t, sm1.Save())

	sm2 := NewSettingsManager(m)
	assert.Equal(t, &Settings{
		Fullscreen:  true,
		Preset:      config.PresetAmbient,
		PointerGlow: false,
		Seed:        42,
	}, sm2.GetSettings())
}

// TestSettingsLoadCorrupted 测试损坏的设置文件回退为默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	m := openTestGdata(t, "portfolio_test_corrupted")
	require.NoError(t, m.SaveObjectProp(settingsObject, settingsProperty, []byte("preset: [unterminated")))

	sm := NewSettingsManager(m)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())
	assert.Error(t, sm.Load())
}

// TestSettingsLoadUnknownPreset 测试未知预设被丢弃，回退为沿用配置文件
func TestSettingsLoadUnknownPreset(t *testing.T) {
	m := openTestGdata(t, "portfolio_test_unknown_preset")
	require.NoError(t, m.SaveObjectProp(settingsObject, settingsProperty, []byte("preset: dom\npointerGlow: false\n")))

	sm := NewSettingsManager(m)
	assert.Empty(t, sm.GetSettings().Preset)
	assert.False(t, sm.GetSettings().PointerGlow)
}

// TestSetPreset 测试预设校验与循环切换
func TestSetPreset(t *testing.T) {
	sm := NewSettingsManager(nil)

	assert.Error(t, sm.SetPreset("dom"))
	assert.Empty(t, sm.GetSettings().Preset)

	// 从正在运行的预设开始循环，而不是从保存的值
	assert.Equal(t, config.PresetCanvas, sm.NextPreset(config.PresetAmbient))
	assert.Equal(t, config.PresetCanvas, sm.GetSettings().Preset)
	assert.Equal(t, config.PresetAmbient, sm.NextPreset(config.PresetCanvas))

	require.NoError(t, sm.SetPreset(""))
	assert.Empty(t, sm.GetSettings().Preset)
}
