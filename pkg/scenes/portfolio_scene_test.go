package scenes

import (
	"testing"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContent = `
hero:
  title: "Hi!"
  prefix: "I am a "
labels:
  - { text: "Dev", select: English }
languages:
  English: "#3b82f6"
projects:
  - { id: 1, title: "Alpha", url: "https://example.com/alpha" }
`

func newTestScene(t *testing.T, updates <-chan *config.PortfolioConfig) *PortfolioScene {
	t.Helper()
	cfg, err := config.ParsePortfolioConfig([]byte(testContent))
	require.NoError(t, err)
	return NewPortfolioScene(PortfolioSceneOptions{
		Content:  cfg,
		Settings: game.NewSettingsManager(nil),
		Opener:   &utils.RecordingOpener{},
		Updates:  updates,
		Seed:     42,
	})
}

func TestNewPortfolioScene(t *testing.T) {
	s := newTestScene(t, nil)

	assert.False(t, s.Starfield().IsMounted(), "starfield mounts on first draw")
	assert.Equal(t, uint64(42), s.Starfield().Seed())
	assert.Equal(t, config.PresetCanvas, s.Starfield().Config().Preset)
	assert.True(t, s.Starfield().PointerGlow())
	assert.Len(t, s.Page().Cards(), 1)
}

func TestPortfolioSceneUsesSavedPreset(t *testing.T) {
	cfg, err := config.ParsePortfolioConfig([]byte(testContent))
	require.NoError(t, err)
	settings := game.NewSettingsManager(nil)
	require.NoError(t, settings.SetPreset(config.PresetAmbient))
	settings.SetPointerGlow(false)

	s := NewPortfolioScene(PortfolioSceneOptions{Content: cfg, Settings: settings, Opener: &utils.RecordingOpener{}})
	assert.Equal(t, config.PresetAmbient, s.Starfield().Config().Preset)
	assert.False(t, s.Starfield().PointerGlow())
}

const ambientContent = `
labels: [{ text: "Dev" }]
starfield: { preset: ambient, starCount: 40 }
`

func TestPortfolioSceneUsesConfigPresetWithoutSavedSettings(t *testing.T) {
	cfg, err := config.ParsePortfolioConfig([]byte(ambientContent))
	require.NoError(t, err)
	s := NewPortfolioScene(PortfolioSceneOptions{
		Content:  cfg,
		Settings: game.NewSettingsManager(nil),
		Opener:   &utils.RecordingOpener{},
	})

	assert.Equal(t, config.PresetAmbient, s.Starfield().Config().Preset)
	require.True(t, s.Starfield().Mount(render.NewRecorder(800, 600)))
	stars := ecs.GetEntitiesWith1[*components.StarComponent](s.Starfield().EntityManager())
	assert.Len(t, stars, 40)
}

func TestPortfolioSceneNextPresetRestoresConfigTuning(t *testing.T) {
	cfg, err := config.ParsePortfolioConfig([]byte(ambientContent))
	require.NoError(t, err)
	s := NewPortfolioScene(PortfolioSceneOptions{
		Content:  cfg,
		Settings: game.NewSettingsManager(nil),
		Opener:   &utils.RecordingOpener{},
	})

	s.NextPreset()
	assert.Equal(t, config.CanvasPreset(), s.Starfield().Config())

	s.NextPreset()
	assert.Equal(t, config.PresetAmbient, s.Starfield().Config().Preset)
	assert.Equal(t, 40, s.Starfield().Config().StarCount, "switching back keeps the file's tuning")
}

func TestPortfolioSceneReloadFollowsConfigPreset(t *testing.T) {
	updates := make(chan *config.PortfolioConfig, 1)
	s := newTestScene(t, updates)
	require.Equal(t, config.PresetCanvas, s.Starfield().Config().Preset)

	reloaded, err := config.ParsePortfolioConfig([]byte(ambientContent))
	require.NoError(t, err)
	updates <- reloaded
	s.applyUpdates()
	assert.Equal(t, 40, s.Starfield().Config().StarCount)

	// 保存过的预设不跟随文件
	s.NextPreset()
	require.Equal(t, config.PresetCanvas, s.Starfield().Config().Preset)
	updates <- reloaded
	s.applyUpdates()
	assert.Equal(t, config.PresetCanvas, s.Starfield().Config().Preset)
}

func TestPortfolioSceneResize(t *testing.T) {
	s := newTestScene(t, nil)
	s.Resize(1280, 800)
	w, h := s.Page().Size()
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 800.0, h)

	s.Resize(0, 0)
	w, _ = s.Page().Size()
	assert.Equal(t, 1280.0, w, "zero size is ignored")
}

func TestPortfolioSceneTogglePointerGlow(t *testing.T) {
	s := newTestScene(t, nil)

	s.TogglePointerGlow()
	assert.False(t, s.Starfield().PointerGlow())
	assert.False(t, s.settingsManager.GetSettings().PointerGlow)

	s.TogglePointerGlow()
	assert.True(t, s.Starfield().PointerGlow())
}

func TestPortfolioSceneNextPreset(t *testing.T) {
	s := newTestScene(t, nil)
	s.TogglePointerGlow()

	s.NextPreset()
	assert.Equal(t, config.PresetAmbient, s.Starfield().Config().Preset)
	assert.Equal(t, config.PresetAmbient, s.settingsManager.GetSettings().Preset)
	assert.False(t, s.Starfield().PointerGlow(), "glow setting survives preset switch")

	s.NextPreset()
	assert.Equal(t, config.PresetCanvas, s.Starfield().Config().Preset)
}

func TestPortfolioSceneAppliesReload(t *testing.T) {
	updates := make(chan *config.PortfolioConfig, 1)
	s := newTestScene(t, updates)

	reloaded, err := config.ParsePortfolioConfig([]byte(`
labels: [{ text: "New" }]
projects:
  - { id: 1, title: "One" }
  - { id: 2, title: "Two" }
`))
	require.NoError(t, err)
	updates <- reloaded
	s.applyUpdates()

	cards := s.Page().Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "Two", cards[1].Project.Title)

	// 没有新配置时不阻塞
	s.applyUpdates()

	close(updates)
	s.applyUpdates()
	assert.Nil(t, s.updates)
}

func TestPortfolioSceneOnExitUnmounts(t *testing.T) {
	s := newTestScene(t, nil)
	s.OnEnter()
	s.OnExit()
	assert.False(t, s.Starfield().IsMounted())
}
