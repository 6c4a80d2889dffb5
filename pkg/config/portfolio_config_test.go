package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaultPortfolioConfig 加载仓库自带的配置文件
func TestLoadDefaultPortfolioConfig(t *testing.T) {
	cfg, err := LoadPortfolioConfig(filepath.Join("..", "..", "data", "portfolio.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Hi! I'm Vitto.", cfg.Hero.Title)
	require.Len(t, cfg.Labels, 12)
	assert.Equal(t, "Developer!", cfg.Labels[0].Text)
	assert.Equal(t, 3*time.Second, cfg.Labels[0].Hold)
	assert.Equal(t, "English", cfg.Labels[0].Select)
	assert.Equal(t, "Pengembang!", cfg.Labels[11].Text)

	// 每个标签引用的语言都有颜色
	colors := cfg.LanguageColors()
	for _, l := range cfg.Labels {
		_, ok := colors[l.Select]
		assert.True(t, ok, "missing colour for %s", l.Select)
	}

	require.Len(t, cfg.Projects, 4)
	assert.Equal(t, "E-commerce Platform", cfg.Projects[0].Title)
	assert.Equal(t, []string{"Next.js", "TypeScript", "Stripe", "Tailwind CSS"}, cfg.Projects[0].Tags)

	assert.Equal(t, PresetCanvas, cfg.Starfield.Preset)
	assert.Equal(t, DefaultStarCount, cfg.Starfield.StarCount)
	assert.Equal(t, 10*time.Second, cfg.Starfield.Meteor.Interval)
	// 未写出的字段沿用预设
	assert.Equal(t, 20, cfg.Starfield.Meteor.TrailSegments)
	assert.Equal(t, 70*time.Millisecond, cfg.Hero.TypingDelay)
}

func TestParsePortfolioConfigDefaults(t *testing.T) {
	src := `
labels:
  - text: "Hello"
projects:
  - id: 1
    title: "  No image  "
  - id: 2
    title: "Linked"
    image: "cover.png"
    url: "https://example.com/project"
    tags: [Go, Ebitengine]
`
	cfg, err := ParsePortfolioConfig([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, DefaultLabelHold, cfg.Labels[0].Hold)
	assert.Equal(t, "No image", cfg.Projects[0].Title)
	assert.Equal(t, PlaceholderImage, cfg.Projects[0].Image)
	assert.NotNil(t, cfg.Projects[0].Tags)
	assert.False(t, cfg.Projects[0].HasLink())
	assert.True(t, cfg.Projects[1].HasLink())
	assert.Equal(t, "My Projects", cfg.ProjectsTitle)
	// 没有 starfield 段时使用 canvas 预设
	assert.Equal(t, CanvasPreset(), cfg.Starfield)
}

func TestParsePortfolioConfigValidation(t *testing.T) {
	src := `
labels:
  - text: ""
languages:
  English: "blue"
projects:
  - id: 1
    title: ""
  - id: 1
    title: "Relative"
    url: "/projects/relative"
  - id: 3
    title: "FTP"
    url: "ftp://example.com"
social:
  github: "github.com/someone"
starfield:
  preset: canvas
  starCount: 0
  meteor:
    count: 3
`
	_, err := ParsePortfolioConfig([]byte(src))
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrEmptyTitle))
	assert.True(t, errors.Is(err, ErrInvalidURL))
	assert.True(t, errors.Is(err, ErrEmptyLabel))
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Contains(t, err.Error(), "languages[English]")
	assert.Contains(t, err.Error(), "starCount must be positive")
	assert.Contains(t, err.Error(), "meteor.count must be within [0 2]")
}

func TestParsePortfolioConfigRequiresLabels(t *testing.T) {
	_, err := ParsePortfolioConfig([]byte("projects: []\n"))
	assert.ErrorIs(t, err, ErrNoLabels)
}

func TestParsePortfolioConfigUnknownPreset(t *testing.T) {
	_, err := ParsePortfolioConfig([]byte("labels: [{text: a}]\nstarfield:\n  preset: dom\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown starfield preset "dom"`)
}

func TestLoadPortfolioConfigMissingFile(t *testing.T) {
	_, err := LoadPortfolioConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestIsExternalURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://github.com/", true},
		{"http://example.com/a?b=c", true},
		{"/relative/path", false},
		{"github.com/user", false},
		{"mailto:me@example.com", false},
		{"https://", false},
		{"::not a url", false},
	}
	for _, tt := range tests {
		if got := IsExternalURL(tt.url); got != tt.want {
			t.Errorf("IsExternalURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestIsPlaceholderImage(t *testing.T) {
	assert.True(t, IsPlaceholderImage(""))
	assert.True(t, IsPlaceholderImage("placeholder.svg"))
	assert.True(t, IsPlaceholderImage("/placeholder.svg?height=300&width=400"))
	assert.False(t, IsPlaceholderImage("images/cover.png"))
}

func TestLanguageColors(t *testing.T) {
	cfg := &PortfolioConfig{Languages: map[string]string{"English": "#3b82f6", "Broken": "blue"}}
	colors := cfg.LanguageColors()
	require.Len(t, colors, 1)
	assert.Equal(t, uint8(0x3b), colors["English"].R)
	assert.Equal(t, uint8(0xff), colors["English"].A)
}

func TestStarfieldPresetKeepsFileTuning(t *testing.T) {
	cfg, err := ParsePortfolioConfig([]byte(`
labels: [{ text: "Dev" }]
starfield: { preset: ambient, starCount: 40 }
`))
	require.NoError(t, err)

	for _, name := range []string{"", PresetAmbient} {
		sf, err := cfg.StarfieldPreset(name)
		require.NoError(t, err)
		assert.Equal(t, PresetAmbient, sf.Preset)
		assert.Equal(t, 40, sf.StarCount, "preset %q", name)
	}

	sf, err := cfg.StarfieldPreset(PresetCanvas)
	require.NoError(t, err)
	assert.Equal(t, CanvasPreset(), sf)

	_, err = cfg.StarfieldPreset("dom")
	assert.Error(t, err)
}
