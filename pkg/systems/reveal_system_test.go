package systems

import (
	"testing"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVisibleFraction 测试收缩后视口内的可见比例
func TestVisibleFraction(t *testing.T) {
	const vh = 800.0
	rect := config.Rect{Y: 1000, H: 400}

	tests := []struct {
		name    string
		scrollY float64
		want    float64
	}{
		{"below the fold", 0, 0},
		{"top edge at shrunken bottom", 300, 0},
		{"quarter visible", 400, 0.25},
		{"fully visible", 1000, 1},
		{"scrolled past", 1500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VisibleFraction(rect, tt.scrollY, vh), 1e-9)
		})
	}

	assert.Zero(t, VisibleFraction(config.Rect{Y: 10}, 0, vh), "zero-height rect")
}

// TestRevealOnce 测试卡片进入视口后只出现一次且不回退
func TestRevealOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := entities.NewCardGrid(em, testProjects()[:1], 1280, 800)
	reveal, ok := ecs.GetComponent[*components.RevealComponent](em, ids[0])
	require.True(t, ok)
	card, _ := ecs.GetComponent[*components.CardComponent](em, ids[0])

	system := NewRevealSystem(em)

	system.Update(0.1, 0, 800)
	assert.False(t, reveal.Revealed, "card starts below the hero")
	opacity, offset := RevealVisual(reveal)
	assert.Zero(t, opacity)
	assert.Equal(t, config.CardRevealOffsetY, offset)

	// 滚动到卡片顶部进入视口一半
	system.Update(0.1, card.Rect.Y-400, 800)
	require.True(t, reveal.Revealed)

	for i := 0; i < 60; i++ {
		system.Update(config.ReferenceFrameTime, card.Rect.Y-400, 800)
	}
	opacity, offset = RevealVisual(reveal)
	assert.InDelta(t, 1, opacity, 1e-9)
	assert.InDelta(t, 0, offset, 1e-9)

	// 滚回顶部后保持已出现
	system.Update(0.1, 0, 800)
	assert.True(t, reveal.Revealed)
	assert.Equal(t, 1.0, reveal.Progress())
}

// TestRevealEaseOut 测试出现动画前快后慢
func TestRevealEaseOut(t *testing.T) {
	reveal := &components.RevealComponent{Revealed: true, Duration: 0.7, OffsetY: 60, Elapsed: 0.35}
	opacity, offset := RevealVisual(reveal)
	assert.InDelta(t, 0.875, opacity, 1e-9)
	assert.InDelta(t, 7.5, offset, 1e-9)
}
