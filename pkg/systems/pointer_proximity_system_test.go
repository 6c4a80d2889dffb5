package systems

import (
	"testing"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestProximity(t *testing.T) {
	cfg := config.DefaultPointerConfig()

	tests := []struct {
		name     string
		distance float64
		base     float64
		want     components.StarAppearanceComponent
	}{
		{"outside radius", 200, 0.5, components.StarAppearanceComponent{Opacity: 0.5, Scale: 1}},
		{"exactly at radius", 150, 0.5, components.StarAppearanceComponent{Opacity: 0.5, Scale: 1}},
		{"on top of star", 0, 0.5, components.StarAppearanceComponent{Opacity: 1, Glow: 15, Scale: 1.5}},
		{"on top of dim star", 0, 0.2, components.StarAppearanceComponent{Opacity: 0.9, Glow: 15, Scale: 1.5}},
		{"half radius", 75, 0.3, components.StarAppearanceComponent{Opacity: 0.65, Glow: 7.5, Scale: 1.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Proximity(100, 100, tt.base, 100+tt.distance, 100, cfg)
			assert.InDelta(t, tt.want.Opacity, got.Opacity, 1e-9)
			assert.InDelta(t, tt.want.Glow, got.Glow, 1e-9)
			assert.InDelta(t, tt.want.Scale, got.Scale, 1e-9)
		})
	}
}

func TestProximityConfigurable(t *testing.T) {
	cfg := config.PointerConfig{Enabled: true, InfluenceRadius: 300, OpacityBoost: 0.2, MaxGlowBlur: 30, ScaleBoost: 1}
	got := Proximity(0, 0, 0.4, 0, 0, cfg)
	assert.InDelta(t, 0.6, got.Opacity, 1e-9)
	assert.InDelta(t, 30, got.Glow, 1e-9)
	assert.InDelta(t, 2, got.Scale, 1e-9)

	// 对角线距离 200 < 300
	got = Proximity(0, 0, 0.4, 120, 160, cfg)
	assert.Greater(t, got.Glow, 0.0)
}

func TestPointerProximitySystem(t *testing.T) {
	em := ecs.NewEntityManager()
	near := addStar(em, 0.1, 0.1, 1000, 1000, components.StarComponent{Radius: 1, Opacity: 0.5})
	far := addStar(em, 0.9, 0.9, 1000, 1000, components.StarComponent{Radius: 1, Opacity: 0.4})

	system := NewPointerProximitySystem(em, config.DefaultPointerConfig())
	appearance := func(id ecs.EntityID) components.StarAppearanceComponent {
		a, _ := ecs.GetComponent[*components.StarAppearanceComponent](em, id)
		return *a
	}

	// 没有指针时为基准值
	system.Update()
	assert.Equal(t, components.StarAppearanceComponent{Opacity: 0.5, Scale: 1}, appearance(near))

	system.SetPointer(100, 100)
	system.Update()
	assert.Equal(t, 1.0, appearance(near).Opacity)
	assert.Equal(t, 15.0, appearance(near).Glow)
	assert.Equal(t, components.StarAppearanceComponent{Opacity: 0.4, Scale: 1}, appearance(far))
	// 基准透明度不变
	assert.Equal(t, 0.5, starOf(em, near).Opacity)

	system.SetEnabled(false)
	system.Update()
	assert.Equal(t, components.StarAppearanceComponent{Opacity: 0.5, Scale: 1}, appearance(near))

	system.SetEnabled(true)
	system.ClearPointer()
	system.Update()
	assert.Zero(t, appearance(near).Glow)
}

// TestPointerProximityUsesDriftOffset 邻近计算使用漂浮后的位置
func TestPointerProximityUsesDriftOffset(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addStar(em, 0.5, 0.5, 400, 400, components.StarComponent{Radius: 1, Opacity: 0.5, OffsetX: 10})

	system := NewPointerProximitySystem(em, config.DefaultPointerConfig())
	system.SetPointer(210, 200)
	system.Update()

	a, _ := ecs.GetComponent[*components.StarAppearanceComponent](em, id)
	assert.Equal(t, 15.0, a.Glow)
}
