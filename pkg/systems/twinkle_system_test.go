package systems

import (
	"testing"
	"time"

	"github.com/decker502/portfolio/internal/particle"
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
)

// TestTwinkleStaysWithinBounds 两种模式下透明度始终在范围内
func TestTwinkleStaysWithinBounds(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.TwinkleConfig
		bounds particle.Range
	}{
		{
			name:   "ambient walk",
			cfg:    config.AmbientPreset().Twinkle,
			bounds: particle.Range{Min: 0.3, Max: 0.8},
		},
		{
			name:   "canvas pulse",
			cfg:    config.CanvasPreset().Twinkle,
			bounds: particle.Range{Min: 0.2, Max: 1.0},
		},
		{
			name: "walk with oversized step",
			cfg: config.TwinkleConfig{
				Mode:     config.TwinkleWalk,
				Interval: 100 * time.Millisecond,
				Step:     5,
			},
			bounds: particle.Range{Min: 0.3, Max: 0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			rng := newTestRNG()
			var ids []ecs.EntityID
			for i := 0; i < 50; i++ {
				ids = append(ids, addStar(em, 0.5, 0.5, 100, 100, starWithRate(tt.bounds.Random(rng), 0.05+float64(i)*0.02)))
			}

			system := NewTwinkleSystem(em, rng, tt.cfg, tt.bounds)
			for frame := 0; frame < 3000; frame++ {
				system.Update(config.ReferenceFrameTime)
				for _, id := range ids {
					if o := starOf(em, id).Opacity; !tt.bounds.Contains(o) {
						t.Fatalf("frame %d: opacity %v outside %v", frame, o, tt.bounds)
					}
				}
			}
		})
	}
}

func starWithRate(opacity, rate float64) components.StarComponent {
	return components.StarComponent{Radius: 1, Opacity: opacity, TwinkleRate: rate, TwinkleDirection: 1}
}

// TestTwinkleWalkCadence walk 模式只在节拍到达时改变透明度
func TestTwinkleWalkCadence(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addStar(em, 0, 0, 1, 1, starWithRate(0.5, 1))

	cfg := config.AmbientPreset().Twinkle
	system := NewTwinkleSystem(em, newTestRNG(), cfg, particle.Range{Min: 0.3, Max: 0.8})

	system.Update(0.05)
	if got := starOf(em, id).Opacity; got != 0.5 {
		t.Errorf("opacity changed before first tick: %v", got)
	}

	changed := false
	for i := 0; i < 10; i++ {
		system.Update(0.05)
		if starOf(em, id).Opacity != 0.5 {
			changed = true
		}
	}
	if !changed {
		t.Error("opacity never changed after several ticks")
	}
}

// TestTwinklePulseReverses pulse 模式碰到上界后反向
func TestTwinklePulseReverses(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addStar(em, 0, 0, 1, 1, starWithRate(0.995, 0.01))

	bounds := particle.Range{Min: 0.2, Max: 1}
	system := NewTwinkleSystem(em, newTestRNG(), config.CanvasPreset().Twinkle, bounds)

	system.Update(config.ReferenceFrameTime)
	star := starOf(em, id)
	if star.Opacity != 1 {
		t.Errorf("expected opacity clamped to 1, got %v", star.Opacity)
	}
	if star.TwinkleDirection != -1 {
		t.Errorf("expected direction -1 after hitting max, got %v", star.TwinkleDirection)
	}

	system.Update(config.ReferenceFrameTime)
	if got := starOf(em, id).Opacity; got >= 1 {
		t.Errorf("expected opacity to decrease, got %v", got)
	}
}
