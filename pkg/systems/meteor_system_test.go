package systems

import (
	"testing"
	"time"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeteorFixture(t *testing.T, count int) (*ecs.EntityManager, *TimerSystem, *MeteorSystem, []ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	var ids []ecs.EntityID
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.MeteorComponent{State: components.MeteorIdle})
		ids = append(ids, id)
	}
	cfg := config.CanvasPreset().Meteor
	return em, NewTimerSystem(em), NewMeteorSystem(em, newTestRNG(), cfg), ids
}

func meteorOf(em *ecs.EntityManager, id ecs.EntityID) *components.MeteorComponent {
	m, _ := ecs.GetComponent[*components.MeteorComponent](em, id)
	return m
}

// step 推进 seconds 秒（60fps）
func step(timers *TimerSystem, meteors *MeteorSystem, seconds float64, each func()) {
	frames := int(seconds / config.ReferenceFrameTime)
	for i := 0; i < frames; i++ {
		timers.Update(config.ReferenceFrameTime)
		meteors.Update(config.ReferenceFrameTime)
		if each != nil {
			each()
		}
	}
}

func TestMeteorActivateFirstIdle(t *testing.T) {
	em, _, system, ids := newMeteorFixture(t, 2)

	require.True(t, system.Activate())
	assert.Equal(t, components.MeteorActive, meteorOf(em, ids[0]).State)
	assert.Equal(t, components.MeteorIdle, meteorOf(em, ids[1]).State)

	require.True(t, system.Activate())
	assert.Equal(t, components.MeteorActive, meteorOf(em, ids[1]).State)

	// 全部激活中时不再激活，已激活的不会被重置
	meteorOf(em, ids[0]).Elapsed = 3
	assert.False(t, system.Activate())
	assert.Equal(t, 3.0, meteorOf(em, ids[0]).Elapsed)
	assert.Equal(t, 1, meteorOf(em, ids[0]).Activations)
	assert.Equal(t, 2, system.ActiveCount())
}

func TestMeteorSpawnTopWithinRange(t *testing.T) {
	em, _, system, ids := newMeteorFixture(t, 1)
	spawn := config.CanvasPreset().Meteor.SpawnTop

	for i := 0; i < 20; i++ {
		require.True(t, system.Activate())
		m := meteorOf(em, ids[0])
		assert.True(t, spawn.Contains(m.SpawnTop), "spawnTop %v outside %v", m.SpawnTop, spawn)
		m.State = components.MeteorIdle
	}
}

// TestMeteorSchedule 10 秒扫描一次，激活 8 秒后回到空闲
func TestMeteorSchedule(t *testing.T) {
	em, timers, system, ids := newMeteorFixture(t, 2)

	step(timers, system, 9.9, nil)
	assert.Equal(t, 0, system.ActiveCount(), "no meteor before the first period")

	step(timers, system, 0.2, nil)
	require.Equal(t, 1, system.ActiveCount())
	assert.Equal(t, components.MeteorActive, meteorOf(em, ids[0]).State)

	step(timers, system, 7.7, nil)
	assert.Equal(t, components.MeteorActive, meteorOf(em, ids[0]).State)

	step(timers, system, 0.3, nil)
	assert.Equal(t, components.MeteorIdle, meteorOf(em, ids[0]).State)
	assert.False(t, ecs.HasComponent[*components.TimerComponent](em, ids[0]), "return timer removed")

	// 第二个周期重新激活编号最小的空闲流星
	step(timers, system, 2, nil)
	assert.Equal(t, components.MeteorActive, meteorOf(em, ids[0]).State)
	assert.Equal(t, 2, meteorOf(em, ids[0]).Activations)
	assert.Equal(t, components.MeteorIdle, meteorOf(em, ids[1]).State)
}

// TestMeteorInvariantsOverTime 长时间运行：数量不超过上限，激活中的流星不会被重新激活
func TestMeteorInvariantsOverTime(t *testing.T) {
	em := ecs.NewEntityManager()
	var ids []ecs.EntityID
	for i := 0; i < config.MaxMeteors; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.MeteorComponent{})
		ids = append(ids, id)
	}
	cfg := config.CanvasPreset().Meteor
	// 激活时长大于周期，两颗流星会同时处于激活状态
	cfg.Interval = 2 * time.Second
	cfg.ActiveDuration = 5 * time.Second
	timers := NewTimerSystem(em)
	system := NewMeteorSystem(em, newTestRNG(), cfg)

	prev := make(map[ecs.EntityID]components.MeteorComponent)
	maxActive := 0
	step(timers, system, 120, func() {
		active := system.ActiveCount()
		if active > config.MaxMeteors {
			t.Fatalf("active meteors %d exceeds %d", active, config.MaxMeteors)
		}
		maxActive = max(maxActive, active)

		for _, id := range ids {
			m := *meteorOf(em, id)
			p, seen := prev[id]
			if seen && p.State == components.MeteorActive && m.State == components.MeteorActive && m.Activations != p.Activations {
				t.Fatalf("meteor %d re-activated while active", id)
			}
			prev[id] = m
		}
	})

	assert.Equal(t, config.MaxMeteors, maxActive)
	assert.Len(t, ecs.GetEntitiesWith1[*components.MeteorComponent](em), config.MaxMeteors)
}

func TestMeteorHeadTrajectory(t *testing.T) {
	const w, h, margin = 1280.0, 800.0, 200.0
	m := &components.MeteorComponent{State: components.MeteorActive, SpawnTop: 0.25, Duration: 8}

	x, y := MeteorHead(m, margin, w, h)
	assert.Less(t, x, 0.0, "starts off-screen left")
	assert.Equal(t, 0.25*h-margin, y)

	m.Elapsed = 8
	x, _ = MeteorHead(m, margin, w, h)
	assert.Greater(t, x, w, "ends off-screen right")

	// 45° 直线
	m.Elapsed = 4
	x2, y2 := MeteorHead(m, margin, w, h)
	assert.InDelta(t, x2+margin, y2-(0.25*h-margin), 1e-9)
}
