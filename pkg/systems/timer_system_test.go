package systems

import (
	"testing"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

func TestTimerSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TimerComponent{Name: "once", TargetTime: 1})

	system := NewTimerSystem(em)
	timer, _ := ecs.GetComponent[*components.TimerComponent](em, id)

	system.Update(0.5)
	if timer.IsReady {
		t.Fatal("timer should not be ready at 0.5s")
	}
	if Consume(timer) {
		t.Fatal("Consume should return false before ready")
	}

	system.Update(0.5)
	if !timer.IsReady {
		t.Fatal("timer should be ready at 1s")
	}
	if !Consume(timer) {
		t.Fatal("Consume should return true when ready")
	}
	// 非重复计时器保持完成状态
	if !timer.IsReady {
		t.Error("one-shot timer should stay ready")
	}
}

func TestTimerRepeatKeepsRemainder(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TimerComponent{Name: "repeat", TargetTime: 1, Repeat: true})

	system := NewTimerSystem(em)
	timer, _ := ecs.GetComponent[*components.TimerComponent](em, id)

	system.Update(1.25)
	if !Consume(timer) {
		t.Fatal("expected first period to fire")
	}
	if timer.IsReady || timer.CurrentTime != 0.25 {
		t.Errorf("expected remainder 0.25 and not ready, got %v ready=%v", timer.CurrentTime, timer.IsReady)
	}

	system.Update(0.75)
	if !Consume(timer) {
		t.Error("expected second period to fire at 2s")
	}
}
