package systems

import (
	"math/rand/v2"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/logging"
	"go.uber.org/zap"
)

// 计时器名称
const (
	MeteorSpawnTimer  = "meteor_spawn"
	MeteorReturnTimer = "meteor_return"
)

// MeteorSystem 流星状态机
//
//   - idle → active: 每个扫描周期最多激活一颗空闲流星（编号最小者）
//   - active → idle: 激活时挂上返回计时器，到时回到空闲
//
// 激活中的流星不会被再次激活
type MeteorSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	cfg           config.MeteorConfig
	log           *zap.Logger

	// spawner 持有周期扫描计时器的实体
	spawner ecs.EntityID
}

// NewMeteorSystem 创建流星系统，并创建周期扫描计时器
func NewMeteorSystem(em *ecs.EntityManager, rng *rand.Rand, cfg config.MeteorConfig) *MeteorSystem {
	s := &MeteorSystem{
		entityManager: em,
		rng:           rng,
		cfg:           cfg,
		log:           logging.Named("MeteorSystem"),
	}

	s.spawner = em.CreateEntity()
	ecs.AddComponent(em, s.spawner, &components.TimerComponent{
		Name:       MeteorSpawnTimer,
		TargetTime: cfg.Interval.Seconds(),
		Repeat:     true,
	})

	return s
}

// Update 推进激活中的流星，处理到时返回和周期扫描
//
// 计时器由 TimerSystem 在此之前推进
func (s *MeteorSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.MeteorComponent](s.entityManager) {
		meteor, _ := ecs.GetComponent[*components.MeteorComponent](s.entityManager, id)
		if meteor.State != components.MeteorActive {
			continue
		}
		meteor.Elapsed = min(meteor.Elapsed+deltaTime, meteor.Duration)

		if timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id); ok && timer.IsReady {
			s.deactivate(id, meteor)
		}
	}

	if timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, s.spawner); ok && Consume(timer) {
		s.Activate()
	}
}

// Activate 激活第一颗空闲流星
//
// 返回是否有流星被激活；全部激活中时什么也不做
func (s *MeteorSystem) Activate() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.MeteorComponent](s.entityManager) {
		meteor, _ := ecs.GetComponent[*components.MeteorComponent](s.entityManager, id)
		if meteor.State != components.MeteorIdle {
			continue
		}

		meteor.State = components.MeteorActive
		meteor.SpawnTop = s.cfg.SpawnTop.Random(s.rng)
		meteor.Elapsed = 0
		meteor.Duration = s.cfg.ActiveDuration.Seconds()
		meteor.Activations++

		ecs.AddComponent(s.entityManager, id, &components.TimerComponent{
			Name:       MeteorReturnTimer,
			TargetTime: meteor.Duration,
		})

		s.log.Debug("meteor activated",
			zap.Uint64("id", uint64(id)),
			zap.Float64("spawnTop", meteor.SpawnTop),
			zap.Int("activations", meteor.Activations))
		return true
	}
	return false
}

func (s *MeteorSystem) deactivate(id ecs.EntityID, meteor *components.MeteorComponent) {
	meteor.State = components.MeteorIdle
	meteor.Elapsed = 0
	ecs.RemoveComponent[*components.TimerComponent](s.entityManager, id)
	s.log.Debug("meteor returned to idle", zap.Uint64("id", uint64(id)))
}

// ActiveCount 返回激活中的流星数量
func (s *MeteorSystem) ActiveCount() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.MeteorComponent](s.entityManager) {
		meteor, _ := ecs.GetComponent[*components.MeteorComponent](s.entityManager, id)
		if meteor.State == components.MeteorActive {
			n++
		}
	}
	return n
}

// MeteorHead 返回流星头部的像素坐标
//
// 轨迹固定为 45° 直线：从左上屏幕外 (-margin, spawnTop*h - margin)
// 在激活时长内移动到右侧屏幕外 (w + margin, ...)
func MeteorHead(meteor *components.MeteorComponent, margin, width, height float64) (float64, float64) {
	span := width + 2*margin
	p := meteor.Progress()
	x := -margin + p*span
	y := meteor.SpawnTop*height - margin + p*span
	return x, y
}
