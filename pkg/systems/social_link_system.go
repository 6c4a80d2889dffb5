package systems

import (
	"math"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

// SocialLinkSystem 旋转社交徽章的虚线环
type SocialLinkSystem struct {
	entityManager *ecs.EntityManager
}

// NewSocialLinkSystem 创建徽章系统
func NewSocialLinkSystem(em *ecs.EntityManager) *SocialLinkSystem {
	return &SocialLinkSystem{entityManager: em}
}

// Update 按方向推进环的角度，保持在 [0, 2π)
func (s *SocialLinkSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.SocialLinkComponent](s.entityManager) {
		link, _ := ecs.GetComponent[*components.SocialLinkComponent](s.entityManager, id)
		if link.RingPeriod <= 0 {
			continue
		}
		angle := link.RingAngle + link.Direction*2*math.Pi*deltaTime/link.RingPeriod
		angle = math.Mod(angle, 2*math.Pi)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		link.RingAngle = angle
	}
}
