package components

// 社交徽章名称
const (
	SocialLinkedIn = "LinkedIn"
	SocialGitHub   = "GitHub"
)

// SocialLinkComponent 社交徽章
//
// 外圈虚线环持续旋转，Direction 为 +1 顺时针、-1 逆时针
type SocialLinkComponent struct {
	Name   string
	Radius float64

	RingAngle  float64 // 当前角度（弧度）
	RingPeriod float64 // 旋转一周的秒数
	Direction  float64
}
