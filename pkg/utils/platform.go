//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 1 时桌面端按移动端方式运行（本地调试触摸交互）
const MobileEmulateEnv = "PORTFOLIO_MOBILE_EMULATE"

// IsMobile 桌面端编译时返回 false，除非设置了 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
