package utils

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// OpenStorage 打开设置存储
//
// 参数:
//   - appName: 存储目录使用的应用名
//
// 返回:
//   - *gdata.Manager: 存储管理器
//   - error: 目录不可用或 gdata 打开失败时返回错误，调用方可降级为仅内存设置
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := EnsureStorageDir(); err != nil {
		return nil, err
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage for %s: %w", appName, err)
	}
	return manager, nil
}
