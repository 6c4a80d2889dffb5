//go:build !android

package utils

// EnsureStorageDir 桌面平台由 gdata 自行创建存储目录
func EnsureStorageDir() error {
	return nil
}

// StoragePath 桌面平台的路径由 gdata 决定，这里返回空字符串
func StoragePath() string {
	return ""
}
