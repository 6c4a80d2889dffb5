//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 应用私有目录下的设置目录存在且可写
//
// gdata 在 Android 上使用 /data/data/{package}/ 作为根目录，但不会预先创建子目录
func EnsureStorageDir() error {
	root := StoragePath()
	if root == "" {
		return errors.New("failed to detect Android package name")
	}

	dir := filepath.Join(root, "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(testFile)
}

// StoragePath 返回 /data/data/{package}，无法识别包名时返回空字符串
func StoragePath() string {
	// /proc/self/cmdline 第一个参数即包名，以 NUL 结尾
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return ""
	}
	return filepath.Join("/data/data", name)
}
