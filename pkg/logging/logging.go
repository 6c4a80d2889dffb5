// Package logging 提供全局 zap 日志器
//
// 默认是 Nop 日志器（与原来 log.SetOutput(io.Discard) 的静默行为一致），
// 由 main 在解析命令行参数后调用 Init() 启用。
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init 根据 verbose 构建全局日志器
// verbose=false 时只输出 Warn 及以上级别
func Init(verbose bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	Set(built)
	return nil
}

// Set 替换全局日志器（测试中可传入 zaptest / observer 日志器）
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// L 返回全局日志器
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Named 返回带模块名的子日志器，如 Named("SceneManager")
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Sync 刷新缓冲区，程序退出前调用
func Sync() {
	_ = L().Sync()
}
