package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/decker502/portfolio/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultReloadDebounce 连续保存只触发一次重新加载
const DefaultReloadDebounce = 300 * time.Millisecond

// Watcher 监视用户提供的作品集配置文件，变化后重新加载
//
// 监视文件所在目录而不是文件本身，这样编辑器"写临时文件再改名"的保存方式也能被捕获。
// 新配置校验失败时保留上一次有效配置，只记录错误。
// 有效配置通过 Updates() 交给主循环，后台 goroutine 不直接修改页面状态。
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	updates  chan *PortfolioConfig
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	lastErr  error
	log      *zap.Logger
}

// NewWatcher 创建配置监视器
//
// 参数:
//   - path: 配置文件路径
//   - debounce: 去抖时长，<= 0 时使用 DefaultReloadDebounce
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		updates:  make(chan *PortfolioConfig, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		log:      logging.Named("ConfigWatcher"),
	}, nil
}

// Updates 返回新配置的通道
// 通道只保留最新一份，主循环来不及读取时旧配置被替换
func (w *Watcher) Updates() <-chan *PortfolioConfig {
	return w.updates
}

// LastError 返回最近一次重新加载的错误（成功后清空）
func (w *Watcher) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Start 开始监视，非阻塞
// ctx 取消或调用 Stop 后后台 goroutine 退出
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info("watching config", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop 停止监视并等待后台 goroutine 退出
// 未启动时只释放 fsnotify 资源
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("failed to close file watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// 去抖：最后一次事件之后 debounce 时长内没有新事件才重新加载
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("config changed", zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

// relevant 只关心目标文件的创建、写入和改名
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}

func (w *Watcher) reload() {
	cfg, err := LoadPortfolioConfig(w.path)

	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()

	if err != nil {
		w.log.Warn("config reload failed, keeping previous config", zap.Error(err))
		return
	}

	// 丢弃未读取的旧配置，只保留最新
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.log.Info("config reloaded", zap.Int("projects", len(cfg.Projects)))
}
