package utils

import (
	"fmt"
	"io"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/pkg/browser"
)

// URLOpener 在外部浏览器中打开链接
type URLOpener interface {
	OpenURL(url string) error
}

// BrowserOpener 使用系统默认浏览器打开链接（新窗口）
type BrowserOpener struct{}

// NewBrowserOpener 创建浏览器打开器
// 浏览器进程的输出会干扰终端预览，统一丢弃
func NewBrowserOpener() *BrowserOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserOpener{}
}

// OpenURL 打开外部地址；只接受绝对 http/https 地址
func (o *BrowserOpener) OpenURL(url string) error {
	if !config.IsExternalURL(url) {
		return fmt.Errorf("refusing to open %q: %w", url, config.ErrInvalidURL)
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %q: %w", url, err)
	}
	return nil
}

// RecordingOpener 记录打开过的链接，不启动浏览器
// 用于 --no-browser 和测试
type RecordingOpener struct {
	Opened []string
}

// OpenURL 记录地址
func (o *RecordingOpener) OpenURL(url string) error {
	if !config.IsExternalURL(url) {
		return fmt.Errorf("refusing to open %q: %w", url, config.ErrInvalidURL)
	}
	o.Opened = append(o.Opened, url)
	return nil
}
