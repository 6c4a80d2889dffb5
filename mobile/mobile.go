//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
// 移动端只使用内嵌的作品集配置，不监视文件。
//
// 手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.portfolio -o build/android/portfolio.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Portfolio.xcframework -v ./mobile
package mobile

import (
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/portfolio/pkg/app"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/logging"
)

func init() {
	embedded.Init(dataFS)
	if err := logging.Init(true); err != nil {
		log.Printf("日志初始化失败: %v", err)
	}

	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		log.Fatalf("读取内嵌配置失败: %v", err)
	}
	content, err := config.ParsePortfolioConfig(data)
	if err != nil {
		log.Fatalf("内嵌配置无效: %v", err)
	}
	images, err := fs.Sub(dataFS, "data")
	if err != nil {
		log.Fatalf("内嵌图片目录无效: %v", err)
	}

	portfolio, err := app.NewApp(app.Config{
		Content: content,
		Images:  images,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(portfolio)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
