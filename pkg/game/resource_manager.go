package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"path"
	"strings"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

// ResourceManager is responsible for centralized management of page resources.
// It provides loading and caching for project images and font faces,
// ensuring that resources are loaded only once and reused across frames.
//
// Images are resolved against a file system rooted at the configuration's
// directory (the embedded data directory, or the directory of a user file).
// A missing or undecodable image never fails the page: ProjectImage returns
// nil and the card falls back to the placeholder.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
type ResourceManager struct {
	fsys fs.FS

	// imageCache path -> Image
	imageCache map[string]*ebiten.Image
	// missingImages 加载失败的路径，只记录一次日志
	missingImages map[string]bool

	fontSources   map[string]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace

	log *zap.Logger
}

// DefaultFontName 内置字体（覆盖拉丁字母和日文假名/汉字）
const DefaultFontName = "mplus1p"

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - fsys: The file system image references are resolved against. May be nil,
//     in which case every project image falls back to the placeholder.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:          fsys,
		imageCache:    make(map[string]*ebiten.Image),
		missingImages: make(map[string]bool),
		fontSources:   make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		log:           logging.Named("ResourceManager"),
	}
}

// ClearImageCache 释放已缓存的图片并忘记加载失败记录（配置热重载后调用）
func (rm *ResourceManager) ClearImageCache() {
	for _, img := range rm.imageCache {
		img.Deallocate()
	}
	rm.imageCache = make(map[string]*ebiten.Image)
	rm.missingImages = make(map[string]bool)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, error) {
	if cached, ok := rm.imageCache[name]; ok {
		return cached, nil
	}
	if rm.fsys == nil {
		return nil, fmt.Errorf("failed to open image %s: no file system", name)
	}

	data, err := fs.ReadFile(rm.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[name] = ebitenImg
	return ebitenImg, nil
}

// ProjectImage 返回项目卡片的图片
//
// 占位图引用、加载失败的图片都返回 nil，由调用方绘制占位图；
// 失败只记录一次日志
func (rm *ResourceManager) ProjectImage(ref string) *ebiten.Image {
	if config.IsPlaceholderImage(ref) {
		return nil
	}
	name := ImagePath(ref)
	if rm.missingImages[name] {
		return nil
	}
	img, err := rm.LoadImage(name)
	if err != nil {
		rm.missingImages[name] = true
		rm.log.Warn("project image unavailable, using placeholder", zap.String("image", ref), zap.Error(err))
		return nil
	}
	return img
}

// ImagePath 把配置中的图片引用转换为文件系统路径
// 去掉开头的 "/" 和查询参数，如 "/shots/a.png?w=400" → "shots/a.png"
func ImagePath(ref string) string {
	ref = strings.TrimSpace(ref)
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[:i]
	}
	return path.Clean(strings.TrimPrefix(ref, "/"))
}

// LoadFontSource 注册一个字体源
//
// Parameters:
//   - name: 字体名，作为缓存键
//   - data: TTF/OTF 数据
func (rm *ResourceManager) LoadFontSource(name string, data []byte) error {
	if _, ok := rm.fontSources[name]; ok {
		return nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create font source for %s: %w", name, err)
	}
	rm.fontSources[name] = source
	return nil
}

// LoadFont returns a face of the given size for a registered font source,
// caching faces by name and size.
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cached, ok := rm.fontFaceCache[cacheKey]; ok {
		return cached, nil
	}

	source, ok := rm.fontSources[name]
	if !ok {
		if name != DefaultFontName {
			return nil, fmt.Errorf("font %s is not loaded", name)
		}
		if err := rm.LoadFontSource(DefaultFontName, fonts.MPlus1pRegular_ttf); err != nil {
			return nil, err
		}
		source = rm.fontSources[DefaultFontName]
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// DefaultFace 返回内置字体的指定字号
// 内置字体来自 ebiten 自带资源，解析失败属于编程错误
func (rm *ResourceManager) DefaultFace(size float64) *text.GoTextFace {
	face, err := rm.LoadFont(DefaultFontName, size)
	if err != nil {
		panic(err)
	}
	return face
}
