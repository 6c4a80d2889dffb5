package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeTestPNG creates a simple 10x10 blue PNG.
func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// TestImagePath 测试图片引用到文件路径的转换
func TestImagePath(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"shots/a.png", "shots/a.png"},
		{"/shots/a.png", "shots/a.png"},
		{"/shots/a.png?height=300&width=400", "shots/a.png"},
		{" ./b.jpg ", "b.jpg"},
	}
	for _, tt := range tests {
		if got := ImagePath(tt.ref); got != tt.want {
			t.Errorf("ImagePath(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

// TestLoadImage_Success tests successful image loading and caching.
func TestLoadImage_Success(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{
		"shots/a.png": {Data: encodeTestPNG(t)},
	})

	img, err := rm.LoadImage("shots/a.png")
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, 10, img.Bounds().Dx())

	again, err := rm.LoadImage("shots/a.png")
	require.NoError(t, err)
	assert.Same(t, img, again, "second load should hit the cache")
}

// TestLoadImage_Errors tests missing and corrupted images.
func TestLoadImage_Errors(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{
		"broken.png": {Data: []byte("not a png")},
	})

	_, err := rm.LoadImage("missing.png")
	assert.Error(t, err)

	_, err = rm.LoadImage("broken.png")
	assert.Error(t, err)

	_, err = NewResourceManager(nil).LoadImage("a.png")
	assert.Error(t, err)
}

// TestProjectImageFallback 测试占位图和加载失败都返回 nil
func TestProjectImageFallback(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{
		"a.png": {Data: encodeTestPNG(t)},
	})

	assert.NotNil(t, rm.ProjectImage("/a.png?width=400"))
	assert.Nil(t, rm.ProjectImage("/placeholder.svg?height=300&width=400"))
	assert.Nil(t, rm.ProjectImage(""))
	assert.Nil(t, rm.ProjectImage("missing.png"))
	assert.True(t, rm.missingImages["missing.png"])

	rm.fsys.(fstest.MapFS)["missing.png"] = &fstest.MapFile{Data: encodeTestPNG(t)}
	assert.Nil(t, rm.ProjectImage("missing.png"), "failures are remembered")
	rm.ClearImageCache()
	assert.NotNil(t, rm.ProjectImage("missing.png"), "clearing the cache forgets remembered failures")
}

// TestLoadFont 测试内置字体与字号缓存
func TestLoadFont(t *testing.T) {
	rm := NewResourceManager(nil)

	face := rm.DefaultFace(24)
	require.NotNil(t, face)
	assert.Equal(t, 24.0, face.Size)
	assert.Same(t, face, rm.DefaultFace(24))
	assert.NotSame(t, face, rm.DefaultFace(16))

	_, err := rm.LoadFont("unknown", 12)
	assert.Error(t, err)

	assert.Error(t, rm.LoadFontSource("bad", []byte("not a font")))
}
