package config

import (
	"errors"
	"fmt"
	"image/color"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PlaceholderImage 项目缺少图片时使用的占位图引用
const PlaceholderImage = "placeholder.svg"

// DefaultLabelHold 轮换标签缺省的停留时长
const DefaultLabelHold = 3 * time.Second

// 校验错误
var (
	ErrEmptyTitle  = errors.New("project title must not be empty")
	ErrInvalidURL  = errors.New("url must be an absolute http(s) address")
	ErrNoLabels    = errors.New("at least one rotating label is required")
	ErrEmptyLabel  = errors.New("label text must not be empty")
	ErrDuplicateID = errors.New("duplicate project id")
)

// Project 项目卡片的数据
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	// URL 可选；存在时整张卡片是一个在新窗口打开的外链
	URL string `yaml:"url,omitempty"`
}

// HasLink 是否为可点击卡片
func (p *Project) HasLink() bool {
	return p.URL != ""
}

// Label 轮换标签的一项：显示文本、停留时长、完成后选中的语言
type Label struct {
	Text   string        `yaml:"text"`
	Hold   time.Duration `yaml:"hold"`
	Select string        `yaml:"select"`
}

// SocialLinks 两个外链
type SocialLinks struct {
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
}

// HeroConfig 首屏文案与打字速度
type HeroConfig struct {
	Title      string `yaml:"title"`
	Prefix     string `yaml:"prefix"`
	ScrollHint string `yaml:"scrollHint"`

	// TypingDelay 每个字符的打字间隔
	TypingDelay time.Duration `yaml:"typingDelay"`
	// DeletingDelay 每个字符的删除间隔
	DeletingDelay time.Duration `yaml:"deletingDelay"`
}

// PortfolioConfig 作品集页面的全部外部输入
//
// 配置文件位置: data/portfolio.yaml（内嵌），或通过 --config 指定
type PortfolioConfig struct {
	Hero HeroConfig `yaml:"hero"`

	// Labels 轮换标签序列，无限循环
	Labels []Label `yaml:"labels"`

	// Languages 语言名 → 颜色（#rrggbb），由 Label.Select 引用
	Languages map[string]string `yaml:"languages"`

	ProjectsTitle string    `yaml:"projectsTitle"`
	Projects      []Project `yaml:"projects"`

	Social SocialLinks `yaml:"social"`

	Starfield StarfieldConfig `yaml:"starfield"`
}

// LoadPortfolioConfig 从文件系统加载作品集配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *PortfolioConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadPortfolioConfig(path string) (*PortfolioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio config: %w", err)
	}
	return ParsePortfolioConfig(data)
}

// ParsePortfolioConfig 解析 YAML 数据，补全缺省值并校验
func ParsePortfolioConfig(data []byte) (*PortfolioConfig, error) {
	config := &PortfolioConfig{
		Starfield: CanvasPreset(),
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio config: %w", err)
	}

	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio config: %w", err)
	}
	return config, nil
}

// ApplyDefaults 为缺失的可选字段填充缺省值
//
// 缺失图片回退为占位图，不影响卡片其余部分
func (c *PortfolioConfig) ApplyDefaults() {
	if c.Hero.TypingDelay <= 0 {
		c.Hero.TypingDelay = 70 * time.Millisecond
	}
	if c.Hero.DeletingDelay <= 0 {
		c.Hero.DeletingDelay = c.Hero.TypingDelay
	}
	if c.ProjectsTitle == "" {
		c.ProjectsTitle = "My Projects"
	}
	for i := range c.Labels {
		if c.Labels[i].Hold <= 0 {
			c.Labels[i].Hold = DefaultLabelHold
		}
	}
	for i := range c.Projects {
		p := &c.Projects[i]
		p.Title = strings.TrimSpace(p.Title)
		p.URL = strings.TrimSpace(p.URL)
		if strings.TrimSpace(p.Image) == "" {
			p.Image = PlaceholderImage
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
	}
}

// Validate 校验最小结构：标题非空，url（若有）为绝对外部地址
//
// 所有问题合并为一个错误，可用 errors.Is 判断具体类型
func (c *PortfolioConfig) Validate() error {
	var errs []error

	if len(c.Labels) == 0 {
		errs = append(errs, ErrNoLabels)
	}
	for i, l := range c.Labels {
		if strings.TrimSpace(l.Text) == "" {
			errs = append(errs, fmt.Errorf("labels[%d]: %w", i, ErrEmptyLabel))
		}
	}

	for name, hex := range c.Languages {
		if _, err := ParseHexColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("languages[%s]: %w", name, err))
		}
	}

	seen := make(map[int]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: %w", i, ErrEmptyTitle))
		}
		if p.URL != "" && !IsExternalURL(p.URL) {
			errs = append(errs, fmt.Errorf("projects[%d] %q: %w", i, p.URL, ErrInvalidURL))
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("projects[%d] id %d: %w", i, p.ID, ErrDuplicateID))
		}
		seen[p.ID] = true
	}

	for name, link := range map[string]string{"linkedin": c.Social.LinkedIn, "github": c.Social.GitHub} {
		if link != "" && !IsExternalURL(link) {
			errs = append(errs, fmt.Errorf("social.%s %q: %w", name, link, ErrInvalidURL))
		}
	}

	if err := c.Starfield.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("starfield: %w", err))
	}

	return errors.Join(errs...)
}

// StarfieldPreset 按名称取星空参数
//
// 名称为空或与配置文件中的预设相同时返回配置文件里的参数（保留其中的调参），
// 否则返回内置预设
func (c *PortfolioConfig) StarfieldPreset(name string) (StarfieldConfig, error) {
	if name == "" || name == c.Starfield.Preset {
		return c.Starfield, nil
	}
	return PresetByName(name)
}

// LanguageColors 返回解析后的语言颜色表（无效项已被 Validate 拒绝，这里跳过）
func (c *PortfolioConfig) LanguageColors() map[string]color.NRGBA {
	colors := make(map[string]color.NRGBA, len(c.Languages))
	for name, hex := range c.Languages {
		if clr, err := ParseHexColor(hex); err == nil {
			colors[name] = clr
		}
	}
	return colors
}

// IsExternalURL 判断是否为带主机名的绝对 http/https 地址
func IsExternalURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.IsAbs() && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsPlaceholderImage 判断图片引用是否指向占位图
// 兼容 "/placeholder.svg?height=300&width=400" 这样的写法
func IsPlaceholderImage(ref string) bool {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "/")
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[:i]
	}
	return ref == "" || ref == PlaceholderImage
}
