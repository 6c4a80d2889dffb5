package systems

import (
	"image/color"
	"unicode/utf8"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/logging"
	"go.uber.org/zap"
)

// maxTypingStepsPerUpdate 单次 Update 最多推进的步数，避免时长全为 0 时死循环
const maxTypingStepsPerUpdate = 1024

// DefaultLabelColor 未配置颜色的语言使用白色
var DefaultLabelColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// TypedTextSystem 轮换打字标签
//
// 每个标签：逐字打出 → 停留 Hold → 触发选中（更新颜色）→ 逐字删除 → 下一项，
// 最后一项之后回到第一项，无限循环
type TypedTextSystem struct {
	entityManager *ecs.EntityManager
	languages     map[string]color.NRGBA
	log           *zap.Logger

	// OnSelect 标签选中时的回调（可选）
	OnSelect func(language string)
}

// NewTypedTextSystem 创建打字系统
// languages: 语言名 → 颜色
func NewTypedTextSystem(em *ecs.EntityManager, languages map[string]color.NRGBA) *TypedTextSystem {
	return &TypedTextSystem{
		entityManager: em,
		languages:     languages,
		log:           logging.Named("TypedText"),
	}
}

// ColorFor 返回语言对应颜色
func (s *TypedTextSystem) ColorFor(language string) color.NRGBA {
	if c, ok := s.languages[language]; ok {
		return c
	}
	return DefaultLabelColor
}

// Update 推进所有打字标签
func (s *TypedTextSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TypedTextComponent](s.entityManager) {
		text, _ := ecs.GetComponent[*components.TypedTextComponent](s.entityManager, id)
		text.CaretElapsed += deltaTime
		if len(text.Labels) == 0 {
			continue
		}
		text.Elapsed += deltaTime
		s.advance(text)
	}
}

func (s *TypedTextSystem) advance(t *components.TypedTextComponent) {
	for i := 0; i < maxTypingStepsPerUpdate; i++ {
		label := t.Labels[t.Index]

		switch t.Phase {
		case components.PhaseTyping:
			if t.Shown >= utf8.RuneCountInString(label.Text) {
				t.Phase = components.PhaseHolding
				continue
			}
			if t.Elapsed < t.TypingDelay {
				return
			}
			t.Elapsed -= t.TypingDelay
			t.Shown++

		case components.PhaseHolding:
			hold := label.Hold.Seconds()
			if t.Elapsed < hold {
				return
			}
			t.Elapsed -= hold
			s.selectLabel(t, label.Select)
			t.Phase = components.PhaseDeleting

		case components.PhaseDeleting:
			if t.Shown <= 0 {
				t.Shown = 0
				t.Index = (t.Index + 1) % len(t.Labels)
				if t.Index == 0 {
					t.Cycles++
				}
				t.Phase = components.PhaseTyping
				continue
			}
			if t.Elapsed < t.DeletingDelay {
				return
			}
			t.Elapsed -= t.DeletingDelay
			t.Shown--
		}
	}
}

func (s *TypedTextSystem) selectLabel(t *components.TypedTextComponent, language string) {
	if language == "" {
		return
	}
	t.Selected = language
	t.Color = s.ColorFor(language)
	s.log.Debug("label selected", zap.String("language", language))
	if s.OnSelect != nil {
		s.OnSelect(language)
	}
}
