// Package tui 在终端里预览作品集页面
//
// 与窗口版共用星空模块和页面模块，绘制目标换成 render.TerminalSurface。
// 事件轮询在独立 goroutine 中进行，事件经通道交给主循环，
// 所有状态只在主循环中修改。
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/decker502/portfolio/pkg/modules"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/systems"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// DefaultFrameRate 终端预览的默认帧率
const DefaultFrameRate = 30

// eventBuffer 事件通道容量
const eventBuffer = 64

// Options 终端预览参数
type Options struct {
	Content *config.PortfolioConfig

	// Preset 非空时固定星空预设，否则跟随配置文件
	Preset string
	Seed   uint64

	// FrameRate 每秒帧数，0 表示 DefaultFrameRate
	FrameRate int

	// Opener 打开外链；nil 时使用系统浏览器
	Opener utils.URLOpener

	// Updates 配置热重载通道（可选）
	Updates <-chan *config.PortfolioConfig
}

// Runner 终端预览主循环
type Runner struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	frame   time.Duration
	updates <-chan *config.PortfolioConfig

	starfield *modules.StarfieldModule
	page      *modules.PageModule
	preset    string
	pointer   utils.PointerState
	buttons   tcell.ButtonMask

	events chan tcell.Event
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once

	log *zap.Logger
}

// NewRunner 创建终端预览
//
// screen 尚未初始化，由 Run 负责 Init 和 Fini
func NewRunner(screen tcell.Screen, opts Options) (*Runner, error) {
	if opts.Content == nil {
		return nil, errors.New("portfolio content is required")
	}
	starCfg, err := opts.Content.StarfieldPreset(opts.Preset)
	if err != nil {
		return nil, err
	}
	rate := opts.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	opener := opts.Opener
	if opener == nil {
		opener = utils.NewBrowserOpener()
	}

	return &Runner{
		screen:    screen,
		frame:     time.Second / time.Duration(rate),
		updates:   opts.Updates,
		starfield: modules.NewStarfieldModule(starCfg, opts.Seed),
		page:      modules.NewPageModule(opts.Content, opener),
		preset:    opts.Preset,
		events:    make(chan tcell.Event, eventBuffer),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
		log:       logging.Named("TUI"),
	}, nil
}

// Run 初始化终端并运行主循环，直到按下 q / Esc / Ctrl+C 或 ctx 结束
//
// 返回前停止事件轮询、卸载星空并恢复终端
func (r *Runner) Run(ctx context.Context) error {
	if err := r.init(); err != nil {
		return err
	}
	go r.pollLoop()
	defer r.shutdown()

	ticker := time.NewTicker(r.frame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-r.events:
			if quit := r.handleEvent(ev); quit {
				return nil
			}

		case cfg, ok := <-r.updates:
			if !ok {
				r.updates = nil
				continue
			}
			r.applyContent(cfg)

		case now := <-ticker.C:
			r.step(now.Sub(last).Seconds())
			last = now
		}
	}
}

// init 初始化屏幕并挂载星空
func (r *Runner) init() error {
	if err := r.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	r.screen.EnableMouse()
	r.screen.EnableFocus()
	r.screen.HideCursor()

	r.surface = render.NewTerminalSurface(r.screen)
	w, h := r.surface.Size()
	r.page.Resize(w, h)
	if !r.starfield.Mount(r.surface) {
		r.log.Warn("terminal has no drawable area, background disabled")
	}
	return nil
}

// shutdown 停止轮询、卸载星空并恢复终端，可重复调用
func (r *Runner) shutdown() {
	r.once.Do(func() {
		close(r.stopCh)
		// 唤醒阻塞中的 PollEvent
		_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-r.doneCh

		r.starfield.Unmount()
		r.screen.Fini()
		r.log.Debug("terminal restored")
	})
}

// pollLoop 读取终端事件并转交主循环
func (r *Runner) pollLoop() {
	defer close(r.doneCh)
	for {
		select {
		case <-r.stopCh:
			return
		default:
		}

		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}

		select {
		case r.events <- ev:
		case <-r.stopCh:
			return
		}
	}
}

// handleEvent 处理一个终端事件，返回是否退出
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)

	case *tcell.EventMouse:
		col, row := ev.Position()
		cols, rows := r.screen.Size()
		if col < 0 || row < 0 || col >= cols || row >= rows {
			r.buttons = ev.Buttons()
			r.clearPointer()
			break
		}
		r.pointer.X = (float64(col) + 0.5) * render.CellWidth
		r.pointer.Y = (float64(row) + 0.5) * render.CellHeight
		r.pointer.Present = true
		r.starfield.SetPointer(r.pointer.X, r.pointer.Y)

		// 按下的那一次才算点击，按住拖动不重复触发
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && r.buttons&tcell.Button1 == 0 {
			r.pointer.Clicked = true
		}
		r.buttons = buttons
		if buttons&tcell.WheelDown != 0 {
			r.page.ScrollBy(config.ScrollStep)
		}
		if buttons&tcell.WheelUp != 0 {
			r.page.ScrollBy(-config.ScrollStep)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			r.clearPointer()
		}

	case *tcell.EventResize:
		r.screen.Sync()
		w, h := r.surface.Size()
		r.page.Resize(w, h)
		// 启动时尺寸为 0 的终端在此补挂载
		if r.starfield.Mount(r.surface) {
			r.starfield.Resize(w, h)
		}
	}
	return false
}

// clearPointer 鼠标离开终端或终端失去焦点时撤掉指针增亮
func (r *Runner) clearPointer() {
	r.pointer = utils.PointerState{}
	r.starfield.ClearPointer()
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyDown:
		r.page.ScrollBy(config.ScrollStep)
	case tcell.KeyUp:
		r.page.ScrollBy(-config.ScrollStep)
	case tcell.KeyPgDn:
		_, h := r.page.Size()
		r.page.ScrollBy(h * 0.9)
	case tcell.KeyPgUp:
		_, h := r.page.Size()
		r.page.ScrollBy(-h * 0.9)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'g', 'G':
			r.starfield.SetPointerGlow(!r.starfield.PointerGlow())
		case 'p', 'P':
			r.nextPreset()
		}
	}
	return false
}

// applyContent 应用热重载的配置
//
// 没有固定预设，或固定的正是文件里的预设时，星空参数也跟随文件
func (r *Runner) applyContent(cfg *config.PortfolioConfig) {
	r.page.SetContent(cfg)
	if r.preset == "" || r.preset == cfg.Starfield.Preset {
		glow := r.starfield.PointerGlow()
		r.starfield.SetConfig(cfg.Starfield)
		r.starfield.SetPointerGlow(glow)
		r.starfield.Mount(r.surface)
	}
	r.log.Info("portfolio reloaded", zap.Int("projects", len(cfg.Projects)))
}

// nextPreset 切换星空预设并立即重新挂载
// 切回配置文件中的预设时沿用文件里的调参
func (r *Runner) nextPreset() {
	names := config.PresetNames()
	current := r.starfield.Config().Preset
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	preset, err := r.page.Config().StarfieldPreset(next)
	if err != nil {
		return
	}
	r.preset = next
	glow := r.starfield.PointerGlow()
	r.starfield.SetConfig(preset)
	r.starfield.SetPointerGlow(glow)
	r.starfield.Mount(r.surface)
	r.log.Info("starfield preset switched", zap.String("preset", next))
}

// step 推进一帧并绘制
func (r *Runner) step(deltaTime float64) {
	r.starfield.Update(deltaTime)
	r.page.Update(deltaTime, r.pointer)
	r.pointer.Clicked = false
	r.draw()
}

// draw 背景 → 页面图形 → 文字，最后一次性提交
func (r *Runner) draw() {
	if r.starfield.IsMounted() {
		r.starfield.Draw(r.surface)
	} else {
		r.surface.Clear(systems.SpaceBackground)
	}
	r.page.Draw(r.surface)
	r.drawHero()
	r.drawCards()
	r.surface.Flush()
}
