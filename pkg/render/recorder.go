package render

import "image/color"

// Op 绘制调用类型
type Op string

const (
	OpClear        Op = "clear"
	OpFillCircle   Op = "fillCircle"
	OpStrokeCircle Op = "strokeCircle"
	OpStrokeLine   Op = "strokeLine"
	OpFillRect     Op = "fillRect"
)

// Call 一次绘制调用
type Call struct {
	Op    Op
	Args  []float64
	Color color.NRGBA
}

// Recorder 记录所有绘制调用的 Surface，不产生任何像素
type Recorder struct {
	Width  int
	Height int
	Calls  []Call
}

// NewRecorder 创建指定尺寸的记录器
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Clear(c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, Args: []float64{x, y, radius}, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, radius, width float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeCircle, Args: []float64{x, y, radius, width}, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeLine, Args: []float64{x0, y0, x1, y1, width}, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, Args: []float64{x, y, w, h}, Color: c})
}

// Count 返回某类调用的次数
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
