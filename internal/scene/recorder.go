package scene

import (
	"aqualand/internal/geom"
	"aqualand/internal/visual"
)

type Op int

const (
	OpClear Op = iota
	OpFillRoundedRect
	OpStrokeRoundedRect
	OpFillRect
	OpText
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpFillRoundedRect:
		return "fill-rounded"
	case OpStrokeRoundedRect:
		return "stroke-rounded"
	case OpFillRect:
		return "fill"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

type Command struct {
	Op        Op
	Rect      geom.Rect
	Roundness float64
	Color     visual.Color
	Text      string
	At        geom.Point
	Size      float64
}

// Recorder is a Renderer that keeps every command it receives.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

func (r *Recorder) Clear(c visual.Color) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: c})
}

func (r *Recorder) FillRoundedRect(rect geom.Rect, roundness float64, c visual.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillRoundedRect, Rect: rect, Roundness: roundness, Color: c})
}

func (r *Recorder) StrokeRoundedRect(rect geom.Rect, roundness float64, c visual.Color) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeRoundedRect, Rect: rect, Roundness: roundness, Color: c})
}

func (r *Recorder) FillRect(rect geom.Rect, c visual.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) Text(s string, p geom.Point, size float64, c visual.Color) {
	r.Commands = append(r.Commands, Command{Op: OpText, Text: s, At: p, Size: size, Color: c})
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Commands {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}
