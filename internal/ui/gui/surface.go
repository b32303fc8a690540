//go:build !headless

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"aqualand/internal/geom"
)

// surface is a fixed-size drawing area that forwards pointer input in
// window units.
type surface struct {
	widget.BaseWidget

	size    fyne.Size
	content *fyne.Container

	onPress func(geom.Point)
	onMove  func(geom.Point)
	onLeave func()
}

var (
	_ desktop.Hoverable = (*surface)(nil)
	_ desktop.Mouseable = (*surface)(nil)
)

type surfaceHandlers struct {
	Press func(geom.Point)
	Move  func(geom.Point)
	Leave func()
}

func newSurface(width, height float32, handlers surfaceHandlers) *surface {
	s := &surface{
		size:    fyne.NewSize(width, height),
		content: container.NewWithoutLayout(),
		onPress: handlers.Press,
		onMove:  handlers.Move,
		onLeave: handlers.Leave,
	}
	s.ExtendBaseWidget(s)
	return s
}

// SetObjects replaces the drawn objects, bottom first.
func (s *surface) SetObjects(objects []fyne.CanvasObject) {
	s.content.Objects = objects
	s.content.Refresh()
}

func (s *surface) MinSize() fyne.Size {
	return s.size
}

func (s *surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

func (s *surface) MouseDown(ev *desktop.MouseEvent) {
	if ev == nil || ev.Button != desktop.MouseButtonPrimary {
		return
	}
	if s.onPress != nil {
		s.onPress(toPoint(ev.Position))
	}
}

func (s *surface) MouseUp(*desktop.MouseEvent) {}

func (s *surface) MouseIn(ev *desktop.MouseEvent) {
	s.MouseMoved(ev)
}

func (s *surface) MouseMoved(ev *desktop.MouseEvent) {
	if ev == nil || s.onMove == nil {
		return
	}
	s.onMove(toPoint(ev.Position))
}

func (s *surface) MouseOut() {
	if s.onLeave != nil {
		s.onLeave()
	}
}

func toPoint(pos fyne.Position) geom.Point {
	return geom.Point{X: float64(pos.X), Y: float64(pos.Y)}
}
