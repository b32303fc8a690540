package game

import "aqualand/internal/geom"

// PointerLatch is an Input fed by event-driven toolkits. Presses are latched
// until the next frame consumes them.
type PointerLatch struct {
	pointer geom.Point
	pressed bool
}

func (l *PointerLatch) Move(p geom.Point) {
	l.pointer = p
}

func (l *PointerLatch) Press(p geom.Point) {
	l.pointer = p
	l.pressed = true
}

func (l *PointerLatch) Pointer() geom.Point {
	return l.pointer
}

func (l *PointerLatch) PrimaryPressed() bool {
	pressed := l.pressed
	l.pressed = false
	return pressed
}
