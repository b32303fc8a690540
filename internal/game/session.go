package game

import (
	"aqualand/internal/config"
	"aqualand/internal/geom"
	"aqualand/internal/level"
	"aqualand/internal/logging"
	"aqualand/internal/visual"
)

// Input is polled once per frame.
type Input interface {
	Pointer() geom.Point
	// PrimaryPressed reports a press of the primary button since the last
	// frame. It is edge triggered: a held button reports true once.
	PrimaryPressed() bool
}

// Session owns the level model for one run of the program. It is not safe for
// concurrent use; frontends drive it from their UI thread.
type Session struct {
	layout config.Layout
	model  *level.Model
	mapper *visual.Mapper
	logger *logging.Logger
}

func NewSession(layout config.Layout, logger *logging.Logger) *Session {
	if logger == nil {
		panic("game.NewSession: logger must not be nil")
	}
	return &Session{
		layout: layout,
		model:  level.New(layout.LevelConfig()),
		mapper: visual.NewMapper(layout.Bar, layout.Tank, layout.Segments),
		logger: logger,
	}
}

func (s *Session) Layout() config.Layout { return s.layout }
func (s *Session) Level() int            { return s.model.Snapshot() }

// Step runs one frame: poll input, apply at most one action, present.
func (s *Session) Step(in Input) (visual.Presentation, Action) {
	action := None
	if in != nil && in.PrimaryPressed() {
		p := in.Pointer()
		action = HitTest(s.layout, p)
		s.logger.Debug("primary press",
			logging.Field("x", p.X),
			logging.Field("y", p.Y),
			logging.Field("action", action),
		)
	}
	s.Apply(action)
	return s.Presentation(), action
}

// Apply mutates the model for one action and reports whether the level moved.
func (s *Session) Apply(action Action) bool {
	before := s.model.Snapshot()
	switch action {
	case Rain:
		s.model.Increase()
	case Evaporate:
		s.model.Decrease()
	case Reset:
		s.model.Reset()
	default:
		return false
	}
	after := s.model.Snapshot()
	if after == before {
		s.logger.Debug("level unchanged", logging.Field("action", action), logging.Field("level", after))
		return false
	}
	s.logger.Debug("level changed",
		logging.Field("action", action),
		logging.Field("from", before),
		logging.Field("to", after),
	)
	if from, to := visual.Classify(before), visual.Classify(after); from != to {
		s.logger.Info("status band changed",
			logging.Field("from", from),
			logging.Field("to", to),
			logging.Field("level", after),
		)
	}
	return true
}

func (s *Session) Presentation() visual.Presentation {
	return s.mapper.Present(s.model.Snapshot())
}
