package level

import "fmt"

const (
	Min = 0
	Max = 100

	DefaultStep  = 10
	DefaultLevel = 20
)

type Config struct {
	Step    int
	Default int
}

func DefaultConfig() Config {
	return Config{Step: DefaultStep, Default: DefaultLevel}
}

// Model owns the water level. Every mutation leaves the level in [Min, Max].
type Model struct {
	level        int
	step         int
	defaultLevel int
}

func New(cfg Config) *Model {
	if cfg.Step <= 0 {
		panic(fmt.Sprintf("level.New: step must be positive, got %d", cfg.Step))
	}
	if cfg.Default < Min || cfg.Default > Max {
		panic(fmt.Sprintf("level.New: default level %d outside [%d, %d]", cfg.Default, Min, Max))
	}
	return &Model{level: cfg.Default, step: cfg.Step, defaultLevel: cfg.Default}
}

func (m *Model) Increase() {
	m.level = min(m.level+m.step, Max)
}

func (m *Model) Decrease() {
	m.level = max(m.level-m.step, Min)
}

func (m *Model) Reset() {
	m.level = m.defaultLevel
}

func (m *Model) Snapshot() int {
	return m.level
}

// Fraction is the level as a fill fraction in [0, 1].
func (m *Model) Fraction() float64 {
	return Fraction(m.level)
}

func Fraction(level int) float64 {
	return float64(level) / float64(Max)
}
