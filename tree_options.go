package boxlayout

import "go.uber.org/zap"

type treeConfig struct {
	capacity int
	rounding bool
	logger   *zap.Logger
}

func defaultTreeConfig() treeConfig {
	return treeConfig{
		capacity: 16,
		rounding: true,
		logger:   zap.NewNop(),
	}
}

// TreeOption is a functional option for configuring a Tree.
type TreeOption func(*treeConfig)

// WithCapacity pre-sizes the node arena. It has no other effect.
func WithCapacity(n int) TreeOption {
	return func(c *treeConfig) {
		c.capacity = max(n, 0)
	}
}

// WithLogger sets the logger for layout passes and node removal.
// Default is a no-op logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) TreeOption {
	return func(c *treeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRounding sets whether computed layouts are rounded to whole units.
// Default is true.
func WithRounding(enabled bool) TreeOption {
	return func(c *treeConfig) {
		c.rounding = enabled
	}
}
