package memory

// Option configures a Model before its first Reset.
type Option func(*Model)

// WithLimits replaces the default layout parameters. Useful for tests
// and for embedders that want a bigger playground than the reference
// 500-byte image.
func WithLimits(limits Limits) Option {
	return func(m *Model) {
		m.limits = limits
	}
}
