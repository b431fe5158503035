package qr

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSize sets the PNG edge length in pixels. Values outside
// [MinSize, MaxSize] are ignored.
func WithSize(px int) Option {
	return func(g *Generator) {
		if px >= MinSize && px <= MaxSize {
			g.size = px
		}
	}
}

// WithRecovery sets the error correction level by name
// (low, medium, high, highest). Unknown names are ignored.
func WithRecovery(level string) Option {
	return func(g *Generator) {
		if l, err := ParseRecovery(level); err == nil {
			g.level = l
		}
	}
}
