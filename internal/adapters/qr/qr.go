// Package qr renders URLs as QR code PNG images.
package qr

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/okian/cogscore/pkg/metrics"
	qrcode "github.com/skip2/go-qrcode"
)

// Size bounds and defaults.
const (
	MinSize     = 64
	MaxSize     = 1024
	DefaultSize = 256

	filePerm = 0o644
)

// ParseRecovery maps a level name to the library recovery level.
func ParseRecovery(level string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low", "l":
		return qrcode.Low, nil
	case "", "medium", "m":
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	default:
		return qrcode.Medium, fmt.Errorf("%w: %s", ErrUnknownRecovery, level)
	}
}

// Generator encodes text as a QR symbol rendered to PNG.
type Generator struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewGenerator creates a generator with configuration options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		size:  DefaultSize,
		level: qrcode.Medium,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Size returns the configured edge length in pixels.
func (g *Generator) Size() int { return g.size }

// Encode renders content as a PNG image.
func (g *Generator) Encode(ctx context.Context, content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	start := time.Now()
	png, err := qrcode.Encode(content, g.level, g.size)
	if err != nil {
		metrics.RecordErrorByComponent("qr", "encode")
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	metrics.RecordQRGeneration(float64(time.Since(start).Microseconds())/1000, len(png))
	return png, nil
}

// WriteFile renders content and writes the PNG to path.
func (g *Generator) WriteFile(ctx context.Context, content, path string) error {
	png, err := g.Encode(ctx, content)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
