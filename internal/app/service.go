// Package service provides the core business service that implements
// the dependencies required by the HTTP adapters.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/cogscore/internal/adapters/qr"
	"github.com/okian/cogscore/internal/domain/form"
	"github.com/okian/cogscore/internal/domain/scoring"
	"github.com/okian/cogscore/internal/domain/types"
	"github.com/okian/cogscore/pkg/logger"
	"github.com/okian/cogscore/pkg/metrics"
)

// ErrNotStarted is returned when the service is used before Start.
var ErrNotStarted = errors.New("service not started")

// Service implements the dependencies of the page and JSON API.
type Service struct {
	mu sync.RWMutex

	scorer scoring.Scorer
	qrGen  *qr.Generator

	// Configuration
	deployedURL string
	qrSize      int
	qrRecovery  string

	// State
	started     bool
	startedAt   time.Time
	qrPNG       []byte
	evaluations map[scoring.Label]int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDeployedURL sets the page address rendered as a QR code.
func WithDeployedURL(u string) Option {
	return func(s *Service) {
		if u != "" {
			s.deployedURL = u
		}
	}
}

// WithQRSize sets the QR image edge length in pixels.
func WithQRSize(px int) Option {
	return func(s *Service) {
		if px > 0 {
			s.qrSize = px
		}
	}
}

// WithQRRecovery sets the QR error correction level.
func WithQRRecovery(level string) Option {
	return func(s *Service) {
		s.qrRecovery = level
	}
}

// WithScorer replaces the scoring engine.
func WithScorer(sc scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scorer:      scoring.NewEngine(),
		deployedURL: "https://your-app-url.example.com",
		qrSize:      qr.DefaultSize,
		qrRecovery:  "medium",
		evaluations: make(map[scoring.Label]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start renders the QR code once. The image depends only on the deployed
// URL, so every request shares the same bytes.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.qrGen = qr.NewGenerator(qr.WithSize(s.qrSize), qr.WithRecovery(s.qrRecovery))
	png, err := s.qrGen.Encode(ctx, s.deployedURL)
	if err != nil {
		return fmt.Errorf("render qr code for %s: %w", s.deployedURL, err)
	}
	s.qrPNG = png

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "cogscore service started",
		logger.String("deployedURL", s.deployedURL),
		logger.Int("qrSize", s.qrGen.Size()),
		logger.Int("qrBytes", len(png)),
	)
	return nil
}

// Stop releases the service state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.qrPNG = nil
	s.logger.Info(context.Background(), "cogscore service stopped")
}

// Evaluate clamps, encodes and scores one submission.
func (s *Service) Evaluate(ctx context.Context, a form.Answers) (types.Evaluation, error) {
	if err := a.Validate(); err != nil {
		return types.Evaluation{}, err
	}

	start := time.Now()
	clamped := a.Clamp()
	in := clamped.Encode()
	out := s.scorer.Score(in)
	metrics.RecordEvaluationLatency(float64(time.Since(start).Microseconds()) / 1000)
	metrics.RecordPrediction(out.Label.String(), out.Score)

	s.mu.Lock()
	s.evaluations[out.Label]++
	lg := s.logger
	s.mu.Unlock()

	if lg != nil {
		lg.Debug(ctx, "evaluated submission",
			logger.Float64("score", out.Score),
			logger.String("label", out.Label.String()),
			logger.Bool("clamped", clamped != a),
		)
	}

	return types.Evaluation{Answers: clamped, Input: in, Output: out}, nil
}

// QRCode returns the PNG rendered at start-up.
func (s *Service) QRCode() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	return s.qrPNG, nil
}

// DeployedURL returns the address encoded in the QR code.
func (s *Service) DeployedURL() string {
	return s.deployedURL
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"deployedURL": s.deployedURL,
		"qrSize":      s.qrSize,
		"evaluations": map[string]int{
			scoring.High.String(): s.evaluations[scoring.High],
			scoring.Low.String():  s.evaluations[scoring.Low],
		},
	}
	if s.started {
		stats["qrBytes"] = len(s.qrPNG)
		stats["uptimeSeconds"] = int(time.Since(s.startedAt).Seconds())
	}
	return stats
}
