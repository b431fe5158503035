// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/okian/cogscore/internal/domain/form"
	"github.com/okian/cogscore/internal/domain/scoring"
	"github.com/okian/cogscore/pkg/logger"
	"github.com/okian/cogscore/pkg/metrics"
)

// maxScoreBody bounds POST /api/v1/score bodies.
const maxScoreBody = 16 << 10

// scoreResponse mirrors the OpenAPI schema for POST /api/v1/score.
type scoreResponse struct {
	Score        float64       `json:"score"`
	ScoreDisplay string        `json:"score_display"`
	Label        scoring.Label `json:"label"`
	Answers      form.Answers  `json:"answers"`
	Input        scoring.Input `json:"input"`
}

// ScoreHandler handles score requests.
type ScoreHandler struct {
	deps Dependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps Dependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// HandlePostScore handles POST /api/v1/score requests. Omitted fields take
// the page defaults; numeric fields are clamped to their ranges.
func (h *ScoreHandler) HandlePostScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_score"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err != nil || mt != "application/json" {
			writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", NewKind(op, ErrUnsupportedCT))
			return
		}
	}

	answers := form.DefaultAnswers()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScoreBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&answers); err != nil {
		metrics.RecordValidationError("api")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrBodyTooLarge, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	res, err := h.deps.Evaluate(r.Context(), answers)
	if err != nil {
		metrics.RecordValidationError("api")
		if errors.Is(err, form.ErrInvalidField) {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		logger.Get().Error(r.Context(), "score evaluation failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, scoreResponse{
		Score:        res.Output.Score,
		ScoreDisplay: res.Output.Display(),
		Label:        res.Output.Label,
		Answers:      res.Answers,
		Input:        res.Input,
	})
}
