// Package site serves the predictor page, its QR image and static assets.
package site

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/okian/cogscore/internal/adapters/http/api"
	"github.com/okian/cogscore/internal/domain/form"
	"github.com/okian/cogscore/internal/domain/scoring"
	"github.com/okian/cogscore/internal/domain/types"
	"github.com/okian/cogscore/pkg/logger"
	"github.com/okian/cogscore/pkg/metrics"
)

// Error constants
var (
	ErrRender = errors.New("page render failed")
	ErrServe  = errors.New("qr image serve failed")
)

// qrCacheSeconds is the max-age of /qr.png; the image only changes on restart.
const qrCacheSeconds = 3600

// Dependencies required by the page handlers.
type Dependencies interface {
	Evaluate(ctx context.Context, a form.Answers) (types.Evaluation, error)
	QRCode() ([]byte, error)
	DeployedURL() string
}

// Register attaches the page, QR and static asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux, deps Dependencies) {
	if mux == nil {
		panic("mux is nil")
	}
	h := NewRootHandler(deps)
	mux.HandleFunc("/", api.MetricsMiddleware(h.HandleRoot, "page"))
	mux.HandleFunc("/qr.png", api.MetricsMiddleware(h.HandleQR, "qr"))
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
}

// RootHandler renders the predictor page.
type RootHandler struct {
	deps Dependencies
}

// NewRootHandler creates a new root handler
func NewRootHandler(deps Dependencies) *RootHandler {
	return &RootHandler{deps: deps}
}

type fieldView struct {
	Field form.Field
	Value float64
}

type choiceView struct {
	Choice   form.Choice
	Selected string
}

type resultView struct {
	Display string
	High    bool
}

type pageView struct {
	Fields      []fieldView
	Choices     []choiceView
	Result      *resultView
	Error       string
	DeployedURL string
}

// HandleRoot handles GET / requests. The query string carries the sidebar
// values; without one the page shows the defaults and their score.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		http.NotFound(w, r)
		return
	}

	status := http.StatusOK
	view := pageView{DeployedURL: h.deps.DeployedURL()}

	answers, err := form.FromValues(r.URL.Query())
	if err == nil {
		var res types.Evaluation
		res, err = h.deps.Evaluate(r.Context(), answers)
		if err == nil {
			answers = res.Answers
			view.Result = &resultView{
				Display: res.Output.Display(),
				High:    res.Output.Label == scoring.High,
			}
		}
	}
	if err != nil {
		metrics.RecordValidationError("page")
		status = http.StatusBadRequest
		if !errors.Is(err, form.ErrInvalidField) {
			status = http.StatusInternalServerError
			logger.Get().Error(r.Context(), "page evaluation failed", logger.Error(err))
		}
		answers = form.DefaultAnswers()
		view.Error = err.Error()
	}
	view.Fields, view.Choices = formView(answers)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		metrics.RecordErrorByComponent("site", "render")
		logger.Get().Error(r.Context(), "render page", logger.Error(errors.Join(ErrRender, err)))
		http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// HandleQR handles GET /qr.png with the image rendered at start-up.
func (h *RootHandler) HandleQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	png, err := h.deps.QRCode()
	if err != nil {
		metrics.RecordErrorByComponent("site", "qr")
		http.Error(w, ErrServe.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(qrCacheSeconds))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(png)
	}
}

func formView(a form.Answers) ([]fieldView, []choiceView) {
	values := map[string]float64{
		form.KeyAge:             a.Age,
		form.KeySleepDuration:   a.SleepDuration,
		form.KeyMemoryTestScore: a.MemoryTestScore,
		form.KeyStressLevel:     a.StressLevel,
		form.KeyReactionTime:    a.ReactionTime,
		form.KeyDailyScreenTime: a.DailyScreenTime,
		form.KeyCaffeineIntake:  a.CaffeineIntake,
	}
	selected := map[string]string{
		form.KeyGender:   a.Gender.String(),
		form.KeyDiet:     a.Diet.String(),
		form.KeyExercise: a.Exercise.String(),
	}

	fields := form.Fields()
	fv := make([]fieldView, len(fields))
	for i, f := range fields {
		fv[i] = fieldView{Field: f, Value: values[f.Key]}
	}
	choices := form.Choices()
	cv := make([]choiceView, len(choices))
	for i, c := range choices {
		cv[i] = choiceView{Choice: c, Selected: selected[c.Key]}
	}
	return fv, cv
}

func inputType(w form.Widget) string {
	if w == form.WidgetSlider {
		return "range"
	}
	return "number"
}
