// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/cogscore/internal/domain/form"
	"github.com/okian/cogscore/internal/domain/scoring"
)

type formResponse struct {
	Fields        []form.Field  `json:"fields"`
	Choices       []form.Choice `json:"choices"`
	HighThreshold float64       `json:"high_threshold"`
}

// FormHandler serves the form catalogue so clients can build the inputs.
type FormHandler struct {
	body formResponse
}

// NewFormHandler creates a new form handler.
func NewFormHandler() *FormHandler {
	return &FormHandler{body: formResponse{
		Fields:        form.Fields(),
		Choices:       form.Choices(),
		HighThreshold: scoring.HighThreshold,
	}}
}

// HandleGetForm handles GET /api/v1/form requests.
func (h *FormHandler) HandleGetForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.body)
}
