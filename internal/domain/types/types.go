// Package types contains common types used across the application
package types

import (
	"github.com/okian/cogscore/internal/domain/form"
	"github.com/okian/cogscore/internal/domain/scoring"
)

// Evaluation is the outcome of scoring one form submission.
type Evaluation struct {
	// Answers are the submitted values after range clamping.
	Answers form.Answers `json:"answers"`
	// Input is the encoded engine input.
	Input scoring.Input `json:"input"`
	// Output is the score and label.
	Output scoring.Output `json:"output"`
}
