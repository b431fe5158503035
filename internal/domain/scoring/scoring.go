// Package scoring computes the cognitive ability score from encoded form inputs.
//
// The engine is a fixed-weight linear model: an intercept plus one coefficient
// per input, followed by an inclusive threshold at HighThreshold. It is pure
// and safe for concurrent use.
package scoring

import (
	"fmt"
)

// HighThreshold is the inclusive lower bound of the High label.
const HighThreshold = 100.0

// Label is the binary classification of a score.
type Label string

// Labels.
const (
	High Label = "High"
	Low  Label = "Low"
)

// String implements fmt.Stringer.
func (l Label) String() string { return string(l) }

// Input holds the ten form inputs with categorical fields already encoded
// as indicator variables (0 or 1).
type Input struct {
	Age             float64 `json:"age" yaml:"age"`
	GenderFemale    float64 `json:"gender_female" yaml:"gender_female"`
	SleepDuration   float64 `json:"sleep_duration" yaml:"sleep_duration"`
	MemoryTestScore float64 `json:"memory_test_score" yaml:"memory_test_score"`
	StressLevel     float64 `json:"stress_level" yaml:"stress_level"`
	DietNonVeg      float64 `json:"diet_non_veg" yaml:"diet_non_veg"`
	DietVegan       float64 `json:"diet_vegan" yaml:"diet_vegan"`
	ReactionTime    float64 `json:"reaction_time" yaml:"reaction_time"`
	DailyScreenTime float64 `json:"daily_screen_time" yaml:"daily_screen_time"`
	CaffeineIntake  float64 `json:"caffeine_intake" yaml:"caffeine_intake"`
	ExerciseHigh    float64 `json:"exercise_high" yaml:"exercise_high"`
	ExerciseLow     float64 `json:"exercise_low" yaml:"exercise_low"`
}

// Output is the computed score and its label.
type Output struct {
	Score float64 `json:"score" yaml:"score"`
	Label Label   `json:"label" yaml:"label"`
}

// Display formats the score with two decimals.
func (o Output) Display() string {
	return fmt.Sprintf("%.2f", o.Score)
}

// Coefficients are the intercept and per-input weights of the model.
type Coefficients struct {
	Intercept       float64
	Age             float64
	GenderFemale    float64
	SleepDuration   float64
	MemoryTestScore float64
	StressLevel     float64
	DietNonVeg      float64
	DietVegan       float64
	ReactionTime    float64
	DailyScreenTime float64
	CaffeineIntake  float64
	ExerciseHigh    float64
	ExerciseLow     float64
}

// DefaultCoefficients returns the fitted regression weights.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Intercept:       104.22095,
		Age:             0.0002346,
		GenderFemale:    0.0053528,
		SleepDuration:   1.9273209,
		MemoryTestScore: 0.4847063,
		StressLevel:     -1.930593,
		DietNonVeg:      -0.017732,
		DietVegan:       -0.002951,
		ReactionTime:    -0.163666,
		DailyScreenTime: -1.450048,
		CaffeineIntake:  -0.019252,
		ExerciseHigh:    4.710058,
		ExerciseLow:     -9.761921,
	}
}

// Apply evaluates the linear combination for in.
func (c Coefficients) Apply(in Input) float64 {
	return c.Intercept +
		c.Age*in.Age +
		c.GenderFemale*in.GenderFemale +
		c.SleepDuration*in.SleepDuration +
		c.MemoryTestScore*in.MemoryTestScore +
		c.StressLevel*in.StressLevel +
		c.DietNonVeg*in.DietNonVeg +
		c.DietVegan*in.DietVegan +
		c.ReactionTime*in.ReactionTime +
		c.DailyScreenTime*in.DailyScreenTime +
		c.CaffeineIntake*in.CaffeineIntake +
		c.ExerciseHigh*in.ExerciseHigh +
		c.ExerciseLow*in.ExerciseLow
}

// Scorer computes an Output from an Input.
type Scorer interface {
	Score(in Input) Output
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithCoefficients replaces the model weights.
func WithCoefficients(c Coefficients) Option {
	return func(e *Engine) {
		e.coef = c
	}
}

// Engine implements Scorer with a fixed set of coefficients.
type Engine struct {
	coef Coefficients
}

// NewEngine creates an engine with the default coefficients unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{coef: DefaultCoefficients()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Coefficients returns a copy of the engine weights.
func (e *Engine) Coefficients() Coefficients { return e.coef }

// Score evaluates in and classifies the result.
func (e *Engine) Score(in Input) Output {
	s := e.coef.Apply(in)
	return Output{Score: s, Label: Classify(s)}
}

// Classify maps a score to its label; HighThreshold itself is High.
func Classify(score float64) Label {
	if score >= HighThreshold {
		return High
	}
	return Low
}

var defaultEngine = NewEngine()

// Score evaluates in with the default coefficients.
func Score(in Input) Output {
	return defaultEngine.Score(in)
}
