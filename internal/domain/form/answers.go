package form

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/cogscore/internal/domain/scoring"
)

// Answers are the raw form values before categorical encoding.
type Answers struct {
	Age             float64  `json:"age" yaml:"age"`
	Gender          Gender   `json:"gender" yaml:"gender"`
	SleepDuration   float64  `json:"sleep_duration" yaml:"sleep_duration"`
	MemoryTestScore float64  `json:"memory_test_score" yaml:"memory_test_score"`
	StressLevel     float64  `json:"stress_level" yaml:"stress_level"`
	Diet            Diet     `json:"diet_type" yaml:"diet_type"`
	ReactionTime    float64  `json:"reaction_time" yaml:"reaction_time"`
	DailyScreenTime float64  `json:"daily_screen_time" yaml:"daily_screen_time"`
	CaffeineIntake  float64  `json:"caffeine_intake" yaml:"caffeine_intake"`
	Exercise        Exercise `json:"exercise_freq" yaml:"exercise_freq"`
}

// DefaultAnswers returns the values the page shows before any input.
func DefaultAnswers() Answers {
	return Answers{
		Age:             fieldAge.Default,
		Gender:          Male,
		SleepDuration:   fieldSleep.Default,
		MemoryTestScore: fieldMemory.Default,
		StressLevel:     fieldStress.Default,
		Diet:            Vegetarian,
		ReactionTime:    fieldReaction.Default,
		DailyScreenTime: fieldScreen.Default,
		CaffeineIntake:  fieldCaffeine.Default,
		Exercise:        ExerciseNone,
	}
}

// Clamp returns a copy with every numeric answer limited to its field range.
func (a Answers) Clamp() Answers {
	a.Age = fieldAge.Clamp(a.Age)
	a.SleepDuration = fieldSleep.Clamp(a.SleepDuration)
	a.MemoryTestScore = fieldMemory.Clamp(a.MemoryTestScore)
	a.StressLevel = fieldStress.Clamp(a.StressLevel)
	a.ReactionTime = fieldReaction.Clamp(a.ReactionTime)
	a.DailyScreenTime = fieldScreen.Clamp(a.DailyScreenTime)
	a.CaffeineIntake = fieldCaffeine.Clamp(a.CaffeineIntake)
	return a
}

// Encode converts the answers into the engine input, expanding each
// categorical answer into its indicator variables.
func (a Answers) Encode() scoring.Input {
	nonVeg, vegan := a.Diet.Indicators()
	high, low := a.Exercise.Indicators()
	return scoring.Input{
		Age:             a.Age,
		GenderFemale:    a.Gender.Indicators(),
		SleepDuration:   a.SleepDuration,
		MemoryTestScore: a.MemoryTestScore,
		StressLevel:     a.StressLevel,
		DietNonVeg:      nonVeg,
		DietVegan:       vegan,
		ReactionTime:    a.ReactionTime,
		DailyScreenTime: a.DailyScreenTime,
		CaffeineIntake:  a.CaffeineIntake,
		ExerciseHigh:    high,
		ExerciseLow:     low,
	}
}

// Validate rejects values that clamping cannot repair.
func (a Answers) Validate() error {
	nums := map[string]float64{
		KeyAge:             a.Age,
		KeySleepDuration:   a.SleepDuration,
		KeyMemoryTestScore: a.MemoryTestScore,
		KeyStressLevel:     a.StressLevel,
		KeyReactionTime:    a.ReactionTime,
		KeyDailyScreenTime: a.DailyScreenTime,
		KeyCaffeineIntake:  a.CaffeineIntake,
	}
	for _, f := range Fields() {
		if math.IsNaN(nums[f.Key]) {
			return fieldError(f.Key, errors.New("not a number"))
		}
	}
	if _, ok := genderIndicators[a.Gender]; !ok {
		return fieldError(KeyGender, fmt.Errorf("%w: %s", ErrUnknownChoice, a.Gender))
	}
	if _, ok := dietIndicators[a.Diet]; !ok {
		return fieldError(KeyDiet, fmt.Errorf("%w: %s", ErrUnknownChoice, a.Diet))
	}
	if _, ok := exerciseIndicators[a.Exercise]; !ok {
		return fieldError(KeyExercise, fmt.Errorf("%w: %s", ErrUnknownChoice, a.Exercise))
	}
	return nil
}

// FromValues parses a submitted form. Missing keys keep their defaults.
func FromValues(v url.Values) (Answers, error) {
	a := DefaultAnswers()

	numeric := []struct {
		key string
		dst *float64
	}{
		{KeyAge, &a.Age},
		{KeySleepDuration, &a.SleepDuration},
		{KeyMemoryTestScore, &a.MemoryTestScore},
		{KeyStressLevel, &a.StressLevel},
		{KeyReactionTime, &a.ReactionTime},
		{KeyDailyScreenTime, &a.DailyScreenTime},
		{KeyCaffeineIntake, &a.CaffeineIntake},
	}
	for _, n := range numeric {
		raw := strings.TrimSpace(v.Get(n.key))
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) {
			return Answers{}, fieldError(n.key, fmt.Errorf("%q is not a number", raw))
		}
		*n.dst = f
	}

	var err error
	if raw := v.Get(KeyGender); raw != "" {
		if a.Gender, err = ParseGender(raw); err != nil {
			return Answers{}, fieldError(KeyGender, err)
		}
	}
	if raw := v.Get(KeyDiet); raw != "" {
		if a.Diet, err = ParseDiet(raw); err != nil {
			return Answers{}, fieldError(KeyDiet, err)
		}
	}
	if raw := v.Get(KeyExercise); raw != "" {
		if a.Exercise, err = ParseExercise(raw); err != nil {
			return Answers{}, fieldError(KeyExercise, err)
		}
	}
	return a, nil
}

func fieldError(key string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrInvalidField, key, err)
}

// MarshalText encodes the display name.
func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText parses a display name.
func (g *Gender) UnmarshalText(b []byte) error {
	v, err := ParseGender(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// MarshalText encodes the display name.
func (d Diet) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText parses a display name.
func (d *Diet) UnmarshalText(b []byte) error {
	v, err := ParseDiet(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText encodes the display name.
func (e Exercise) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText parses a display name.
func (e *Exercise) UnmarshalText(b []byte) error {
	v, err := ParseExercise(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
