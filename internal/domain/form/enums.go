// Package form describes the input form: its fields, ranges, defaults and
// the encoding of categorical answers into indicator variables.
package form

import (
	"fmt"
	"strings"
)

// Gender is the categorical gender answer.
type Gender int

// Genders. Male is the reference category.
const (
	Male Gender = iota
	Female
)

// Diet is the categorical diet answer.
type Diet int

// Diets. Vegetarian is the reference category.
const (
	Vegetarian Diet = iota
	NonVegetarian
	Vegan
)

// Exercise is the categorical exercise frequency answer.
type Exercise int

// Exercise levels. None is the reference category.
const (
	ExerciseNone Exercise = iota
	ExerciseLow
	ExerciseHigh
)

// genderIndicators maps a gender to genderFemale.
var genderIndicators = map[Gender]struct{ female float64 }{
	Male:   {0},
	Female: {1},
}

// dietIndicators maps a diet to (dietNonVeg, dietVegan).
var dietIndicators = map[Diet]struct{ nonVeg, vegan float64 }{
	Vegetarian:    {0, 0},
	NonVegetarian: {1, 0},
	Vegan:         {0, 1},
}

// exerciseIndicators maps an exercise level to (exerciseHigh, exerciseLow).
var exerciseIndicators = map[Exercise]struct{ high, low float64 }{
	ExerciseNone: {0, 0},
	ExerciseLow:  {0, 1},
	ExerciseHigh: {1, 0},
}

var (
	genderNames   = [...]string{Male: "Male", Female: "Female"}
	dietNames     = [...]string{Vegetarian: "Vegetarian", NonVegetarian: "Non-Vegetarian", Vegan: "Vegan"}
	exerciseNames = [...]string{ExerciseNone: "None", ExerciseLow: "Low", ExerciseHigh: "High"}
)

func (g Gender) String() string {
	if g < 0 || int(g) >= len(genderNames) {
		return fmt.Sprintf("Gender(%d)", int(g))
	}
	return genderNames[g]
}

func (d Diet) String() string {
	if d < 0 || int(d) >= len(dietNames) {
		return fmt.Sprintf("Diet(%d)", int(d))
	}
	return dietNames[d]
}

func (e Exercise) String() string {
	if e < 0 || int(e) >= len(exerciseNames) {
		return fmt.Sprintf("Exercise(%d)", int(e))
	}
	return exerciseNames[e]
}

// Genders lists every gender in display order.
func Genders() []Gender { return []Gender{Male, Female} }

// Diets lists every diet in display order.
func Diets() []Diet { return []Diet{Vegetarian, NonVegetarian, Vegan} }

// Exercises lists every exercise level in display order.
func Exercises() []Exercise { return []Exercise{ExerciseNone, ExerciseLow, ExerciseHigh} }

// normalizeChoice folds case and drops separators so "Non-Vegetarian",
// "non_vegetarian" and "nonvegetarian" compare equal.
func normalizeChoice(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// ParseGender parses a gender display name, case-insensitively.
func ParseGender(s string) (Gender, error) {
	for _, g := range Genders() {
		if normalizeChoice(s) == normalizeChoice(g.String()) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: gender %q", ErrUnknownChoice, s)
}

// ParseDiet parses a diet display name, case-insensitively.
func ParseDiet(s string) (Diet, error) {
	for _, d := range Diets() {
		if normalizeChoice(s) == normalizeChoice(d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: diet %q", ErrUnknownChoice, s)
}

// ParseExercise parses an exercise level display name, case-insensitively.
func ParseExercise(s string) (Exercise, error) {
	for _, e := range Exercises() {
		if normalizeChoice(s) == normalizeChoice(e.String()) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: exercise %q", ErrUnknownChoice, s)
}

// Indicators returns genderFemale for g.
func (g Gender) Indicators() (female float64) {
	return genderIndicators[g].female
}

// Indicators returns (dietNonVeg, dietVegan) for d.
func (d Diet) Indicators() (nonVeg, vegan float64) {
	row := dietIndicators[d]
	return row.nonVeg, row.vegan
}

// Indicators returns (exerciseHigh, exerciseLow) for e.
func (e Exercise) Indicators() (high, low float64) {
	row := exerciseIndicators[e]
	return row.high, row.low
}
