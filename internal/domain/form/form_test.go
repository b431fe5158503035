package form_test

import (
	"encoding/json"
	"errors"
	"math"
	"net/url"
	"testing"

	"github.com/okian/cogscore/internal/domain/form"
	"github.com/okian/cogscore/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIndicatorTables(t *testing.T) {
	Convey("Given every categorical value", t, func() {
		Convey("Then gender encodes female as the only indicator", func() {
			So(form.Male.Indicators(), ShouldEqual, 0.0)
			So(form.Female.Indicators(), ShouldEqual, 1.0)
		})

		Convey("And each diet sets exactly its own indicators", func() {
			want := map[form.Diet][2]float64{
				form.Vegetarian:    {0, 0},
				form.NonVegetarian: {1, 0},
				form.Vegan:         {0, 1},
			}
			So(len(form.Diets()), ShouldEqual, len(want))
			for _, d := range form.Diets() {
				nonVeg, vegan := d.Indicators()
				So([2]float64{nonVeg, vegan}, ShouldResemble, want[d])
				So(nonVeg+vegan, ShouldBeLessThanOrEqualTo, 1)
			}
		})

		Convey("And each exercise level sets exactly its own indicators", func() {
			want := map[form.Exercise][2]float64{
				form.ExerciseNone: {0, 0},
				form.ExerciseHigh: {1, 0},
				form.ExerciseLow:  {0, 1},
			}
			So(len(form.Exercises()), ShouldEqual, len(want))
			for _, e := range form.Exercises() {
				high, low := e.Indicators()
				So([2]float64{high, low}, ShouldResemble, want[e])
				So(high+low, ShouldBeLessThanOrEqualTo, 1)
			}
		})

		Convey("And every value round-trips through its display name", func() {
			for _, g := range form.Genders() {
				got, err := form.ParseGender(g.String())
				So(err, ShouldBeNil)
				So(got, ShouldEqual, g)
			}
			for _, d := range form.Diets() {
				got, err := form.ParseDiet(d.String())
				So(err, ShouldBeNil)
				So(got, ShouldEqual, d)
			}
			for _, e := range form.Exercises() {
				got, err := form.ParseExercise(e.String())
				So(err, ShouldBeNil)
				So(got, ShouldEqual, e)
			}
		})
	})
}

func TestParseChoices(t *testing.T) {
	Convey("Given loosely formatted choices", t, func() {
		Convey("Then case and separators are ignored", func() {
			d, err := form.ParseDiet("non_vegetarian")
			So(err, ShouldBeNil)
			So(d, ShouldEqual, form.NonVegetarian)

			g, err := form.ParseGender(" female ")
			So(err, ShouldBeNil)
			So(g, ShouldEqual, form.Female)

			e, err := form.ParseExercise("HIGH")
			So(err, ShouldBeNil)
			So(e, ShouldEqual, form.ExerciseHigh)
		})

		Convey("And unknown values are rejected", func() {
			_, err := form.ParseDiet("Pescatarian")
			So(errors.Is(err, form.ErrUnknownChoice), ShouldBeTrue)
		})

		Convey("And out-of-range enum values print their number", func() {
			So(form.Diet(9).String(), ShouldEqual, "Diet(9)")
		})
	})
}

func TestAnswers(t *testing.T) {
	Convey("Given the default answers", t, func() {
		a := form.DefaultAnswers()

		Convey("Then they encode to the reference input", func() {
			So(a.Encode(), ShouldResemble, scoring.Input{
				Age:             25,
				SleepDuration:   7,
				MemoryTestScore: 70,
				StressLevel:     5,
				ReactionTime:    0.5,
				DailyScreenTime: 5,
				CaffeineIntake:  1,
			})
			So(a.Validate(), ShouldBeNil)
		})

		Convey("When choosing Vegan, Female and Low exercise", func() {
			a.Diet = form.Vegan
			a.Gender = form.Female
			a.Exercise = form.ExerciseLow
			in := a.Encode()

			Convey("Then only the chosen indicators are set", func() {
				So(in.DietVegan, ShouldEqual, 1.0)
				So(in.DietNonVeg, ShouldEqual, 0.0)
				So(in.GenderFemale, ShouldEqual, 1.0)
				So(in.ExerciseLow, ShouldEqual, 1.0)
				So(in.ExerciseHigh, ShouldEqual, 0.0)
			})
		})

		Convey("When values are outside their ranges", func() {
			a.Age = 4
			a.SleepDuration = 30
			a.StressLevel = 0
			a.ReactionTime = math.Inf(1)
			a.CaffeineIntake = -2
			clamped := a.Clamp()

			Convey("Then clamping pulls them to the nearest bound", func() {
				So(clamped.Age, ShouldEqual, 10.0)
				So(clamped.SleepDuration, ShouldEqual, 12.0)
				So(clamped.StressLevel, ShouldEqual, 1.0)
				So(clamped.ReactionTime, ShouldEqual, 5.0)
				So(clamped.CaffeineIntake, ShouldEqual, 0.0)
			})

			Convey("And the receiver is left untouched", func() {
				So(a.Age, ShouldEqual, 4.0)
			})
		})

		Convey("When a value is NaN", func() {
			a.MemoryTestScore = math.NaN()

			Convey("Then validation names the field", func() {
				err := a.Validate()
				So(errors.Is(err, form.ErrInvalidField), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, form.KeyMemoryTestScore)
			})
		})

		Convey("When a categorical value is out of range", func() {
			a.Exercise = form.Exercise(7)
			So(errors.Is(a.Validate(), form.ErrUnknownChoice), ShouldBeTrue)
		})
	})
}

func TestFromValues(t *testing.T) {
	Convey("Given submitted form values", t, func() {
		Convey("When nothing is submitted", func() {
			a, err := form.FromValues(url.Values{})

			Convey("Then the defaults are used", func() {
				So(err, ShouldBeNil)
				So(a, ShouldResemble, form.DefaultAnswers())
			})
		})

		Convey("When every field is submitted", func() {
			a, err := form.FromValues(url.Values{
				form.KeyAge:             {"41"},
				form.KeyGender:          {"Female"},
				form.KeySleepDuration:   {"6.5"},
				form.KeyMemoryTestScore: {"88"},
				form.KeyStressLevel:     {"3"},
				form.KeyDiet:            {"Non-Vegetarian"},
				form.KeyReactionTime:    {"0.35"},
				form.KeyDailyScreenTime: {"9"},
				form.KeyCaffeineIntake:  {"2"},
				form.KeyExercise:        {"High"},
			})

			Convey("Then each answer is parsed", func() {
				So(err, ShouldBeNil)
				So(a.Age, ShouldEqual, 41.0)
				So(a.Gender, ShouldEqual, form.Female)
				So(a.SleepDuration, ShouldEqual, 6.5)
				So(a.MemoryTestScore, ShouldEqual, 88.0)
				So(a.StressLevel, ShouldEqual, 3.0)
				So(a.Diet, ShouldEqual, form.NonVegetarian)
				So(a.ReactionTime, ShouldEqual, 0.35)
				So(a.DailyScreenTime, ShouldEqual, 9.0)
				So(a.CaffeineIntake, ShouldEqual, 2.0)
				So(a.Exercise, ShouldEqual, form.ExerciseHigh)
			})
		})

		Convey("When a number cannot be parsed", func() {
			_, err := form.FromValues(url.Values{form.KeyAge: {"old"}})

			Convey("Then an invalid field error is returned", func() {
				So(errors.Is(err, form.ErrInvalidField), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "age")
			})
		})

		Convey("When NaN is submitted", func() {
			_, err := form.FromValues(url.Values{form.KeyStressLevel: {"NaN"}})
			So(errors.Is(err, form.ErrInvalidField), ShouldBeTrue)
		})

		Convey("When a category is unknown", func() {
			_, err := form.FromValues(url.Values{form.KeyExercise: {"Daily"}})

			Convey("Then both error kinds are visible", func() {
				So(errors.Is(err, form.ErrInvalidField), ShouldBeTrue)
				So(errors.Is(err, form.ErrUnknownChoice), ShouldBeTrue)
			})
		})
	})
}

func TestAnswersJSON(t *testing.T) {
	Convey("Given a partial JSON body decoded over the defaults", t, func() {
		a := form.DefaultAnswers()
		err := json.Unmarshal([]byte(`{"diet_type":"Vegan","exercise_freq":"low","age":30}`), &a)

		Convey("Then provided fields override and the rest keep defaults", func() {
			So(err, ShouldBeNil)
			So(a.Diet, ShouldEqual, form.Vegan)
			So(a.Exercise, ShouldEqual, form.ExerciseLow)
			So(a.Age, ShouldEqual, 30.0)
			So(a.SleepDuration, ShouldEqual, 7.0)
		})

		Convey("And enums marshal as display names", func() {
			b, err := json.Marshal(form.DefaultAnswers())
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"diet_type":"Vegetarian"`)
			So(string(b), ShouldContainSubstring, `"exercise_freq":"None"`)
		})
	})
}

func TestCatalogue(t *testing.T) {
	Convey("Given the field catalogue", t, func() {
		Convey("Then every default lies inside its range", func() {
			for _, f := range form.Fields() {
				So(f.Default, ShouldBeBetweenOrEqual, f.Min, f.Max)
				So(f.Clamp(f.Default), ShouldEqual, f.Default)
			}
		})

		Convey("And every choice default is one of its options", func() {
			for _, c := range form.Choices() {
				So(c.Options, ShouldContain, c.Default)
			}
		})
	})
}
