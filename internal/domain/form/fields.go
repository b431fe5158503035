package form

// Form keys shared by the HTML page, the JSON API and the CLI.
const (
	KeyAge             = "age"
	KeyGender          = "gender"
	KeySleepDuration   = "sleep_duration"
	KeyMemoryTestScore = "memory_test_score"
	KeyStressLevel     = "stress_level"
	KeyDiet            = "diet_type"
	KeyReactionTime    = "reaction_time"
	KeyDailyScreenTime = "daily_screen_time"
	KeyCaffeineIntake  = "caffeine_intake"
	KeyExercise        = "exercise_freq"
)

// Widget names how a numeric field is presented.
type Widget string

// Widgets.
const (
	WidgetNumber Widget = "number"
	WidgetSlider Widget = "slider"
)

// Field describes one numeric input and its allowed range.
type Field struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Widget  Widget  `json:"widget"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
}

// Clamp limits v to [Min, Max].
func (f Field) Clamp(v float64) float64 {
	switch {
	case v < f.Min:
		return f.Min
	case v > f.Max:
		return f.Max
	default:
		return v
	}
}

// Choice describes one categorical input.
type Choice struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
	Default string   `json:"default"`
}

var (
	fieldAge = Field{
		Key: KeyAge, Label: "Age", Widget: WidgetNumber,
		Min: 10, Max: 100, Default: 25, Step: 1,
	}
	fieldSleep = Field{
		Key: KeySleepDuration, Label: "Sleep Duration (hours)", Widget: WidgetSlider,
		Min: 0, Max: 12, Default: 7, Step: 0.1,
	}
	fieldMemory = Field{
		Key: KeyMemoryTestScore, Label: "Memory Test Score (0-100)", Widget: WidgetSlider,
		Min: 0, Max: 100, Default: 70, Step: 0.5,
	}
	fieldStress = Field{
		Key: KeyStressLevel, Label: "Stress Level (1-10)", Widget: WidgetSlider,
		Min: 1, Max: 10, Default: 5, Step: 0.1,
	}
	fieldReaction = Field{
		Key: KeyReactionTime, Label: "Reaction Time (seconds)", Widget: WidgetNumber,
		Min: 0.1, Max: 5, Default: 0.5, Step: 0.01,
	}
	fieldScreen = Field{
		Key: KeyDailyScreenTime, Label: "Daily Screen Time (hours)", Widget: WidgetSlider,
		Min: 0, Max: 16, Default: 5, Step: 0.1,
	}
	fieldCaffeine = Field{
		Key: KeyCaffeineIntake, Label: "Caffeine Intake (cups/day)", Widget: WidgetNumber,
		Min: 0, Max: 10, Default: 1, Step: 0.5,
	}
)

// Fields returns the numeric fields in page order.
func Fields() []Field {
	return []Field{fieldAge, fieldSleep, fieldMemory, fieldStress, fieldReaction, fieldScreen, fieldCaffeine}
}

// Choices returns the categorical fields in page order.
func Choices() []Choice {
	return []Choice{
		{Key: KeyGender, Label: "Gender", Options: names(Genders()), Default: Male.String()},
		{Key: KeyDiet, Label: "Diet Type", Options: names(Diets()), Default: Vegetarian.String()},
		{Key: KeyExercise, Label: "Exercise Frequency", Options: names(Exercises()), Default: ExerciseNone.String()},
	}
}

func names[T interface{ String() string }](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}
