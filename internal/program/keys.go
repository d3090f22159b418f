package program

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	weekSep      = "-week"
	nutritionSep = "-nutrition"
)

var ErrMalformedKey = errors.New("malformed completion key")

// ExerciseKey identifies one exercise of a day for one week.
// Wire form: "{day}-{index}-week{week}".
type ExerciseKey struct {
	Day   string
	Index int
	Week  int
}

// NutritionKey identifies one daily nutrition goal of a day for one week.
// Wire form: "{day}-nutrition-{index}-week{week}".
type NutritionKey struct {
	Day   string
	Index int
	Week  int
}

func (k ExerciseKey) String() string {
	return fmt.Sprintf("%s-%d%s%d", k.Day, k.Index, weekSep, k.Week)
}

func (k ExerciseKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ExerciseKey) UnmarshalText(text []byte) error {
	day, idx, week, err := splitKey(string(text))
	if err != nil {
		return err
	}
	if strings.HasSuffix(day, nutritionSep) {
		return fmt.Errorf("%w: %q is a nutrition key", ErrMalformedKey, text)
	}
	*k = ExerciseKey{Day: day, Index: idx, Week: week}
	return nil
}

func (k NutritionKey) String() string {
	return fmt.Sprintf("%s%s-%d%s%d", k.Day, nutritionSep, k.Index, weekSep, k.Week)
}

func (k NutritionKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *NutritionKey) UnmarshalText(text []byte) error {
	prefix, idx, week, err := splitKey(string(text))
	if err != nil {
		return err
	}
	day, ok := strings.CutSuffix(prefix, nutritionSep)
	if !ok || day == "" {
		return fmt.Errorf("%w: %q is not a nutrition key", ErrMalformedKey, text)
	}
	*k = NutritionKey{Day: day, Index: idx, Week: week}
	return nil
}

// splitKey parses from the right since day names contain '-'.
func splitKey(s string) (prefix string, index, week int, err error) {
	weekAt := strings.LastIndex(s, weekSep)
	if weekAt < 0 {
		return "", 0, 0, fmt.Errorf("%w: %q has no week", ErrMalformedKey, s)
	}
	week, err = parseUnsigned(s[weekAt+len(weekSep):])
	if err != nil || week < MinWeek {
		return "", 0, 0, fmt.Errorf("%w: %q week", ErrMalformedKey, s)
	}

	head := s[:weekAt]
	idxAt := strings.LastIndex(head, "-")
	if idxAt <= 0 {
		return "", 0, 0, fmt.Errorf("%w: %q has no index", ErrMalformedKey, s)
	}
	index, err = parseUnsigned(head[idxAt+1:])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %q index", ErrMalformedKey, s)
	}

	return head[:idxAt], index, week, nil
}

// parseUnsigned accepts plain digits only, Atoi alone would take a sign.
func parseUnsigned(s string) (int, error) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return strconv.Atoi(s)
}

// ExerciseCompletion is the completion map for exercises, absent means false.
type ExerciseCompletion map[ExerciseKey]bool

// ExerciseWeights holds the logged weight (kg) per exercise and week.
type ExerciseWeights map[ExerciseKey]float64

// NutritionCompletion is the completion map for daily nutrition goals.
type NutritionCompletion map[NutritionKey]bool

func (c ExerciseCompletion) Clone() ExerciseCompletion {
	out := make(ExerciseCompletion, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func (w ExerciseWeights) Clone() ExerciseWeights {
	out := make(ExerciseWeights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

func (c NutritionCompletion) Clone() NutritionCompletion {
	out := make(NutritionCompletion, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
