package tracker

import (
	"fmt"
	"math"

	"github.com/2beens/trainingtracker/internal/program"
)

// WeightStep is the increment of the +/- weight buttons, in kg.
const WeightStep = 2.5

// Action is one user interaction. Apply never mutates prefs, it returns
// the next record.
type Action interface {
	Name() string
	Apply(prefs *Preferences, history []Session) (*Preferences, error)
}

// historyReader is implemented by actions whose result depends on the
// session history.
type historyReader interface {
	needsHistory() bool
}

type ToggleExercise struct {
	Day   string
	Index int
}

func (a ToggleExercise) Name() string { return "toggle_exercise" }

func (a ToggleExercise) Apply(prefs *Preferences, _ []Session) (*Preferences, error) {
	if err := checkExerciseIndex(a.Day, a.Index, prefs.CurrentWeek); err != nil {
		return nil, err
	}
	next := prefs.Clone()
	key := program.ExerciseKey{Day: a.Day, Index: a.Index, Week: prefs.CurrentWeek}
	next.CompletedExercises[key] = !next.CompletedExercises[key]
	return next, nil
}

type ToggleNutrition struct {
	Day   string
	Index int
}

func (a ToggleNutrition) Name() string { return "toggle_nutrition" }

func (a ToggleNutrition) Apply(prefs *Preferences, _ []Session) (*Preferences, error) {
	if _, ok := program.WorkoutByName(a.Day); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, a.Day)
	}
	if a.Index < 0 || a.Index >= len(program.DailyNutritionGoals) {
		return nil, fmt.Errorf("%w: nutrition goal %d", ErrIndexOutOfRange, a.Index)
	}
	next := prefs.Clone()
	key := program.NutritionKey{Day: a.Day, Index: a.Index, Week: prefs.CurrentWeek}
	next.NutritionGoals[key] = !next.NutritionGoals[key]
	return next, nil
}

type AdjustWeight struct {
	Day   string
	Index int
	Delta float64
}

func (a AdjustWeight) Name() string { return "adjust_weight" }

func (a AdjustWeight) needsHistory() bool { return true }

func (a AdjustWeight) Apply(prefs *Preferences, history []Session) (*Preferences, error) {
	if math.IsNaN(a.Delta) || math.IsInf(a.Delta, 0) {
		return nil, ErrInvalidDelta
	}
	if err := checkExerciseIndex(a.Day, a.Index, prefs.CurrentWeek); err != nil {
		return nil, err
	}

	key := program.ExerciseKey{Day: a.Day, Index: a.Index, Week: prefs.CurrentWeek}
	base := prefs.ExerciseWeights[key]
	if base == 0 {
		base = LastUsedWeight(a.Day, a.Index, prefs.CurrentWeek, prefs.ExerciseWeights, history)
	}

	next := prefs.Clone()
	next.ExerciseWeights[key] = math.Max(0, base+a.Delta)
	return next, nil
}

// ResetWeek clears the completion flags of the current week only.
type ResetWeek struct{}

func (a ResetWeek) Name() string { return "reset_week" }

func (a ResetWeek) Apply(prefs *Preferences, _ []Session) (*Preferences, error) {
	next := prefs.Clone()
	for k := range next.CompletedExercises {
		if k.Week == prefs.CurrentWeek {
			delete(next.CompletedExercises, k)
		}
	}
	for k := range next.NutritionGoals {
		if k.Week == prefs.CurrentWeek {
			delete(next.NutritionGoals, k)
		}
	}
	return next, nil
}

type SetWeek struct {
	Week int
}

func (a SetWeek) Name() string { return "set_week" }

func (a SetWeek) Apply(prefs *Preferences, _ []Session) (*Preferences, error) {
	if a.Week < program.MinWeek || a.Week > program.MaxWeek {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeek, a.Week)
	}
	next := prefs.Clone()
	next.CurrentWeek = a.Week
	return next, nil
}

func checkExerciseIndex(day string, index, week int) error {
	w, ok := program.WorkoutByName(day)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	phase := program.PhaseForWeek(week)
	if index < 0 || index >= len(w.ExercisesFor(phase)) {
		return fmt.Errorf("%w: exercise %d of %s/%s", ErrIndexOutOfRange, index, w.Slug, phase)
	}
	return nil
}

func needsHistory(a Action) bool {
	hr, ok := a.(historyReader)
	return ok && hr.needsHistory()
}
