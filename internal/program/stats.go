package program

import "math"

type Stats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Percentage is the rounded completion percentage, 0 for an empty phase.
func (s Stats) Percentage() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
}

// CompletionStats counts the checked exercises of the given week against the
// phase's exercise total across all days.
func CompletionStats(completed ExerciseCompletion, phase Phase, week int) Stats {
	stats := Stats{Total: TotalExercises(phase)}
	for k, done := range completed {
		if done && k.Week == week {
			stats.Completed++
		}
	}
	return stats
}

// DayProgress counts completed exercises of one day for the week's phase.
func DayProgress(day string, week int, completed ExerciseCompletion) (done, total int) {
	w, ok := WorkoutByName(day)
	if !ok {
		return 0, 0
	}
	exercises := w.ExercisesFor(PhaseForWeek(week))
	for i := range exercises {
		if completed[ExerciseKey{Day: day, Index: i, Week: week}] {
			done++
		}
	}
	return done, len(exercises)
}

// DayCompleted reports whether every exercise of the day is checked.
func DayCompleted(day string, week int, completed ExerciseCompletion) bool {
	done, total := DayProgress(day, week, completed)
	return total > 0 && done == total
}

func NutritionProgress(day string, week int, goals NutritionCompletion) (done, total int) {
	for i := range DailyNutritionGoals {
		if goals[NutritionKey{Day: day, Index: i, Week: week}] {
			done++
		}
	}
	return done, len(DailyNutritionGoals)
}
