package tracker

import "github.com/2beens/trainingtracker/internal/program"

// LastUsedWeight resolves the weight to show for an exercise:
// the live weight of the week, then the first session (in the given order)
// of the same day with a logged weight at that index, then the live weights
// of earlier weeks going back, else 0.
func LastUsedWeight(
	day string,
	index, week int,
	weights program.ExerciseWeights,
	sessions []Session,
) float64 {
	if w := weights[program.ExerciseKey{Day: day, Index: index, Week: week}]; w > 0 {
		return w
	}

	for _, s := range sessions {
		if s.DayName != day || index < 0 || index >= len(s.Exercises) {
			continue
		}
		if w := s.Exercises[index].Weight; w > 0 {
			return w
		}
	}

	for wk := week - 1; wk >= program.MinWeek; wk-- {
		if w := weights[program.ExerciseKey{Day: day, Index: index, Week: wk}]; w > 0 {
			return w
		}
	}

	return 0
}
