package tracker

import (
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/program"
)

// BuildSession snapshots one day of the current week.
func BuildSession(prefs *Preferences, day string, now time.Time) (Session, error) {
	w, ok := program.WorkoutByName(day)
	if !ok {
		return Session{}, fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	week := prefs.CurrentWeek
	phase := program.PhaseForWeek(week)
	session := Session{
		UserID:      prefs.UserID,
		SessionDate: now.Format(SessionDateLayout),
		SessionTime: now.Format(SessionTimeLayout),
		Week:        week,
		Phase:       phase,
		DayName:     day,
	}

	exercises := w.ExercisesFor(phase)
	session.Exercises = make([]ExerciseSnapshot, 0, len(exercises))
	for i, e := range exercises {
		key := program.ExerciseKey{Day: day, Index: i, Week: week}
		snap := ExerciseSnapshot{
			Name:      e.Name,
			Sets:      e.Sets,
			Weight:    prefs.ExerciseWeights[key],
			Completed: prefs.CompletedExercises[key],
		}
		if snap.Completed {
			session.ExercisesCompleted++
		}
		session.Exercises = append(session.Exercises, snap)
	}
	session.TotalExercises = len(session.Exercises)

	session.Nutrition = make([]NutritionSnapshot, 0, len(program.DailyNutritionGoals))
	for i, g := range program.DailyNutritionGoals {
		snap := NutritionSnapshot{
			Name:      g.Name,
			Icon:      g.Icon,
			Category:  g.Category,
			Completed: prefs.NutritionGoals[program.NutritionKey{Day: day, Index: i, Week: week}],
		}
		if snap.Completed {
			session.NutritionCompleted++
		}
		session.Nutrition = append(session.Nutrition, snap)
	}
	session.TotalNutrition = len(session.Nutrition)

	return session, nil
}

// SummaryMessage is the confirmation shown after a save.
func (s Session) SummaryMessage() string {
	return fmt.Sprintf(
		"Session saved: %s Exercises: %d/%d Nutrition: %d/%d",
		s.DayName, s.ExercisesCompleted, s.TotalExercises, s.NutritionCompleted, s.TotalNutrition,
	)
}
