package tracker

import (
	"time"

	"github.com/2beens/trainingtracker/internal/program"
)

const (
	SessionDateLayout = "2006-01-02"
	SessionTimeLayout = "15:04:05"
)

// Preferences is the single persisted record of the tracker state.
// Version 0 means no row has been stored yet.
type Preferences struct {
	UserID             string                      `json:"user_id"`
	CurrentWeek        int                         `json:"current_week"`
	CompletedExercises program.ExerciseCompletion  `json:"completed_exercises"`
	ExerciseWeights    program.ExerciseWeights     `json:"exercise_weights"`
	NutritionGoals     program.NutritionCompletion `json:"nutrition_goals"`
	Version            int64                       `json:"version"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:             userID,
		CurrentWeek:        program.MinWeek,
		CompletedExercises: program.ExerciseCompletion{},
		ExerciseWeights:    program.ExerciseWeights{},
		NutritionGoals:     program.NutritionCompletion{},
	}
}

// Clone returns a deep copy, nil maps come back empty.
func (p *Preferences) Clone() *Preferences {
	c := *p
	c.CompletedExercises = p.CompletedExercises.Clone()
	c.ExerciseWeights = p.ExerciseWeights.Clone()
	c.NutritionGoals = p.NutritionGoals.Clone()
	return &c
}

func (p *Preferences) Phase() program.Phase {
	return program.PhaseForWeek(p.CurrentWeek)
}

type ExerciseSnapshot struct {
	Name      string  `json:"name"`
	Sets      string  `json:"sets"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

type NutritionSnapshot struct {
	Name      string                    `json:"name"`
	Icon      string                    `json:"icon"`
	Category  program.NutritionCategory `json:"category"`
	Completed bool                      `json:"completed"`
}

// Session is an append-only snapshot of one workout day.
type Session struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"user_id"`
	SessionDate        string              `json:"session_date"`
	SessionTime        string              `json:"session_time"`
	Week               int                 `json:"week"`
	Phase              program.Phase       `json:"phase"`
	DayName            string              `json:"day_name"`
	Exercises          []ExerciseSnapshot  `json:"exercises"`
	Nutrition          []NutritionSnapshot `json:"nutrition"`
	ExercisesCompleted int                 `json:"exercises_completed"`
	TotalExercises     int                 `json:"total_exercises"`
	NutritionCompleted int                 `json:"nutrition_completed"`
	TotalNutrition     int                 `json:"total_nutrition"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// State is everything the screen is built from.
type State struct {
	Preferences *Preferences `json:"preferences"`
	Sessions    []Session    `json:"sessions"`
}
