package tracker

import "github.com/2beens/trainingtracker/internal/program"

type View struct {
	Week       int               `json:"week"`
	Phase      program.PhaseInfo `json:"phase"`
	Stats      program.Stats     `json:"stats"`
	Percentage int               `json:"percentage"`
	Days       []DayView         `json:"days"`
	Sessions   []Session         `json:"sessions"`
	Version    int64             `json:"version"`
}

type DayView struct {
	Name               string          `json:"name"`
	Slug               string          `json:"slug"`
	Color              string          `json:"color"`
	Exercises          []ExerciseView  `json:"exercises"`
	Completed          int             `json:"completed"`
	Total              int             `json:"total"`
	DayCompleted       bool            `json:"day_completed"`
	Nutrition          []NutritionView `json:"nutrition"`
	NutritionCompleted int             `json:"nutrition_completed"`
	NutritionTotal     int             `json:"nutrition_total"`
}

type ExerciseView struct {
	Index int `json:"index"`
	program.Exercise
	ArmFocus  bool              `json:"arm_focus"`
	Links     program.DemoLinks `json:"links"`
	Completed bool              `json:"completed"`
	Weight    float64           `json:"weight"`
}

type NutritionView struct {
	Index int `json:"index"`
	program.NutritionGoal
	Completed bool `json:"completed"`
}

// BuildView hydrates the screen model for the state's current week.
func BuildView(state *State) View {
	prefs := state.Preferences
	week := prefs.CurrentWeek
	phase := program.PhaseForWeek(week)
	stats := program.CompletionStats(prefs.CompletedExercises, phase, week)

	sessions := state.Sessions
	if sessions == nil {
		sessions = []Session{}
	}

	view := View{
		Week:       week,
		Phase:      phase.Info(),
		Stats:      stats,
		Percentage: stats.Percentage(),
		Days:       make([]DayView, 0, len(program.Workouts)),
		Sessions:   sessions,
		Version:    prefs.Version,
	}

	for _, w := range program.Workouts {
		day := DayView{
			Name:  w.Name,
			Slug:  w.Slug,
			Color: w.Color,
		}

		for i, e := range w.ExercisesFor(phase) {
			key := program.ExerciseKey{Day: w.Name, Index: i, Week: week}
			day.Exercises = append(day.Exercises, ExerciseView{
				Index:     i,
				Exercise:  e,
				ArmFocus:  e.ArmFocus(),
				Links:     e.DemoLinks(),
				Completed: prefs.CompletedExercises[key],
				Weight:    LastUsedWeight(w.Name, i, week, prefs.ExerciseWeights, state.Sessions),
			})
		}
		day.Completed, day.Total = program.DayProgress(w.Name, week, prefs.CompletedExercises)
		day.DayCompleted = day.Total > 0 && day.Completed == day.Total

		for i, g := range program.DailyNutritionGoals {
			day.Nutrition = append(day.Nutrition, NutritionView{
				Index:         i,
				NutritionGoal: g,
				Completed:     prefs.NutritionGoals[program.NutritionKey{Day: w.Name, Index: i, Week: week}],
			})
		}
		day.NutritionCompleted, day.NutritionTotal = program.NutritionProgress(w.Name, week, prefs.NutritionGoals)

		view.Days = append(view.Days, day)
	}

	return view
}

type WorkoutView struct {
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Color     string         `json:"color"`
	Exercises []ExerciseView `json:"exercises"`
}

// ProgramView is the static program of one week, no user data.
type ProgramView struct {
	Week           int                     `json:"week"`
	Phase          program.PhaseInfo       `json:"phase"`
	Workouts       []WorkoutView           `json:"workouts"`
	NutritionGoals []program.NutritionGoal `json:"nutrition_goals"`
	Targets        []program.Target        `json:"targets"`
	Schedule       []program.ScheduleEntry `json:"schedule"`
}

func BuildProgramView(week int) ProgramView {
	phase := program.PhaseForWeek(week)
	view := ProgramView{
		Week:           week,
		Phase:          phase.Info(),
		Workouts:       make([]WorkoutView, 0, len(program.Workouts)),
		NutritionGoals: program.DailyNutritionGoals,
		Targets:        program.Targets,
		Schedule:       program.Schedule,
	}
	for _, w := range program.Workouts {
		wv := WorkoutView{Name: w.Name, Slug: w.Slug, Color: w.Color}
		for i, e := range w.ExercisesFor(phase) {
			wv.Exercises = append(wv.Exercises, ExerciseView{
				Index:    i,
				Exercise: e,
				ArmFocus: e.ArmFocus(),
				Links:    e.DemoLinks(),
			})
		}
		view.Workouts = append(view.Workouts, wv)
	}
	return view
}
