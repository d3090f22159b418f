package program

import (
	"net/url"
	"strings"
)

const (
	demoVideoBaseURL = "https://www.youtube.com/results?search_query="
	demoGuideBaseURL = "https://www.google.com/search?q="
)

type Exercise struct {
	Name  string `json:"name"`
	Sets  string `json:"sets"`
	Rest  string `json:"rest"`
	Notes string `json:"notes"`
	Demo  string `json:"demo"`
}

// ArmFocus marks the arm specialization work (highlighted in the UI).
func (e Exercise) ArmFocus() bool {
	return strings.Contains(e.Notes, "ARM FOCUS") || strings.Contains(e.Notes, "ARM BONUS")
}

type DemoLinks struct {
	Video string `json:"video"`
	Guide string `json:"guide"`
}

// DemoLinks builds search links for the exercise name, words joined by '+'.
func (e Exercise) DemoLinks() DemoLinks {
	words := strings.Fields(e.Name)
	for i, w := range words {
		words[i] = url.QueryEscape(w)
	}
	query := strings.Join(words, "+")
	return DemoLinks{
		Video: demoVideoBaseURL + query,
		Guide: demoGuideBaseURL + query,
	}
}

type Workout struct {
	Name      string
	Slug      string
	Color     string
	Exercises map[Phase][]Exercise
}

func (w Workout) ExercisesFor(phase Phase) []Exercise {
	return w.Exercises[phase]
}

func WorkoutByName(name string) (Workout, bool) {
	for _, w := range Workouts {
		if w.Name == name {
			return w, true
		}
	}
	return Workout{}, false
}

func WorkoutBySlug(slug string) (Workout, bool) {
	for _, w := range Workouts {
		if w.Slug == slug {
			return w, true
		}
	}
	return Workout{}, false
}

// TotalExercises sums the exercise counts of all days for the phase.
func TotalExercises(phase Phase) int {
	total := 0
	for _, w := range Workouts {
		total += len(w.ExercisesFor(phase))
	}
	return total
}
