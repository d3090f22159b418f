package program

type Target struct {
	Label    string `json:"label"`
	Baseline string `json:"baseline"`
	Goal     string `json:"goal"`
}

type ScheduleEntry struct {
	Day      string `json:"day"`
	Workout  string `json:"workout"`
	Duration string `json:"duration"`
}

var Targets = []Target{
	{Label: "Arms", Baseline: "Week 0: 34.5cm", Goal: "Week 12: 36.5cm (+2cm)"},
	{Label: "Chest", Baseline: "Week 0: 100.5cm", Goal: "Week 12: 105cm (+4.5cm)"},
	{Label: "Weight", Baseline: "Week 0: 77.4kg", Goal: "Week 12: 82-83kg (+5kg)"},
	{Label: "Daily Protein", Baseline: "", Goal: "156g (39g x 4 meals)"},
}

var Schedule = []ScheduleEntry{
	{Day: "Monday", Workout: "Push Day", Duration: "90 min"},
	{Day: "Wednesday", Workout: "Pull + Arms", Duration: "90 min"},
	{Day: "Friday", Workout: "Legs + Cardio + Arms", Duration: "75 min"},
}
