package program

// Day names are part of every persisted completion key, do not rename them.
const (
	DayPush = "Monday - Push Day"
	DayPull = "Wednesday - Pull Day + Arms"
	DayLegs = "Friday - Legs + Cardio + Bonus Arms"
)

// Workouts is the fixed 3x/week program, in display order.
// Exercise order within a day and phase is the index basis for ExerciseKey.
var Workouts = []Workout{
	{
		Name:  DayPush,
		Slug:  "monday-push",
		Color: "bg-red-600",
		Exercises: map[Phase][]Exercise{
			PhaseFoundation: {
				{Name: "Incline Barbell Press", Sets: "4 x 8-10", Rest: "3 min", Notes: "Upper chest priority - 30-45° angle", Demo: "incline-barbell-press"},
				{Name: "Overhead Press", Sets: "4 x 8-10", Rest: "2.5 min", Notes: "Core tight, drive through legs", Demo: "overhead-press"},
				{Name: "Incline Dumbbell Press", Sets: "3 x 10-12", Rest: "2.5 min", Notes: "Deep stretch, slow negative", Demo: "incline-db-press"},
				{Name: "Lateral Raises", Sets: "4 x 12-15", Rest: "90 sec", Notes: "Control weight, slight lean forward", Demo: "lateral-raises"},
				{Name: "Weighted Dips", Sets: "3 x 10-12", Rest: "2 min", Notes: "Lean forward for chest emphasis", Demo: "weighted-dips"},
				{Name: "Close-Grip Bench Press", Sets: "3 x 10-12", Rest: "2 min", Notes: "Tricep mass builder", Demo: "close-grip-bench"},
				{Name: "Overhead Tricep Extension", Sets: "3 x 12-15", Rest: "90 sec", Notes: "ARM FOCUS: Full stretch at bottom", Demo: "overhead-tricep-ext"},
				{Name: "Rear Delt Flyes", Sets: "3 x 15-20", Rest: "60 sec", Notes: "Light weight, squeeze at top", Demo: "rear-delt-flyes"},
			},
			PhaseGrowth: {
				{Name: "Incline Barbell Press", Sets: "5 x 6-8", Rest: "3 min", Notes: "Progressive overload focus", Demo: "incline-barbell-press"},
				{Name: "Dumbbell Shoulder Press", Sets: "4 x 8-10", Rest: "2.5 min", Notes: "Full ROM, control at top", Demo: "db-shoulder-press"},
				{Name: "Decline Barbell Press", Sets: "4 x 8-10", Rest: "2.5 min", Notes: "Lower chest development", Demo: "decline-barbell-press"},
				{Name: "Arnold Press", Sets: "3 x 10-12", Rest: "2 min", Notes: "Rotation for all deltoid heads", Demo: "arnold-press"},
				{Name: "Superset: Lateral + Rear Raises", Sets: "4 x 12+12", Rest: "2 min", Notes: "No rest between exercises", Demo: "lateral-rear-superset"},
				{Name: "Weighted Dips", Sets: "4 x 8-12", Rest: "2.5 min", Notes: "Add weight belt/chain", Demo: "weighted-dips-heavy"},
				{Name: "Diamond Push-ups", Sets: "3 x max", Rest: "90 sec", Notes: "ARM FOCUS: Tricep isolation, to failure", Demo: "diamond-pushups"},
				{Name: "Cable Tricep Pushdowns", Sets: "3 x 12-15", Rest: "90 sec", Notes: "ARM FOCUS: Rope attachment, full extension", Demo: "cable-tricep-pushdowns"},
				{Name: "Cable Upright Rows", Sets: "3 x 12-15", Rest: "60 sec", Notes: "Wide grip, pull to chest", Demo: "cable-upright-rows"},
			},
			PhaseIntensity: {
				{Name: "Incline Barbell Press", Sets: "6 x 4-6", Rest: "4 min", Notes: "Heavy singles, spotter needed", Demo: "heavy-incline-press"},
				{Name: "Push Press", Sets: "5 x 3-5", Rest: "3 min", Notes: "Explosive leg drive", Demo: "push-press"},
				{Name: "Weighted Dip Clusters", Sets: "4 x 3+3+3", Rest: "15s between, 3min total", Notes: "Heavy dips with mini-rests", Demo: "dip-clusters"},
				{Name: "Handstand Push-ups", Sets: "4 x 5-8", Rest: "3 min", Notes: "Wall-assisted, full ROM", Demo: "handstand-pushups"},
				{Name: "Drop Set Lateral Raises", Sets: "3 x 10+8+6", Rest: "2.5 min", Notes: "Heavy to light, no rest", Demo: "drop-set-laterals"},
				{Name: "Close-Grip Press to Skulls", Sets: "4 x 6+8", Rest: "2.5 min", Notes: "ARM FOCUS: Mechanical drop set", Demo: "cgbp-to-skulls"},
				{Name: "21s Tricep Extensions", Sets: "3 x 21", Rest: "2 min", Notes: "ARM FOCUS: 7 bottom + 7 top + 7 full", Demo: "21s-tricep-ext"},
				{Name: "Giant Set: Shoulders", Sets: "3 rounds", Rest: "3 min", Notes: "Press + Lateral + Rear + Upright", Demo: "shoulder-giant-set"},
			},
		},
	},
	{
		Name:  DayPull,
		Slug:  "wednesday-pull",
		Color: "bg-blue-600",
		Exercises: map[Phase][]Exercise{
			PhaseFoundation: {
				{Name: "Wide-Grip Pull-ups", Sets: "4 x 8-12", Rest: "3 min", Notes: "Full hang, chest to bar", Demo: "wide-grip-pullups"},
				{Name: "Barbell Rows", Sets: "4 x 8-10", Rest: "2.5 min", Notes: "Pull to lower chest", Demo: "barbell-rows"},
				{Name: "Cable Rows (Wide Grip)", Sets: "3 x 10-12", Rest: "2.5 min", Notes: "Upper back thickness", Demo: "wide-cable-rows"},
				{Name: "Lat Pulldown", Sets: "3 x 10-12", Rest: "2 min", Notes: "Pull to upper chest", Demo: "lat-pulldown"},
				{Name: "Barbell Curls", Sets: "4 x 10-12", Rest: "2 min", Notes: "ARM FOCUS: No swinging", Demo: "barbell-curls"},
				{Name: "Hammer Curls", Sets: "4 x 10-12", Rest: "90 sec", Notes: "ARM FOCUS: Slow negatives", Demo: "hammer-curls"},
				{Name: "Cable Curls", Sets: "3 x 12-15", Rest: "90 sec", Notes: "ARM FOCUS: Constant tension", Demo: "cable-curls"},
				{Name: "Preacher Curls", Sets: "3 x 12-15", Rest: "90 sec", Notes: "ARM FOCUS: Bicep isolation", Demo: "preacher-curls"},
			},
			PhaseGrowth: {
				{Name: "Weighted Pull-ups", Sets: "5 x 6-8", Rest: "3 min", Notes: "Add weight when possible", Demo: "weighted-pullups"},
				{Name: "T-Bar Rows", Sets: "4 x 8-10", Rest: "2.5 min", Notes: "Chest supported, heavy", Demo: "t-bar-rows"},
				{Name: "Cable Rows (V-Handle)", Sets: "4 x 8-10", Rest: "2.5 min", Notes: "Squeeze shoulder blades", Demo: "v-handle-rows"},
				{Name: "Reverse Flyes", Sets: "3 x 12-15", Rest: "90 sec", Notes: "Rear delt focus", Demo: "reverse-flyes"},
				{Name: "Barbell Curls", Sets: "5 x 8-10", Rest: "2 min", Notes: "ARM FOCUS: Progressive overload", Demo: "barbell-curls-heavy"},
				{Name: "Alternating Dumbbell Curls", Sets: "4 x 10-12 each", Rest: "2 min", Notes: "ARM FOCUS: Peak contraction", Demo: "alternating-db-curls"},
				{Name: "Cable Hammer Curls", Sets: "4 x 10-12", Rest: "90 sec", Notes: "ARM FOCUS: Rope attachment", Demo: "cable-hammer-curls"},
				{Name: "Concentration Curls", Sets: "3 x 12-15 each", Rest: "90 sec", Notes: "ARM FOCUS: Isolation", Demo: "concentration-curls"},
				{Name: "Face Pulls", Sets: "3 x 15-20", Rest: "60 sec", Notes: "High reps, rear delts", Demo: "face-pulls"},
			},
			PhaseIntensity: {
				{Name: "Weighted Pull-up Clusters", Sets: "5 x 3+3+3", Rest: "15s between, 3min total", Notes: "Heavy weight, mini-rests", Demo: "pullup-clusters"},
				{Name: "Chest-Supported Rows", Sets: "5 x 5-7", Rest: "3 min", Notes: "Maximum weight possible", Demo: "chest-supported-rows-heavy"},
				{Name: "Single-Arm Dumbbell Rows", Sets: "4 x 6-8 each", Rest: "2.5 min", Notes: "Heavy unilateral work", Demo: "single-arm-db-rows"},
				{Name: "Wide-Grip Cable Rows", Sets: "4 x 8-10", Rest: "2.5 min", Notes: "Upper back width", Demo: "wide-cable-rows-heavy"},
				{Name: "21s Barbell Curls", Sets: "4 x 21", Rest: "2.5 min", Notes: "ARM FOCUS: 7+7+7 protocol", Demo: "21s-barbell-curls"},
				{Name: "Drop Set Hammer Curls", Sets: "3 x 8+6+4", Rest: "2 min", Notes: "ARM FOCUS: Heavy to light", Demo: "drop-set-hammers"},
				{Name: "Cable Curl 21s", Sets: "3 x 21", Rest: "2 min", Notes: "ARM FOCUS: Cable version", Demo: "cable-curl-21s"},
				{Name: "Superset: Preacher + Hammer", Sets: "3 x 10+10", Rest: "2 min", Notes: "ARM FOCUS: No rest between", Demo: "preacher-hammer-superset"},
			},
		},
	},
	{
		Name:  DayLegs,
		Slug:  "friday-legs",
		Color: "bg-green-600",
		Exercises: map[Phase][]Exercise{
			PhaseFoundation: {
				{Name: "Back Squat", Sets: "4 x 8-10", Rest: "3 min", Notes: "Full depth, drive through heels", Demo: "back-squat"},
				{Name: "Romanian Deadlift", Sets: "4 x 8-10", Rest: "3 min", Notes: "Hinge at hips, feel hamstrings", Demo: "romanian-deadlift"},
				{Name: "Leg Press", Sets: "3 x 12-15", Rest: "2.5 min", Notes: "Full range of motion", Demo: "leg-press"},
				{Name: "Walking Lunges", Sets: "3 x 12 each leg", Rest: "2 min", Notes: "Keep torso upright", Demo: "walking-lunges"},
				{Name: "Leg Curls", Sets: "3 x 12-15", Rest: "90 sec", Notes: "Slow negatives", Demo: "leg-curls"},
				{Name: "Calf Raises", Sets: "4 x 15-20", Rest: "90 sec", Notes: "Full stretch and squeeze", Demo: "calf-raises"},
				{Name: "BONUS: Cable Curls", Sets: "3 x 12-15", Rest: "60 sec", Notes: "ARM BONUS: End workout pump", Demo: "cable-curls-bonus"},
				{Name: "BONUS: Tricep Pushdowns", Sets: "3 x 12-15", Rest: "60 sec", Notes: "ARM BONUS: Tricep pump", Demo: "tricep-pushdowns-bonus"},
			},
			PhaseGrowth: {
				{Name: "Front Squats", Sets: "4 x 8-10", Rest: "3 min", Notes: "Quad emphasis, upright torso", Demo: "front-squats"},
				{Name: "Romanian Deadlift", Sets: "5 x 6-8", Rest: "3 min", Notes: "Progressive overload", Demo: "romanian-deadlift-heavy"},
				{Name: "Bulgarian Split Squats", Sets: "3 x 10-12 each", Rest: "2.5 min", Notes: "Rear foot elevated", Demo: "bulgarian-split-squats"},
				{Name: "Hip Thrusts", Sets: "4 x 12-15", Rest: "2 min", Notes: "Squeeze glutes hard", Demo: "hip-thrusts"},
				{Name: "Stiff-Leg Deadlifts", Sets: "3 x 12-15", Rest: "2 min", Notes: "Hamstring isolation", Demo: "stiff-leg-deadlifts"},
				{Name: "Single-Leg Calf Raises", Sets: "4 x 12-15 each", Rest: "90 sec", Notes: "Unilateral strength", Demo: "single-leg-calves"},
				{Name: "Zone 2 Cardio", Sets: "15-20 min", Rest: "N/A", Notes: "Moderate intensity", Demo: "zone2-cardio"},
				{Name: "BONUS: 21s Curls", Sets: "3 x 21", Rest: "90 sec", Notes: "ARM BONUS: Growth technique", Demo: "21s-curls-bonus"},
				{Name: "BONUS: Diamond Push-ups", Sets: "3 x max", Rest: "90 sec", Notes: "ARM BONUS: Tricep burnout", Demo: "diamond-pushups-bonus"},
			},
			PhaseIntensity: {
				{Name: "Back Squat", Sets: "6 x 4-6", Rest: "4 min", Notes: "Heavy singles, safety bars", Demo: "heavy-back-squats"},
				{Name: "Deficit Deadlifts", Sets: "5 x 3-5", Rest: "3.5 min", Notes: "Stand on platform", Demo: "deficit-deadlifts"},
				{Name: "Pause Squats", Sets: "4 x 6-8", Rest: "3 min", Notes: "3-second pause at bottom", Demo: "pause-squats"},
				{Name: "Single-Leg Press", Sets: "4 x 8-10 each", Rest: "2.5 min", Notes: "Unilateral leg strength", Demo: "single-leg-press"},
				{Name: "Jump Squats", Sets: "4 x 6", Rest: "2 min", Notes: "Explosive power", Demo: "jump-squats"},
				{Name: "1.5 Rep Calf Raises", Sets: "4 x 12", Rest: "2 min", Notes: "Bottom half + full rep", Demo: "1-5-rep-calves"},
				{Name: "HIIT Cardio", Sets: "12 min", Rest: "N/A", Notes: "30s on / 30s off intervals", Demo: "hiit-cardio"},
				{Name: "BONUS: Drop Set Curls", Sets: "3 x 10+8+6", Rest: "2 min", Notes: "ARM BONUS: Maximum pump", Demo: "drop-set-curls-bonus"},
				{Name: "BONUS: Close-Grip Push-ups", Sets: "3 x max", Rest: "90 sec", Notes: "ARM BONUS: Tricep finisher", Demo: "close-grip-pushups-bonus"},
			},
		},
	},
}
