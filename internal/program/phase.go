package program

// Phase is one of the three 4-week blocks of the program.
// It is derived from the week number and never stored on its own.
type Phase string

const (
	PhaseFoundation Phase = "foundation"
	PhaseGrowth     Phase = "growth"
	PhaseIntensity  Phase = "intensity"
)

const (
	MinWeek = 1
	MaxWeek = 12
)

var Phases = []Phase{PhaseFoundation, PhaseGrowth, PhaseIntensity}

// PhaseForWeek maps weeks 1-4 to foundation, 5-8 to growth and
// everything after to intensity. Weeks past MaxWeek are not clamped.
func PhaseForWeek(week int) Phase {
	if week <= 4 {
		return PhaseFoundation
	}
	if week <= 8 {
		return PhaseGrowth
	}
	return PhaseIntensity
}

func (p Phase) String() string {
	return string(p)
}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseFoundation, PhaseGrowth, PhaseIntensity:
		return true
	default:
		return false
	}
}

type PhaseInfo struct {
	Phase       Phase  `json:"phase"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Weeks       string `json:"weeks"`
	Focus       string `json:"focus"`
}

var phaseInfos = map[Phase]PhaseInfo{
	PhaseFoundation: {
		Phase:       PhaseFoundation,
		Name:        "Foundation Phase",
		Description: "Building movement patterns and base strength",
		Color:       "bg-blue-600",
		Weeks:       "1-4",
		Focus:       "Perfect form + arm specialization",
	},
	PhaseGrowth: {
		Phase:       PhaseGrowth,
		Name:        "Growth Phase",
		Description: "Higher volume for maximum muscle growth",
		Color:       "bg-green-600",
		Weeks:       "5-8",
		Focus:       "Volume + progressive overload + arm focus",
	},
	PhaseIntensity: {
		Phase:       PhaseIntensity,
		Name:        "Intensity Phase",
		Description: "Advanced techniques and peak strength",
		Color:       "bg-red-600",
		Weeks:       "9-12",
		Focus:       "Heavy lifting + advanced arm techniques",
	},
}

// Info returns display data for a valid phase, zero value otherwise.
func (p Phase) Info() PhaseInfo {
	return phaseInfos[p]
}
