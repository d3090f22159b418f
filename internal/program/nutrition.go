package program

type NutritionCategory string

const (
	CategoryProtein        NutritionCategory = "protein"
	CategoryHydration      NutritionCategory = "hydration"
	CategoryMicronutrients NutritionCategory = "micronutrients"
	CategoryFats           NutritionCategory = "fats"
	CategoryCarbs          NutritionCategory = "carbs"
	CategorySupplements    NutritionCategory = "supplements"
)

type NutritionGoal struct {
	Name     string            `json:"name"`
	Icon     string            `json:"icon"`
	Category NutritionCategory `json:"category"`
}

// DailyNutritionGoals are tracked per workout day; the slice index is the
// NutritionKey index.
var DailyNutritionGoals = []NutritionGoal{
	{Name: "Meal 1: Protein (39g)", Icon: "🥩", Category: CategoryProtein},
	{Name: "Meal 2: Protein (39g)", Icon: "🍗", Category: CategoryProtein},
	{Name: "Meal 3: Protein (39g)", Icon: "🥛", Category: CategoryProtein},
	{Name: "Meal 4: Protein (39g)", Icon: "🍳", Category: CategoryProtein},
	{Name: "Water: 2-3 Liters", Icon: "💧", Category: CategoryHydration},
	{Name: "Vegetables/Fruits", Icon: "🥗", Category: CategoryMicronutrients},
	{Name: "Healthy Fats", Icon: "🥑", Category: CategoryFats},
	{Name: "Complex Carbs", Icon: "🍠", Category: CategoryCarbs},
	{Name: "Creatine", Icon: "💊", Category: CategorySupplements},
	{Name: "Omega-3", Icon: "🐟", Category: CategorySupplements},
	{Name: "Ashwagandha", Icon: "🌿", Category: CategorySupplements},
	{Name: "Lion's Mane", Icon: "🍄", Category: CategorySupplements},
	{Name: "B-Complex", Icon: "💉", Category: CategorySupplements},
}
