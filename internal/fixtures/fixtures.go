// Package fixtures holds the sample data the service is seeded with: food
// catalog, starting log, meal plan, articles, tips and the demo user.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mealmentor/internal/nutrition"
)

//go:embed sample.yaml
var sampleYAML []byte

type Macros struct {
	Calories float64 `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
}

func (m Macros) toDomain() nutrition.Macros {
	return nutrition.Macros{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat}
}

type Food struct {
	ID          uint   `yaml:"id"`
	Name        string `yaml:"name"`
	Macros      `yaml:",inline"`
	ServingSize string `yaml:"serving_size"`
}

type LogEntry struct {
	ID       int64  `yaml:"id"`
	Food     string `yaml:"food"`
	MealType string `yaml:"meal_type"`
	Macros   `yaml:",inline"`
	Time     string `yaml:"time"`
}

type PlannedMeal struct {
	Slot        string   `yaml:"slot"`
	Name        string   `yaml:"name"`
	Macros      `yaml:",inline"`
	ImageURL    string   `yaml:"image_url"`
	Ingredients []string `yaml:"ingredients"`
}

type Article struct {
	ID          uint   `yaml:"id"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
	ReadTime    string `yaml:"read_time"`
}

type Tip struct {
	ID   uint   `yaml:"id"`
	Text string `yaml:"text"`
}

type Profile struct {
	Age               int      `yaml:"age"`
	Gender            string   `yaml:"gender"`
	HeightCM          float64  `yaml:"height_cm"`
	WeightKG          float64  `yaml:"weight_kg"`
	ActivityLevel     string   `yaml:"activity_level"`
	HealthConditions  []string `yaml:"health_conditions"`
	Allergies         []string `yaml:"allergies"`
	DietaryPreference string   `yaml:"dietary_preference"`
	WeightGoal        string   `yaml:"weight_goal"`
}

type DemoUser struct {
	Name           string  `yaml:"name"`
	TargetWeightKG float64 `yaml:"target_weight_kg"`
	StartDate      string  `yaml:"start_date"`
	DaysActive     int     `yaml:"days_active"`
	CompletedMeals int     `yaml:"completed_meals"`
	Profile        Profile `yaml:"profile"`
}

type ProgressPoint struct {
	Day      string  `yaml:"day"`
	WeightKG float64 `yaml:"weight_kg"`
	Calories float64 `yaml:"calories"`
}

// Set is one complete fixture file.
type Set struct {
	Targets    Macros          `yaml:"targets"`
	Foods      []Food          `yaml:"foods"`
	InitialLog []LogEntry      `yaml:"initial_log"`
	MealPlan   []PlannedMeal   `yaml:"meal_plan"`
	Articles   []Article       `yaml:"articles"`
	Tips       []Tip           `yaml:"tips"`
	DemoUser   DemoUser        `yaml:"demo_user"`
	Progress   []ProgressPoint `yaml:"progress"`
}

// Load reads the fixture file at path, or the built-in sample data when
// path is empty.
func Load(path string) (*Set, error) {
	data := sampleYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures %s: %w", path, err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *Set) validate() error {
	if len(s.Foods) == 0 {
		return fmt.Errorf("fixtures: food catalog is empty")
	}
	seen := map[uint]bool{}
	for _, f := range s.Foods {
		if seen[f.ID] {
			return fmt.Errorf("fixtures: duplicate food id %d", f.ID)
		}
		seen[f.ID] = true
	}
	for _, e := range s.InitialLog {
		if !nutrition.MealType(e.MealType).Valid() {
			return fmt.Errorf("fixtures: log entry %d: meal type %q: %w", e.ID, e.MealType, nutrition.ErrInvalidMeal)
		}
	}
	return nil
}

// TargetMacros returns the fixed daily targets.
func (s *Set) TargetMacros() nutrition.Macros {
	return s.Targets.toDomain()
}

func (s *Set) Catalog() nutrition.StaticCatalog {
	catalog := make(nutrition.StaticCatalog, 0, len(s.Foods))
	for _, f := range s.Foods {
		catalog = append(catalog, nutrition.Food{
			ID:          f.ID,
			Name:        f.Name,
			Macros:      f.Macros.toDomain(),
			ServingSize: f.ServingSize,
		})
	}
	return catalog
}

// LogEntries returns the entries a fresh tracker starts with.
func (s *Set) LogEntries() []nutrition.LogEntry {
	entries := make([]nutrition.LogEntry, 0, len(s.InitialLog))
	for _, e := range s.InitialLog {
		entries = append(entries, nutrition.LogEntry{
			ID:       e.ID,
			FoodName: e.Food,
			MealType: nutrition.MealType(e.MealType),
			Macros:   e.Macros.toDomain(),
			Time:     e.Time,
		})
	}
	return entries
}

func (p Profile) ToDomain() nutrition.Profile {
	return nutrition.Profile{
		Age:               p.Age,
		Gender:            nutrition.Gender(p.Gender),
		HeightCM:          p.HeightCM,
		WeightKG:          p.WeightKG,
		ActivityLevel:     nutrition.ActivityLevel(p.ActivityLevel),
		HealthConditions:  nutrition.NewSelection(p.HealthConditions...),
		Allergies:         nutrition.NewSelection(p.Allergies...),
		DietaryPreference: nutrition.DietaryPreference(p.DietaryPreference),
		WeightGoal:        nutrition.WeightGoal(p.WeightGoal),
	}
}
