package nutrition

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type DietaryPreference string

const (
	DietOmnivore    DietaryPreference = "omnivore"
	DietPescatarian DietaryPreference = "pescatarian"
	DietVegetarian  DietaryPreference = "vegetarian"
	DietVegan       DietaryPreference = "vegan"
	DietKeto        DietaryPreference = "keto"
	DietPaleo       DietaryPreference = "paleo"
)

type WeightGoal string

const (
	GoalLose     WeightGoal = "lose"
	GoalMaintain WeightGoal = "maintain"
	GoalGain     WeightGoal = "gain"
)

// NoneOption is the "no selection" entry offered in both multi-select lists.
const NoneOption = "None"

const maxAge = 130

var (
	HealthConditionOptions = []string{
		"Diabetes", "Hypertension", "Heart Disease", "High Cholesterol",
		"Celiac Disease", "IBS", "Lactose Intolerance", NoneOption,
	}
	AllergyOptions = []string{
		"Peanuts", "Tree Nuts", "Milk", "Eggs", "Fish", "Shellfish",
		"Wheat", "Soy", NoneOption,
	}
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

func (d DietaryPreference) Valid() bool {
	switch d {
	case DietOmnivore, DietPescatarian, DietVegetarian, DietVegan, DietKeto, DietPaleo:
		return true
	}
	return false
}

func (w WeightGoal) Valid() bool {
	switch w {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	}
	return false
}

// Profile is the health profile collected by the wizard.
type Profile struct {
	Age               int               `json:"age"`
	Gender            Gender            `json:"gender"`
	HeightCM          float64           `json:"height_cm"`
	WeightKG          float64           `json:"weight_kg"`
	ActivityLevel     ActivityLevel     `json:"activity_level"`
	HealthConditions  *Selection        `json:"health_conditions"`
	Allergies         *Selection        `json:"allergies"`
	DietaryPreference DietaryPreference `json:"dietary_preference"`
	WeightGoal        WeightGoal        `json:"weight_goal"`
}

// DefaultProfile returns the values a fresh wizard starts from.
func DefaultProfile() Profile {
	return Profile{
		Age:               30,
		Gender:            GenderMale,
		HeightCM:          170,
		WeightKG:          70,
		ActivityLevel:     ActivityModerate,
		HealthConditions:  NewSelection(),
		Allergies:         NewSelection(),
		DietaryPreference: DietOmnivore,
		WeightGoal:        GoalMaintain,
	}
}

func (p Profile) Clone() Profile {
	c := p
	c.HealthConditions = p.HealthConditions.Clone()
	c.Allergies = p.Allergies.Clone()
	return c
}

// Validate checks every field of the profile.
func (p Profile) Validate() error {
	switch {
	case p.Age <= 0 || p.Age > maxAge:
		return fmt.Errorf("age %d: %w", p.Age, ErrInvalidValue)
	case !p.Gender.Valid():
		return fmt.Errorf("gender %q: %w", p.Gender, ErrInvalidValue)
	case p.HeightCM <= 0:
		return fmt.Errorf("height %.1f: %w", p.HeightCM, ErrInvalidValue)
	case p.WeightKG <= 0:
		return fmt.Errorf("weight %.1f: %w", p.WeightKG, ErrInvalidValue)
	case !p.ActivityLevel.Valid():
		return fmt.Errorf("activity level %q: %w", p.ActivityLevel, ErrInvalidValue)
	case !p.DietaryPreference.Valid():
		return fmt.Errorf("dietary preference %q: %w", p.DietaryPreference, ErrInvalidValue)
	case !p.WeightGoal.Valid():
		return fmt.Errorf("weight goal %q: %w", p.WeightGoal, ErrInvalidValue)
	}
	return nil
}

// Normalized drops NoneOption from any selection that also holds a real
// choice.
func (p Profile) Normalized() Profile {
	c := p.Clone()
	for _, s := range []*Selection{c.HealthConditions, c.Allergies} {
		if s.Len() > 1 && s.Contains(NoneOption) {
			s.Remove(NoneOption)
		}
	}
	return c
}

// BMI returns weight / height² rounded to one decimal.
func (p Profile) BMI() float64 {
	if p.HeightCM <= 0 {
		return 0
	}
	m := p.HeightCM / 100
	return roundTo(p.WeightKG/(m*m), 1)
}

// MultiSelectField names the two toggle lists.
type MultiSelectField string

const (
	FieldHealthConditions MultiSelectField = "health_conditions"
	FieldAllergies        MultiSelectField = "allergies"
)

func (f MultiSelectField) options() ([]string, bool) {
	switch f {
	case FieldHealthConditions:
		return HealthConditionOptions, true
	case FieldAllergies:
		return AllergyOptions, true
	}
	return nil, false
}

func (p *Profile) selection(f MultiSelectField) *Selection {
	if f == FieldHealthConditions {
		return p.HealthConditions
	}
	return p.Allergies
}

func isOption(options []string, value string) bool {
	for _, o := range options {
		if strings.EqualFold(o, value) {
			return true
		}
	}
	return false
}

// canonicalOption maps value onto the spelling used in options.
func canonicalOption(options []string, value string) string {
	for _, o := range options {
		if strings.EqualFold(o, value) {
			return o
		}
	}
	return value
}
