package nutrition

import "math"

// Energy per gram of each macronutrient.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// Macros is an energy and macronutrient amount: a food, a log entry, a
// day's totals or a day's targets.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// SumMacros adds up items elementwise.
func SumMacros(items ...Macros) Macros {
	var total Macros
	for _, m := range items {
		total = total.Add(m)
	}
	return total
}

// Progress holds each total as a percentage of its target. Values over 100
// are kept.
type Progress struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func ComputeProgress(totals, targets Macros) Progress {
	return Progress{
		Calories: ratio(totals.Calories, targets.Calories),
		Protein:  ratio(totals.Protein, targets.Protein),
		Carbs:    ratio(totals.Carbs, targets.Carbs),
		Fat:      ratio(totals.Fat, targets.Fat),
	}
}

// MacroPercentOfCalories is the share of totalCalories supplied by grams of
// a macronutrient. An empty day (zero calories) yields 0.
func MacroPercentOfCalories(grams, kcalPerGram, totalCalories float64) float64 {
	return ratio(grams*kcalPerGram, totalCalories)
}

// MacroSplit is the rounded percentage of calories from each macronutrient.
type MacroSplit struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

func ComputeMacroSplit(totals Macros) MacroSplit {
	return MacroSplit{
		Protein: math.Round(MacroPercentOfCalories(totals.Protein, KcalPerGramProtein, totals.Calories)),
		Carbs:   math.Round(MacroPercentOfCalories(totals.Carbs, KcalPerGramCarbs, totals.Calories)),
		Fat:     math.Round(MacroPercentOfCalories(totals.Fat, KcalPerGramFat, totals.Calories)),
	}
}

func ratio(value, of float64) float64 {
	if of == 0 {
		return 0
	}
	return value / of * 100
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
