package nutrition

import (
	"fmt"
	"strings"
)

// Food is a catalog item; its macros are per serving.
type Food struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Macros
	ServingSize string `json:"serving_size"`
}

// Catalog looks up foods that can be logged.
type Catalog interface {
	Search(term string) ([]Food, error)
	FindByID(id uint) (*Food, error)
}

// StaticCatalog is a Catalog over a fixed list.
type StaticCatalog []Food

func (c StaticCatalog) Search(term string) ([]Food, error) {
	if IsBlank(term) {
		return []Food{}, nil
	}
	needle := strings.ToLower(term)
	results := []Food{}
	for _, f := range c {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			results = append(results, f)
		}
	}
	return results, nil
}

func (c StaticCatalog) FindByID(id uint) (*Food, error) {
	for i := range c {
		if c[i].ID == id {
			f := c[i]
			return &f, nil
		}
	}
	return nil, fmt.Errorf("food %d: %w", id, ErrUnknownFood)
}

func IsBlank(term string) bool {
	return strings.TrimSpace(term) == ""
}

// Summary is the day's totals measured against the targets.
type Summary struct {
	Totals   Macros     `json:"totals"`
	Targets  Macros     `json:"targets"`
	Progress Progress   `json:"progress"`
	Split    MacroSplit `json:"macro_split"`
	Entries  int        `json:"entries"`
}

// Tracker is the food logging screen: a search box, a pending selection
// and the day's log. It is not safe for concurrent use.
type Tracker struct {
	catalog    Catalog
	log        *DailyLog
	searchTerm string
	results    []Food
	pending    *Food
	mealType   MealType
}

func NewTracker(catalog Catalog, log *DailyLog) *Tracker {
	return &Tracker{
		catalog:  catalog,
		log:      log,
		results:  []Food{},
		mealType: MealBreakfast,
	}
}

// Search looks term up in the catalog. A blank term returns nothing and
// does not touch the catalog.
func (t *Tracker) Search(term string) ([]Food, error) {
	t.searchTerm = term
	if IsBlank(term) {
		return []Food{}, nil
	}
	results, err := t.catalog.Search(term)
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	t.results = results
	return results, nil
}

// Select makes food the pending selection and clears the search results.
func (t *Tracker) Select(food Food) {
	f := food
	t.pending = &f
	t.results = []Food{}
}

func (t *Tracker) SelectByID(id uint) (Food, error) {
	food, err := t.catalog.FindByID(id)
	if err != nil {
		return Food{}, err
	}
	t.Select(*food)
	return *food, nil
}

func (t *Tracker) Pending() *Food {
	if t.pending == nil {
		return nil
	}
	f := *t.pending
	return &f
}

func (t *Tracker) SearchTerm() string {
	return t.searchTerm
}

func (t *Tracker) Results() []Food {
	out := make([]Food, len(t.results))
	copy(out, t.results)
	return out
}

func (t *Tracker) MealType() MealType {
	return t.mealType
}

// Log appends the pending selection under meal, or under the last used
// meal type when meal is empty. With nothing pending it returns nil and
// leaves the log alone.
func (t *Tracker) Log(meal MealType) (*LogEntry, error) {
	if meal == "" {
		meal = t.mealType
	}
	if !meal.Valid() {
		return nil, fmt.Errorf("%q: %w", meal, ErrInvalidMeal)
	}
	t.mealType = meal
	if t.pending == nil {
		return nil, nil
	}

	entry, err := t.log.Append(*t.pending, meal)
	if err != nil {
		return nil, err
	}
	t.pending = nil
	t.searchTerm = ""
	return &entry, nil
}

func (t *Tracker) Entries() []LogEntry {
	return t.log.Entries()
}

func (t *Tracker) ByMeal() map[MealType][]LogEntry {
	return t.log.ByMeal()
}

func (t *Tracker) Summary(targets Macros) Summary {
	totals := t.log.Totals()
	return Summary{
		Totals:   totals,
		Targets:  targets,
		Progress: ComputeProgress(totals, targets),
		Split:    ComputeMacroSplit(totals),
		Entries:  t.log.Len(),
	}
}
