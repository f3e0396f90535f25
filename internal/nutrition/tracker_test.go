package nutrition

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFoods = StaticCatalog{
	{ID: 1, Name: "Apple", Macros: Macros{Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3}, ServingSize: "1 medium"},
	{ID: 2, Name: "Chicken Breast", Macros: Macros{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}, ServingSize: "100g"},
	{ID: 3, Name: "Brown Rice", Macros: Macros{Calories: 215, Protein: 5, Carbs: 45, Fat: 1.8}, ServingSize: "1 cup cooked"},
	{ID: 4, Name: "Salmon", Macros: Macros{Calories: 206, Protein: 22, Carbs: 0, Fat: 13}, ServingSize: "100g"},
	{ID: 9, Name: "Chicken Noodle Soup", Macros: Macros{Calories: 120, Protein: 8, Carbs: 14, Fat: 3}, ServingSize: "1 cup"},
}

var initialEntries = []LogEntry{
	{ID: 1, FoodName: "Oatmeal with Blueberries", MealType: MealBreakfast, Macros: Macros{Calories: 310, Protein: 12, Carbs: 54, Fat: 6}, Time: "07:30"},
	{ID: 2, FoodName: "Chicken Salad", MealType: MealLunch, Macros: Macros{Calories: 420, Protein: 35, Carbs: 25, Fat: 18}, Time: "12:15"},
}

func fixedClock(ts time.Time) Clock {
	return func() time.Time { return ts }
}

type failingCatalog struct{ calls int }

func (c *failingCatalog) Search(string) ([]Food, error) {
	c.calls++
	return nil, errors.New("catalog offline")
}

func (c *failingCatalog) FindByID(uint) (*Food, error) {
	return nil, errors.New("catalog offline")
}

func TestTrackerSearch(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		names []string
	}{
		{name: "empty term", term: "", names: []string{}},
		{name: "whitespace term", term: "   ", names: []string{}},
		{name: "case insensitive substring", term: "chicken", names: []string{"Chicken Breast", "Chicken Noodle Soup"}},
		{name: "upper case term", term: "SALM", names: []string{"Salmon"}},
		{name: "no match", term: "pizza", names: []string{}},
		{name: "trailing space is not trimmed", term: "salmon ", names: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(sampleFoods, NewDailyLog(nil))

			results, err := tr.Search(tt.term)

			require.NoError(t, err)
			names := []string{}
			for _, f := range results {
				names = append(names, f.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestTrackerBlankSearchSkipsCatalog(t *testing.T) {
	catalog := &failingCatalog{}
	tr := NewTracker(catalog, NewDailyLog(nil))

	results, err := tr.Search(" \t ")

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, catalog.calls)

	_, err = tr.Search("apple")
	assert.Error(t, err)
	assert.Equal(t, 1, catalog.calls)
}

func TestTrackerSelectClearsResults(t *testing.T) {
	tr := NewTracker(sampleFoods, NewDailyLog(nil))
	results, err := tr.Search("rice")
	require.NoError(t, err)
	require.Len(t, tr.Results(), 1)

	tr.Select(results[0])

	assert.Empty(t, tr.Results())
	require.NotNil(t, tr.Pending())
	assert.Equal(t, "Brown Rice", tr.Pending().Name)
}

func TestTrackerSelectByID(t *testing.T) {
	tr := NewTracker(sampleFoods, NewDailyLog(nil))

	food, err := tr.SelectByID(4)
	require.NoError(t, err)
	assert.Equal(t, "Salmon", food.Name)

	_, err = tr.SelectByID(42)
	assert.ErrorIs(t, err, ErrUnknownFood)
	assert.Equal(t, "Salmon", tr.Pending().Name)
}

func TestTrackerLogWithoutSelectionIsNoop(t *testing.T) {
	log := NewDailyLog(nil, initialEntries...)
	tr := NewTracker(sampleFoods, log)

	entry, err := tr.Log(MealDinner)

	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Equal(t, 2, log.Len())
}

func TestTrackerLogAppendsAndClearsSelection(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 5, 0, 0, time.UTC)
	log := NewDailyLog(fixedClock(now), initialEntries...)
	tr := NewTracker(sampleFoods, log)
	tr.Search("apple")
	_, err := tr.SelectByID(1)
	require.NoError(t, err)

	entry, err := tr.Log(MealSnack)

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Apple", entry.FoodName)
	assert.Equal(t, MealSnack, entry.MealType)
	assert.Equal(t, "18:05", entry.Time)
	assert.Equal(t, now.UnixMilli(), entry.ID)
	assert.Nil(t, tr.Pending())
	assert.Empty(t, tr.SearchTerm())
	assert.Equal(t, MealSnack, tr.MealType())

	// scenario: 310 + 420 + 95
	assert.Equal(t, 825.0, tr.Summary(Macros{}).Totals.Calories)
}

func TestTrackerLogDefaultsToLastMealType(t *testing.T) {
	tr := NewTracker(sampleFoods, NewDailyLog(nil))
	tr.Select(sampleFoods[0])

	entry, err := tr.Log("")

	require.NoError(t, err)
	assert.Equal(t, MealBreakfast, entry.MealType)
}

func TestTrackerLogRejectsUnknownMeal(t *testing.T) {
	log := NewDailyLog(nil)
	tr := NewTracker(sampleFoods, log)
	tr.Select(sampleFoods[0])

	_, err := tr.Log("brunch")

	assert.ErrorIs(t, err, ErrInvalidMeal)
	assert.Zero(t, log.Len())
	assert.NotNil(t, tr.Pending())
}

func TestDailyLogIDsAreUniqueWithinAMillisecond(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	log := NewDailyLog(fixedClock(now))

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		e, err := log.Append(sampleFoods[i%len(sampleFoods)], MealLunch)
		require.NoError(t, err)
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestDailyLogTotalsMatchSumOfEntries(t *testing.T) {
	log := NewDailyLog(nil, initialEntries...)
	sequence := []int{0, 1, 1, 3, 4, 2, 0}

	for _, i := range sequence {
		_, err := log.Append(sampleFoods[i], MealDinner)
		require.NoError(t, err)

		var want Macros
		for _, e := range log.Entries() {
			want.Calories += e.Calories
			want.Protein += e.Protein
			want.Carbs += e.Carbs
			want.Fat += e.Fat
		}
		got := log.Totals()
		assert.InDelta(t, want.Calories, got.Calories, 1e-9)
		assert.InDelta(t, want.Protein, got.Protein, 1e-9)
		assert.InDelta(t, want.Carbs, got.Carbs, 1e-9)
		assert.InDelta(t, want.Fat, got.Fat, 1e-9)
	}
}

func TestDailyLogByMeal(t *testing.T) {
	log := NewDailyLog(nil, initialEntries...)
	log.Append(sampleFoods[3], MealDinner)
	log.Append(sampleFoods[0], MealLunch)

	grouped := log.ByMeal()

	assert.Len(t, grouped[MealBreakfast], 1)
	require.Len(t, grouped[MealLunch], 2)
	assert.Equal(t, "Chicken Salad", grouped[MealLunch][0].FoodName)
	assert.Equal(t, "Apple", grouped[MealLunch][1].FoodName)
	assert.Len(t, grouped[MealDinner], 1)
	assert.Empty(t, grouped[MealSnack])
}
