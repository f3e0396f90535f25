package nutrition

import (
	"fmt"
	"time"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the meal types in the order a day is shown.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (m MealType) Valid() bool {
	for _, t := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}

// TimeLayout is the hour:minute format stamped on log entries.
const TimeLayout = "15:04"

// Clock returns the current wall-clock time.
type Clock func() time.Time

// LogEntry is one food eaten at one time. Entries never change after they
// are logged.
type LogEntry struct {
	ID       int64    `json:"id"`
	FoodName string   `json:"food"`
	MealType MealType `json:"meal_type"`
	Macros
	Time string `json:"time"`
}

// DailyLog is an append-only list of entries. It is not safe for
// concurrent use.
type DailyLog struct {
	entries []LogEntry
	clock   Clock
	lastID  int64
}

func NewDailyLog(clock Clock, initial ...LogEntry) *DailyLog {
	if clock == nil {
		clock = time.Now
	}
	l := &DailyLog{clock: clock}
	for _, e := range initial {
		l.entries = append(l.entries, e)
		if e.ID > l.lastID {
			l.lastID = e.ID
		}
	}
	return l
}

// Append logs food under meal at the current time.
func (l *DailyLog) Append(food Food, meal MealType) (LogEntry, error) {
	if !meal.Valid() {
		return LogEntry{}, fmt.Errorf("%q: %w", meal, ErrInvalidMeal)
	}
	now := l.clock()
	entry := LogEntry{
		ID:       l.nextID(now),
		FoodName: food.Name,
		MealType: meal,
		Macros:   food.Macros,
		Time:     now.Format(TimeLayout),
	}
	l.entries = append(l.entries, entry)
	return entry, nil
}

// nextID derives an id from the insertion time, bumped past the previous id
// when two entries land in the same millisecond.
func (l *DailyLog) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func (l *DailyLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log in insertion order.
func (l *DailyLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Totals sums every entry. It is recomputed on each call.
func (l *DailyLog) Totals() Macros {
	return ComputeTotals(l.entries)
}

// ByMeal groups entries by meal type, keeping insertion order within a meal.
func (l *DailyLog) ByMeal() map[MealType][]LogEntry {
	grouped := make(map[MealType][]LogEntry, len(MealTypes))
	for _, e := range l.entries {
		grouped[e.MealType] = append(grouped[e.MealType], e)
	}
	return grouped
}

func ComputeTotals(entries []LogEntry) Macros {
	var total Macros
	for _, e := range entries {
		total = total.Add(e.Macros)
	}
	return total
}
