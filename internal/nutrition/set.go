package nutrition

import "encoding/json"

// Selection is a string set that keeps insertion order, so a profile's
// conditions come back in the order they were picked.
type Selection struct {
	items []string
}

func NewSelection(values ...string) *Selection {
	s := &Selection{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Selection) Contains(value string) bool {
	return s.indexOf(value) >= 0
}

func (s *Selection) Add(value string) {
	if s.Contains(value) {
		return
	}
	s.items = append(s.items, value)
}

func (s *Selection) Remove(value string) {
	i := s.indexOf(value)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Toggle removes value when present and adds it otherwise. It reports
// whether value is selected afterwards.
func (s *Selection) Toggle(value string) bool {
	if s.Contains(value) {
		s.Remove(value)
		return false
	}
	s.Add(value)
	return true
}

func (s *Selection) Len() int {
	return len(s.items)
}

// Values returns a copy of the selected values.
func (s *Selection) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Selection) Clone() *Selection {
	return NewSelection(s.items...)
}

func (s *Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.items = nil
	for _, v := range values {
		s.Add(v)
	}
	return nil
}

func (s *Selection) indexOf(value string) int {
	for i, v := range s.items {
		if v == value {
			return i
		}
	}
	return -1
}
