package simulate

import (
	"encoding/json"
	"fmt"
	"os"
)

// Student is one simulated class member.
type Student struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DemoRoster returns the built-in ten-student class used when no roster file
// is supplied.
func DemoRoster() []Student {
	return []Student{
		{ID: "507f1f77bcf86cd799439015", Name: "Student 1"},
		{ID: "507f1f77bcf86cd799439016", Name: "Student 2"},
		{ID: "507f1f77bcf86cd799439017", Name: "Student 3"},
		{ID: "507f1f77bcf86cd799439018", Name: "Student 4"},
		{ID: "507f1f77bcf86cd799439019", Name: "Student 5"},
		{ID: "507f1f77bcf86cd79943901a", Name: "Student 6"},
		{ID: "507f1f77bcf86cd79943901b", Name: "Student 7"},
		{ID: "507f1f77bcf86cd79943901c", Name: "Student 8"},
		{ID: "507f1f77bcf86cd79943901d", Name: "Student 9"},
		{ID: "507f1f77bcf86cd79943901e", Name: "Student 10"},
	}
}

// LoadRoster reads a JSON array of students from a file. Every entry needs a
// non-empty id.
func LoadRoster(path string) ([]Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var students []Student
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	if len(students) == 0 {
		return nil, fmt.Errorf("roster %s is empty", path)
	}
	for i, st := range students {
		if st.ID == "" {
			return nil, fmt.Errorf("roster %s: entry %d has no id", path, i)
		}
	}
	return students, nil
}
