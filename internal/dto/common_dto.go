package dto

// MutationResult reports how many records a write touched. Deleting or
// updating a record that does not exist is a neutral zero-affected success,
// not an error.
type MutationResult struct {
	Affected int64  `json:"affected"`
	ID       string `json:"id,omitempty"`
}

// InstructorEntry is one row of the instructor directory: a left outer
// join of instructors against their classes.
type InstructorEntry struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	PhotoURL   string   `json:"photoUrl"`
	ClassCount int      `json:"classCount"`
	Classes    []string `json:"classes"`

	// TotalStudents sums enrollment counts across the matched classes.
	// Only the popular-instructors view orders by it.
	TotalStudents int64 `json:"totalStudents"`
}
