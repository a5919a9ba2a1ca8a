package reference

// GradeLevel identifies the target curriculum year. The set is closed;
// use ParseGrade to turn free-form input into a GradeLevel.
type GradeLevel string

const (
	Kindergarten GradeLevel = "Kindergarten"
	Grade1       GradeLevel = "Grade 1"
	Grade2       GradeLevel = "Grade 2"
	Grade3       GradeLevel = "Grade 3"
	Grade4       GradeLevel = "Grade 4"
	Grade5       GradeLevel = "Grade 5"
	Grade6       GradeLevel = "Grade 6"
	Grade7       GradeLevel = "Grade 7"
	Grade8       GradeLevel = "Grade 8"
	Algebra1     GradeLevel = "Algebra 1"
	Algebra2     GradeLevel = "Algebra 2"
	Geometry     GradeLevel = "Geometry"
)

var allGrades = []GradeLevel{
	Kindergarten,
	Grade1, Grade2, Grade3, Grade4, Grade5, Grade6, Grade7, Grade8,
	Algebra1, Algebra2, Geometry,
}

// AllGrades returns every grade level in display order.
func AllGrades() []GradeLevel {
	out := make([]GradeLevel, len(allGrades))
	copy(out, allGrades)
	return out
}

// ParseGrade returns the GradeLevel whose label equals s exactly.
func ParseGrade(s string) (GradeLevel, bool) {
	for _, g := range allGrades {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// Valid reports whether g belongs to the closed set.
func (g GradeLevel) Valid() bool {
	_, ok := ParseGrade(string(g))
	return ok
}

func (g GradeLevel) String() string {
	return string(g)
}
