package reference

// DocumentID names a reference document, without directory or extension.
type DocumentID string

// documentsByGrade is the grade → reference document table. Grades absent
// from the table have no reference material.
var documentsByGrade = map[GradeLevel]DocumentID{
	Kindergarten: "grade_3",
	Grade1:       "grade_3",
	Grade2:       "grade_3",
	Grade3:       "grade_3",
	Grade4:       "grade_4",
	Grade5:       "grade_5",
	Grade6:       "grade_6",
	Grade7:       "grade_7",
	Grade8:       "grade_8",
	Algebra1:     "algebra_1",
	Algebra2:     "algebra_1",
	Geometry:     "algebra_1",
}

// Resolve maps a grade to its reference document. The second return value
// is false when the grade has no mapping, including grades outside the set.
func Resolve(grade GradeLevel) (DocumentID, bool) {
	id, ok := documentsByGrade[grade]
	return id, ok
}

// Documents returns the distinct document IDs referenced by the table.
func Documents() []DocumentID {
	seen := make(map[DocumentID]bool)
	var out []DocumentID
	for _, g := range allGrades {
		id, ok := documentsByGrade[g]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
