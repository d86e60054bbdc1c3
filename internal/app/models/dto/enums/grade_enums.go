package enums

// Grade is one of the thirteen letter grades the platform assigns to a
// completed enrollment.
type Grade string

const (
	GradeAPlus  Grade = "A_PLUS"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A_MINUS"
	GradeBPlus  Grade = "B_PLUS"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B_MINUS"
	GradeCPlus  Grade = "C_PLUS"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C_MINUS"
	GradeDPlus  Grade = "D_PLUS"
	GradeD      Grade = "D"
	GradeDMinus Grade = "D_MINUS"
	GradeF      Grade = "F"
)

// SortedGrades lists all grades best to worst.
var SortedGrades = []Grade{
	GradeAPlus, GradeA, GradeAMinus,
	GradeBPlus, GradeB, GradeBMinus,
	GradeCPlus, GradeC, GradeCMinus,
	GradeDPlus, GradeD, GradeDMinus,
	GradeF,
}

// gradePoints maps each grade to its 4.0-scale point value.
var gradePoints = map[Grade]float64{
	GradeAPlus:  4.0,
	GradeA:      4.0,
	GradeAMinus: 3.7,
	GradeBPlus:  3.3,
	GradeB:      3.0,
	GradeBMinus: 2.7,
	GradeCPlus:  2.3,
	GradeC:      2.0,
	GradeCMinus: 1.7,
	GradeDPlus:  1.3,
	GradeD:      1.0,
	GradeDMinus: 0.7,
	GradeF:      0.0,
}

// gradeLabels maps each grade to its human-readable form.
var gradeLabels = map[Grade]string{
	GradeAPlus:  "A+",
	GradeA:      "A",
	GradeAMinus: "A-",
	GradeBPlus:  "B+",
	GradeB:      "B",
	GradeBMinus: "B-",
	GradeCPlus:  "C+",
	GradeC:      "C",
	GradeCMinus: "C-",
	GradeDPlus:  "D+",
	GradeD:      "D",
	GradeDMinus: "D-",
	GradeF:      "F",
}

// Valid reports whether the grade is one of the thirteen known grades.
func (g Grade) Valid() bool {
	_, ok := gradePoints[g]
	return ok
}

// Points returns the grade's 4.0-scale point value. Unknown grades
// count as 0.
func (g Grade) Points() float64 {
	return gradePoints[g]
}

// Label returns the human-readable form of the grade ("A+", "B-", ...).
func (g Grade) Label() string {
	if label, ok := gradeLabels[g]; ok {
		return label
	}
	return string(g)
}

// ParseGrade converts a human-readable label or wire value into a
// Grade. It accepts both "A+" and "A_PLUS".
func ParseGrade(s string) (Grade, bool) {
	if Grade(s).Valid() {
		return Grade(s), true
	}
	for grade, label := range gradeLabels {
		if label == s {
			return grade, true
		}
	}
	return "", false
}
