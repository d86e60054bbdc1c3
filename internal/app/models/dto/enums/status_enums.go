package enums

// EnrollmentStatus tracks where an enrollment is in its lifecycle.
type EnrollmentStatus string

const (
	StatusInProgress EnrollmentStatus = "InProgress"
	StatusCompleted  EnrollmentStatus = "Completed"
	StatusDropped    EnrollmentStatus = "Dropped"
)

// statusLabels maps each status to its human-readable form.
var statusLabels = map[EnrollmentStatus]string{
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusDropped:    "Dropped",
}

// Valid reports whether the status is one of the three known states.
func (s EnrollmentStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable form of the status.
func (s EnrollmentStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
