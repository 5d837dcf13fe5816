package project

import "errors"

// Project is a billable project code with a default monthly hour allotment.
type Project struct {
	ID   int
	Code string
	// AllottedHours is the default budget of hours per month, used for any
	// month without a stored override.
	AllottedHours float64
}

// MonthlyAllotment is a project annotated with its effective allotment for
// one specific month: the stored override if present, the default otherwise.
type MonthlyAllotment struct {
	ProjectID     int
	Code          string
	AllottedHours float64
}

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrCodeTaken       = errors.New("project code already in use")
)
