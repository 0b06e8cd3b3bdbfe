package model

import "time"

// UserOnboarding holds a user's questionnaire answers. Q1 is the list
// of selected interest category ids (max 3), Q2 the include keywords
// and Q3 the exclude keywords (max 10 each).
type UserOnboarding struct {
	ID           int64
	UserID       int64
	Q1Categories []int
	Q2Keywords   []string
	Q3Keywords   []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	MaxSelectedCategories = 3
	MaxKeywords           = 10
)

// OnboardingStatus reports which questions have been answered.
type OnboardingStatus struct {
	Q1Completed bool
	Q2Completed bool
	Q3Completed bool
}
