package models

import "time"

// Default work-hour window applied when a user has not set one.
const (
	DefaultWorkStartHour = 9
	DefaultWorkEndHour   = 17
)

// User represents a registered member.
type User struct {
	ID                string    `bson:"id" json:"id"`
	Email             string    `bson:"email" json:"email"`
	Name              string    `bson:"name" json:"name"`
	Timezone          string    `bson:"timezone" json:"timezone"`
	WorkStartHour     int       `bson:"workStartHour,omitempty" json:"workStartHour,omitempty"`
	WorkEndHour       int       `bson:"workEndHour,omitempty" json:"workEndHour,omitempty"`
	CalendarConnected bool      `bson:"calendarConnected" json:"calendarConnected"`
	CreatedAt         time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt         time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// UserPolicy is the scheduling view of a user: the work-hour window and
// timezone context the matching engine needs. Work hours are assumed to
// fall within a single day (start < end, no midnight span).
type UserPolicy struct {
	UserID        string `json:"userId"`
	WorkStartHour int    `json:"workStartHour"`
	WorkEndHour   int    `json:"workEndHour"`
	Timezone      string `json:"timezone"`
}

// Policy derives the scheduling policy for the user, applying the default
// 9-17 work window when none is set.
func (u *User) Policy() UserPolicy {
	start, end := u.WorkStartHour, u.WorkEndHour
	if start == 0 && end == 0 {
		start, end = DefaultWorkStartHour, DefaultWorkEndHour
	}
	return UserPolicy{
		UserID:        u.ID,
		WorkStartHour: start,
		WorkEndHour:   end,
		Timezone:      u.Timezone,
	}
}
