package models

import "time"

// TimeBlock represents a busy interval on a user's calendar.
// The interval is half-open: [Start, End). Two blocks that merely touch
// at an endpoint do not overlap.
type TimeBlock struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Valid reports whether the block is a well-formed interval (Start < End).
func (b TimeBlock) Valid() bool {
	return b.Start.Before(b.End)
}

// DayAvailability holds the synced busy blocks for one user on one
// calendar day. Day is normalized to UTC midnight and forms a unique key
// together with UserID.
type DayAvailability struct {
	UserID       string      `bson:"userId" json:"userId"`
	Day          time.Time   `bson:"day" json:"day"`
	BusyBlocks   []TimeBlock `bson:"busyBlocks" json:"busyBlocks"`
	LastSyncedAt time.Time   `bson:"lastSyncedAt" json:"lastSyncedAt"`
	CreatedAt    time.Time   `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time   `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
