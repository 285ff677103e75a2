package models

import "time"

// Vote values accepted on a proposed time.
const (
	VoteYes   = "yes"
	VoteNo    = "no"
	VoteMaybe = "maybe"
)

// IsValidVote reports whether v is one of the accepted vote values.
func IsValidVote(v string) bool {
	return v == VoteYes || v == VoteNo || v == VoteMaybe
}

// GroupMember records a user's membership in a group.
type GroupMember struct {
	UserID                   string    `bson:"userId" json:"userId"`
	JoinedAt                 time.Time `bson:"joinedAt" json:"joinedAt"`
	HasConfirmedAvailability bool      `bson:"hasConfirmedAvailability" json:"hasConfirmedAvailability"`
}

// Vote is a single member's vote on a proposed time. A group holds at
// most one vote per (proposed time, user); a new vote replaces the old.
type Vote struct {
	UserID string `bson:"userId" json:"userId"`
	Vote   string `bson:"vote" json:"vote"`
}

// ProposedTime is a ranked candidate persisted on the group for voting.
// The engine's score is not persisted.
type ProposedTime struct {
	Date             time.Time `bson:"date" json:"date"`
	StartTime        string    `bson:"startTime" json:"startTime"` // e.g. "18:00"
	AvailableMembers []string  `bson:"availableMembers" json:"availableMembers"`
	Votes            []Vote    `bson:"votes" json:"votes"`
}

// Group is a set of members planning a meeting together.
// Version is an optimistic-concurrency token: every persisted update
// must match the version it read and bumps it by one.
type Group struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	CreatedBy     string         `bson:"createdBy" json:"createdBy"`
	Members       []GroupMember  `bson:"members" json:"members"`
	MaxMembers    int            `bson:"maxMembers" json:"maxMembers"`
	ProposedTimes []ProposedTime `bson:"proposedTimes" json:"proposedTimes"`
	Version       int64          `bson:"version" json:"version"`
	CreatedAt     time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// MemberIDs returns the group's member ids in stored order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}
