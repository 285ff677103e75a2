package models

import "time"

// CandidateSlot is one ranked meeting candidate produced by the matching
// engine. Slots are ephemeral: they live for one engine invocation and
// are only persisted (score dropped) once a group adopts them as
// proposed times.
type CandidateSlot struct {
	SlotStart        time.Time `json:"slotStart"`
	SlotEnd          time.Time `json:"slotEnd"`
	StartTimeLabel   string    `json:"startTime"` // "HH:mm" in the reference timezone
	AvailableMembers []string  `json:"availableMembers"`
	Score            int       `json:"score"`
}

// BestTimesResult is the full engine output: the ranked slots plus the
// participant ids that resolved and those that were dropped because no
// user record exists for them. Callers decide how to treat drops.
type BestTimesResult struct {
	Slots       []CandidateSlot `json:"slots"`
	ResolvedIDs []string        `json:"resolvedIds"`
	DroppedIDs  []string        `json:"droppedIds,omitempty"`
}
