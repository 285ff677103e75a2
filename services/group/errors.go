package group

import "errors"

var (
	// ErrGroupNotFound is returned when no group exists for the id.
	ErrGroupNotFound = errors.New("group not found")
	// ErrProposedTimeNotFound is returned when a vote targets an index
	// outside the group's proposed-times list.
	ErrProposedTimeNotFound = errors.New("proposed time not found")
	// ErrInvalidVote is returned for vote values other than yes/no/maybe.
	ErrInvalidVote = errors.New("vote must be yes, no or maybe")
	// ErrGroupFull is returned when adding a member would exceed the
	// group's capacity.
	ErrGroupFull = errors.New("group is at capacity")
	// ErrAlreadyMember is returned when the user already belongs to the
	// group.
	ErrAlreadyMember = errors.New("user is already a member of the group")
)
