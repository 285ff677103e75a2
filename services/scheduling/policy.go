package scheduling

import (
	"synkt/config"
)

// Policy bundles every tunable rule the engine applies. Nothing in the
// engine is hard-coded: tests construct a Policy directly and deployments
// load one from configuration.
type Policy struct {
	// ReferenceTimezone is the single named timezone used for all
	// wall-clock rules, independent of any participant's own timezone.
	ReferenceTimezone string

	// SlotStrideMinutes is the candidate-slot alignment and step.
	SlotStrideMinutes int

	// QuorumRatio is the minimum fraction of resolved participants that
	// must be free for a slot to survive.
	QuorumRatio float64

	// MinNoticeHours raises a too-soon window start to now+N hours.
	MinNoticeHours int
	// MaxLookaheadDays lowers a too-far window end to now+N days.
	MaxLookaheadDays int

	// Sleep guard: slots whose reference-timezone hour falls in
	// [SleepStartHour, SleepEndHour) are never proposed.
	SleepStartHour int
	SleepEndHour   int

	// Scoring weights.
	FullAttendanceBonus int
	WeekendEveningBonus int
	AttendeeWeight      int

	// Weekend-evening bonus window (Friday/Saturday, reference timezone).
	WeekendEveningStartHour int
	WeekendEveningEndHour   int

	// DefaultDurationMinutes is used by callers that let the caller omit
	// a duration; the engine itself always requires an explicit one.
	DefaultDurationMinutes int
}

// DefaultPolicy builds the deployment policy from AppConfig. Call after
// config.LoadConfig.
func DefaultPolicy() Policy {
	cfg := config.AppConfig
	return Policy{
		ReferenceTimezone:       cfg.ReferenceTimezone,
		SlotStrideMinutes:       cfg.SlotStrideMinutes,
		QuorumRatio:             cfg.QuorumRatio,
		MinNoticeHours:          cfg.MinNoticeHours,
		MaxLookaheadDays:        cfg.MaxLookaheadDays,
		SleepStartHour:          0,
		SleepEndHour:            5,
		FullAttendanceBonus:     cfg.FullAttendanceBonus,
		WeekendEveningBonus:     cfg.WeekendEveningBonus,
		AttendeeWeight:          cfg.AttendeeWeight,
		WeekendEveningStartHour: 18,
		WeekendEveningEndHour:   22,
		DefaultDurationMinutes:  cfg.DefaultDurationMinutes,
	}
}
