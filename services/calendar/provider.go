package calendar

import (
	"time"

	"synkt/models"
)

// Provider supplies busy blocks from an external calendar source
// (Google Calendar and the like). Implementations live outside this
// service; the sync path only needs this query contract.
type Provider interface {
	GetBusyBlocks(userID string, start, end time.Time) ([]models.TimeBlock, error)
}

// NoopProvider reports no busy blocks. It stands in until a real
// provider integration is configured.
type NoopProvider struct{}

func (NoopProvider) GetBusyBlocks(userID string, start, end time.Time) ([]models.TimeBlock, error) {
	return nil, nil
}
