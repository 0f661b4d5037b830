package usecase

import (
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

const (
	noLocationMessage = "We have not received your location yet. Share it to receive ride requests."
	staleMessage      = "Your location is out of date. Update it to keep receiving ride requests."
	agingMessage      = "Your location will soon be out of date."
)

// reminderFor picks the most severe tier that applies to a driver's position
func (t *Tracker) reminderFor(pos *models.DriverPosition, found bool, now time.Time) (models.LocationReminder, bool) {
	if !found || pos == nil {
		return models.LocationReminder{
			Type:           models.ReminderNoLocation,
			Message:        noLocationMessage,
			RequiresAction: true,
		}, true
	}

	last := pos.CapturedAt
	age := pos.Age(now)
	switch {
	case age >= t.cfg.StaleAfter:
		return models.LocationReminder{
			Type:           models.ReminderStale,
			Message:        staleMessage,
			RequiresAction: true,
			LastUpdate:     &last,
		}, true
	case age >= t.cfg.AgingAfter:
		return models.LocationReminder{
			Type:       models.ReminderAging,
			Message:    agingMessage,
			LastUpdate: &last,
		}, true
	default:
		return models.LocationReminder{}, false
	}
}
