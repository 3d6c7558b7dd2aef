package service

import (
	"fmt"

	"turnero/internal/entities"
)

// calendarEventTitle is the fixed display title the calendar widget shows
// for an open slot.
const calendarEventTitle = "Available"

// AvailabilityService projects the slot store into the calendar-feed shape.
// Stateless, no caching.
type AvailabilityService struct {
	slots SlotStore
}

func NewAvailabilityService(slots SlotStore) *AvailabilityService {
	return &AvailabilityService{slots: slots}
}

// ForPractitioner returns every open slot of a practitioner as calendar
// events. Always returns a non-nil slice so the feed encodes as [].
func (s *AvailabilityService) ForPractitioner(name string) ([]entities.CalendarEvent, error) {
	slots, err := s.slots.ListAvailable(name)
	if err != nil {
		return nil, fmt.Errorf("listing availability for '%s': %w", name, err)
	}

	events := make([]entities.CalendarEvent, 0, len(slots))
	for _, slot := range slots {
		events = append(events, entities.CalendarEvent{
			ID:           slot.ID,
			Title:        calendarEventTitle,
			Start:        slot.Date.Format("2006-01-02") + "T" + slot.Time,
			Practitioner: slot.Practitioner,
		})
	}
	return events, nil
}
