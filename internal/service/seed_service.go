package service

import (
	"fmt"
	"time"

	"turnero/internal/db"

	"github.com/google/uuid"
)

// One slot per practitioner per hour, 08:00 through 19:00, matching the
// visible window of the booking calendar.
const (
	seedStartHour = 8
	seedEndHour   = 20
)

// DefaultHorizonDays is how far ahead slots exist when SLOT_HORIZON_DAYS
// is not set.
const DefaultHorizonDays = 14

// SlotInserter is the write side of the slot store used by seeding.
type SlotInserter interface {
	InsertSlots(slots []db.Slot) (int64, error)
}

// SeedService keeps the bookable horizon topped up. It runs at boot, from
// the nightly cron entry and on demand through the admin endpoint, and is
// idempotent: slots that already exist are left untouched whatever their
// status.
type SeedService struct {
	slots   SlotInserter
	catalog CatalogStore
	now     func() time.Time
}

func NewSeedService(slots SlotInserter, catalog CatalogStore) *SeedService {
	return &SeedService{slots: slots, catalog: catalog, now: time.Now}
}

// EnsureHorizon creates every missing slot from today through days-1 days
// ahead for every practitioner in the catalog. Returns how many slots were
// actually inserted.
func (s *SeedService) EnsureHorizon(days int) (int64, error) {
	if days <= 0 {
		days = DefaultHorizonDays
	}

	specialties, err := s.catalog.ListSpecialties()
	if err != nil {
		return 0, fmt.Errorf("seeding: listing specialties: %w", err)
	}

	year, month, day := s.now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	// A practitioner listed under several specialties still gets one agenda.
	seen := make(map[string]bool)
	var batch []db.Slot
	for _, spec := range specialties {
		for _, practitioner := range spec.Practitioners {
			if seen[practitioner] {
				continue
			}
			seen[practitioner] = true

			for d := 0; d < days; d++ {
				date := today.AddDate(0, 0, d)
				for hour := seedStartHour; hour < seedEndHour; hour++ {
					batch = append(batch, db.Slot{
						ID:           uuid.NewString(),
						Practitioner: practitioner,
						Date:         date,
						Time:         fmt.Sprintf("%02d:00", hour),
					})
				}
			}
		}
	}

	inserted, err := s.slots.InsertSlots(batch)
	if err != nil {
		return inserted, fmt.Errorf("seeding: inserting slots: %w", err)
	}
	return inserted, nil
}
