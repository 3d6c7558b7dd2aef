package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"turnero/internal/db"
	apperrors "turnero/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availableSlot() db.Slot {
	return db.Slot{
		ID:           "slot-1",
		Practitioner: "Dr. García",
		Date:         time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Time:         "09:00",
	}
}

func TestReserveRoundTrip(t *testing.T) {
	store := newFakeSlotStore(availableSlot())
	notifier := &fakeNotifier{}
	svc := NewBookingService(store, notifier)

	conf, err := svc.Reserve("slot-1", "Jane Doe", "+15550000")
	require.NoError(t, err)
	assert.Equal(t, "Dr. García", conf.Practitioner)
	assert.Equal(t, "05/03/2026", conf.DateFormatted)
	assert.Equal(t, "09:00", conf.Time)

	claimed := store.get("slot-1")
	assert.Equal(t, db.SlotStatusReserved, claimed.Status)
	assert.Equal(t, "Jane Doe", claimed.PatientName)
	assert.Equal(t, "+15550000", claimed.PatientPhone)

	// Losing the race (or re-posting) is SlotUnavailable, never a retry.
	_, err = svc.Reserve("slot-1", "John Roe", "+15550001")
	assert.ErrorIs(t, err, apperrors.ErrSlotUnavailable)

	open, err := store.ListAvailable("Dr. García")
	require.NoError(t, err)
	assert.Empty(t, open)

	assert.Equal(t, 1, notifier.whatsappCount())
}

func TestReserveInvalidInputLeavesSlotAvailable(t *testing.T) {
	store := newFakeSlotStore(availableSlot())
	notifier := &fakeNotifier{}
	svc := NewBookingService(store, notifier)

	cases := []struct{ name, phone string }{
		{"", "+15550000"},
		{"Jane Doe", ""},
		{"   ", "+15550000"},
		{"", ""},
	}
	for _, tc := range cases {
		_, err := svc.Reserve("slot-1", tc.name, tc.phone)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	}

	assert.Equal(t, db.SlotStatusAvailable, store.get("slot-1").Status)
	assert.Equal(t, 0, notifier.whatsappCount())
}

func TestReserveUnknownSlot(t *testing.T) {
	svc := NewBookingService(newFakeSlotStore(), &fakeNotifier{})

	_, err := svc.Reserve("no-such-slot", "Jane Doe", "+15550000")
	assert.ErrorIs(t, err, apperrors.ErrSlotUnavailable)
}

// A claimed slot stays reserved even when the confirmation message cannot
// be delivered.
func TestReserveNotificationFailureDoesNotFailBooking(t *testing.T) {
	store := newFakeSlotStore(availableSlot())
	notifier := &fakeNotifier{whatsappErr: errors.New("twilio unreachable")}
	svc := NewBookingService(store, notifier)

	conf, err := svc.Reserve("slot-1", "Jane Doe", "+15550000")
	require.NoError(t, err)
	assert.Equal(t, "slot-1", conf.SlotID)
	assert.Equal(t, db.SlotStatusReserved, store.get("slot-1").Status)
}

func TestReserveUpstreamFailureIsNotBusinessOutcome(t *testing.T) {
	store := newFakeSlotStore(availableSlot())
	store.claimErr = errors.New("connection reset")
	svc := NewBookingService(store, &fakeNotifier{})

	_, err := svc.Reserve("slot-1", "Jane Doe", "+15550000")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrSlotUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidInput)
}

// Concurrent claims on the same slot: exactly one wins, everyone else gets
// SlotUnavailable, and exactly one confirmation goes out.
func TestReserveConcurrentSingleWinner(t *testing.T) {
	store := newFakeSlotStore(availableSlot())
	notifier := &fakeNotifier{}
	svc := NewBookingService(store, notifier)

	const callers = 32
	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve("slot-1", "Jane Doe", "+15550000")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, apperrors.ErrSlotUnavailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, callers-1, lost)
	assert.Equal(t, 1, notifier.whatsappCount())
}
