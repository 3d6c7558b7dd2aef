package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"turnero/internal/db"
	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
	"turnero/internal/repository"
)

// SlotStore is the persistent slot collection. TryClaim must be atomic with
// respect to concurrent claims on the same identifier.
type SlotStore interface {
	ListAvailable(practitioner string) ([]db.Slot, error)
	TryClaim(slotID, patientName, patientPhone string) (*db.Slot, error)
}

// Notifier delivers booking confirmations. Implementations must not be
// relied on for correctness: a claimed slot stays reserved even when
// every notification fails.
type Notifier interface {
	SendWhatsApp(to, body string) error
	SendBookingEmail(conf entities.BookingConfirmation)
}

type BookingService struct {
	slots  SlotStore
	notify Notifier
}

func NewBookingService(slots SlotStore, notify Notifier) *BookingService {
	return &BookingService{slots: slots, notify: notify}
}

// Reserve claims a slot for a patient. The claim is the one mutation in the
// whole system and happens as a single conditional write in the store; a
// lost race or unknown id comes back as ErrSlotUnavailable and the caller
// must re-query availability rather than retry blindly.
func (s *BookingService) Reserve(slotID, patientName, contactPhone string) (*entities.BookingConfirmation, error) {
	patientName = strings.TrimSpace(patientName)
	contactPhone = strings.TrimSpace(contactPhone)
	if patientName == "" || contactPhone == "" {
		return nil, apperrors.ErrInvalidInput
	}

	slot, err := s.slots.TryClaim(slotID, patientName, contactPhone)
	if errors.Is(err, repository.ErrSlotNotFound) || errors.Is(err, repository.ErrSlotAlreadyReserved) {
		return nil, apperrors.ErrSlotUnavailable
	}
	if err != nil {
		return nil, fmt.Errorf("claiming slot %s: %w", slotID, err)
	}

	conf := &entities.BookingConfirmation{
		SlotID:        slot.ID,
		Practitioner:  slot.Practitioner,
		DateFormatted: slot.Date.Format("02/01/2006"),
		Time:          slot.Time,
		PatientName:   patientName,
		PatientPhone:  contactPhone,
	}

	// The slot is reserved at this point no matter what happens below:
	// confirmation delivery is best effort and never rolls the claim back.
	message := fmt.Sprintf("✅ Turno confirmado con %s\n📅 %s a las %s hs.\nPaciente: %s",
		conf.Practitioner, conf.DateFormatted, conf.Time, conf.PatientName)
	if err := s.notify.SendWhatsApp(contactPhone, message); err != nil {
		log.Printf("ALERTA: slot %s reserved but WhatsApp confirmation to %s failed: %v", slot.ID, contactPhone, err)
	}
	s.notify.SendBookingEmail(*conf)

	return conf, nil
}
