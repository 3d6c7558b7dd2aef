package api

import (
	"turnero/internal/db"
	"turnero/internal/entities"
	"turnero/internal/repository"
)

type stubCatalog struct {
	specialties []db.Specialty
	err         error
}

func (s *stubCatalog) ListSpecialties() ([]db.Specialty, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.specialties, nil
}

func (s *stubCatalog) GetSpecialty(id string) (*db.Specialty, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, spec := range s.specialties {
		if spec.ID == id {
			found := spec
			return &found, nil
		}
	}
	return nil, repository.ErrSpecialtyNotFound
}

type stubSlotStore struct {
	slots map[string]*db.Slot
}

func newStubSlotStore(slots ...db.Slot) *stubSlotStore {
	store := &stubSlotStore{slots: make(map[string]*db.Slot)}
	for _, s := range slots {
		if s.Status == "" {
			s.Status = db.SlotStatusAvailable
		}
		slot := s
		store.slots[s.ID] = &slot
	}
	return store
}

func (s *stubSlotStore) ListAvailable(practitioner string) ([]db.Slot, error) {
	var out []db.Slot
	for _, slot := range s.slots {
		if slot.Practitioner == practitioner && slot.Status == db.SlotStatusAvailable {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (s *stubSlotStore) TryClaim(slotID, patientName, patientPhone string) (*db.Slot, error) {
	slot, ok := s.slots[slotID]
	if !ok {
		return nil, repository.ErrSlotNotFound
	}
	if slot.Status != db.SlotStatusAvailable {
		return nil, repository.ErrSlotAlreadyReserved
	}
	slot.Status = db.SlotStatusReserved
	slot.PatientName = patientName
	slot.PatientPhone = patientPhone
	claimed := *slot
	return &claimed, nil
}

type stubNotifier struct {
	sent int
}

func (s *stubNotifier) SendWhatsApp(to, body string) error {
	s.sent++
	return nil
}

func (s *stubNotifier) SendBookingEmail(conf entities.BookingConfirmation) {}
