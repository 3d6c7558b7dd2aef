package service

import (
	"sync"

	"turnero/internal/db"
	"turnero/internal/entities"
	"turnero/internal/repository"
)

type fakeCatalog struct {
	specialties []db.Specialty
	err         error
}

func (f *fakeCatalog) ListSpecialties() ([]db.Specialty, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.specialties, nil
}

func (f *fakeCatalog) GetSpecialty(id string) (*db.Specialty, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.specialties {
		if s.ID == id {
			spec := s
			return &spec, nil
		}
	}
	return nil, repository.ErrSpecialtyNotFound
}

// fakeSlotStore is an in-memory SlotStore whose TryClaim is atomic under a
// mutex, mirroring the conditional write the real store does in SQL.
type fakeSlotStore struct {
	mu       sync.Mutex
	slots    map[string]*db.Slot
	claimErr error
}

func newFakeSlotStore(slots ...db.Slot) *fakeSlotStore {
	store := &fakeSlotStore{slots: make(map[string]*db.Slot)}
	for _, s := range slots {
		if s.Status == "" {
			s.Status = db.SlotStatusAvailable
		}
		slot := s
		store.slots[s.ID] = &slot
	}
	return store
}

func (f *fakeSlotStore) ListAvailable(practitioner string) ([]db.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Slot
	for _, s := range f.slots {
		if s.Practitioner == practitioner && s.Status == db.SlotStatusAvailable {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlotStore) TryClaim(slotID, patientName, patientPhone string) (*db.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	slot, ok := f.slots[slotID]
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

func (f *fakeSlotStore) get(slotID string) db.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.slots[slotID]
}

type fakeNotifier struct {
	mu          sync.Mutex
	whatsapps   []string
	emails      []entities.BookingConfirmation
	whatsappErr error
}

func (f *fakeNotifier) SendWhatsApp(to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.whatsapps = append(f.whatsapps, to)
	return f.whatsappErr
}

func (f *fakeNotifier) SendBookingEmail(conf entities.BookingConfirmation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, conf)
}

func (f *fakeNotifier) whatsappCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.whatsapps)
}

type fakeInserter struct {
	batches  [][]db.Slot
	inserted int64
	err      error
}

func (f *fakeInserter) InsertSlots(slots []db.Slot) (int64, error) {
	f.batches = append(f.batches, slots)
	if f.err != nil {
		return 0, f.err
	}
	if f.inserted > 0 {
		return f.inserted, nil
	}
	return int64(len(slots)), nil
}
