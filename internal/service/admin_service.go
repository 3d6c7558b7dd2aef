package service

import (
	"turnero/internal/db"
	"turnero/internal/repository"
)

type AdminService struct {
	slotRepo    *repository.SlotRepository
	catalogRepo *repository.CatalogRepository
}

func NewAdminService(slotRepo *repository.SlotRepository, catalogRepo *repository.CatalogRepository) *AdminService {
	return &AdminService{slotRepo: slotRepo, catalogRepo: catalogRepo}
}

func (s *AdminService) ListBookings(date, practitioner string) ([]db.Slot, error) {
	return s.slotRepo.ListReserved(date, practitioner)
}

func (s *AdminService) ListSpecialties() ([]db.Specialty, error) {
	return s.catalogRepo.ListSpecialties()
}

func (s *AdminService) UpsertSpecialty(spec *db.Specialty) error {
	return s.catalogRepo.UpsertSpecialty(spec)
}
