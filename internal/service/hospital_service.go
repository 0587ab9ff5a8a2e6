package service

import (
	"fmt"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/pkg/geo"
)

// HospitalStore is the persistence surface for hospitals. Implemented by
// repository.HospitalRepository.
type HospitalStore interface {
	GetAllHospitals() ([]models.Hospital, error)
	GetHospitalByID(id uint) (*models.Hospital, error)
	CreateHospital(hospital *models.Hospital) error
	CreateHospitals(hospitals []models.Hospital) ([]models.Hospital, error)
	UpdateHospital(hospital *models.Hospital) error
	DeleteHospital(id uint) error
}

type HospitalService struct {
	hospitalRepo HospitalStore
	doctorRepo   DoctorStore
	auditRepo    AuditLogger
}

func NewHospitalService(hospitalRepo HospitalStore, doctorRepo DoctorStore, auditRepo AuditLogger) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
		auditRepo:    auditRepo,
	}
}

// GetAllHospitals retrieves every hospital
func (s *HospitalService) GetAllHospitals() ([]models.Hospital, error) {
	return s.hospitalRepo.GetAllHospitals()
}

// GetHospitalByID retrieves a hospital by ID
func (s *HospitalService) GetHospitalByID(id uint) (*models.Hospital, error) {
	return s.hospitalRepo.GetHospitalByID(id)
}

// CreateHospital creates a new hospital (admin only)
func (s *HospitalService) CreateHospital(hospital *models.Hospital, userID uint) (*models.Hospital, error) {
	if err := validateBeds(hospital); err != nil {
		return nil, err
	}

	if err := s.hospitalRepo.CreateHospital(hospital); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Created hospital: %s (ID: %d)", hospital.Name, hospital.ID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "hospital_create", details)

	return hospital, nil
}

// CreateHospitals creates a batch of hospitals atomically (admin only).
// Every row is validated before any insert happens.
func (s *HospitalService) CreateHospitals(hospitals []models.Hospital, userID uint) ([]models.Hospital, error) {
	if len(hospitals) == 0 {
		return nil, apperror.InvalidInput("hospital list is empty")
	}
	for i := range hospitals {
		if err := validateBeds(&hospitals[i]); err != nil {
			return nil, err
		}
	}

	saved, err := s.hospitalRepo.CreateHospitals(hospitals)
	if err != nil {
		return nil, fmt.Errorf("failed to create hospitals: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "hospital_bulk_create", fmt.Sprintf("Created %d hospitals", len(saved)))

	return saved, nil
}

// UpdateHospital fully replaces the mutable fields of an existing hospital
// (admin only)
func (s *HospitalService) UpdateHospital(id uint, hospital *models.Hospital, userID uint) (*models.Hospital, error) {
	existing, err := s.hospitalRepo.GetHospitalByID(id)
	if err != nil {
		return nil, err
	}

	if err := validateBeds(hospital); err != nil {
		return nil, err
	}

	existing.Name = hospital.Name
	existing.Location = hospital.Location
	existing.Latitude = hospital.Latitude
	existing.Longitude = hospital.Longitude
	existing.TotalBeds = hospital.TotalBeds
	existing.AvailableBeds = hospital.AvailableBeds

	if err := s.hospitalRepo.UpdateHospital(existing); err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Updated hospital: %s (ID: %d)", existing.Name, existing.ID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "hospital_update", details)

	return existing, nil
}

// DeleteHospital removes a hospital (admin only). Deletion is restricted
// while doctors still reference the hospital.
func (s *HospitalService) DeleteHospital(id uint, userID uint) error {
	hospital, err := s.hospitalRepo.GetHospitalByID(id)
	if err != nil {
		return err
	}

	count, err := s.doctorRepo.CountDoctorsByHospitalID(id)
	if err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if count > 0 {
		return apperror.Conflict("hospital %d still has %d doctors attached", id, count)
	}

	if err := s.hospitalRepo.DeleteHospital(id); err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Deleted hospital: %s (ID: %d)", hospital.Name, id)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "hospital_delete", details)

	return nil
}

// FindNearestHospitals scans all hospitals and keeps those within radiusKm
// of the query point. The boundary is inclusive: distance == radiusKm is in.
func (s *HospitalService) FindNearestHospitals(lat, lon, radiusKm float64) ([]models.Hospital, error) {
	hospitals, err := s.hospitalRepo.GetAllHospitals()
	if err != nil {
		return nil, err
	}

	nearest := []models.Hospital{}
	for _, hospital := range hospitals {
		if geo.DistanceKm(lat, lon, hospital.Latitude, hospital.Longitude) <= radiusKm {
			nearest = append(nearest, hospital)
		}
	}

	return nearest, nil
}

func validateBeds(hospital *models.Hospital) error {
	if hospital.TotalBeds < 0 {
		return apperror.InvalidInput("total_beds must not be negative")
	}
	if hospital.AvailableBeds < 0 {
		return apperror.InvalidInput("available_beds must not be negative")
	}
	if hospital.AvailableBeds > hospital.TotalBeds {
		return apperror.InvalidInput("available_beds (%d) must not exceed total_beds (%d)",
			hospital.AvailableBeds, hospital.TotalBeds)
	}
	return nil
}
