package service

import (
	"fmt"

	"smart-healthcare-backend/internal/models"
)

// DoctorStore is the persistence surface for doctors. Implemented by
// repository.DoctorRepository.
type DoctorStore interface {
	GetAllDoctors() ([]models.Doctor, error)
	GetDoctorByID(id uint) (*models.Doctor, error)
	GetDoctorsByHospitalID(hospitalID uint) ([]models.Doctor, error)
	CountDoctorsByHospitalID(hospitalID uint) (int64, error)
	CreateDoctor(doctor *models.Doctor) error
	UpdateDoctor(doctor *models.Doctor) error
	DeleteDoctor(id uint) error
}

type DoctorService struct {
	doctorRepo   DoctorStore
	hospitalRepo HospitalStore
	auditRepo    AuditLogger
}

func NewDoctorService(doctorRepo DoctorStore, hospitalRepo HospitalStore, auditRepo AuditLogger) *DoctorService {
	return &DoctorService{
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
	}
}

// GetAllDoctors retrieves every doctor
func (s *DoctorService) GetAllDoctors() ([]models.Doctor, error) {
	return s.doctorRepo.GetAllDoctors()
}

// GetDoctorByID retrieves a doctor by ID
func (s *DoctorService) GetDoctorByID(id uint) (*models.Doctor, error) {
	return s.doctorRepo.GetDoctorByID(id)
}

// GetDoctorsByHospital retrieves all doctors attached to a hospital
func (s *DoctorService) GetDoctorsByHospital(hospitalID uint) ([]models.Doctor, error) {
	if _, err := s.hospitalRepo.GetHospitalByID(hospitalID); err != nil {
		return nil, err
	}
	return s.doctorRepo.GetDoctorsByHospitalID(hospitalID)
}

// CreateDoctor creates a new doctor (admin only). The owning hospital must
// exist before the row is written.
func (s *DoctorService) CreateDoctor(doctor *models.Doctor, userID uint) (*models.Doctor, error) {
	if _, err := s.hospitalRepo.GetHospitalByID(doctor.HospitalID); err != nil {
		return nil, err
	}

	if err := s.doctorRepo.CreateDoctor(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Created doctor: %s (%s, hospital %d)", doctor.Name, doctor.Specialization, doctor.HospitalID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "doctor_create", details)

	return doctor, nil
}

// UpdateDoctor updates an existing doctor (admin only). Re-homing to another
// hospital is validated the same way as creation.
func (s *DoctorService) UpdateDoctor(id uint, doctor *models.Doctor, userID uint) (*models.Doctor, error) {
	existing, err := s.doctorRepo.GetDoctorByID(id)
	if err != nil {
		return nil, err
	}

	if doctor.HospitalID != 0 && doctor.HospitalID != existing.HospitalID {
		if _, err := s.hospitalRepo.GetHospitalByID(doctor.HospitalID); err != nil {
			return nil, err
		}
		existing.HospitalID = doctor.HospitalID
	}

	existing.Name = doctor.Name
	existing.Specialization = doctor.Specialization

	if err := s.doctorRepo.UpdateDoctor(existing); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Updated doctor: %s (ID: %d)", existing.Name, existing.ID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "doctor_update", details)

	return existing, nil
}

// DeleteDoctor removes a doctor (admin only)
func (s *DoctorService) DeleteDoctor(id uint, userID uint) error {
	doctor, err := s.doctorRepo.GetDoctorByID(id)
	if err != nil {
		return err
	}

	if err := s.doctorRepo.DeleteDoctor(id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Deleted doctor: %s (ID: %d)", doctor.Name, id)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "doctor_delete", details)

	return nil
}
