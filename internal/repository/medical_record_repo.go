package repository

import (
	"errors"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type MedicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepo(db *gorm.DB) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db}
}

// CreateMedicalRecord creates a new medical record
func (r *MedicalRecordRepository) CreateMedicalRecord(record *models.MedicalRecord) error {
	return r.db.Create(record).Error
}

// GetMedicalRecordByID retrieves a medical record by ID
func (r *MedicalRecordRepository) GetMedicalRecordByID(id uint) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.db.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("MedicalRecord", id)
		}
		return nil, err
	}
	return &record, nil
}

// GetMedicalRecordsByPatientID retrieves all records for a patient
func (r *MedicalRecordRepository) GetMedicalRecordsByPatientID(patientID uint) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := r.db.Where("patient_id = ?", patientID).Order("id ASC").Find(&records).Error
	return records, err
}
