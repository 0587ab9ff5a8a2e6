package repository

import (
	"errors"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetAllHospitals retrieves all hospitals
func (r *HospitalRepository) GetAllHospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Order("id ASC").Find(&hospitals).Error
	return hospitals, err
}

// GetHospitalByID retrieves a hospital by ID
func (r *HospitalRepository) GetHospitalByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.First(&hospital, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Hospital", id)
		}
		return nil, err
	}
	return &hospital, nil
}

// CreateHospital creates a new hospital
func (r *HospitalRepository) CreateHospital(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// CreateHospitals inserts a batch of hospitals in a single transaction.
// Either all rows are persisted or none are.
func (r *HospitalRepository) CreateHospitals(hospitals []models.Hospital) ([]models.Hospital, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&hospitals).Error
	})
	return hospitals, err
}

// UpdateHospital saves all fields of an existing hospital
func (r *HospitalRepository) UpdateHospital(hospital *models.Hospital) error {
	return r.db.Save(hospital).Error
}

// DeleteHospital removes a hospital by ID
func (r *HospitalRepository) DeleteHospital(id uint) error {
	return r.db.Delete(&models.Hospital{}, id).Error
}
