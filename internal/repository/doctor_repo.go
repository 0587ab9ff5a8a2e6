package repository

import (
	"errors"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetAllDoctors retrieves all doctors
func (r *DoctorRepository) GetAllDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("id ASC").Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by ID
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Doctor", id)
		}
		return nil, err
	}
	return &doctor, nil
}

// GetDoctorsByHospitalID retrieves all doctors attached to a hospital
func (r *DoctorRepository) GetDoctorsByHospitalID(hospitalID uint) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("hospital_id = ?", hospitalID).Order("id ASC").Find(&doctors).Error
	return doctors, err
}

// CountDoctorsByHospitalID returns how many doctors reference a hospital
func (r *DoctorRepository) CountDoctorsByHospitalID(hospitalID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Where("hospital_id = ?", hospitalID).Count(&count).Error
	return count, err
}

// CreateDoctor creates a new doctor
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// UpdateDoctor saves all fields of an existing doctor
func (r *DoctorRepository) UpdateDoctor(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// DeleteDoctor removes a doctor by ID
func (r *DoctorRepository) DeleteDoctor(id uint) error {
	return r.db.Delete(&models.Doctor{}, id).Error
}
