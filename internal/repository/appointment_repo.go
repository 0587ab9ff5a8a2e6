package repository

import (
	"errors"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// CreateAppointment creates a new appointment
func (r *AppointmentRepository) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// GetAppointmentByID retrieves an appointment with its doctor and patient
// preloaded for read-time name resolution
func (r *AppointmentRepository) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Appointment", id)
		}
		return nil, err
	}
	return &appointment, nil
}

// GetAppointmentsByPatientID retrieves all appointments for a patient in
// insertion order, any status
func (r *AppointmentRepository) GetAppointmentsByPatientID(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("patient_id = ?", patientID).
		Order("id ASC").
		Find(&appointments).Error
	return appointments, err
}

// GetAppointmentsByDoctorID retrieves all appointments for a doctor in
// insertion order, any status
func (r *AppointmentRepository) GetAppointmentsByDoctorID(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("id ASC").
		Find(&appointments).Error
	return appointments, err
}

// CountBookedBySlot returns how many BOOKED appointments exist for the
// doctor at the given date and time
func (r *AppointmentRepository) CountBookedBySlot(doctorID uint, date, timeSlot string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ? AND status = ?",
			doctorID, date, timeSlot, models.AppointmentBooked).
		Count(&count).Error
	return count, err
}

// UpdateAppointmentStatus sets the status of an appointment
func (r *AppointmentRepository) UpdateAppointmentStatus(id uint, status string) error {
	return r.db.Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}
