package service

import (
	"fmt"
	"time"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"

	"github.com/samber/lo"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// AppointmentStore is the persistence surface for appointments. Implemented
// by repository.AppointmentRepository.
type AppointmentStore interface {
	CreateAppointment(appointment *models.Appointment) error
	GetAppointmentByID(id uint) (*models.Appointment, error)
	GetAppointmentsByPatientID(patientID uint) ([]models.Appointment, error)
	GetAppointmentsByDoctorID(doctorID uint) ([]models.Appointment, error)
	CountBookedBySlot(doctorID uint, date, timeSlot string) (int64, error)
	UpdateAppointmentStatus(id uint, status string) error
}

type AppointmentService struct {
	appointmentRepo AppointmentStore
	doctorRepo      DoctorStore
	userRepo        UserStore
	auditRepo       AuditLogger
}

func NewAppointmentService(
	appointmentRepo AppointmentStore,
	doctorRepo DoctorStore,
	userRepo UserStore,
	auditRepo AuditLogger,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		auditRepo:       auditRepo,
	}
}

// BookAppointment creates an appointment in BOOKED state. Doctor and patient
// must both exist before anything is written, and the doctor's slot must be
// free of other BOOKED appointments.
func (s *AppointmentService) BookAppointment(doctorID, patientID uint, date, timeSlot string) (*models.AppointmentResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperror.InvalidInput("invalid date %q, expected YYYY-MM-DD", date)
	}
	if _, err := time.Parse(timeLayout, timeSlot); err != nil {
		return nil, apperror.InvalidInput("invalid time %q, expected HH:MM", timeSlot)
	}

	doctor, err := s.doctorRepo.GetDoctorByID(doctorID)
	if err != nil {
		return nil, err
	}

	patient, err := s.userRepo.GetUserByID(patientID)
	if err != nil {
		return nil, err
	}

	booked, err := s.appointmentRepo.CountBookedBySlot(doctorID, date, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if booked > 0 {
		return nil, apperror.Conflict("doctor %d already has a booked appointment on %s at %s", doctorID, date, timeSlot)
	}

	appointment := &models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      timeSlot,
		Status:    models.AppointmentBooked,
	}

	if err := s.appointmentRepo.CreateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	userIDPtr := &patientID
	details := fmt.Sprintf("Booked appointment %d with doctor %d on %s %s", appointment.ID, doctorID, date, timeSlot)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "appointment_book", details)

	appointment.Doctor = *doctor
	appointment.Patient = *patient
	response := toAppointmentResponse(*appointment)
	return &response, nil
}

// GetAppointmentByID retrieves an appointment with names resolved
func (s *AppointmentService) GetAppointmentByID(id uint) (*models.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.GetAppointmentByID(id)
	if err != nil {
		return nil, err
	}

	response := toAppointmentResponse(*appointment)
	return &response, nil
}

// GetAppointmentsByPatient retrieves all appointments for a patient
func (s *AppointmentService) GetAppointmentsByPatient(patientID uint) ([]models.AppointmentResponse, error) {
	appointments, err := s.appointmentRepo.GetAppointmentsByPatientID(patientID)
	if err != nil {
		return nil, err
	}
	return lo.Map(appointments, func(a models.Appointment, _ int) models.AppointmentResponse {
		return toAppointmentResponse(a)
	}), nil
}

// GetAppointmentsByDoctor retrieves all appointments for a doctor
func (s *AppointmentService) GetAppointmentsByDoctor(doctorID uint) ([]models.AppointmentResponse, error) {
	appointments, err := s.appointmentRepo.GetAppointmentsByDoctorID(doctorID)
	if err != nil {
		return nil, err
	}
	return lo.Map(appointments, func(a models.Appointment, _ int) models.AppointmentResponse {
		return toAppointmentResponse(a)
	}), nil
}

// CancelAppointment transitions an appointment to CANCELLED. Cancelling an
// already-cancelled appointment is an idempotent no-op.
func (s *AppointmentService) CancelAppointment(id uint, userID uint) (*models.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.GetAppointmentByID(id)
	if err != nil {
		return nil, err
	}

	if appointment.Status != models.AppointmentCancelled {
		if err := s.appointmentRepo.UpdateAppointmentStatus(id, models.AppointmentCancelled); err != nil {
			return nil, fmt.Errorf("failed to cancel appointment: %w", err)
		}
		appointment.Status = models.AppointmentCancelled

		userIDPtr := &userID
		_ = s.auditRepo.CreateAuditLog(userIDPtr, "appointment_cancel", fmt.Sprintf("Cancelled appointment %d", id))
	}

	response := toAppointmentResponse(*appointment)
	return &response, nil
}

// toAppointmentResponse projects a stored appointment into the read model,
// resolving doctor and patient display names from the preloaded relations.
func toAppointmentResponse(a models.Appointment) models.AppointmentResponse {
	return models.AppointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		DoctorID:    a.DoctorID,
		DoctorName:  a.Doctor.Name,
		PatientName: a.Patient.Name,
		Date:        a.Date,
		Time:        a.Time,
		Status:      a.Status,
	}
}
