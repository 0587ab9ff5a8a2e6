package handler

import (
	"net/http"
	"strconv"

	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type BookAppointmentRequest struct {
	DoctorID  uint   `json:"doctor_id" binding:"required"`
	PatientID uint   `json:"patient_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

// BookAppointment books an appointment with a doctor
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	appointment, err := h.appointmentService.BookAppointment(req.DoctorID, req.PatientID, req.Date, req.Time)
	if err != nil {
		respondError(c, err, "Failed to book appointment")
		return
	}

	utils.CreatedResponse(c, appointment)
}

// GetAppointment retrieves a specific appointment by ID
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentService.GetAppointmentByID(uint(id))
	if err != nil {
		respondError(c, err, "Failed to fetch appointment")
		return
	}

	utils.SuccessResponse(c, appointment)
}

// GetAppointmentsByPatient retrieves all appointments for a patient
func (h *AppointmentHandler) GetAppointmentsByPatient(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("patientId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	appointments, err := h.appointmentService.GetAppointmentsByPatient(uint(patientID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// GetAppointmentsByDoctor retrieves all appointments for a doctor
func (h *AppointmentHandler) GetAppointmentsByDoctor(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("doctorId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	appointments, err := h.appointmentService.GetAppointmentsByDoctor(uint(doctorID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// CancelAppointment transitions an appointment to CANCELLED
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	userID, _ := currentUser(c)

	appointment, err := h.appointmentService.CancelAppointment(uint(id), userID)
	if err != nil {
		respondError(c, err, "Failed to cancel appointment")
		return
	}

	utils.SuccessResponse(c, appointment)
}
