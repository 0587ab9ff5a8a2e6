package handler

import (
	"net/http"
	"strconv"

	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// GetAllDoctors retrieves every doctor
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.doctorService.GetAllDoctors()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor retrieves a specific doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetDoctorByID(uint(id))
	if err != nil {
		respondError(c, err, "Failed to fetch doctor")
		return
	}

	utils.SuccessResponse(c, doctor)
}

// GetDoctorsByHospital retrieves all doctors attached to a hospital
func (h *DoctorHandler) GetDoctorsByHospital(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("hospitalId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	doctors, err := h.doctorService.GetDoctorsByHospital(uint(hospitalID))
	if err != nil {
		respondError(c, err, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// CreateDoctor creates a new doctor (admin only)
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if doctor.Name == "" || doctor.Specialization == "" || doctor.HospitalID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, specialization, and hospital_id are required")
		return
	}

	userID, _ := currentUser(c)

	saved, err := h.doctorService.CreateDoctor(&doctor, userID)
	if err != nil {
		respondError(c, err, "Failed to create doctor")
		return
	}

	utils.CreatedResponse(c, saved)
}

// UpdateDoctor updates an existing doctor (admin only)
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := currentUser(c)

	updated, err := h.doctorService.UpdateDoctor(uint(id), &doctor, userID)
	if err != nil {
		respondError(c, err, "Failed to update doctor")
		return
	}

	utils.SuccessResponse(c, updated)
}

// DeleteDoctor removes a doctor (admin only)
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	userID, _ := currentUser(c)

	if err := h.doctorService.DeleteDoctor(uint(id), userID); err != nil {
		respondError(c, err, "Failed to delete doctor")
		return
	}

	utils.MessageResponse(c, "Doctor deleted successfully")
}
