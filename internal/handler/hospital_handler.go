package handler

import (
	"net/http"
	"strconv"

	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// GetAllHospitals retrieves every hospital
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.GetAllHospitals()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetHospitalByID(uint(id))
	if err != nil {
		respondError(c, err, "Failed to fetch hospital")
		return
	}

	utils.SuccessResponse(c, hospital)
}

// CreateHospital creates a new hospital (admin only)
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if hospital.Name == "" || hospital.Location == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Name and location are required")
		return
	}

	userID, _ := currentUser(c)

	saved, err := h.hospitalService.CreateHospital(&hospital, userID)
	if err != nil {
		respondError(c, err, "Failed to create hospital")
		return
	}

	utils.CreatedResponse(c, saved)
}

// CreateHospitals creates a batch of hospitals atomically (admin only)
func (h *HospitalHandler) CreateHospitals(c *gin.Context) {
	var hospitals []models.Hospital
	if err := c.ShouldBindJSON(&hospitals); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := currentUser(c)

	saved, err := h.hospitalService.CreateHospitals(hospitals, userID)
	if err != nil {
		respondError(c, err, "Failed to create hospitals")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"hospitals": saved,
		"count":     len(saved),
	})
}

// UpdateHospital fully replaces an existing hospital (admin only)
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := currentUser(c)

	updated, err := h.hospitalService.UpdateHospital(uint(id), &hospital, userID)
	if err != nil {
		respondError(c, err, "Failed to update hospital")
		return
	}

	utils.SuccessResponse(c, updated)
}

// DeleteHospital removes a hospital (admin only)
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	userID, _ := currentUser(c)

	if err := h.hospitalService.DeleteHospital(uint(id), userID); err != nil {
		respondError(c, err, "Failed to delete hospital")
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully")
}

// FindNearestHospitals returns every hospital within radius km of the
// query point
func (h *HospitalHandler) FindNearestHospitals(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or missing lat parameter")
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or missing lon parameter")
		return
	}

	radius, err := strconv.ParseFloat(c.Query("radius"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or missing radius parameter")
		return
	}

	hospitals, err := h.hospitalService.FindNearestHospitals(lat, lon, radius)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to search hospitals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}
