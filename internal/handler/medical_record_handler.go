package handler

import (
	"io"
	"net/http"
	"strconv"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps medical record uploads at 10 MB
const maxUploadSize = 10 << 20

type MedicalRecordHandler struct {
	recordService *service.MedicalRecordService
}

func NewMedicalRecordHandler(recordService *service.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordService: recordService,
	}
}

// UploadMedicalRecord handles a multipart upload: patientId, file, notes?
func (h *MedicalRecordHandler) UploadMedicalRecord(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.PostForm("patientId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or missing patientId")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing file")
		return
	}
	if fileHeader.Size > maxUploadSize {
		utils.ErrorResponse(c, http.StatusBadRequest, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	notes := c.PostForm("notes")

	record, err := h.recordService.UploadMedicalRecord(c.Request.Context(), uint(patientID), fileBytes, contentType, notes)
	if err != nil {
		if apperror.IsStorage(err) {
			utils.ErrorResponse(c, http.StatusBadGateway, "Failed to store file")
			return
		}
		respondError(c, err, "Failed to upload medical record")
		return
	}

	utils.CreatedResponse(c, record)
}

// GetMedicalRecord retrieves a specific record by ID
func (h *MedicalRecordHandler) GetMedicalRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	record, err := h.recordService.GetMedicalRecordByID(uint(id))
	if err != nil {
		respondError(c, err, "Failed to fetch medical record")
		return
	}

	utils.SuccessResponse(c, record)
}

// GetMedicalRecordsByPatient retrieves all records for a patient
func (h *MedicalRecordHandler) GetMedicalRecordsByPatient(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("patientId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	records, err := h.recordService.GetMedicalRecordsByPatient(uint(patientID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch medical records")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"records": records,
		"count":   len(records),
	})
}
