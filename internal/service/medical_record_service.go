package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"
)

// BlobStorage stores raw file bytes and returns a retrievable URL.
// Implemented by storage.S3Store.
type BlobStorage interface {
	Store(ctx context.Context, data []byte, contentType string) (string, error)
}

// TextExtractor runs best-effort OCR over file bytes. Implemented by
// ocr.TesseractExtractor.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// MedicalRecordStore is the persistence surface for medical records.
// Implemented by repository.MedicalRecordRepository.
type MedicalRecordStore interface {
	CreateMedicalRecord(record *models.MedicalRecord) error
	GetMedicalRecordByID(id uint) (*models.MedicalRecord, error)
	GetMedicalRecordsByPatientID(patientID uint) ([]models.MedicalRecord, error)
}

type MedicalRecordService struct {
	recordRepo MedicalRecordStore
	userRepo   UserStore
	blobStore  BlobStorage
	extractor  TextExtractor
	auditRepo  AuditLogger
}

func NewMedicalRecordService(
	recordRepo MedicalRecordStore,
	userRepo UserStore,
	blobStore BlobStorage,
	extractor TextExtractor,
	auditRepo AuditLogger,
) *MedicalRecordService {
	return &MedicalRecordService{
		recordRepo: recordRepo,
		userRepo:   userRepo,
		blobStore:  blobStore,
		extractor:  extractor,
		auditRepo:  auditRepo,
	}
}

// UploadMedicalRecord stores the file, runs best-effort OCR, and persists
// the record. The patient is resolved before either collaborator runs, so an
// unknown patient produces no side effects. A storage failure aborts the
// upload; an extraction failure only degrades the record to empty text.
func (s *MedicalRecordService) UploadMedicalRecord(ctx context.Context, patientID uint, fileBytes []byte, contentType, notes string) (*models.MedicalRecord, error) {
	patient, err := s.userRepo.GetUserByID(patientID)
	if err != nil {
		return nil, err
	}

	fileURL, err := s.blobStore.Store(ctx, fileBytes, contentType)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	extractedText, err := s.extractor.Extract(fileBytes)
	if err != nil {
		log.Printf("Warning: text extraction failed for patient %d: %v", patientID, err)
		extractedText = ""
	}

	record := &models.MedicalRecord{
		PatientID:     patient.ID,
		FileURL:       fileURL,
		ExtractedText: extractedText,
		UploadDate:    time.Now().UTC().Truncate(24 * time.Hour),
		Notes:         notes,
	}

	if err := s.recordRepo.CreateMedicalRecord(record); err != nil {
		return nil, fmt.Errorf("failed to save medical record: %w", err)
	}

	userIDPtr := &patient.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "medical_record_upload", fmt.Sprintf("Uploaded record %d", record.ID))

	return record, nil
}

// GetMedicalRecordByID retrieves a record by ID
func (s *MedicalRecordService) GetMedicalRecordByID(id uint) (*models.MedicalRecord, error) {
	return s.recordRepo.GetMedicalRecordByID(id)
}

// GetMedicalRecordsByPatient retrieves all records for a patient
func (s *MedicalRecordService) GetMedicalRecordsByPatient(patientID uint) ([]models.MedicalRecord, error) {
	return s.recordRepo.GetMedicalRecordsByPatientID(patientID)
}
