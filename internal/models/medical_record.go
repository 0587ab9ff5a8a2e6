package models

import "time"

// MedicalRecord represents an uploaded medical document. The file itself
// lives in blob storage; this row keeps the URL and the OCR output.
type MedicalRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	FileURL       string    `gorm:"size:512;not null" json:"file_url"`
	ExtractedText string    `gorm:"type:text" json:"extracted_text"`
	UploadDate    time.Time `gorm:"type:date;not null" json:"upload_date"`
	Notes         string    `gorm:"size:255" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
}

// TableName specifies the table name for MedicalRecord model
func (MedicalRecord) TableName() string {
	return "medical_records"
}
