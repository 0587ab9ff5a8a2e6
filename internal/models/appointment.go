package models

import "time"

// Appointment lifecycle states. BOOKED is the initial state, CANCELLED is
// terminal; there is no transition back.
const (
	AppointmentBooked    = "BOOKED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment represents the appointments table. Appointments are never
// physically deleted; cancellation is the only mutation.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	Date      string    `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Time      string    `gorm:"size:5;not null" json:"time"`  // HH:MM
	Status    string    `gorm:"type:enum('BOOKED','CANCELLED');default:'BOOKED'" json:"status"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Patient User   `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  Doctor `gorm:"foreignKey:DoctorID" json:"-"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentResponse is the read model returned to clients. Doctor and
// patient names are resolved at read time, never stored on the appointment.
type AppointmentResponse struct {
	ID          uint   `json:"id"`
	PatientID   uint   `json:"patient_id"`
	DoctorID    uint   `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}
