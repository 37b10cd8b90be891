package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated clinic operator.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FileMeta stores metadata about an uploaded schedule PDF and the state of
// its text extraction.
type FileMeta struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UploadedBy      uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName        string     `db:"file_name" json:"file_name"`
	OriginalName    string     `db:"original_name" json:"original_name"`
	FileType        FileType   `db:"file_type" json:"file_type"`
	FileSize        int64      `db:"file_size" json:"file_size"`
	S3Bucket        string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key           string     `db:"s3_key" json:"s3_key"`
	ContentType     string     `db:"content_type" json:"content_type"`
	Status          FileStatus `db:"status" json:"status"`
	ExtractAttempts int        `db:"extract_attempts" json:"extract_attempts"`
	ExtractionError string     `db:"extraction_error" json:"extraction_error"`
	ExtractedAt     *time.Time `db:"extracted_at" json:"extracted_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Appointment is one schedule entry on the clinic agenda. String fields keep
// whatever the extraction recovered; empty means unknown. Sources records
// per-field extraction provenance.
type Appointment struct {
	ID           uuid.UUID         `db:"id" json:"id"`
	FileID       *uuid.UUID        `db:"file_id" json:"file_id"`
	Date         *time.Time        `db:"date" json:"date"`
	RawDate      string            `db:"raw_date" json:"raw_date"`
	Time         string            `db:"time" json:"time"`
	Specialty    string            `db:"specialty" json:"specialty"`
	Doctor       string            `db:"doctor" json:"doctor"`
	Patient      string            `db:"patient" json:"patient"`
	PatientPhone string            `db:"patient_phone" json:"patient_phone"`
	Insurance    string            `db:"insurance" json:"insurance"`
	Event        string            `db:"event" json:"event"`
	RecordNumber string            `db:"record_number" json:"record_number"`
	Status       AppointmentStatus `db:"status" json:"status"`
	Sources      json.RawMessage   `db:"sources" json:"sources,omitempty"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}

// ApprovalItem is an entry on one of the pending-approval queues
// (carteirinha verification or appointment confirmation).
type ApprovalItem struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Type         ApprovalType   `db:"type" json:"type"`
	Status       ApprovalStatus `db:"status" json:"status"`
	PatientName  string         `db:"patient_name" json:"patient_name"`
	PatientPhone string         `db:"patient_phone" json:"patient_phone"`
	Professional string         `db:"professional" json:"professional"`
	Insurance    string         `db:"insurance" json:"insurance"`
	CardNumber   string         `db:"card_number" json:"card_number"`
	Specialty    string         `db:"specialty" json:"specialty"`
	Notes        string         `db:"notes" json:"notes"`
	Date         string         `db:"date" json:"date"`
	Time         string         `db:"time" json:"time"`
	NewDate      string         `db:"new_date" json:"new_date"`
	NewTime      string         `db:"new_time" json:"new_time"`
	ResolvedBy   *uuid.UUID     `db:"resolved_by" json:"resolved_by"`
	ResolvedAt   *time.Time     `db:"resolved_at" json:"resolved_at"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// DispatchCampaign groups a message template with the contacts selected for
// a bulk WhatsApp dispatch.
type DispatchCampaign struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Message   string         `db:"message" json:"message"`
	Status    CampaignStatus `db:"status" json:"status"`
	CreatedBy uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// DispatchMessage is one recipient of a campaign with its delivery outcome.
type DispatchMessage struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	CampaignID  uuid.UUID     `db:"campaign_id" json:"campaign_id"`
	ContactName string        `db:"contact_name" json:"contact_name"`
	Phone       string        `db:"phone" json:"phone"`
	Status      MessageStatus `db:"status" json:"status"`
	Error       string        `db:"error" json:"error"`
	SentAt      *time.Time    `db:"sent_at" json:"sent_at"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

// AgendaSummary holds the per-status appointment counts for one day.
type AgendaSummary struct {
	Total  int                       `json:"total"`
	Counts map[AppointmentStatus]int `json:"counts"`
}
